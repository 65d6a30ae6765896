package contract

// Tier is the activation class of a check.
type Tier uint8

const (
	// TierDefault checks run unless checking is disabled entirely.
	TierDefault Tier = iota
	// TierAudit checks run only at LevelAudit.
	TierAudit
	// TierAxiom checks are never evaluated; they document intent.
	TierAxiom
)

// String returns the lowercase tier name used in reports and metric labels.
func (t Tier) String() string {
	switch t {
	case TierDefault:
		return "default"
	case TierAudit:
		return "audit"
	case TierAxiom:
		return "axiom"
	default:
		return "unknown"
	}
}

// BuildLevel selects which tiers produce runtime checks.
type BuildLevel uint8

const (
	// LevelUnset behaves as LevelDefault.
	LevelUnset BuildLevel = iota
	// LevelDefault activates TierDefault only.
	LevelDefault
	// LevelAudit activates TierDefault and TierAudit.
	LevelAudit
	// LevelOff deactivates every runtime tier. Any value above it does too.
	LevelOff
)

// Active reports whether checks of tier t run at level l.
func (l BuildLevel) Active(t Tier) bool {
	switch t {
	case TierDefault:
		return l < LevelOff
	case TierAudit:
		return l == LevelAudit
	default:
		return false
	}
}

// String returns a readable level name.
func (l BuildLevel) String() string {
	switch {
	case l <= LevelDefault:
		return "default"
	case l == LevelAudit:
		return "audit"
	default:
		return "off"
	}
}

// Kind classifies a failed check.
type Kind uint8

const (
	KindPrecondition Kind = iota
	KindPostcondition
	KindAssertion
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindPostcondition:
		return "postcondition"
	case KindAssertion:
		return "assertion"
	default:
		return "unknown"
	}
}

// Cause narrows a numeric violation down to what went wrong. Generic
// checks carry CauseNone.
type Cause uint8

const (
	CauseNone Cause = iota
	// CauseSignedOverflow: a signed result does not fit the type.
	CauseSignedOverflow
	// CauseUnsignedWrap: an unsigned result would wrap around.
	CauseUnsignedWrap
	// CauseNarrowing: a conversion would lose the value.
	CauseNarrowing
	// CauseDivisionByZero: divisor or modulus is zero.
	CauseDivisionByZero
	// CauseMinOverflow: signed minimum divided by -1.
	CauseMinOverflow
)

// String returns the snake_case cause name used in metric labels.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseSignedOverflow:
		return "signed_overflow"
	case CauseUnsignedWrap:
		return "unsigned_wrap"
	case CauseNarrowing:
		return "narrowing"
	case CauseDivisionByZero:
		return "division_by_zero"
	case CauseMinOverflow:
		return "min_overflow"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error matching c, or nil for CauseNone.
func (c Cause) Err() error {
	switch c {
	case CauseSignedOverflow:
		return ErrSignedOverflow
	case CauseUnsignedWrap:
		return ErrUnsignedWrap
	case CauseNarrowing:
		return ErrNarrowing
	case CauseDivisionByZero:
		return ErrDivisionByZero
	case CauseMinOverflow:
		return ErrMinOverflow
	default:
		return nil
	}
}
