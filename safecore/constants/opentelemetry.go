package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "lib-safecore/opentelemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// Telemetry attribute key prefixes.
const (
	// AttrPrefixContract is the prefix for contract violation event attributes.
	AttrPrefixContract = "contract."
)

// Telemetry attribute keys for contract violations.
const (
	AttrContractKind      = AttrPrefixContract + "kind"
	AttrContractTier      = AttrPrefixContract + "tier"
	AttrContractCause     = AttrPrefixContract + "cause"
	AttrContractMessage   = AttrPrefixContract + "message"
	AttrContractLocation  = AttrPrefixContract + "location"
	AttrContractComponent = AttrPrefixContract + "component"
	AttrContractStack     = AttrPrefixContract + "stack"
)

// Telemetry metric names.
const (
	// MetricContractViolationTotal is the counter metric for failed contract checks.
	MetricContractViolationTotal = "contract_violation_total"
)

// Telemetry event names.
const (
	// EventContractViolation is the span event name for contract violations.
	EventContractViolation = "contract.violation"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
