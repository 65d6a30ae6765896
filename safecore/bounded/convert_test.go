//go:build unit

package bounded

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-safecore/safecore/contract"
)

func TestConvertWithChecker(t *testing.T) {
	t.Parallel()

	c, got := continueChecker(contract.LevelAudit)

	assert.Equal(t, int8(100), ConvertWith[int8](c, New[int64](100)).Get())
	assert.Empty(t, got.infos)

	assert.Equal(t, int8(-56), ConvertWith[int8](c, New[int32](200)).Get())
	assert.Equal(t, uint32(math.MaxUint32), ConvertWith[uint32](c, New[int32](-1)).Get())

	require.Len(t, got.infos, 2)
	assert.Equal(t, contract.CauseNarrowing, got.infos[0].Cause)
	assert.Equal(t, contract.KindPrecondition, got.infos[0].Kind)
	assert.Equal(t, "convert_test.go", filepath.Base(got.infos[0].Location.File))
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	c, got := continueChecker(contract.LevelAudit)

	for v := math.MinInt16; v <= math.MaxInt16; v += 7 {
		wide := ConvertWith[int64](c, New(int16(v)))
		assert.Equal(t, int16(v), ConvertWith[int16](c, wide).Get())
	}

	assert.Empty(t, got.infos)
}

func TestTryConvertTo(t *testing.T) {
	t.Parallel()

	v, err := TryConvertTo[uint8](New[int32](255))
	require.NoError(t, err)
	assert.Equal(t, uint8(255), v.Get())

	_, err = TryConvertTo[uint8](New[int32](256))
	assert.ErrorIs(t, err, contract.ErrNarrowing)
	assert.ErrorIs(t, err, contract.ErrAssertionViolation)

	_, err = TryConvertTo[uint64](New[int8](-1))
	assert.ErrorIs(t, err, contract.ErrNarrowing)

	w, err := TryConvertTo[int64](Max[uint32]())
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxUint32), w.Get())
}

func TestConvertToWidening(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(-1), ConvertTo[int64](New[int8](-1)).Get())
	assert.Equal(t, uint32(math.MaxUint16), ConvertTo[uint32](Max[uint16]()).Get())
	assert.Equal(t, int16(255), From[int16](uint8(255)).Get())
}

func TestConvertToFollowsCompiledLevel(t *testing.T) {
	got := installRecorder(t)

	recovering(func() { _ = ConvertTo[int8](New[int32](200)) })
	recovering(func() { _ = From[uint32](int32(-1)) })

	if !auditOn {
		assert.Empty(t, got.infos)
		return
	}

	require.Len(t, got.infos, 2)

	for _, info := range got.infos {
		assert.Equal(t, contract.CauseNarrowing, info.Cause)
		assert.Equal(t, "convert_test.go", filepath.Base(info.Location.File))
	}
}
