package kernel_test

import (
	"math"
	"testing"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		name    string
		l, w, h float64
		wantErr bool
	}{
		{name: "regular box", l: 60, w: 40, h: 30},
		{name: "fractional sides", l: 10.5, w: 0.1, h: 3.25},
		{name: "zero length", l: 0, w: 10, h: 10, wantErr: true},
		{name: "negative width", l: 10, w: -1, h: 10, wantErr: true},
		{name: "NaN height", l: 10, w: 10, h: math.NaN(), wantErr: true},
		{name: "infinite length", l: math.Inf(1), w: 10, h: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, err := kernel.NewDimensions(tt.l, tt.w, tt.h)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, kernel.Dimensions{}, dims)
				return
			}

			require.NoError(t, err)
			require.NoError(t, dims.Validate())
			assert.InDelta(t, tt.l, dims.Length(), 0)
			assert.InDelta(t, tt.w, dims.Width(), 0)
			assert.InDelta(t, tt.h, dims.Height(), 0)
		})
	}
}

func TestNewDimensions_ReportsEverySide(t *testing.T) {
	_, err := kernel.NewDimensions(0, 0, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "length")
	assert.Contains(t, err.Error(), "width")
	assert.Contains(t, err.Error(), "height")
}

func TestDimensions_Derived(t *testing.T) {
	dims, err := kernel.NewDimensions(60, 60, 60)
	require.NoError(t, err)

	assert.InDelta(t, 180.0, dims.Sum(), 0)
	assert.InDelta(t, 216000.0, dims.Volume(), 0)
	assert.Equal(t, "60x60x60 cm", dims.String())

	other, _ := kernel.NewDimensions(60, 60, 61)
	assert.True(t, dims.IsEqual(dims))
	assert.False(t, dims.IsEqual(other))
}

func TestDimensions_ZeroValueIsInvalid(t *testing.T) {
	var dims kernel.Dimensions
	assert.Equal(t, kernel.ErrDimensionsAreNotConstructed, dims.Validate())
}

func TestNewDimensions_SideAboveLimitIsOutOfRange(t *testing.T) {
	// Given
	longest := kernel.MaxSideCm

	// When
	atLimit, atLimitErr := kernel.NewDimensions(longest, 1, 1)
	_, aboveErr := kernel.NewDimensions(3e6, 3e6, 3e6)

	// Then
	require.NoError(t, atLimitErr)
	assert.InDelta(t, longest, atLimit.Length(), 0)
	require.ErrorIs(t, aboveErr, errs.ErrValueIsOutOfRange)
	assert.Contains(t, aboveErr.Error(), "height")
}
