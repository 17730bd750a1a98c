package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
)

func TestNormalize_ScalesToE8S(t *testing.T) {
	p := Normalize(domain.RawParameters{
		PrimaryMaxSupply:         "1000000",
		TGEAllocation:            "100000",
		InitialSecondaryBurn:     "1000000",
		HalvingStepPercent:       "70",
		InitialRewardPerBurnUnit: "200000",
	})

	assert.Equal(t, "100000000000000", p.PrimaryMaxSupply.String())
	assert.Equal(t, "10000000000000", p.TGEAllocation.String())
	assert.Equal(t, "100000000000000", p.InitialSecondaryBurn.String())
	assert.Equal(t, int64(70), p.HalvingStepPercent)
	assert.Equal(t, "20000000000000", p.InitialRewardPerBurnUnit.String())
	assert.Equal(t, fixedpoint.E8S, p.Scale)
}

func TestNormalize_InvalidInputsBecomeZero(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"letters", "abc"},
		{"negative", "-5"},
		{"nan", "NaN"},
		{"trailing garbage", "12abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(domain.RawParameters{
				PrimaryMaxSupply:         tt.in,
				TGEAllocation:            tt.in,
				InitialSecondaryBurn:     tt.in,
				HalvingStepPercent:       tt.in,
				InitialRewardPerBurnUnit: tt.in,
			})
			assert.True(t, p.PrimaryMaxSupply.IsZero())
			assert.True(t, p.TGEAllocation.IsZero())
			assert.True(t, p.InitialSecondaryBurn.IsZero())
			assert.True(t, p.InitialRewardPerBurnUnit.IsZero())
			assert.Equal(t, int64(0), p.HalvingStepPercent)
		})
	}
}

func TestNormalize_TruncatesBelowScale(t *testing.T) {
	p := Normalize(domain.RawParameters{PrimaryMaxSupply: "1.123456789"})
	assert.Equal(t, "112345678", p.PrimaryMaxSupply.String())

	p = Normalize(domain.RawParameters{PrimaryMaxSupply: " 0.5 "})
	assert.Equal(t, "50000000", p.PrimaryMaxSupply.String())
}

func TestNormalize_CustomScale(t *testing.T) {
	p := NewNormalizer(fixedpoint.Scale(1000)).Normalize(domain.RawParameters{InitialSecondaryBurn: "2.5"})
	assert.Equal(t, "2500", p.InitialSecondaryBurn.String())
	assert.Equal(t, fixedpoint.Scale(1000), p.Scale)

	p = NewNormalizer(0).Normalize(domain.RawParameters{InitialSecondaryBurn: "1"})
	assert.Equal(t, fixedpoint.E8S, p.Scale)
}

func TestHalvingStep(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"50", 50},
		{"70.6", 71},
		{"70.5", 71},
		{"70.4", 70},
		{"99.5", 100},
		{"0.4", 0},
		{"0", 0},
		{"100", 100},
		{"250", 100},
		{"1e30", 100},
		{"-1", 0},
		{"x", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HalvingStep(tt.in))
		})
	}
}

func TestParseNonNegative(t *testing.T) {
	d, ok := ParseNonNegative("42.25")
	require.True(t, ok)
	assert.Equal(t, "42.25", d.String())

	_, ok = ParseNonNegative("-0.01")
	assert.False(t, ok)
}
