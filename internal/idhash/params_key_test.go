package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
	"tokenomics-lab/internal/normalization"
)

func raw(maxSupply, tge, burn, halving, reward string) domain.RawParameters {
	return domain.RawParameters{
		PrimaryMaxSupply:         maxSupply,
		TGEAllocation:            tge,
		InitialSecondaryBurn:     burn,
		HalvingStepPercent:       halving,
		InitialRewardPerBurnUnit: reward,
	}
}

func TestComputeParamsKey(t *testing.T) {
	p := normalization.Normalize(raw("1000000", "100000", "1000000", "70", "200000"))

	key := ComputeParamsKey(p)
	assert.Len(t, key, 64)

	sum := sha256.Sum256([]byte("100000000000000|10000000000000|100000000000000|70|20000000000000|100000000"))
	assert.Equal(t, hex.EncodeToString(sum[:]), key)
}

func TestComputeParamsKey_NormalizedInputsShareKey(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.RawParameters
	}{
		{"whitespace", raw("1000", "0", "10", "50", "1"), raw(" 1000 ", "0", "10", "50", "1")},
		{"trailing zeros", raw("1000", "0", "10", "50", "1"), raw("1000.000", "0", "10.0", "50", "1")},
		{"invalid is zero", raw("1000", "0", "10", "50", "0"), raw("1000", "0", "10", "50", "abc")},
		{"fractional halving truncated", raw("1000", "0", "10", "50", "1"), raw("1000", "0", "10", "50.9", "1")},
		{"digits below scale", raw("1000", "0", "10", "50", "1"), raw("1000", "0", "10", "50", "1.000000001")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t,
				ComputeParamsKey(normalization.Normalize(tt.a)),
				ComputeParamsKey(normalization.Normalize(tt.b)))
		})
	}
}

func TestComputeParamsKey_Distinct(t *testing.T) {
	base := normalization.Normalize(raw("1000", "0", "10", "50", "1"))
	keys := map[string]bool{ComputeParamsKey(base): true}

	variants := []domain.TokenomicsParameters{
		normalization.Normalize(raw("1001", "0", "10", "50", "1")),
		normalization.Normalize(raw("1000", "1", "10", "50", "1")),
		normalization.Normalize(raw("1000", "0", "11", "50", "1")),
		normalization.Normalize(raw("1000", "0", "10", "51", "1")),
		normalization.Normalize(raw("1000", "0", "10", "50", "2")),
		normalization.NewNormalizer(fixedpoint.Scale(1000)).Normalize(raw("1000", "0", "10", "50", "1")),
	}
	for _, v := range variants {
		key := ComputeParamsKey(v)
		assert.False(t, keys[key], "collision for %+v", v)
		keys[key] = true
	}
}
