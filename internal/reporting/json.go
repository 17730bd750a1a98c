package reporting

import (
	"encoding/json"
	"fmt"

	"tokenomics-lab/internal/domain"
)

// RenderJSON encodes a preview. Amounts are raw scaled integers and decimal
// values are strings, so the output is lossless.
func RenderJSON(p *domain.Preview) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return append(data, '\n'), nil
}
