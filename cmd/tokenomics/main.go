// "tokenomics" previews burn-to-mint emission schedules.
package main

import (
	"os"

	"github.com/fatih/color"

	"tokenomics-lab/cmd/tokenomics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("tokenomics failed: %v", err)
		os.Exit(1)
	}
}
