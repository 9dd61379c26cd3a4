// Command bbmodel validates, inspects and converts model documents.
package main

import (
	"os"

	"github.com/mytrout/buildingblocks/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
