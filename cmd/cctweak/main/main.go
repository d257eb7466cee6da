package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cctweak/cmd/cctweak"
	"github.com/arthur-debert/cctweak/pkg/ui/styles"
)

func main() {
	rootCmd := cctweak.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
