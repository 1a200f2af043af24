// Package main provides the entry point for the careers.json builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careers_builder",
	Short: "Build careers.json from public BLS sources",
	Long:  "careers_builder downloads the BLS OOH occupation profiles and OEWS wage percentiles, joins them by occupation title, and emits a static careers.json for the front-end.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
