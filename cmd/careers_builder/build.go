package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/careers-builder/internal/config"
	"github.com/jonathan/careers-builder/internal/pipeline"
)

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Fetch both BLS sources and generate careers.json",
	Long: `Downloads the OOH XML compilation and the OEWS wage workbook, joins them by
normalized occupation title, derives pay and education-cost fields, and writes
the careers.json artifact.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuildCmd,
}

var (
	buildConfigPath      string
	buildOOHURL          string
	buildOEWSPage        string
	buildOutput          string
	buildTwoYearTuition  float64
	buildFourYearTuition float64
	buildTargets         []string
	buildTimeout         int
	buildVerbose         bool
)

func init() {
	// Config file flag (processed first)
	buildCommand.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	buildCommand.Flags().StringVar(&buildOOHURL, "ooh-url", "", "OOH XML compilation URL")
	buildCommand.Flags().StringVar(&buildOEWSPage, "oews-page", "", "OEWS page URL to scan for the wage workbook link")
	buildCommand.Flags().StringVarP(&buildOutput, "output", "o", "", "Output path for careers.json")
	buildCommand.Flags().Float64Var(&buildTwoYearTuition, "two-year-tuition", 0, "Annual public two-year tuition+fees rate (NCES Table 330.20)")
	buildCommand.Flags().Float64Var(&buildFourYearTuition, "four-year-tuition", 0, "Annual public four-year in-state tuition+fees rate (NCES Table 330.20)")
	buildCommand.Flags().StringArrayVar(&buildTargets, "target", nil, "Target occupation title (repeatable; replaces the default list)")
	buildCommand.Flags().IntVar(&buildTimeout, "timeout", 0, "HTTP timeout in seconds")
	buildCommand.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(buildCommand)
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if buildConfigPath != "" {
		loadedCfg, err := config.Load(buildConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if buildVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", buildConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("ooh-url") {
		cfg.OOHXMLURL = buildOOHURL
	}
	if cmd.Flags().Changed("oews-page") {
		cfg.OEWSPageURL = buildOEWSPage
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = buildOutput
	}
	if cmd.Flags().Changed("two-year-tuition") {
		cfg.TwoYearTuition = buildTwoYearTuition
	}
	if cmd.Flags().Changed("four-year-tuition") {
		cfg.FourYearTuition = buildFourYearTuition
	}
	if cmd.Flags().Changed("target") {
		cfg.Targets = buildTargets
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = buildTimeout
	}
	if buildVerbose {
		cfg.Verbose = true
	}

	// Step 3: Fill remaining gaps from documented defaults, then validate
	cfg = cfg.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.Run(ctx, pipeline.RunOptions{
		OOHXMLURL:       cfg.OOHXMLURL,
		OEWSPageURL:     cfg.OEWSPageURL,
		OutputPath:      cfg.Output,
		TwoYearTuition:  cfg.TwoYearTuition,
		FourYearTuition: cfg.FourYearTuition,
		Targets:         cfg.Targets,
		Timeout:         time.Duration(cfg.TimeoutSeconds) * time.Second,
		Verbose:         cfg.Verbose,
	})
}
