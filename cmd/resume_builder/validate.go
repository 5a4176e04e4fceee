package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karim/resume-builder/internal/observability"
	"github.com/karim/resume-builder/internal/pipeline"
)

var validatePayload string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a payload file is complete enough to generate a resume",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validatePayload, "payload", "p", "", "Path to resume bundle JSON file")
	_ = validateCmd.MarkFlagRequired("payload")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	bundle, err := loadBundle(validatePayload)
	if err != nil {
		return err
	}

	report, err := pipeline.ValidateResume(context.Background(), nil, pipeline.BuildOptions{Bundle: bundle})
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBundleSummary(bundle)
	printer.PrintValidationReport(report)

	if !report.CanGenerate {
		return fmt.Errorf("payload is missing required data")
	}
	return nil
}
