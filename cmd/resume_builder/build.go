package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/karim/resume-builder/internal/config"
	"github.com/karim/resume-builder/internal/pipeline"
	"github.com/karim/resume-builder/internal/types"
)

var (
	buildConfigPath string
	buildPayload    string
	buildTemplate   string
	buildOutputDir  string
	buildName       string
	buildEmail      string
	buildPhone      string
	buildVerbose    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate a resume PDF from a payload file",
	Long: `Assemble a resume bundle from a JSON payload file, render it through
the selected HTML template and write the resulting PDF.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	buildCmd.Flags().StringVarP(&buildPayload, "payload", "p", "", "Path to resume bundle JSON file")
	buildCmd.Flags().StringVarP(&buildTemplate, "template", "t", "", "Document template name")
	buildCmd.Flags().StringVarP(&buildOutputDir, "output-dir", "o", "", "Directory for the generated PDF (defaults to the current directory)")
	buildCmd.Flags().StringVarP(&buildName, "name", "n", "", "Candidate name override")
	buildCmd.Flags().StringVar(&buildEmail, "email", "", "Candidate email override")
	buildCmd.Flags().StringVar(&buildPhone, "phone", "", "Candidate phone override")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := mergedBuildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Payload == "" {
		return fmt.Errorf("--payload is required (or set 'payload' in the config file)")
	}

	bundle, err := loadBundle(cfg.Payload)
	if err != nil {
		return err
	}

	var identity *types.AccountIdentity
	if buildName != "" || buildEmail != "" || buildPhone != "" {
		identity = &types.AccountIdentity{Name: buildName, Email: buildEmail, Phone: buildPhone}
	}

	result, cleanup, err := pipeline.BuildResume(context.Background(), nil, pipeline.BuildOptions{
		Bundle:    bundle,
		Identity:  identity,
		Template:  cfg.Template,
		OutputDir: cfg.OutputDir,
		Verbose:   cfg.Verbose,
	})
	if err != nil {
		return err
	}
	defer cleanup()

	outDir := cfg.OutputDir
	if outDir == "" {
		outDir = "."
	}
	outPath := filepath.Join(outDir, "resume.pdf")
	if err := moveFile(result.Path, outPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Resume written to %s\n", outPath)
	return nil
}

// mergedBuildConfig layers config file values under CLI flags.
func mergedBuildConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if buildConfigPath != "" {
		loaded, err := config.LoadConfig(buildConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("payload") {
		cfg.Payload = buildPayload
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = buildTemplate
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = buildOutputDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = buildVerbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadBundle reads and decodes a resume bundle payload file.
func loadBundle(path string) (*types.ResumeBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload file: %w", err)
	}

	var bundle types.ResumeBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse payload JSON: %w", err)
	}
	return &bundle, nil
}

// moveFile renames src to dst, falling back to copy across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
