package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karim/resume-builder/internal/config"
	"github.com/karim/resume-builder/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveTemplate   string
	serveOutputDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for managing resume data, generating PDFs and evaluating content.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveTemplate, "template", "t", "", "Default document template")
	serveCmd.Flags().StringVarP(&serveOutputDir, "output-dir", "o", "", "Directory for generated PDFs (defaults to the system temp dir)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("template") {
		cfg.Template = serveTemplate
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = serveOutputDir
	}

	cfg.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		JWTSecret:   cfg.JWTSecret,
		Template:    cfg.Template,
		OutputDir:   cfg.OutputDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
