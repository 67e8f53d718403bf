package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"clarity-gate/internal/config"
	"clarity-gate/internal/logger"
	"clarity-gate/internal/normalizer"
	"clarity-gate/internal/service"
)

var (
	cfg       *config.Config
	log       zerolog.Logger
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:           "visitorctl",
	Short:         "Clean visitor registration spreadsheets offline",
	Long:          "Cleans visitor registration workbooks, builds blank templates and estimates gate clearance dates without running the HTTP service.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		env := "production"
		if logFormat == "text" {
			env = "development"
		}
		log = logger.New(env)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// newService wires a VisitorService without report storage.
func newService() (*service.VisitorService, error) {
	strict, err := normalizer.NewStrictValidator()
	if err != nil {
		return nil, err
	}
	cleaner := normalizer.New(normalizer.DefaultRules().WithBlankLabel(cfg.Cleaning.BlankLabel), strict)
	return service.NewVisitorService(cleaner, nil, cfg.Report.Location, cfg.Report.WorkingDays, log), nil
}
