package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/service"
)

var (
	convertOutDir  string
	convertVariant string
	convertStrict  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.xlsx>",
	Short: "Clean a visitor list and write the styled report",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertOutDir, "out", "o", ".", "Directory for the cleaned workbook")
	f.StringVar(&convertVariant, "variant", "", "Column layout: standard or extended (default from VISITOR_VARIANT)")
	f.BoolVar(&convertStrict, "strict", false, "Reject malformed rows instead of coercing them (default from STRICT_MODE)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	variant := cfg.Cleaning.Variant
	if convertVariant != "" {
		v, err := visitor.ParseVariant(convertVariant)
		if err != nil {
			return err
		}
		variant = v
	}
	strict := cfg.Cleaning.StrictMode
	if cmd.Flags().Changed("strict") {
		strict = convertStrict
	}

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	svc, err := newService()
	if err != nil {
		return err
	}

	result, err := svc.Convert(context.Background(), in, service.ConvertOptions{Variant: variant, Strict: strict})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(convertOutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(convertOutDir, result.FileName)
	if err := os.WriteFile(outPath, result.Content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Info().
		Str("output", outPath).
		Int("rows", result.RowCount).
		Int("total_visitors", result.Summary.TotalVisitors).
		Str("vehicles", result.Summary.Vehicles).
		Msg("report written")
	fmt.Fprintln(cmd.OutOrStdout(), outPath)
	return nil
}
