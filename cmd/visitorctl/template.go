package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"clarity-gate/internal/domain/visitor"
)

var (
	templateVariant string
	templateOut     string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a blank visitor list template",
	Args:  cobra.NoArgs,
	RunE:  runTemplate,
}

func init() {
	f := templateCmd.Flags()
	f.StringVar(&templateVariant, "variant", "", "Column layout: standard or extended")
	f.StringVarP(&templateOut, "out", "o", "", "Output file (default <variant>_template.xlsx)")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	variant := cfg.Cleaning.Variant
	if templateVariant != "" {
		v, err := visitor.ParseVariant(templateVariant)
		if err != nil {
			return err
		}
		variant = v
	}

	out := templateOut
	if out == "" {
		out = string(variant) + "_template.xlsx"
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	content, err := svc.Template(variant)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
