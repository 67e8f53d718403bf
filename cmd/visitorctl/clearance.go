package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	clearanceSubmitted string
	clearanceDays      int
)

var clearanceCmd = &cobra.Command{
	Use:   "clearance",
	Short: "Print the earliest clearance date for a submission",
	Args:  cobra.NoArgs,
	RunE:  runClearance,
}

func init() {
	f := clearanceCmd.Flags()
	f.StringVar(&clearanceSubmitted, "submitted", "", "Submission time in RFC3339 or YYYY-MM-DD (default now)")
	f.IntVar(&clearanceDays, "days", 0, "Required working days (default from CLEARANCE_WORKING_DAYS)")
}

func runClearance(cmd *cobra.Command, args []string) error {
	var submitted time.Time
	if clearanceSubmitted != "" {
		t, err := parseSubmitted(clearanceSubmitted, cfg.Report.Location)
		if err != nil {
			return err
		}
		submitted = t
	}
	if cmd.Flags().Changed("days") && clearanceDays < 1 {
		return fmt.Errorf("--days must be positive, got %d", clearanceDays)
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	est := svc.EstimateClearance(submitted, clearanceDays)
	fmt.Fprintln(cmd.OutOrStdout(), est.ClearanceDate)
	return nil
}

func parseSubmitted(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --submitted %q: use RFC3339 or YYYY-MM-DD", s)
	}
	return t, nil
}
