package report

import (
	"sort"
	"strings"

	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/utils"
)

// Assemble builds the summary that accompanies a cleaned table.
func Assemble(variant visitor.Variant, records []visitor.Record) visitor.Report {
	return visitor.Report{
		Variant: variant,
		Records: records,
		Summary: visitor.Summary{
			Vehicles:      AggregatePlates(records),
			TotalVisitors: CountVisitors(records),
		},
	}
}

// AggregatePlates returns every distinct plate across all rows, sorted and
// joined with ";". It is empty when no row has a plate.
func AggregatePlates(records []visitor.Record) string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, p := range utils.SplitPlates(rec.VehiclePlateNumber) {
			seen[p] = struct{}{}
		}
	}

	plates := make([]string, 0, len(seen))
	for p := range seen {
		plates = append(plates, p)
	}
	sort.Strings(plates)
	return strings.Join(plates, utils.PlateSeparator)
}

// CountVisitors counts rows with a non-blank company name.
func CountVisitors(records []visitor.Record) int {
	total := 0
	for _, rec := range records {
		if !utils.IsBlank(rec.CompanyFullName) {
			total++
		}
	}
	return total
}
