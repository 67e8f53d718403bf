package report

import (
	"testing"

	"clarity-gate/internal/domain/visitor"
)

func TestAggregatePlates(t *testing.T) {
	tests := []struct {
		name     string
		plates   []string
		expected string
	}{
		{
			name:     "dedup and sort",
			plates:   []string{"ABC123;DEF456", "ABC123;GHI789"},
			expected: "ABC123;DEF456;GHI789",
		},
		{
			name:     "no plates",
			plates:   []string{"", ""},
			expected: "",
		},
		{
			name:     "unsorted input",
			plates:   []string{"ZZ9", "", "AA1;ZZ9"},
			expected: "AA1;ZZ9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]visitor.Record, len(tt.plates))
			for i, p := range tt.plates {
				records[i].VehiclePlateNumber = p
			}
			if got := AggregatePlates(records); got != tt.expected {
				t.Errorf("AggregatePlates() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAssemble(t *testing.T) {
	records := []visitor.Record{
		{SerialNumber: 1, CompanyFullName: "Acme", VehiclePlateNumber: "SG1"},
		{SerialNumber: 2, CompanyFullName: "Acme"},
		{SerialNumber: 3, CompanyFullName: "  "},
	}

	rep := Assemble(visitor.VariantStandard, records)
	if rep.Summary.TotalVisitors != 2 {
		t.Errorf("TotalVisitors = %d, want 2", rep.Summary.TotalVisitors)
	}
	if rep.Summary.Vehicles != "SG1" {
		t.Errorf("Vehicles = %q, want %q", rep.Summary.Vehicles, "SG1")
	}
	if len(rep.Records) != 3 {
		t.Errorf("Records = %d, want 3", len(rep.Records))
	}
}
