package visitor

import (
	"strconv"

	"github.com/google/uuid"
)

type Record struct {
	SerialNumber        int    `json:"serial_number"`
	VehiclePlateNumber  string `json:"vehicle_plate_number"`
	CompanyFullName     string `json:"company_full_name"`
	FullName            string `json:"full_name"`
	FirstName           string `json:"first_name"`
	MiddleAndLastName   string `json:"middle_and_last_name"`
	DriverLicenseNumber string `json:"driver_license_number"`
	Nationality         string `json:"nationality"`
	Gender              string `json:"gender"`
	MobileNumber        string `json:"mobile_number"`
	Remarks             string `json:"remarks,omitempty"`
}

// Cells returns the record as a row in canonical column order. The Remarks
// cell is only included for the extended variant.
func (r Record) Cells(variant Variant) []string {
	cells := []string{
		strconv.Itoa(r.SerialNumber),
		r.VehiclePlateNumber,
		r.CompanyFullName,
		r.FullName,
		r.FirstName,
		r.MiddleAndLastName,
		r.DriverLicenseNumber,
		r.Nationality,
		r.Gender,
		r.MobileNumber,
	}
	if variant == VariantExtended {
		cells = append(cells, r.Remarks)
	}
	return cells
}

// Table is a raw worksheet: the header row followed by data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

type Summary struct {
	Vehicles      string `json:"vehicles"`
	TotalVisitors int    `json:"total_visitors"`
}

type Report struct {
	Variant Variant  `json:"variant"`
	Records []Record `json:"records"`
	Summary Summary  `json:"summary"`
}

type ConversionResult struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	RowCount  int       `json:"row_count"`
	Summary   Summary   `json:"summary"`
	ReportURL string    `json:"report_url,omitempty"`
	Content   []byte    `json:"-"`
}
