package visitor

import (
	"fmt"
	"strings"
)

type Variant string

const (
	VariantStandard Variant = "standard"
	VariantExtended Variant = "extended"
)

func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case "", VariantStandard:
		return VariantStandard, nil
	case VariantExtended:
		return VariantExtended, nil
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

type Field string

const (
	FieldSerialNumber        Field = "S/N"
	FieldVehiclePlateNumber  Field = "Vehicle Plate Number"
	FieldCompanyFullName     Field = "Company Full Name"
	FieldFullName            Field = "Full Name"
	FieldFirstName           Field = "First Name"
	FieldMiddleAndLastName   Field = "Middle and Last Name"
	FieldDriverLicenseNumber Field = "Driver License Number"
	FieldNationality         Field = "Nationality (Country Name)"
	FieldGender              Field = "Gender"
	FieldMobileNumber        Field = "Mobile Number"
	FieldRemarks             Field = "Remarks"
)

var standardFields = []Field{
	FieldSerialNumber,
	FieldVehiclePlateNumber,
	FieldCompanyFullName,
	FieldFullName,
	FieldFirstName,
	FieldMiddleAndLastName,
	FieldDriverLicenseNumber,
	FieldNationality,
	FieldGender,
	FieldMobileNumber,
}

// Schema binds worksheet columns to record fields by position. Header text
// in the input is never matched against field names.
type Schema struct {
	Variant Variant
	Fields  []Field
}

func SchemaFor(variant Variant) Schema {
	fields := make([]Field, len(standardFields), len(standardFields)+1)
	copy(fields, standardFields)
	if variant == VariantExtended {
		fields = append(fields, FieldRemarks)
	}
	return Schema{Variant: variant, Fields: fields}
}

func (s Schema) Headers() []string {
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		headers[i] = string(f)
	}
	return headers
}

// Bind checks the table against the schema and maps every data row onto a
// Record. Columns past the schema width are dropped; short rows are padded
// with blanks. Cell values are passed through untouched.
func (s Schema) Bind(t Table) ([]Record, error) {
	width := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < len(s.Fields) {
		return nil, &SchemaError{
			Reason:   "too few columns",
			Expected: len(s.Fields),
			Actual:   width,
		}
	}
	if len(t.Rows) == 0 {
		return nil, &SchemaError{Reason: "no data rows", Expected: len(s.Fields), Actual: width}
	}

	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(s.Fields))
		copy(cells, row)
		rec := Record{
			VehiclePlateNumber:  cells[1],
			CompanyFullName:     cells[2],
			FullName:            cells[3],
			FirstName:           cells[4],
			MiddleAndLastName:   cells[5],
			DriverLicenseNumber: cells[6],
			Nationality:         cells[7],
			Gender:              cells[8],
			MobileNumber:        cells[9],
		}
		if s.Variant == VariantExtended {
			rec.Remarks = cells[10]
		}
		records = append(records, rec)
	}
	return records, nil
}
