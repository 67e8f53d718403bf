package normalizer

import (
	"sort"
	"strings"

	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/utils"
)

type Options struct {
	Variant visitor.Variant
	Strict  bool
}

type Normalizer struct {
	rules  Rules
	strict *StrictValidator
}

func New(rules Rules, strict *StrictValidator) *Normalizer {
	return &Normalizer{
		rules:  rules,
		strict: strict,
	}
}

// sourceRow keeps the worksheet row number for error reporting.
type sourceRow struct {
	record visitor.Record
	row    int
}

// Normalize binds the table to the fixed layout and returns the cleaned,
// sorted records with serial numbers 1..N.
func (n *Normalizer) Normalize(t visitor.Table, opts Options) ([]visitor.Record, error) {
	schema := visitor.SchemaFor(opts.Variant)
	bound, err := schema.Bind(t)
	if err != nil {
		return nil, err
	}

	rows := make([]sourceRow, 0, len(bound))
	for i, rec := range bound {
		if isBlankVisitor(rec) {
			continue
		}
		// header is row 1
		rows = append(rows, sourceRow{record: rec, row: i + 2})
	}
	if len(rows) == 0 {
		return nil, &visitor.EmptyResultError{InputRows: len(bound)}
	}

	if opts.Strict && n.strict != nil {
		if err := n.strict.validateRows(rows); err != nil {
			return nil, err
		}
	}

	for i := range rows {
		rows[i].record.Nationality = n.orBlankLabel(utils.NormalizeNationality(rows[i].record.Nationality, n.rules.Nationalities))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lessVisitor(rows[i].record, rows[j].record)
	})

	records := make([]visitor.Record, len(rows))
	for i, r := range rows {
		rec := r.record
		rec.SerialNumber = i + 1
		rec.VehiclePlateNumber = utils.NormalizePlates(rec.VehiclePlateNumber)
		rec.FullName = strings.TrimSpace(utils.TitleCase(rec.FullName))
		rec.FirstName, rec.MiddleAndLastName = utils.SplitName(rec.FullName)
		rec.MobileNumber = utils.FixMobile(rec.MobileNumber)
		rec.Gender = n.orBlankLabel(utils.CleanGender(rec.Gender, n.rules.Genders))
		rec.DriverLicenseNumber = utils.TruncateLicense(rec.DriverLicenseNumber)
		records[i] = rec
	}

	return records, nil
}

func (n *Normalizer) orBlankLabel(v string) string {
	if v == "" {
		return n.rules.BlankLabel
	}
	return v
}

// isBlankVisitor reports whether every column from Full Name through Mobile
// Number is blank. Serial, plate and company are ignored.
func isBlankVisitor(r visitor.Record) bool {
	for _, v := range []string{
		r.FullName,
		r.FirstName,
		r.MiddleAndLastName,
		r.DriverLicenseNumber,
		r.Nationality,
		r.Gender,
		r.MobileNumber,
	} {
		if !utils.IsBlank(v) {
			return false
		}
	}
	return true
}

// lessVisitor orders by company, nationality, then full name. Blank keys
// sort after non-blank ones.
func lessVisitor(a, b visitor.Record) bool {
	keys := [][2]string{
		{a.CompanyFullName, b.CompanyFullName},
		{a.Nationality, b.Nationality},
		{a.FullName, b.FullName},
	}
	for _, k := range keys {
		if c := compareMissingLast(k[0], k[1]); c != 0 {
			return c < 0
		}
	}
	return false
}

func compareMissingLast(a, b string) int {
	aBlank, bBlank := utils.IsBlank(a), utils.IsBlank(b)
	switch {
	case aBlank && bBlank:
		return 0
	case aBlank:
		return 1
	case bBlank:
		return -1
	}
	return strings.Compare(a, b)
}
