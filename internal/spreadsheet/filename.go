package spreadsheet

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultCompany  = "VisitorList"
	DefaultTimezone = "America/New_York"
)

var unsafeNameChars = strings.NewReplacer("/", "-", "\\", "-", ":", "-", "\x00", "")

// FileName builds "{Company}_{YYYYMMDD}.xlsx" with the date taken in loc.
// A blank company falls back to DefaultCompany.
func FileName(company string, now time.Time, loc *time.Location) string {
	name := strings.TrimSpace(company)
	if name == "" {
		name = DefaultCompany
	}
	name = unsafeNameChars.Replace(name)
	if loc != nil {
		now = now.In(loc)
	}
	return fmt.Sprintf("%s_%s.xlsx", name, now.Format("20060102"))
}

// FirstCompany returns the company cell of the first data row as uploaded,
// before any sorting.
func FirstCompany(rows [][]string) string {
	const companyColumn = 2
	if len(rows) == 0 || len(rows[0]) <= companyColumn {
		return ""
	}
	return rows[0][companyColumn]
}
