package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/normalizer"
	"clarity-gate/internal/spreadsheet"
)

type fakeStore struct {
	calls    int
	fileName string
	err      error
}

func (f *fakeStore) PutReport(_ context.Context, id uuid.UUID, fileName string, content []byte) (string, error) {
	f.calls++
	f.fileName = fileName
	if f.err != nil {
		return "", f.err
	}
	return "https://cdn.example.com/" + id.String() + "/" + fileName, nil
}

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", spreadsheet.SheetName))
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(spreadsheet.SheetName, cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var testHeader = []interface{}{"S/N", "Vehicle Plate Number", "Company Full Name", "Full Name", "First Name", "Middle and Last Name", "Driver License Number", "Nationality", "Gender", "Mobile Number"}

func newTestService(t *testing.T, store ReportStore) *VisitorService {
	t.Helper()
	strict, err := normalizer.NewStrictValidator()
	require.NoError(t, err)
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	svc := NewVisitorService(normalizer.New(normalizer.DefaultRules(), strict), store, loc, 2, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 2, 0, 0, 0, time.UTC) }
	return svc
}

func TestConvert_Success(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	upload := workbook(t,
		testHeader,
		[]interface{}{1, "ABC123, GHI789", "Zeta Corp", "jane doe", "", "", "S1234567A", "singaporean", "F", "91234567"},
		[]interface{}{2, "ABC123/DEF456", "Acme", "john smith", "", "", "D99 88", "usa", "m", "(555) 123-4567"},
		[]interface{}{3, "", "Acme", "", "", "", "", "", "", ""},
	)

	res, err := svc.Convert(context.Background(), upload, ConvertOptions{Variant: visitor.VariantStandard})
	require.NoError(t, err)

	assert.Equal(t, "Zeta Corp_20261018.xlsx", res.FileName)
	assert.Equal(t, 2, res.RowCount)
	assert.Equal(t, 2, res.Summary.TotalVisitors)
	assert.Equal(t, "ABC123;DEF456;GHI789", res.Summary.Vehicles)
	assert.Equal(t, 1, store.calls)
	assert.Contains(t, res.ReportURL, res.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(res.Content))
	require.NoError(t, err)
	defer f.Close()

	company, _ := f.GetCellValue(spreadsheet.SheetName, "C2")
	assert.Equal(t, "Acme", company)
	license, _ := f.GetCellValue(spreadsheet.SheetName, "G2")
	assert.Equal(t, "9988", license)
	mobile, _ := f.GetCellValue(spreadsheet.SheetName, "J3")
	assert.Equal(t, "0091234567", mobile)
}

func TestConvert_StoreFailureStillReturnsReport(t *testing.T) {
	store := &fakeStore{err: errors.New("bucket down")}
	svc := newTestService(t, store)

	upload := workbook(t, testHeader, []interface{}{1, "", "Acme", "ann", "", "", "", "India", "F", "5551234567"})
	res, err := svc.Convert(context.Background(), upload, ConvertOptions{Variant: visitor.VariantStandard})
	require.NoError(t, err)
	assert.Empty(t, res.ReportURL)
	assert.NotEmpty(t, res.Content)
}

func TestConvert_Rejections(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		name   string
		upload *bytes.Buffer
		opts   ConvertOptions
		target interface{}
	}{
		{
			name:   "too few columns",
			upload: workbook(t, testHeader[:6], []interface{}{1, "", "Acme", "ann"}),
			target: new(*visitor.SchemaError),
		},
		{
			name:   "header only",
			upload: workbook(t, testHeader),
			target: new(*visitor.SchemaError),
		},
		{
			name:   "all blank",
			upload: workbook(t, testHeader, []interface{}{1, "SG1", "Acme"}),
			target: new(*visitor.EmptyResultError),
		},
		{
			name:   "strict gender",
			upload: workbook(t, testHeader, []interface{}{1, "", "Acme", "ann", "", "", "", "India", "robot", "5551234567"}),
			opts:   ConvertOptions{Strict: true},
			target: new(visitor.ValidationErrors),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.Variant == "" {
				tt.opts.Variant = visitor.VariantStandard
			}
			res, err := svc.Convert(context.Background(), tt.upload, tt.opts)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrRejected)
			assert.ErrorAs(t, err, tt.target)
		})
	}
}

func TestConvert_NotAWorkbook(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.Convert(context.Background(), bytes.NewReader([]byte("plain text")), ConvertOptions{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEstimateClearance(t *testing.T) {
	svc := newTestService(t, nil)

	friday := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	est := svc.EstimateClearance(friday, 2)
	assert.Equal(t, "2026-10-20", est.ClearanceDate)
	assert.Equal(t, 2, est.WorkingDays)

	// now is Sunday 2026-10-18 in New York
	est = svc.EstimateClearance(time.Time{}, 0)
	assert.Equal(t, 2, est.WorkingDays)
	assert.Equal(t, "2026-10-21", est.ClearanceDate)
}

func TestTemplate(t *testing.T) {
	svc := newTestService(t, nil)
	content, err := svc.Template(visitor.VariantExtended)
	require.NoError(t, err)

	table, err := spreadsheet.Read(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Len(t, table.Header, 11)
}
