package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"clarity-gate/internal/clearance"
	"clarity-gate/internal/domain/visitor"
	"clarity-gate/internal/normalizer"
	"clarity-gate/internal/report"
	"clarity-gate/internal/spreadsheet"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrRejected     = errors.New("conversion rejected")
)

// ReportStore keeps a copy of generated reports.
type ReportStore interface {
	PutReport(ctx context.Context, id uuid.UUID, fileName string, content []byte) (string, error)
}

type ConvertOptions struct {
	Variant visitor.Variant
	Strict  bool
}

type VisitorService struct {
	normalizer  *normalizer.Normalizer
	store       ReportStore
	location    *time.Location
	workingDays int
	now         func() time.Time
	log         zerolog.Logger
}

func NewVisitorService(n *normalizer.Normalizer, store ReportStore, location *time.Location, workingDays int, log zerolog.Logger) *VisitorService {
	if location == nil {
		location = time.UTC
	}
	if workingDays < 1 {
		workingDays = clearance.DefaultWorkingDays
	}
	return &VisitorService{
		normalizer:  n,
		store:       store,
		location:    location,
		workingDays: workingDays,
		now:         time.Now,
		log:         log,
	}
}

// Convert runs one upload through the whole pipeline and returns the
// rendered workbook. Nothing is returned when any stage fails.
func (s *VisitorService) Convert(ctx context.Context, upload io.Reader, opts ConvertOptions) (*visitor.ConversionResult, error) {
	id := uuid.New()
	log := s.log.With().Str("report_id", id.String()).Str("variant", string(opts.Variant)).Logger()

	table, err := spreadsheet.Read(upload)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read uploaded workbook")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	records, err := s.normalizer.Normalize(table, normalizer.Options{
		Variant: opts.Variant,
		Strict:  opts.Strict,
	})
	if err != nil {
		log.Warn().
			Err(err).
			Int("input_rows", len(table.Rows)).
			Int("input_columns", len(table.Header)).
			Bool("strict", opts.Strict).
			Msg("visitor list rejected")
		return nil, fmt.Errorf("%w: %w", ErrRejected, err)
	}

	rep := report.Assemble(opts.Variant, records)

	buf, err := spreadsheet.Render(rep)
	if err != nil {
		log.Error().Err(err).Msg("failed to render report")
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	result := &visitor.ConversionResult{
		ID:       id,
		FileName: spreadsheet.FileName(spreadsheet.FirstCompany(table.Rows), s.now(), s.location),
		RowCount: len(records),
		Summary:  rep.Summary,
		Content:  buf.Bytes(),
	}

	if s.store != nil {
		url, err := s.store.PutReport(ctx, id, result.FileName, result.Content)
		if err != nil {
			// the workbook is still returned to the caller
			log.Error().Err(err).Str("file_name", result.FileName).Msg("failed to store report")
		} else {
			result.ReportURL = url
		}
	}

	log.Info().
		Str("file_name", result.FileName).
		Int("input_rows", len(table.Rows)).
		Int("rows", result.RowCount).
		Int("total_visitors", rep.Summary.TotalVisitors).
		Str("vehicles", rep.Summary.Vehicles).
		Msg("visitor list converted")

	return result, nil
}

// Template returns a blank workbook with the canonical header row.
func (s *VisitorService) Template(variant visitor.Variant) ([]byte, error) {
	buf, err := spreadsheet.Template(variant)
	if err != nil {
		return nil, fmt.Errorf("failed to build template: %w", err)
	}
	return buf.Bytes(), nil
}

type ClearanceEstimate struct {
	Submitted     time.Time `json:"submitted"`
	WorkingDays   int       `json:"working_days"`
	ClearanceDate string    `json:"clearance_date"`
}

// EstimateClearance computes the earliest clearance date. A zero submitted
// time means now; workingDays below one falls back to the configured lead
// time.
func (s *VisitorService) EstimateClearance(submitted time.Time, workingDays int) ClearanceEstimate {
	if submitted.IsZero() {
		submitted = s.now().In(s.location)
	}
	if workingDays < 1 {
		workingDays = s.workingDays
	}
	date := clearance.EarliestClearance(submitted, workingDays)
	return ClearanceEstimate{
		Submitted:     submitted,
		WorkingDays:   workingDays,
		ClearanceDate: date.Format(time.DateOnly),
	}
}
