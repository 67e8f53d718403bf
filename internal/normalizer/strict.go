package normalizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"clarity-gate/internal/domain/visitor"
)

const (
	minMobileDigits = 10
	maxMobileDigits = 15
)

// strictRecord is the subset of a visitor row that strict mode checks.
type strictRecord struct {
	CompanyFullName string `label:"Company Full Name" validate:"required"`
	FullName        string `label:"Full Name" validate:"required"`
	Nationality     string `label:"Nationality (Country Name)" validate:"required"`
	Gender          string `label:"Gender" validate:"required,gender_code"`
	MobileNumber    string `label:"Mobile Number" validate:"required,mobile_digits"`
}

// StrictValidator rejects rows that lenient cleaning would silently coerce.
type StrictValidator struct {
	validate *validator.Validate
}

func NewStrictValidator() (*StrictValidator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	if err := v.RegisterValidation("gender_code", validateGenderCode); err != nil {
		return nil, fmt.Errorf("register gender_code: %w", err)
	}
	if err := v.RegisterValidation("mobile_digits", validateMobileDigits); err != nil {
		return nil, fmt.Errorf("register mobile_digits: %w", err)
	}

	return &StrictValidator{validate: v}, nil
}

func validateGenderCode(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "m", "f", "male", "female":
		return true
	}
	return false
}

func validateMobileDigits(fl validator.FieldLevel) bool {
	digits := 0
	for _, r := range fl.Field().String() {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minMobileDigits && digits <= maxMobileDigits
}

// ValidateRecord checks a single raw record. row is the worksheet row
// number used in the returned errors.
func (v *StrictValidator) ValidateRecord(rec visitor.Record, row int) visitor.ValidationErrors {
	sr := strictRecord{
		CompanyFullName: strings.TrimSpace(rec.CompanyFullName),
		FullName:        strings.TrimSpace(rec.FullName),
		Nationality:     strings.TrimSpace(rec.Nationality),
		Gender:          strings.TrimSpace(rec.Gender),
		MobileNumber:    strings.TrimSpace(rec.MobileNumber),
	}

	err := v.validate.Struct(sr)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return visitor.ValidationErrors{{Row: row, Field: "row", Message: err.Error()}}
	}
	return translateValidationErrors(validationErrs, row)
}

func (v *StrictValidator) validateRows(rows []sourceRow) error {
	var all visitor.ValidationErrors
	for _, r := range rows {
		all = append(all, v.ValidateRecord(r.record, r.row)...)
	}
	if len(all) > 0 {
		return all
	}
	return nil
}

func translateValidationErrors(errs validator.ValidationErrors, row int) visitor.ValidationErrors {
	out := make(visitor.ValidationErrors, 0, len(errs))
	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = "value is required"
		case "gender_code":
			message = fmt.Sprintf("%q is not one of M, F, Male, Female", err.Value())
		case "mobile_digits":
			message = fmt.Sprintf("must contain %d to %d digits", minMobileDigits, maxMobileDigits)
		}

		out = append(out, visitor.ValidationError{
			Row:     row,
			Field:   err.Field(),
			Message: message,
		})
	}
	return out
}
