package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIs(t *testing.T) {
	err := fmt.Errorf("filter: %w", NewBadTimeFormatError("startTime", "8am"))

	if !Is(err, ErrBadRequest, ErrBadTimeFormat) {
		t.Error("Is should match any of the listed targets")
	}
	if Is(err, ErrBadRequest, ErrCatalogNotReady) {
		t.Error("Is matched an unrelated target")
	}
}

func TestSchemaError(t *testing.T) {
	err := error(&SchemaError{Source: "courses_master.csv", Missing: []string{"day", "exam_date"}})
	if !errors.Is(err, ErrSchema) {
		t.Error("SchemaError should match ErrSchema")
	}
	if got := err.Error(); got != "courses_master.csv missing columns: [day, exam_date]" {
		t.Errorf("Error() = %q", got)
	}
}

func TestBadTimeFormatMessage(t *testing.T) {
	err := NewBadTimeFormatError("endTime", "noon")
	if want := `invalid endTime "noon": time must be formatted as HH:MM`; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
