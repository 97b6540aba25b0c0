package form

import (
	"strings"

	"github.com/candrasdkd/easywork/internal/model"
)

// ValidationError lists the required fields the draft left blank, using the
// field labels the dialog shows.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "Harus diisi: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Unwrap() error { return model.ErrInvalidArgument }
