package entities

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	domainerrors "octofit.backend/internal/domain/errors"
)

// Field error messages returned to API clients.
const (
	MsgRequired        = "This field is required."
	MsgNotNull         = "This field may not be null."
	MsgBlank           = "This field may not be blank."
	MsgInvalidEmail    = "Enter a valid email address."
	MsgInvalidString   = "Not a valid string."
	MsgInvalidInteger  = "A valid integer is required."
	MsgInvalidNumber   = "A valid number is required."
	MsgInvalidList     = "Expected a list of items."
	MsgInvalidValue    = "Invalid value."
	MsgInvalidDatetime = "Datetime has wrong format. Use one of these formats instead: YYYY-MM-DDThh:mm[:ss[.uuuuuu]][+HH:MM|-HH:MM|Z]."
	MsgExpectedObject  = "Invalid data. Expected a dictionary."
)

var validate = validator.New()

// UniqueMessage is the error reported for a duplicate unique value.
func UniqueMessage(resource, field string) string {
	return fmt.Sprintf("%s with this %s already exists.", resource, strings.ReplaceAll(field, "_", " "))
}

func maxLengthMessage(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

func minValueMessage(n int) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", n)
}

// checker accumulates field errors for one payload. In partial mode absent
// fields are skipped instead of reported as required.
type checker struct {
	errs    *domainerrors.ValidationError
	partial bool
}

func newChecker(partial bool) *checker {
	return &checker{errs: domainerrors.NewValidationError(), partial: partial}
}

func (c *checker) err() error {
	return c.errs.OrNil()
}

// required applies the presence rules of a non-nullable field and reports
// whether f carries a value worth checking further.
func required[T any](c *checker, name string, f Field[T]) bool {
	if !f.Set {
		if !c.partial {
			c.errs.Add(name, MsgRequired)
		}
		return false
	}
	if f.Null {
		c.errs.Add(name, MsgNotNull)
		return false
	}
	return true
}

// notNull is required for fields that have a default and may be omitted.
func notNull[T any](c *checker, name string, f Field[T]) bool {
	if !f.Set {
		return false
	}
	if f.Null {
		c.errs.Add(name, MsgNotNull)
		return false
	}
	return true
}

func (c *checker) notBlank(name, v string) bool {
	if strings.TrimSpace(v) == "" {
		c.errs.Add(name, MsgBlank)
		return false
	}
	return true
}

func (c *checker) maxLength(name, v string, n int) {
	if utf8.RuneCountInString(strings.TrimSpace(v)) > n {
		c.errs.Add(name, maxLengthMessage(n))
	}
}

func (c *checker) maxBytes(name, v string, n int) {
	if len(v) > n {
		c.errs.Add(name, maxLengthMessage(n))
	}
}

func (c *checker) minInt(name string, v, min int) {
	if v < min {
		c.errs.Add(name, minValueMessage(min))
	}
}

func (c *checker) minFloat(name string, v float64, min int) {
	if v < float64(min) {
		c.errs.Add(name, minValueMessage(min))
	}
}

func (c *checker) email(name, v string) {
	if err := validate.Var(strings.TrimSpace(v), "email"); err != nil {
		c.errs.Add(name, MsgInvalidEmail)
	}
}

func trimmedString(f Field[string]) null.String {
	if f.Null {
		return null.String{}
	}
	return null.StringFrom(strings.TrimSpace(f.Value))
}

func nullUint(f Field[uint]) null.Uint {
	if f.Null {
		return null.Uint{}
	}
	return null.UintFrom(f.Value)
}

func nullInt(f Field[int]) null.Int {
	if f.Null {
		return null.Int{}
	}
	return null.IntFrom(f.Value)
}

func nullFloat(f Field[float64]) null.Float64 {
	if f.Null {
		return null.Float64{}
	}
	return null.Float64From(f.Value)
}
