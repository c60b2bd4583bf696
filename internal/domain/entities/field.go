package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	domainerrors "octofit.backend/internal/domain/errors"
)

var (
	errInvalidType = errors.New("invalid type")
	errNullItem    = errors.New("null list item")
)

// datetimeLayouts are the accepted shapes of a datetime field: date and
// minutes are mandatory, seconds, fraction and zone are optional. A value
// without a zone is taken as UTC.
var datetimeLayouts = func() []string {
	var out []string
	for _, sep := range []string{"T", " "} {
		for _, clock := range []string{"15:04:05", "15:04"} {
			for _, zone := range []string{"Z07:00", "Z0700", "Z07", ""} {
				out = append(out, "2006-01-02"+sep+clock+zone)
			}
		}
	}
	return out
}()

func parseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidType
}

// Field is a write-payload value that remembers whether its JSON key was
// present and whether it was an explicit null. Update semantics depend on the
// difference between "omitted" and "cleared".
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Value builds a present, non-null field.
func Value[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null builds an explicit null field.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Present reports whether the payload carried a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

func (f *Field[T]) decode(raw json.RawMessage) error {
	*f = Field[T]{Set: true}
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		f.Null = true
		return nil
	}

	switch v := any(&f.Value).(type) {
	case *time.Time:
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return errInvalidType
		}
		t, err := parseDatetime(s)
		if err != nil {
			return err
		}
		*v = t
		return nil
	case *[]string:
		var items []*string
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return errInvalidType
		}
		list := make([]string, len(items))
		for i, item := range items {
			if item == nil {
				return errNullItem
			}
			list[i] = *item
		}
		*v = list
		return nil
	}

	if err := json.Unmarshal(trimmed, &f.Value); err == nil {
		return nil
	}

	// legacy clients send numeric ids as strings ("team_id": "1")
	if isNumeric(f.Value) && len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if json.Unmarshal(trimmed, &s) == nil {
			if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &f.Value); err == nil {
				return nil
			}
		}
	}

	var zero T
	f.Value = zero
	return errInvalidType
}

func (f *Field[T]) typeMessage() string {
	var zero T
	if _, ok := any(zero).(time.Time); ok {
		return MsgInvalidDatetime
	}
	switch reflect.TypeOf(&zero).Elem().Kind() {
	case reflect.String:
		return MsgInvalidString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return MsgInvalidInteger
	case reflect.Float32, reflect.Float64:
		return MsgInvalidNumber
	case reflect.Slice:
		return MsgInvalidList
	default:
		return MsgInvalidValue
	}
}

func isNumeric(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

type fieldDecoder interface {
	decode(raw json.RawMessage) error
	typeMessage() string
}

// decodeObject fills the given fields from a JSON object. Unknown keys are
// ignored, so read-only fields echoed back by clients (id, created_at, ...)
// are harmless. Every mistyped field is reported, not just the first.
func decodeObject(data []byte, fields map[string]fieldDecoder) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return domainerrors.FieldError(domainerrors.NonFieldErrors, MsgExpectedObject)
	}

	verrs := domainerrors.NewValidationError()
	for name, f := range fields {
		value, ok := raw[name]
		if !ok {
			continue
		}
		switch err := f.decode(value); {
		case err == nil:
		case errors.Is(err, errNullItem):
			verrs.Add(name, MsgNotNull)
		default:
			verrs.Add(name, f.typeMessage())
		}
	}
	return verrs.OrNil()
}
