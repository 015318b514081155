// Package language is the single conversion point between the in-memory
// language enumeration and its fixed 3-letter wire/storage code.
//
// Both directions go through this package: rows scanned from PostgreSQL,
// query arguments sent to it, and JSON payloads on the HTTP boundary. An
// unknown code is always a decode error, never a fallback value.
package language

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ldelorme/ratematch/internal/platform/apperr"
)

// Language is one value of the closed language set.
type Language int

const (
	French Language = iota
	English
)

const (
	codeFrench  = "FRE"
	codeEnglish = "ENG"
)

// All lists every valid language, in declaration order.
func All() []Language {
	return []Language{French, English}
}

// Parse decodes a 3-letter code into a [Language].
//
// It succeeds only on exact matches; wrong case, wrong length, or unknown
// codes fail with an INVALID_LANGUAGE_CODE error.
func Parse(raw string) (Language, error) {
	switch raw {
	case codeFrench:
		return French, nil
	case codeEnglish:
		return English, nil
	}
	return 0, unrecognized(raw)
}

// Code encodes the language as its canonical 3-letter form.
func (l Language) Code() string {
	switch l {
	case French:
		return codeFrench
	case English:
		return codeEnglish
	}
	return ""
}

// String implements [fmt.Stringer] with the canonical code.
func (l Language) String() string {
	return l.Code()
}

// Name returns the English display name of the language.
func (l Language) Name() string {
	switch l {
	case French:
		return "French"
	case English:
		return "English"
	}
	return ""
}

// MarshalJSON encodes the language as its 3-letter code.
func (l Language) MarshalJSON() ([]byte, error) {
	code := l.Code()
	if code == "" {
		return nil, fmt.Errorf("language: cannot encode invalid variant %d", int(l))
	}
	return json.Marshal(code)
}

// UnmarshalJSON decodes a 3-letter code, rejecting anything outside the set.
func (l *Language) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return unrecognized(string(data))
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*l = parsed
	return nil
}

// Scan implements [database/sql.Scanner] for CHAR(3) language_code columns.
func (l *Language) Scan(src any) error {
	var raw string
	switch value := src.(type) {
	case string:
		raw = value
	case []byte:
		raw = string(value)
	default:
		return fmt.Errorf("language: cannot scan %T", src)
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*l = parsed
	return nil
}

// Value implements [database/sql/driver.Valuer] for query arguments.
func (l Language) Value() (driver.Value, error) {
	code := l.Code()
	if code == "" {
		return nil, fmt.Errorf("language: cannot encode invalid variant %d", int(l))
	}
	return code, nil
}

// unrecognized builds the typed decode failure for an unknown code.
func unrecognized(raw string) error {
	return &apperr.AppError{
		Code:       "INVALID_LANGUAGE_CODE",
		Message:    fmt.Sprintf("Unrecognized language %q", raw),
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}
