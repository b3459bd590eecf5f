// Public domain.

// Package fitshdr holds FITS header keyword/value data in a form convenient
// for metadata translation.
package fitshdr

import (
	"fmt"
	"strconv"
)

// Header is the keyword/value content of one FITS HDU.
//
// Values keep the Go types the FITS codec decoded them to: string, int,
// float64 or bool.  Typed accessors below coerce where the coercion is
// lossless and fail otherwise.
type Header map[string]interface{}

// KeywordError reports a keyword required by a translation but absent from
// the header.
type KeywordError struct {
	Keyword string
}

func (e KeywordError) Error() string {
	return fmt.Sprintf("fitshdr: keyword %s not in header", e.Keyword)
}

// TypeError reports a keyword present but with a value of an unusable type.
type TypeError struct {
	Keyword string
	Value   interface{}
	Want    string
}

func (e TypeError) Error() string {
	return fmt.Sprintf("fitshdr: keyword %s has %T value %v, want %s",
		e.Keyword, e.Value, e.Value, e.Want)
}

// Has tells whether the keyword is present at all.
func (h Header) Has(keyword string) bool {
	_, ok := h[keyword]
	return ok
}

// String returns the keyword value as a string.  Numeric and bool values
// are formatted; absence is a KeywordError.
func (h Header) String(keyword string) (string, error) {
	v, ok := h[keyword]
	if !ok {
		return "", KeywordError{keyword}
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	}
	return "", TypeError{keyword, v, "string"}
}

// Int returns the keyword value as an int.  Strings holding integers are
// accepted, floats are not.
func (h Header) Int(keyword string) (int, error) {
	v, ok := h[keyword]
	if !ok {
		return 0, KeywordError{keyword}
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, TypeError{keyword, v, "int"}
		}
		return i, nil
	}
	return 0, TypeError{keyword, v, "int"}
}

// Float returns the keyword value as a float64.  Integer and numeric string
// values are widened.
func (h Header) Float(keyword string) (float64, error) {
	v, ok := h[keyword]
	if !ok {
		return 0, KeywordError{keyword}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, TypeError{keyword, v, "float"}
		}
		return f, nil
	}
	return 0, TypeError{keyword, v, "float"}
}
