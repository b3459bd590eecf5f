// Public domain.

package translate

import (
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/soniakeys/unit"

	"github.com/necam-obs/ingest/fitshdr"
)

// Translation binds a spec to one header.  Derived fields are computed at
// most once; repeated lookups return the memoized result, so mutually
// dependent accessors stay consistent and cheap.
type Translation struct {
	spec  *Spec
	hdr   fitshdr.Header
	cache map[Field]cached
}

type cached struct {
	v   interface{}
	err error
}

// Translation binds the spec to a header.
func (s *Spec) Translation(h fitshdr.Header) *Translation {
	return &Translation{
		spec:  s,
		hdr:   h,
		cache: make(map[Field]cached),
	}
}

// Header returns the bound header for use by derived accessors.
func (t *Translation) Header() fitshdr.Header { return t.hdr }

// Value resolves one schema field.  Resolution order is derived, trivial,
// const.  A missing keyword propagates a fitshdr.KeywordError; a field the
// translator does not declare at all is an UnknownFieldError.
func (t *Translation) Value(f Field) (interface{}, error) {
	if c, ok := t.cache[f]; ok {
		return c.v, c.err
	}
	v, err := t.resolve(f)
	t.cache[f] = cached{v, err}
	return v, err
}

func (t *Translation) resolve(f Field) (interface{}, error) {
	if fn, ok := t.spec.Derived[f]; ok {
		v, err := fn(t)
		return v, errors.Wrapf(err, "unable to derive %s", f)
	}
	if kw, ok := t.spec.Trivial[f]; ok {
		v, err := t.trivial(kw)
		return v, errors.Wrapf(err, "unable to copy %s", f)
	}
	if v, ok := t.spec.Const[f]; ok {
		return v, nil
	}
	return nil, UnknownFieldError{t.spec.Name, f}
}

func (t *Translation) trivial(kw Keyword) (interface{}, error) {
	switch kw.Unit {
	case Second:
		sec, err := t.hdr.Float(kw.Keyword)
		if err != nil {
			return nil, err
		}
		return time.Duration(sec * float64(time.Second)), nil
	case Degree:
		deg, err := t.hdr.Float(kw.Keyword)
		if err != nil {
			return nil, err
		}
		return unit.AngleFromDeg(deg), nil
	case Kelvin, HPa:
		return t.hdr.Float(kw.Keyword)
	}
	v, ok := t.hdr[kw.Keyword]
	if !ok {
		return nil, fitshdr.KeywordError{Keyword: kw.Keyword}
	}
	return v, nil
}

// StringValue resolves f as a string.  Numeric values format; a nil
// constant resolves to "".
func (t *Translation) StringValue(f Field) (string, error) {
	v, err := t.Value(f)
	if err != nil || v == nil {
		return "", err
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
	}
	return "", errors.Errorf("translate: field %s has %T value, want string", f, v)
}

// IntValue resolves f as an int.
func (t *Translation) IntValue(f Field) (int, error) {
	v, err := t.Value(f)
	if err != nil || v == nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		i, aerr := strconv.Atoi(n)
		if aerr != nil {
			return 0, errors.Wrapf(aerr, "translate: field %s", f)
		}
		return i, nil
	}
	return 0, errors.Errorf("translate: field %s has %T value, want int", f, v)
}

// FloatValue resolves f as a float64.  A nil constant resolves to NaN,
// the schema's representation of a known-unknown quantity.
func (t *Translation) FloatValue(f Field) (float64, error) {
	v, err := t.Value(f)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return math.NaN(), nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, errors.Errorf("translate: field %s has %T value, want float", f, v)
}

// DurationValue resolves f as a duration.
func (t *Translation) DurationValue(f Field) (time.Duration, error) {
	v, err := t.Value(f)
	if err != nil || v == nil {
		return 0, err
	}
	d, ok := v.(time.Duration)
	if !ok {
		return 0, errors.Errorf("translate: field %s has %T value, want duration", f, v)
	}
	return d, nil
}

// AngleValue resolves f as an angle.
func (t *Translation) AngleValue(f Field) (unit.Angle, error) {
	v, err := t.Value(f)
	if err != nil || v == nil {
		return 0, err
	}
	a, ok := v.(unit.Angle)
	if !ok {
		return 0, errors.Errorf("translate: field %s has %T value, want angle", f, v)
	}
	return a, nil
}

// TimeValue resolves f as a timestamp.
func (t *Translation) TimeValue(f Field) (Time, error) {
	v, err := t.Value(f)
	if err != nil || v == nil {
		return Time{}, err
	}
	tm, ok := v.(Time)
	if !ok {
		return Time{}, errors.Errorf("translate: field %s has %T value, want time", f, v)
	}
	return tm, nil
}

// SkyCoordValue resolves f as a sky position.  A nil constant resolves to
// a nil coordinate.
func (t *Translation) SkyCoordValue(f Field) (*SkyCoord, error) {
	v, err := t.Value(f)
	if err != nil || v == nil {
		return nil, err
	}
	c, ok := v.(*SkyCoord)
	if !ok {
		return nil, errors.Errorf("translate: field %s has %T value, want sky coordinate", f, v)
	}
	return c, nil
}
