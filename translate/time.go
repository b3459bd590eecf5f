// Public domain.

package translate

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/julian"
)

// Time is an observation timestamp: a civil UTC instant that also knows its
// Julian and modified Julian date.
type Time struct {
	t time.Time
}

// TimeFromTime wraps a stdlib time, normalized to UTC.
func TimeFromTime(t time.Time) Time {
	return Time{t.UTC()}
}

// ParseCompactDate interprets a compact YYYYMMDD date string as that
// calendar date at 00:00:00 UTC.
func ParseCompactDate(s string) (Time, error) {
	if len(s) != 8 {
		return Time{}, errors.Errorf("translate: compact date %q not 8 digits", s)
	}
	iso := strings.Join([]string{s[0:4], s[4:6], s[6:]}, "-")
	t, err := time.ParseInLocation("2006-01-02", iso, time.UTC)
	if err != nil {
		return Time{}, errors.Wrapf(err, "translate: invalid compact date %q", s)
	}
	return Time{t}, nil
}

// UTC returns the instant as a stdlib UTC time.
func (t Time) UTC() time.Time { return t.t }

// Add returns the instant shifted by d.
func (t Time) Add(d time.Duration) Time { return Time{t.t.Add(d)} }

// JD returns the Julian date.
func (t Time) JD() float64 { return julian.TimeToJD(t.t) }

// MJD returns the modified Julian date.
func (t Time) MJD() float64 { return t.JD() - 2400000.5 }

// ISODate formats the calendar date, "2020-01-01".
func (t Time) ISODate() string { return t.t.Format("2006-01-02") }

// ISO formats the full instant, "2020-01-01 00:00:00.000".
func (t Time) ISO() string { return t.t.Format("2006-01-02 15:04:05.000") }

func (t Time) String() string { return t.ISO() }

// IsZero tells whether the timestamp was never set.
func (t Time) IsZero() bool { return t.t.IsZero() }
