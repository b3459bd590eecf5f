// Public domain.

package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soniakeys/coord"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// SkyCoord is a sky position in a single equatorial frame.
type SkyCoord struct {
	RA    unit.RA
	Dec   unit.Angle
	Frame string
}

// FrameICRS is the frame all tracking positions are expressed in.
const FrameICRS = "icrs"

// NewSkyCoord builds an ICRS position.
func NewSkyCoord(ra unit.RA, dec unit.Angle) *SkyCoord {
	return &SkyCoord{RA: ra, Dec: dec, Frame: FrameICRS}
}

// Equa returns the position as a coord.Equa.
func (c *SkyCoord) Equa() coord.Equa {
	var eq coord.Equa
	eq.RA = c.RA
	eq.Dec = c.Dec
	return eq
}

func (c *SkyCoord) String() string {
	return fmt.Sprintf("%v %v (%s)",
		sexa.FmtRA(c.RA), sexa.FmtAngle(c.Dec), c.Frame)
}

// AltAz is a horizontal-frame pointing.  No translator derives one yet;
// the type exists so constant maps can declare the field's shape.
type AltAz struct {
	Alt unit.Angle
	Az  unit.Angle
}

// Location is an observatory site.  As with AltAz, currently only declared.
type Location struct {
	Lon       unit.Angle
	Lat       unit.Angle
	Elevation float64 // meters
}

func sexaFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ':'
	})
}

// ParseRA interprets a sexagesimal hour-angle right ascension string,
// "HH MM SS.ss" with space or colon separators.  Minutes and seconds may
// be omitted.
func ParseRA(s string) (unit.RA, error) {
	f := sexaFields(s)
	if len(f) < 1 || len(f) > 3 {
		return 0, fmt.Errorf("translate: invalid RA (%s)", s)
	}
	var h, m int
	var sec float64
	var err error
	h, err = strconv.Atoi(f[0])
	if err == nil && len(f) > 1 {
		m, err = strconv.Atoi(f[1])
	}
	if err == nil && len(f) > 2 {
		sec, err = strconv.ParseFloat(f[2], 64)
	}
	if err != nil {
		return 0, fmt.Errorf("translate: invalid RA (%s), %v", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("translate: RA (%s) out of range", s)
	}
	return unit.NewRA(h, m, sec), nil
}

// ParseDec interprets a sexagesimal declination string in degrees,
// "±DD MM SS.s" with space or colon separators.  The sign is optional;
// minutes and seconds may be omitted.
func ParseDec(s string) (unit.Angle, error) {
	s = strings.TrimSpace(s)
	neg := byte(' ')
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0]
		s = s[1:]
	}
	f := sexaFields(s)
	if len(f) < 1 || len(f) > 3 {
		return 0, fmt.Errorf("translate: invalid declination (%s)", s)
	}
	var d, m int
	var sec float64
	var err error
	d, err = strconv.Atoi(f[0])
	if err == nil && len(f) > 1 {
		m, err = strconv.Atoi(f[1])
	}
	if err == nil && len(f) > 2 {
		sec, err = strconv.ParseFloat(f[2], 64)
	}
	if err != nil {
		return 0, fmt.Errorf("translate: invalid declination (%s), %v", s, err)
	}
	if d > 90 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("translate: declination (%s) out of range", s)
	}
	a := unit.NewAngle(neg, d, m, sec)
	if a.Deg() < -90 || a.Deg() > 90 {
		return 0, fmt.Errorf("translate: declination (%s) out of range", s)
	}
	return a, nil
}
