// Public domain.

// Package necam supplies the NeCam instrument glue: the header translator
// filling the standardized observation metadata schema, and the ingest
// configuration mapping raw keywords to registry columns.
package necam

import (
	"fmt"

	"github.com/soniakeys/unit"

	"github.com/necam-obs/ingest/fitshdr"
	"github.com/necam-obs/ingest/translate"
)

// Name of this translation.
const Name = "NeCam"

// SupportedInstrument is the INSTRUME token NeCam headers carry.
const SupportedInstrument = "NECAM"

// CanTranslate reports whether the header is a NeCam header.  Only an
// INSTRUME keyword equal to the NeCam token qualifies; absence or any other
// value is a mismatch, never an error.
func CanTranslate(h fitshdr.Header) bool {
	if v, ok := h["INSTRUME"]; ok {
		return v == SupportedInstrument
	}
	return false
}

var spec = &translate.Spec{
	Name:                Name,
	SupportedInstrument: SupportedInstrument,
	CanTranslate:        CanTranslate,

	// Fields not in the headers and not yet calculated.  Airmass and the
	// begin altaz could be computed from the pointing once a site location
	// is recorded.
	Const: map[translate.Field]interface{}{
		translate.FieldBoresightRotationCoord: "sky",
		translate.FieldBoresightRotationAngle: unit.AngleFromDeg(90),
		translate.FieldTemperature:            300.0, // K
		translate.FieldPressure:               985.0, // hPa
		translate.FieldDetectorGroup:          nil,
		translate.FieldBoresightAirmass:       nil,
		translate.FieldScienceProgram:         nil,
		translate.FieldRelativeHumidity:       nil,
		translate.FieldAltAzBegin:             nil,
		translate.FieldLocation:               nil,
	},

	// Fields copied directly from the header.
	Trivial: map[translate.Field]translate.Keyword{
		translate.FieldExposureID:         {Keyword: "RUN"},
		translate.FieldVisitID:            {Keyword: "RUN"},
		translate.FieldObservationID:      {Keyword: "RUN"},
		translate.FieldDetectorExposureID: {Keyword: "RUN"},
		translate.FieldDetectorNum:        {Keyword: "DETECTOR"},
		translate.FieldDetectorSerial:     {Keyword: "DETECTOR"},
		translate.FieldPhysicalFilter:     {Keyword: "FILTER"},
		translate.FieldObject:             {Keyword: "OBJECT"},
		translate.FieldObservationType:    {Keyword: "OBSTYPE"},
		translate.FieldExposureTime:       {Keyword: "EXPTIME", Unit: translate.Second},
		translate.FieldDarkTime:           {Keyword: "EXPTIME", Unit: translate.Second},
	},

	// Fields needing more than a keyword copy.
	Derived: map[translate.Field]translate.DerivedFunc{
		translate.FieldDatetimeBegin: toDatetimeBegin,
		translate.FieldDatetimeEnd:   toDatetimeEnd,
		translate.FieldTrackingRaDec: toTrackingRaDec,
		translate.FieldInstrument:    toInstrument,
		translate.FieldTelescope:     toTelescope,
		translate.FieldDetectorName:  toDetectorName,
	},
}

func init() {
	translate.Register(spec)
}

// Spec returns the NeCam translation spec.  It is also registered with the
// translate package at init, so importing this package suffices to make
// NeCam headers selectable.
func Spec() *translate.Spec { return spec }

// toDatetimeBegin reads the compact DATE-OBS date, e.g. "20200101".
func toDatetimeBegin(t *translate.Translation) (interface{}, error) {
	s, err := t.Header().String("DATE-OBS")
	if err != nil {
		return nil, err
	}
	return translate.ParseCompactDate(s)
}

// toDatetimeEnd is begin plus the exposure duration, exactly.
func toDatetimeEnd(t *translate.Translation) (interface{}, error) {
	begin, err := t.TimeValue(translate.FieldDatetimeBegin)
	if err != nil {
		return nil, err
	}
	exp, err := t.DurationValue(translate.FieldExposureTime)
	if err != nil {
		return nil, err
	}
	return begin.Add(exp), nil
}

// toTrackingRaDec combines the RA2000 hour-angle and DEC2000 degree strings
// into one ICRS position.
func toTrackingRaDec(t *translate.Translation) (interface{}, error) {
	ras, err := t.Header().String("RA2000")
	if err != nil {
		return nil, err
	}
	decs, err := t.Header().String("DEC2000")
	if err != nil {
		return nil, err
	}
	ra, err := translate.ParseRA(ras)
	if err != nil {
		return nil, err
	}
	dec, err := translate.ParseDec(decs)
	if err != nil {
		return nil, err
	}
	return translate.NewSkyCoord(ra, dec), nil
}

func toInstrument(t *translate.Translation) (interface{}, error) {
	v, err := t.Header().String("INSTRUME")
	if err != nil {
		return nil, err
	}
	if v == SupportedInstrument {
		return Name, nil
	}
	// unreachable for headers accepted by CanTranslate
	return "Unknown", nil
}

func toTelescope(t *translate.Translation) (interface{}, error) {
	return t.Value(translate.FieldInstrument)
}

// toDetectorName formats the numeric detector id as a fixed-width
// two-digit name, 3 -> "03".
func toDetectorName(t *translate.Translation) (interface{}, error) {
	n, err := t.Header().Int("DETECTOR")
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%02d", n), nil
}
