// Public domain.

package translate

import (
	"time"

	"github.com/pkg/errors"
	"github.com/soniakeys/unit"
)

// ObservationInfo is the pipeline-standard observation metadata record, the
// fully-typed resolution of every schema field for one header.
//
// Float quantities an instrument cannot supply are NaN; pointer-typed
// quantities are nil.
type ObservationInfo struct {
	Instrument         string
	Telescope          string
	ExposureID         int
	VisitID            int
	DetectorExposureID int
	ObservationID      string

	DetectorNum    int
	DetectorName   string
	DetectorSerial string
	DetectorGroup  string

	PhysicalFilter  string
	Object          string
	ObservationType string
	ScienceProgram  string

	ExposureTime  time.Duration
	DarkTime      time.Duration
	DatetimeBegin Time
	DatetimeEnd   Time

	TrackingRaDec          *SkyCoord
	BoresightRotationAngle unit.Angle
	BoresightRotationCoord string
	BoresightAirmass       float64
	AltAzBegin             *AltAz
	Location               *Location

	Temperature      float64 // kelvins
	Pressure         float64 // hectopascals
	RelativeHumidity float64
}

// ObservationInfo resolves the whole schema.  The first field that fails
// aborts the translation; the host is expected to reject the file.
func (t *Translation) ObservationInfo() (*ObservationInfo, error) {
	info := new(ObservationInfo)
	var firstErr error

	fail := func(f Field, err error) {
		if firstErr == nil && err != nil {
			firstErr = errors.Wrapf(err, "field %s", f)
		}
	}
	str := func(f Field) string {
		v, err := t.StringValue(f)
		fail(f, err)
		return v
	}
	num := func(f Field) int {
		v, err := t.IntValue(f)
		fail(f, err)
		return v
	}
	flt := func(f Field) float64 {
		v, err := t.FloatValue(f)
		fail(f, err)
		return v
	}
	dur := func(f Field) time.Duration {
		v, err := t.DurationValue(f)
		fail(f, err)
		return v
	}
	tim := func(f Field) Time {
		v, err := t.TimeValue(f)
		fail(f, err)
		return v
	}
	ang := func(f Field) unit.Angle {
		v, err := t.AngleValue(f)
		fail(f, err)
		return v
	}

	info.Instrument = str(FieldInstrument)
	info.Telescope = str(FieldTelescope)
	info.ExposureID = num(FieldExposureID)
	info.VisitID = num(FieldVisitID)
	info.DetectorExposureID = num(FieldDetectorExposureID)
	info.ObservationID = str(FieldObservationID)
	info.DetectorNum = num(FieldDetectorNum)
	info.DetectorName = str(FieldDetectorName)
	info.DetectorSerial = str(FieldDetectorSerial)
	info.DetectorGroup = str(FieldDetectorGroup)
	info.PhysicalFilter = str(FieldPhysicalFilter)
	info.Object = str(FieldObject)
	info.ObservationType = str(FieldObservationType)
	info.ScienceProgram = str(FieldScienceProgram)
	info.ExposureTime = dur(FieldExposureTime)
	info.DarkTime = dur(FieldDarkTime)
	info.DatetimeBegin = tim(FieldDatetimeBegin)
	info.DatetimeEnd = tim(FieldDatetimeEnd)
	info.BoresightRotationAngle = ang(FieldBoresightRotationAngle)
	info.BoresightRotationCoord = str(FieldBoresightRotationCoord)
	info.BoresightAirmass = flt(FieldBoresightAirmass)
	info.Temperature = flt(FieldTemperature)
	info.Pressure = flt(FieldPressure)
	info.RelativeHumidity = flt(FieldRelativeHumidity)

	if c, err := t.SkyCoordValue(FieldTrackingRaDec); err != nil {
		fail(FieldTrackingRaDec, err)
	} else {
		info.TrackingRaDec = c
	}
	if v, err := t.Value(FieldAltAzBegin); err != nil {
		fail(FieldAltAzBegin, err)
	} else if v != nil {
		aa, ok := v.(*AltAz)
		if !ok {
			fail(FieldAltAzBegin, errors.Errorf("has %T value, want altaz", v))
		}
		info.AltAzBegin = aa
	}
	if v, err := t.Value(FieldLocation); err != nil {
		fail(FieldLocation, err)
	} else if v != nil {
		loc, ok := v.(*Location)
		if !ok {
			fail(FieldLocation, errors.Errorf("has %T value, want location", v))
		}
		info.Location = loc
	}

	if firstErr != nil {
		return nil, errors.Wrapf(firstErr, "unable to translate %s header", t.spec.Name)
	}
	return info, nil
}
