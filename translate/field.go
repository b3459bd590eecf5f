// Public domain.

// Package translate defines the observation-metadata schema and the
// translator contract instrument packages implement to fill it from raw
// FITS headers.
package translate

// Field names a property of the standardized observation metadata schema.
type Field string

const (
	FieldInstrument             Field = "instrument"
	FieldTelescope              Field = "telescope"
	FieldExposureID             Field = "exposure_id"
	FieldVisitID                Field = "visit_id"
	FieldObservationID          Field = "observation_id"
	FieldDetectorExposureID     Field = "detector_exposure_id"
	FieldDetectorNum            Field = "detector_num"
	FieldDetectorName           Field = "detector_name"
	FieldDetectorSerial         Field = "detector_serial"
	FieldDetectorGroup          Field = "detector_group"
	FieldPhysicalFilter         Field = "physical_filter"
	FieldObject                 Field = "object"
	FieldObservationType        Field = "observation_type"
	FieldScienceProgram         Field = "science_program"
	FieldExposureTime           Field = "exposure_time"
	FieldDarkTime               Field = "dark_time"
	FieldDatetimeBegin          Field = "datetime_begin"
	FieldDatetimeEnd            Field = "datetime_end"
	FieldTrackingRaDec          Field = "tracking_radec"
	FieldBoresightRotationAngle Field = "boresight_rotation_angle"
	FieldBoresightRotationCoord Field = "boresight_rotation_coord"
	FieldBoresightAirmass       Field = "boresight_airmass"
	FieldAltAzBegin             Field = "altaz_begin"
	FieldLocation               Field = "location"
	FieldTemperature            Field = "temperature"
	FieldPressure               Field = "pressure"
	FieldRelativeHumidity       Field = "relative_humidity"
)

// Schema lists every field of the observation metadata schema.  A complete
// translator resolves all of them, if only to a constant unknown.
var Schema = []Field{
	FieldInstrument,
	FieldTelescope,
	FieldExposureID,
	FieldVisitID,
	FieldObservationID,
	FieldDetectorExposureID,
	FieldDetectorNum,
	FieldDetectorName,
	FieldDetectorSerial,
	FieldDetectorGroup,
	FieldPhysicalFilter,
	FieldObject,
	FieldObservationType,
	FieldScienceProgram,
	FieldExposureTime,
	FieldDarkTime,
	FieldDatetimeBegin,
	FieldDatetimeEnd,
	FieldTrackingRaDec,
	FieldBoresightRotationAngle,
	FieldBoresightRotationCoord,
	FieldBoresightAirmass,
	FieldAltAzBegin,
	FieldLocation,
	FieldTemperature,
	FieldPressure,
	FieldRelativeHumidity,
}
