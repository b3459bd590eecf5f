// Public domain.

package translate_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necam-obs/ingest/fitshdr"
	"github.com/necam-obs/ingest/translate"
)

// makeTestSpec builds a minimal spec exercising all three maps.  derivedCalls
// counts derived invocations to verify memoization.
func makeTestSpec(derivedCalls *int) *translate.Spec {
	return &translate.Spec{
		Name:                "Test",
		SupportedInstrument: "TESTCAM",
		CanTranslate: func(h fitshdr.Header) bool {
			v, err := h.String("INSTRUME")
			return err == nil && v == "TESTCAM"
		},
		Const: map[translate.Field]interface{}{
			translate.FieldTemperature:      280.0,
			translate.FieldRelativeHumidity: nil,
		},
		Trivial: map[translate.Field]translate.Keyword{
			translate.FieldObject:       {Keyword: "OBJECT"},
			translate.FieldExposureTime: {Keyword: "EXPTIME", Unit: translate.Second},
		},
		Derived: map[translate.Field]translate.DerivedFunc{
			translate.FieldObservationID: func(t *translate.Translation) (interface{}, error) {
				*derivedCalls++
				return t.Header().String("RUN")
			},
		},
	}
}

func makeTestTranslation(t *testing.T, calls *int) *translate.Translation {
	t.Helper()
	h := fitshdr.Header{
		"INSTRUME": "TESTCAM",
		"OBJECT":   "M31",
		"EXPTIME":  30.0,
		"RUN":      7,
	}
	return makeTestSpec(calls).Translation(h)
}

func TestResolutionOrder(t *testing.T) {
	var calls int
	tr := makeTestTranslation(t, &calls)

	s, err := tr.StringValue(translate.FieldObject)
	require.NoError(t, err)
	assert.Equal(t, "M31", s)

	d, err := tr.DurationValue(translate.FieldExposureTime)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	f, err := tr.FloatValue(translate.FieldTemperature)
	require.NoError(t, err)
	assert.Equal(t, 280.0, f)

	id, err := tr.StringValue(translate.FieldObservationID)
	require.NoError(t, err)
	assert.Equal(t, "7", id)
}

func TestDerivedMemoized(t *testing.T) {
	var calls int
	tr := makeTestTranslation(t, &calls)

	for i := 0; i < 3; i++ {
		v, err := tr.Value(translate.FieldObservationID)
		require.NoError(t, err)
		assert.Equal(t, "7", v)
	}
	assert.Equal(t, 1, calls)
}

func TestNilConstResolvesToUnknown(t *testing.T) {
	var calls int
	tr := makeTestTranslation(t, &calls)

	f, err := tr.FloatValue(translate.FieldRelativeHumidity)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))

	s, err := tr.StringValue(translate.FieldRelativeHumidity)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestMissingKeywordPropagates(t *testing.T) {
	var calls int
	spec := makeTestSpec(&calls)
	tr := spec.Translation(fitshdr.Header{"INSTRUME": "TESTCAM"})

	_, err := tr.Value(translate.FieldObject)
	var ke fitshdr.KeywordError
	require.True(t, errors.As(err, &ke))
	assert.Equal(t, "OBJECT", ke.Keyword)
}

func TestUnknownField(t *testing.T) {
	var calls int
	tr := makeTestTranslation(t, &calls)

	_, err := tr.Value(translate.FieldDetectorName)
	var ue translate.UnknownFieldError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, translate.FieldDetectorName, ue.Field)
	assert.Equal(t, "Test", ue.Translator)
}

func TestSelect(t *testing.T) {
	var calls int
	translate.Register(makeTestSpec(&calls))

	spec, err := translate.Select(fitshdr.Header{"INSTRUME": "TESTCAM"})
	require.NoError(t, err)
	assert.Equal(t, "Test", spec.Name)

	_, err = translate.Select(fitshdr.Header{"INSTRUME": "OTHERCAM"})
	assert.ErrorIs(t, err, translate.ErrNoTranslator)

	_, err = translate.Select(fitshdr.Header{})
	assert.ErrorIs(t, err, translate.ErrNoTranslator)
}
