// Public domain.

package fitshdr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necam-obs/ingest/fitshdr"
)

func makeTestHeader() fitshdr.Header {
	return fitshdr.Header{
		"INSTRUME": "NECAM",
		"RUN":      42,
		"EXPTIME":  30.5,
		"DETECTOR": 3,
		"SIMPLE":   true,
		"RUN-ID":   "000042",
	}
}

func TestHeaderString(t *testing.T) {
	h := makeTestHeader()

	s, err := h.String("INSTRUME")
	require.NoError(t, err)
	assert.Equal(t, "NECAM", s)

	// numerics format rather than fail
	s, err = h.String("RUN")
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = h.String("EXPTIME")
	require.NoError(t, err)
	assert.Equal(t, "30.5", s)
}

func TestHeaderInt(t *testing.T) {
	h := makeTestHeader()

	n, err := h.Int("DETECTOR")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// integer strings accepted
	n, err = h.Int("RUN-ID")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	// floats are not silently truncated
	_, err = h.Int("EXPTIME")
	var te fitshdr.TypeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "EXPTIME", te.Keyword)
}

func TestHeaderFloat(t *testing.T) {
	h := makeTestHeader()

	f, err := h.Float("EXPTIME")
	require.NoError(t, err)
	assert.Equal(t, 30.5, f)

	f, err = h.Float("RUN")
	require.NoError(t, err)
	assert.Equal(t, 42.0, f)
}

func TestHeaderMissingKeyword(t *testing.T) {
	h := makeTestHeader()
	assert.False(t, h.Has("FILTER"))

	_, err := h.String("FILTER")
	var ke fitshdr.KeywordError
	require.True(t, errors.As(err, &ke))
	assert.Equal(t, "FILTER", ke.Keyword)

	_, err = h.Int("FILTER")
	assert.True(t, errors.As(err, &ke))
	_, err = h.Float("FILTER")
	assert.True(t, errors.As(err, &ke))
}
