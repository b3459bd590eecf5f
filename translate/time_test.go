// Public domain.

package translate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/necam-obs/ingest/translate"
)

func TestParseCompactDate(t *testing.T) {
	tm, err := translate.ParseCompactDate("20200101")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01", tm.ISODate())
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), tm.UTC())
	assert.Equal(t, time.UTC, tm.UTC().Location())
}

func TestParseCompactDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2020010", "202001011", "2020x101", "20201301"} {
		_, err := translate.ParseCompactDate(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestTimeAdd(t *testing.T) {
	tm, err := translate.ParseCompactDate("20200101")
	require.NoError(t, err)
	end := tm.Add(30 * time.Second)
	assert.Equal(t, "2020-01-01 00:00:30.000", end.ISO())
	assert.Equal(t, 30*time.Second, end.UTC().Sub(tm.UTC()))
}

func TestTimeMJD(t *testing.T) {
	// 2000-01-01 12:00:00 UTC is JD 2451545.0 exactly.
	tm := translate.TimeFromTime(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.InDelta(t, 2451545.0, tm.JD(), 1e-9)
	assert.InDelta(t, 51544.5, tm.MJD(), 1e-9)
}
