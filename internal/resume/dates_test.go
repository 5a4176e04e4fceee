package resume

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month) *time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestFormatDate_RendersYearMonth(t *testing.T) {
	assert.Equal(t, "2020-01", FormatDate(date(2020, time.January)))
	assert.Equal(t, "1999-12", FormatDate(date(1999, time.December)))
}

func TestFormatDate_NilRendersEmpty(t *testing.T) {
	assert.Equal(t, "", FormatDate(nil))
}

func TestFormatDate_RoundTrips(t *testing.T) {
	formatted := FormatDate(date(2021, time.March))
	parsed, err := time.Parse("2006-01", formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, FormatDate(&parsed))
}

func TestFormatRange_StartAndEnd(t *testing.T) {
	got := FormatRange(date(2020, time.January), date(2022, time.June), false)
	assert.Equal(t, "2020-01 - 2022-06", got)
}

func TestFormatRange_OngoingIgnoresStaleEnd(t *testing.T) {
	got := FormatRange(date(2020, time.January), date(2022, time.June), true)
	assert.Equal(t, "2020-01 - Present", got)
}

func TestFormatRange_OngoingWithoutEnd(t *testing.T) {
	got := FormatRange(date(2020, time.January), nil, true)
	assert.Equal(t, "2020-01 - Present", got)
}

func TestFormatRange_StartOnly(t *testing.T) {
	got := FormatRange(date(2020, time.January), nil, false)
	assert.Equal(t, "2020-01", got)
}

func TestFormatRange_NoStartRendersEmpty(t *testing.T) {
	assert.Equal(t, "", FormatRange(nil, date(2022, time.June), false))
	assert.Equal(t, "", FormatRange(nil, nil, true))
}
