package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func nyc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestLocalToUTC_UsesOffsetInEffectBeforeTransition(t *testing.T) {
	loc := nyc(t)

	// 2025-03-08 is still EST (UTC-5).
	got, err := LocalToUTC("2025-03-08", "02:30", loc)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 8, 7, 30, 0, 0, time.UTC), got)
}

func TestLocalToUTC_UsesOffsetInEffectAfterTransition(t *testing.T) {
	loc := nyc(t)

	// 2025-03-10 is EDT (UTC-4).
	got, err := LocalToUTC("2025-03-10", "02:30", loc)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC), got)
}

func TestLocalToUTC_SkippedTimeIsNormalized(t *testing.T) {
	loc := nyc(t)

	// 02:30 on 2025-03-09 does not exist in New York; clocks jump from
	// 02:00 EST to 03:00 EDT. The normalized instant must carry an offset
	// that was actually in effect around the gap.
	got, err := LocalToUTC("2025-03-09", "02:30", loc)
	require.NoError(t, err)

	_, offset := got.In(loc).Zone()
	require.Contains(t, []int{-5 * 3600, -4 * 3600}, offset)
	// Normalization lands on 03:30 EDT = 07:30 UTC.
	require.Equal(t, time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC), got)
}

func TestLocalToUTC_RejectsMalformedInputs(t *testing.T) {
	loc := nyc(t)

	_, err := LocalToUTC("03/08/2025", "02:30", loc)
	require.Error(t, err)

	_, err = LocalToUTC("2025-03-08", "2:30pm", loc)
	require.Error(t, err)
}

func TestLocalToUTC_NilLocationFallsBackToLocal(t *testing.T) {
	got, err := LocalToUTC("2025-06-01", "12:00", nil)
	require.NoError(t, err)

	want := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local).UTC()
	require.Equal(t, want, got)
}
