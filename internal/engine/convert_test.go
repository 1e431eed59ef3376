package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexFromTime_RoundTrip(t *testing.T) {
	eng, _ := newTestEngine(t, time.Unix(0, 0))
	w := Window{Start: 1710504660, End: 1710460800}

	for i := -20; i <= 1500; i++ {
		ts := float64(eng.TimeFromIndex(w, i))
		if got := eng.IndexFromTime(w, &ts); got != i {
			t.Fatalf("IndexFromTime(TimeFromIndex(%d)) = %d", i, got)
		}
	}
}

func TestIndexFromTime(t *testing.T) {
	eng, _ := newTestEngine(t, time.Unix(150, 0))
	w := Window{Start: 90, End: 0}

	tests := []struct {
		name string
		ts   *float64
		want int
	}{
		{"exact tick", ptr(30), 1},
		{"below half", ptr(61), 0},
		{"half rounds up", ptr(0), 2},
		{"negative half rounds away from zero", ptr(180), -2},
		{"nil is now", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eng.IndexFromTime(w, tt.ts))
		})
	}
}

func TestRoundToScale(t *testing.T) {
	eng, _ := newTestEngine(t, time.Unix(0, 0))

	tests := []struct {
		in, want int64
	}{
		{119, 120},
		{120, 120},
		{0, 0},
		{1, 60},
		{-59, 0},
		{-60, -60},
		{1710504630, 1710504660},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, eng.RoundToScale(tt.in), "RoundToScale(%d)", tt.in)
	}
}

func TestItemCount(t *testing.T) {
	eng, _ := newTestEngine(t, time.Unix(0, 0))

	n, err := eng.ItemCount(Window{Start: 1710115200, End: 1710028800})
	require.NoError(t, err)
	assert.Equal(t, 1441, n)

	n, err = eng.ItemCount(Window{Start: 600, End: 600})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = eng.ItemCount(Window{Start: 0, End: 600})
	assert.True(t, errors.Is(err, ErrDegenerateWindow))
}

func TestWindowBoundaries(t *testing.T) {
	// 2024-03-15 12:00:30 UTC
	at := time.Date(2024, 3, 15, 12, 0, 30, 0, time.UTC)
	eng, _ := newTestEngine(t, at)

	today := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	past := time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      *time.Time
		wantStart int64
		wantEnd   int64
		wantCount int
	}{
		{"no date", nil, 1710504660, 1710460800, 732},
		{"today", &today, 1710504660, 1710460800, 732},
		{"past day", &past, 1710115200, 1710028800, 1441},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := eng.NewWindow(tt.date)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)

			n, err := eng.ItemCount(w)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, n)
		})
	}
}

func TestWindowBoundaries_Location(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	eng, _ := newTestEngine(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), WithLocation(zone))

	day, err := eng.ParseDate("2024-03-10")
	require.NoError(t, err)

	assert.Equal(t, int64(1710021600), eng.WindowEnd(day))
	assert.Equal(t, int64(1710021600+86400), eng.WindowStart(day))
}

func TestParseDate(t *testing.T) {
	eng, _ := newTestEngine(t, time.Unix(0, 0))

	day, err := eng.ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, day)

	_, err = eng.ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestDateAtPosition(t *testing.T) {
	eng, _ := newTestEngine(t, time.Unix(0, 0))
	w := Window{Start: 3600, End: 0}

	got, err := eng.DateAtPosition(w, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(3630000), got.UnixMilli())

	got, err = eng.DateAtPosition(w, 50, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(1800000), got.UnixMilli())

	got, err = eng.DateAtPosition(w, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(-30000), got.UnixMilli())

	_, err = eng.DateAtPosition(w, 10, 0)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}

func TestYPosition(t *testing.T) {
	y, err := YPosition(0, 100, 25, 400)
	require.NoError(t, err)
	assert.Equal(t, 100.0, y)

	_, err = YPosition(50, 50, 50, 400)
	assert.True(t, errors.Is(err, ErrDegenerateWindow))
}

func TestCameraHeight(t *testing.T) {
	h, err := CameraHeight(1920, 1080, 640)
	require.NoError(t, err)
	assert.Equal(t, 360.0, h)

	_, err = CameraHeight(0, 1080, 640)
	assert.True(t, errors.Is(err, ErrInvalidDimensions))
}
