package engine

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// WindowStart is where a timeline for date begins. Today (or no date) is
// anchored to the clock with ExtraTicks of headroom, past days start at the
// following midnight.
func (e *Engine) WindowStart(date *time.Time) int64 {
	current := e.clock.Now().In(e.location)
	if date == nil || e.sameDay(*date, current) {
		return e.RoundToScale(current.Unix() + e.settings.Scale*e.settings.ExtraTicks)
	}
	return now.With(date.In(e.location).AddDate(0, 0, 1)).BeginningOfDay().Unix()
}

// WindowEnd is midnight of date, or of today when date is nil
func (e *Engine) WindowEnd(date *time.Time) int64 {
	day := e.clock.Now()
	if date != nil {
		day = *date
	}
	return now.With(day.In(e.location)).BeginningOfDay().Unix()
}

func (e *Engine) NewWindow(date *time.Time) Window {
	return Window{
		Start: e.WindowStart(date),
		End:   e.WindowEnd(date),
	}
}

// ParseDate reads a YYYY-MM-DD day in the engine's location. An empty string
// yields nil, which stands for today.
func (e *Engine) ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(time.DateOnly, s, e.location)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return &day, nil
}

func (e *Engine) sameDay(a, b time.Time) bool {
	return now.With(a.In(e.location)).BeginningOfDay().Equal(now.With(b.In(e.location)).BeginningOfDay())
}
