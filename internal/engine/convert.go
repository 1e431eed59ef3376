package engine

import (
	"fmt"
	"math"
)

func (e *Engine) TimeFromIndex(w Window, index int) int64 {
	return w.Start - int64(index)*e.settings.Scale
}

// IndexFromTime maps a timestamp to the nearest tick, halves rounding away
// from zero. A nil timestamp means now.
func (e *Engine) IndexFromTime(w Window, timestamp *float64) int {
	var ts float64
	if timestamp != nil {
		ts = *timestamp
	} else {
		ts = float64(e.clock.Now().Unix())
	}
	return int(math.Round((float64(w.Start) - ts) / float64(e.settings.Scale)))
}

// RoundToScale returns the smallest multiple of the scale that is >= n
func (e *Engine) RoundToScale(n int64) int64 {
	scale := e.settings.Scale
	q := n / scale
	if n%scale != 0 && n > 0 {
		q++
	}
	return q * scale
}

// ItemCount is the number of ticks in w, both ends included. A window that is
// not aligned to the scale is truncated.
func (e *Engine) ItemCount(w Window) (int, error) {
	if w.Start < w.End {
		return 0, fmt.Errorf("%w: start %d is before end %d", ErrDegenerateWindow, w.Start, w.End)
	}
	return int((w.Start-w.End)/e.settings.Scale) + 1, nil
}
