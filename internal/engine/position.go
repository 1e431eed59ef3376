package engine

import (
	"fmt"
	"time"
)

// DateAtPosition converts a cursor offset within a rendered timeline of the
// given height into a time. The first and last ticks have half a tick of
// margin around them.
func (e *Engine) DateAtPosition(w Window, position, height float64) (time.Time, error) {
	if height <= 0 {
		return time.Time{}, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidDimensions, height)
	}
	percentage := position / height

	halfTickMs := float64(e.settings.Scale*1000) / 2
	start := float64(w.Start*1000) + halfTickMs
	end := float64(w.End*1000) - halfTickMs

	ms := start + percentage*(end-start)
	return time.UnixMilli(int64(ms)).In(e.location), nil
}

// YPosition is the offset of requested on a timeline of height px spanning
// start..end
func YPosition(start, end, requested, height float64) (float64, error) {
	total := end - start
	if total == 0 {
		return 0, fmt.Errorf("%w: start and end are both %v", ErrDegenerateWindow, start)
	}
	return (requested - start) / total * height, nil
}

// CameraHeight scales a camera's height to width, keeping its aspect ratio
func CameraHeight(cameraWidth, cameraHeight, width float64) (float64, error) {
	if cameraWidth <= 0 {
		return 0, fmt.Errorf("%w: camera width must be positive, got %v", ErrInvalidDimensions, cameraWidth)
	}
	return width * cameraHeight / cameraWidth, nil
}
