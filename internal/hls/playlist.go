// Package hls reads HLS media playlists into fragments and derives the spans
// of available media the timeline draws.
package hls

import (
	"fmt"
	"io"
	"time"

	"camera-timeline/internal/models"

	"github.com/grafov/m3u8"
	"github.com/spf13/afero"
)

// Fragment is one media segment of a playlist. Start is the zero time when
// the playlist gives no program date time for it.
type Fragment struct {
	URI           string
	Start         time.Time
	Duration      float64 // seconds
	Discontinuity bool
}

func (f Fragment) End() time.Time {
	return f.Start.Add(time.Duration(f.Duration * float64(time.Second)))
}

func (f Fragment) Timed() bool {
	return !f.Start.IsZero()
}

// ParsePlaylist decodes a media playlist. Segments without their own
// EXT-X-PROGRAM-DATE-TIME continue from the end of the previous segment
// unless a discontinuity separates them.
func ParsePlaylist(r io.Reader) ([]Fragment, error) {
	playlist, listType, err := m3u8.DecodeFrom(r, false)
	if err != nil {
		return nil, fmt.Errorf("failed to decode playlist: %w", err)
	}
	if listType != m3u8.MEDIA {
		return nil, fmt.Errorf("expected a media playlist, got a master playlist")
	}
	media := playlist.(*m3u8.MediaPlaylist)

	var fragments []Fragment
	for _, seg := range media.Segments {
		if seg == nil {
			break
		}

		frag := Fragment{
			URI:           seg.URI,
			Start:         seg.ProgramDateTime,
			Duration:      seg.Duration,
			Discontinuity: seg.Discontinuity,
		}
		if !frag.Timed() && !frag.Discontinuity && len(fragments) > 0 {
			if prev := fragments[len(fragments)-1]; prev.Timed() {
				frag.Start = prev.End()
			}
		}
		fragments = append(fragments, frag)
	}

	return fragments, nil
}

func LoadPlaylist(fs afero.Fs, path string) ([]Fragment, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}
	defer f.Close()

	return ParsePlaylist(f)
}

// FindFragmentByTimestamp returns the fragment playing at ts, or the first one
// starting after it.
func FindFragmentByTimestamp(fragments []Fragment, ts time.Time) *Fragment {
	for i := range fragments {
		frag := &fragments[i]
		if !frag.Timed() {
			continue
		}
		if ts.Before(frag.Start) || !ts.After(frag.End()) {
			return frag
		}
	}
	return nil
}

// Timespans joins consecutive timed fragments into available media spans. A
// discontinuity or a gap longer than maxGap seconds starts a new span.
func Timespans(fragments []Fragment, maxGap float64) []models.AvailableTimespan {
	var spans []models.AvailableTimespan
	var current *models.AvailableTimespan

	for _, frag := range fragments {
		if !frag.Timed() {
			continue
		}
		start := seconds(frag.Start)
		end := seconds(frag.End())

		if current != nil && !frag.Discontinuity && start-current.End <= maxGap && start >= current.Start {
			if end > current.End {
				current.End = end
			}
			current.Duration = current.End - current.Start
			continue
		}

		spans = append(spans, models.AvailableTimespan{Start: start, End: end, Duration: end - start})
		current = &spans[len(spans)-1]
	}

	return spans
}

func seconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}
