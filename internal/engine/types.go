package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"camera-timeline/internal/models"
)

var (
	ErrInvalidInterval   = errors.New("invalid interval")
	ErrDegenerateWindow  = errors.New("degenerate window")
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidSettings   = errors.New("invalid settings")
)

// Window bounds the materialized part of the timeline. Start is the most
// recent timestamp, index 0 sits at Start and indices grow towards End.
type Window struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Variant tells the renderer where a tick sits inside an interval run
type Variant string

const (
	VariantNone   Variant = ""
	VariantFirst  Variant = "first"
	VariantMiddle Variant = "middle"
	VariantLast   Variant = "last"
	VariantRound  Variant = "round"
)

func (v Variant) MarshalJSON() ([]byte, error) {
	if v == VariantNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(v))
}

func (v *Variant) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = VariantNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Variant(s)
	return nil
}

// Slot names the Entry field an interval payload is stored in
type Slot string

const (
	SlotTimedEvent        Slot = "timedEvent"
	SlotAvailableTimespan Slot = "availableTimespan"
)

// Entry is one tick of the timeline
type Entry struct {
	Time                int64                     `json:"time"`
	TimedEvent          *models.CameraEvent       `json:"timedEvent"`
	SnapshotEvents      []models.CameraEvent      `json:"snapshotEvents"`
	AvailableTimespan   *models.AvailableTimespan `json:"availableTimespan"`
	ActivityLineVariant Variant                   `json:"activityLineVariant"`
}

// Items holds the materialized ticks keyed by Key(time)
type Items map[string]Entry

// Key is the map key for a tick timestamp
func Key(t int64) string {
	return strconv.FormatInt(t, 10)
}

// Payload is the value an interval is rasterized with. Exactly one field is set.
type Payload struct {
	TimedEvent        *models.CameraEvent
	AvailableTimespan *models.AvailableTimespan
}

func TimedEventPayload(e *models.CameraEvent) Payload {
	return Payload{TimedEvent: e}
}

func TimespanPayload(s *models.AvailableTimespan) Payload {
	return Payload{AvailableTimespan: s}
}

func (p Payload) Slot() Slot {
	if p.TimedEvent != nil {
		return SlotTimedEvent
	}
	return SlotAvailableTimespan
}

func (p Payload) apply(entry *Entry) {
	switch p.Slot() {
	case SlotTimedEvent:
		entry.TimedEvent = p.TimedEvent
	case SlotAvailableTimespan:
		entry.AvailableTimespan = p.AvailableTimespan
	}
}

// Group is one bucket of a classification, in first-seen order
type Group struct {
	Key    string               `json:"key"`
	Events []models.CameraEvent `json:"events"`
}

// Settings controls tick resolution and snapshot collision sizing
type Settings struct {
	Scale      int64 // seconds per tick
	TickHeight int   // px
	IconHeight int   // px
	ExtraTicks int64 // empty ticks kept ahead of now
}

func DefaultSettings() Settings {
	return Settings{
		Scale:      60,
		TickHeight: 8,
		IconHeight: 20,
		ExtraTicks: 10,
	}
}

// GroupedTicks is the collision radius of snapshot events, ceil(IconHeight/TickHeight)
func (s Settings) GroupedTicks() int {
	return (s.IconHeight + s.TickHeight - 1) / s.TickHeight
}

func (s Settings) Validate() error {
	switch {
	case s.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidSettings, s.Scale)
	case s.TickHeight <= 0:
		return fmt.Errorf("%w: tick height must be positive, got %d", ErrInvalidSettings, s.TickHeight)
	case s.IconHeight <= 0:
		return fmt.Errorf("%w: icon height must be positive, got %d", ErrInvalidSettings, s.IconHeight)
	case s.ExtraTicks < 0:
		return fmt.Errorf("%w: extra ticks must not be negative, got %d", ErrInvalidSettings, s.ExtraTicks)
	}
	return nil
}
