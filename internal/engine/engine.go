package engine

import (
	"fmt"
	"slices"
	"time"

	"camera-timeline/internal/logger"
	"camera-timeline/internal/models"

	"github.com/benbjohnson/clock"
)

type Engine struct {
	settings Settings
	clock    clock.Clock
	location *time.Location
	log      *logger.Logger
}

type EngineOption func(*Engine)

func WithSettings(s Settings) EngineOption {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithClock replaces the wall clock used for in-progress events and "today" windows
func WithClock(c clock.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLocation sets the time zone calendar days are computed in
func WithLocation(loc *time.Location) EngineOption {
	return func(e *Engine) {
		e.location = loc
	}
}

func NewEngine(opts ...EngineOption) (*Engine, error) {
	engine := &Engine{
		settings: DefaultSettings(),
		clock:    clock.New(),
		location: time.Local,
		log:      logger.New("engine"),
	}

	for _, opt := range opts {
		opt(engine)
	}

	if err := engine.settings.Validate(); err != nil {
		return nil, err
	}
	if engine.location == nil {
		engine.location = time.Local
	}

	return engine, nil
}

func (e *Engine) Settings() Settings {
	return e.settings
}

// Build rasterizes every timespan and timed event and groups every snapshot
// event of the input into a fresh Items map. Events are processed in the
// order given; snapshot grouping only collapses runs that arrive newest first
// (see SortNewestFirst).
func (e *Engine) Build(w Window, events []models.CameraEvent, timespans []models.AvailableTimespan) (Items, error) {
	items := make(Items)

	for i := range timespans {
		span := timespans[i]
		indexEnd := e.IndexFromTime(w, &span.Start)
		indexStart := e.IndexFromTime(w, &span.End)

		partial, err := e.Rasterize(w, indexStart, indexEnd, TimespanPayload(&span))
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize timespan %.0f-%.0f: %w", span.Start, span.End, err)
		}
		mergeInterval(items, partial, SlotAvailableTimespan)
	}

	for _, evt := range timedEvents(events) {
		indexEnd := e.IndexFromTime(w, &evt.StartTimestamp)
		indexStart := e.IndexFromTime(w, evt.EndTimestamp)

		partial, err := e.Rasterize(w, indexStart, indexEnd, TimedEventPayload(&evt))
		if err != nil {
			return nil, fmt.Errorf("failed to rasterize %s event %d: %w", evt.Type, evt.ID, err)
		}
		mergeInterval(items, partial, SlotTimedEvent)
	}

	// Faces run in their own pass after all objects
	snapshots := 0
	for _, pass := range []models.EventType{models.EventObject, models.EventFaceRecognition} {
		for _, evt := range events {
			if evt.Type != pass {
				continue
			}
			e.AddSnapshotEvent(w, items, evt)
			snapshots++
		}
	}

	e.log.Debugf("Built %d entries for window %d-%d (%d events, %d snapshots, %d timespans)",
		len(items), w.Start, w.End, len(events), snapshots, len(timespans))

	return items, nil
}

// timedEvents returns a copy of the motion and recording events with
// recordings moved last, keeping relative order otherwise.
func timedEvents(events []models.CameraEvent) []models.CameraEvent {
	out := make([]models.CameraEvent, 0, len(events))
	for _, evt := range events {
		if evt.IsTimed() {
			out = append(out, evt)
		}
	}

	rank := func(evt models.CameraEvent) int {
		if evt.Type == models.EventRecording {
			return 1
		}
		return 0
	}
	slices.SortStableFunc(out, func(a, b models.CameraEvent) int {
		return rank(a) - rank(b)
	})

	return out
}

// mergeInterval folds a rasterized run into items. The payload slot and the
// variant are overwritten, every other field of an existing entry is kept.
func mergeInterval(items Items, partial Items, slot Slot) {
	for key, fresh := range partial {
		current, exists := items[key]
		if !exists {
			items[key] = fresh
			continue
		}

		switch slot {
		case SlotTimedEvent:
			current.TimedEvent = fresh.TimedEvent
		case SlotAvailableTimespan:
			current.AvailableTimespan = fresh.AvailableTimespan
		}
		current.ActivityLineVariant = fresh.ActivityLineVariant
		items[key] = current
	}
}

// SortNewestFirst returns a copy of events ordered by descending timestamp.
// Ties keep their input order.
func SortNewestFirst(events []models.CameraEvent) []models.CameraEvent {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b models.CameraEvent) int {
		switch {
		case a.Time() > b.Time():
			return -1
		case a.Time() < b.Time():
			return 1
		}
		return 0
	})
	return out
}
