package engine

import (
	"time"

	"camera-timeline/internal/models"

	"github.com/google/uuid"
)

// Snapshot is a built timeline plus the legend data the UI shows next to it
type Snapshot struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Window      Window    `json:"window"`
	ItemCount   int       `json:"item_count"`
	Items       Items     `json:"items"`
	Subtypes    []Summary `json:"subtypes"`
	Labels      []Summary `json:"labels"`
}

type Summary struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

func (e *Engine) Snapshot(w Window, events []models.CameraEvent, timespans []models.AvailableTimespan) (*Snapshot, error) {
	count, err := e.ItemCount(w)
	if err != nil {
		return nil, err
	}

	items, err := e.Build(w, events, timespans)
	if err != nil {
		return nil, err
	}

	snapshots := FilterSnapshotEvents(events)
	var objects []models.CameraEvent
	for _, evt := range snapshots {
		if evt.Type == models.EventObject {
			objects = append(objects, evt)
		}
	}

	return &Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: e.clock.Now().In(e.location),
		Window:      w,
		ItemCount:   count,
		Items:       items,
		Subtypes:    summarize(ClassifyBySubtype(snapshots)),
		Labels:      summarize(ClassifyByLabel(objects)),
	}, nil
}

func summarize(groups []Group) []Summary {
	out := make([]Summary, 0, len(groups))
	for _, g := range groups {
		out = append(out, Summary{Key: g.Key, Count: len(g.Events)})
	}
	return out
}
