package engine

import "camera-timeline/internal/models"

// AddSnapshotEvent places a point event on its tick. Groups already sitting on
// that tick or on the GroupedTicks-1 ticks before it (smaller indices) are
// drained into the new group, nearest first, and the event is appended last.
func (e *Engine) AddSnapshotEvent(w Window, items Items, event models.CameraEvent) {
	index := e.IndexFromTime(w, &event.Timestamp)

	var grouped []models.CameraEvent
	for i := 0; i < e.settings.GroupedTicks(); i++ {
		key := Key(e.TimeFromIndex(w, index-i))
		entry, exists := items[key]
		if !exists || len(entry.SnapshotEvents) == 0 {
			continue
		}
		grouped = append(grouped, entry.SnapshotEvents...)
		entry.SnapshotEvents = nil
		items[key] = entry
	}

	t := e.TimeFromIndex(w, index)
	entry := GetItem(t, items)
	entry.SnapshotEvents = append(grouped, event)
	items[Key(t)] = entry
}
