package engine

import (
	"math"

	"camera-timeline/internal/models"
)

// GetItem returns the entry stored for t, or an empty one
func GetItem(t int64, items Items) Entry {
	if entry, ok := items[Key(t)]; ok {
		return entry
	}
	return Entry{Time: t}
}

func ClassifyBySubtype(events []models.CameraEvent) []Group {
	return groupBy(events, func(evt models.CameraEvent) string {
		return string(evt.Type)
	})
}

func ClassifyByLabel(objectEvents []models.CameraEvent) []Group {
	return groupBy(objectEvents, func(evt models.CameraEvent) string {
		return NormalizeLabel(evt.Label)
	})
}

// NormalizeLabel folds the vehicle labels into one
func NormalizeLabel(label string) string {
	switch label {
	case "car", "truck", "vehicle":
		return "vehicle"
	}
	return label
}

func groupBy(events []models.CameraEvent, keyOf func(models.CameraEvent) string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, evt := range events {
		key := keyOf(evt)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Events = append(groups[i].Events, evt)
	}

	return groups
}

func PercentageFromConfidence(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// FilterSnapshotEvents keeps object and face recognition events
func FilterSnapshotEvents(events []models.CameraEvent) []models.CameraEvent {
	var out []models.CameraEvent
	for _, evt := range events {
		if evt.IsSnapshot() {
			out = append(out, evt)
		}
	}
	return out
}
