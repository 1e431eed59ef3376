package engine

import (
	"testing"

	"camera-timeline/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGetItem(t *testing.T) {
	motion := timed(1, models.EventMotion, 0, 60)
	items := Items{"60": {Time: 60, TimedEvent: &motion, ActivityLineVariant: VariantRound}}

	assert.Equal(t, &motion, GetItem(60, items).TimedEvent)

	empty := GetItem(120, items)
	assert.Equal(t, Entry{Time: 120}, empty)
	assert.Nil(t, empty.TimedEvent)
	assert.Nil(t, empty.SnapshotEvents)
	assert.Nil(t, empty.AvailableTimespan)
	assert.Equal(t, VariantNone, empty.ActivityLineVariant)
	assert.Len(t, items, 1, "lookup must not materialize entries")
}

func TestClassifyByLabel(t *testing.T) {
	events := []models.CameraEvent{
		snapshot(1, models.EventObject, 10, "car"),
		snapshot(2, models.EventObject, 20, "person"),
		snapshot(3, models.EventObject, 30, "truck"),
		snapshot(4, models.EventObject, 40, "vehicle"),
		snapshot(5, models.EventObject, 50, "dog"),
		snapshot(6, models.EventObject, 60, "person"),
	}

	groups := ClassifyByLabel(events)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	assert.Equal(t, []string{"vehicle", "person", "dog"}, keys)
	assert.Equal(t, []int64{1, 3, 4}, ids(groups[0].Events))
	assert.Equal(t, []int64{2, 6}, ids(groups[1].Events))
	assert.Equal(t, []int64{5}, ids(groups[2].Events))

	assert.Empty(t, ClassifyByLabel(nil))
}

func TestClassifyBySubtype(t *testing.T) {
	events := []models.CameraEvent{
		snapshot(1, models.EventFaceRecognition, 10, "jane"),
		snapshot(2, models.EventObject, 20, "person"),
		snapshot(3, models.EventFaceRecognition, 30, "unknown"),
	}

	groups := ClassifyBySubtype(events)

	assert.Len(t, groups, 2)
	assert.Equal(t, "face_recognition", groups[0].Key)
	assert.Equal(t, []int64{1, 3}, ids(groups[0].Events))
	assert.Equal(t, "object", groups[1].Key)
	assert.Equal(t, []int64{2}, ids(groups[1].Events))

	assert.Empty(t, ClassifyBySubtype(nil))
}

func TestPercentageFromConfidence(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.5, 50},
		{0.874, 87},
		{0.875, 88},
		{1, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PercentageFromConfidence(tt.in), "confidence %v", tt.in)
	}
}

func TestFilterSnapshotEvents(t *testing.T) {
	events := []models.CameraEvent{
		timed(1, models.EventMotion, 0, 60),
		snapshot(2, models.EventObject, 10, "person"),
		timed(3, models.EventRecording, 0, 60),
		snapshot(4, models.EventFaceRecognition, 20, "jane"),
	}

	assert.Equal(t, []int64{2, 4}, ids(FilterSnapshotEvents(events)))
	assert.Empty(t, FilterSnapshotEvents(nil))
}
