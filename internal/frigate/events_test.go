package frigate

import (
	"testing"

	"camera-timeline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiResponse = `[
  {
    "id": "1710496800.1-abc",
    "camera": "driveway",
    "label": "car",
    "sub_label": null,
    "top_score": 0.81,
    "start_time": 1710496800.1,
    "end_time": 1710496860.4,
    "has_clip": true,
    "has_snapshot": true
  },
  {
    "id": "1710496900.5-def",
    "camera": "doorbell",
    "label": "person",
    "sub_label": ["jane", 0.93],
    "data": {"score": 0.7, "top_score": 0.88},
    "start_time": 1710496900.5,
    "end_time": null,
    "has_clip": true,
    "has_snapshot": false
  }
]`

func TestParseEvents(t *testing.T) {
	apiEvents, err := ParseEvents([]byte(apiResponse))
	require.NoError(t, err)
	require.Len(t, apiEvents, 2)

	assert.Equal(t, 0.81, apiEvents[0].Score())
	assert.Equal(t, "", apiEvents[0].RecognizedName())
	assert.Equal(t, 0.88, apiEvents[1].Score())
	assert.Equal(t, "jane", apiEvents[1].RecognizedName())
	assert.Nil(t, apiEvents[1].EndTime)

	_, err = ParseEvents([]byte(`{"events": []}`))
	assert.Error(t, err)
}

func TestRecognizedName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"missing", ``, ""},
		{"null", `null`, ""},
		{"string", `"bob"`, "bob"},
		{"pair", `["alice", 0.9]`, "alice"},
		{"malformed", `[1, 2]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := APIEvent{SubLabel: []byte(tt.raw)}
			assert.Equal(t, tt.want, ae.RecognizedName())
		})
	}
}

func TestToCameraEvents(t *testing.T) {
	apiEvents, err := ParseEvents([]byte(apiResponse))
	require.NoError(t, err)

	events := ToCameraEvents(apiEvents)
	require.Len(t, events, 4)

	car := events[0]
	assert.Equal(t, int64(1), car.ID)
	assert.Equal(t, "1710496800.1-abc", car.SourceID)
	assert.Equal(t, models.EventObject, car.Type)
	assert.Equal(t, "driveway", car.CameraIdentifier)
	assert.Equal(t, 1710496800.1, car.Timestamp)
	assert.Equal(t, "/api/events/1710496800.1-abc/snapshot.jpg", car.SnapshotPath)

	clip := events[1]
	assert.Equal(t, models.EventRecording, clip.Type)
	assert.Equal(t, 1710496800.1, clip.StartTimestamp)
	require.NotNil(t, clip.EndTimestamp)
	assert.Equal(t, 1710496860.4, *clip.EndTimestamp)

	person := events[2]
	assert.Equal(t, models.EventObject, person.Type)
	assert.Equal(t, "", person.SnapshotPath)

	face := events[3]
	assert.Equal(t, int64(4), face.ID)
	assert.Equal(t, models.EventFaceRecognition, face.Type)
	assert.Equal(t, "jane", face.Label)
	assert.Equal(t, 0.88, face.Confidence)
}
