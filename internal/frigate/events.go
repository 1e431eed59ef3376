package frigate

import (
	"encoding/json"
	"fmt"

	"camera-timeline/internal/models"
)

// APIEvent reflects an event record of Frigate's /api/events response
type APIEvent struct {
	ID          string          `json:"id"`
	Camera      string          `json:"camera"`
	Label       string          `json:"label"`
	SubLabel    json.RawMessage `json:"sub_label"` // "name" or ["name", score]
	TopScore    *float64        `json:"top_score"`
	Data        APIEventData    `json:"data"`
	StartTime   float64         `json:"start_time"`
	EndTime     *float64        `json:"end_time"` // Pointer to handle null
	HasClip     bool            `json:"has_clip"`
	HasSnapshot bool            `json:"has_snapshot"`
}

type APIEventData struct {
	Score    float64 `json:"score"`
	TopScore float64 `json:"top_score"`
}

func ParseEvents(data []byte) ([]APIEvent, error) {
	var apiEvents []APIEvent
	if err := json.Unmarshal(data, &apiEvents); err != nil {
		return nil, fmt.Errorf("failed to decode frigate events: %w", err)
	}
	return apiEvents, nil
}

// Score prefers the legacy top_score field over the newer data block
func (ae APIEvent) Score() float64 {
	if ae.TopScore != nil {
		return *ae.TopScore
	}
	if ae.Data.TopScore > 0 {
		return ae.Data.TopScore
	}
	return ae.Data.Score
}

// RecognizedName returns the sub label of a person event, if any
func (ae APIEvent) RecognizedName() string {
	if len(ae.SubLabel) == 0 || string(ae.SubLabel) == "null" {
		return ""
	}

	var name string
	if err := json.Unmarshal(ae.SubLabel, &name); err == nil {
		return name
	}

	var pair []interface{}
	if err := json.Unmarshal(ae.SubLabel, &pair); err == nil && len(pair) > 0 {
		if s, ok := pair[0].(string); ok {
			return s
		}
	}
	return ""
}

// ToCameraEvents converts Frigate events into timeline events. Every Frigate
// event is an object detection at its start time; a recognized person also
// yields a face recognition event and a finished event with a clip yields a
// recording spanning it. IDs are assigned in order starting at 1.
func ToCameraEvents(apiEvents []APIEvent) []models.CameraEvent {
	var events []models.CameraEvent
	var nextID int64 = 1
	add := func(evt models.CameraEvent, ae APIEvent) {
		evt.ID = nextID
		evt.SourceID = ae.ID
		evt.CameraIdentifier = ae.Camera
		nextID++
		events = append(events, evt)
	}

	for _, ae := range apiEvents {
		snapshotPath := ""
		if ae.HasSnapshot {
			snapshotPath = fmt.Sprintf("/api/events/%s/snapshot.jpg", ae.ID)
		}

		add(models.CameraEvent{
			Type:         models.EventObject,
			Timestamp:    ae.StartTime,
			Label:        ae.Label,
			Confidence:   ae.Score(),
			SnapshotPath: snapshotPath,
		}, ae)

		if name := ae.RecognizedName(); name != "" && ae.Label == "person" {
			add(models.CameraEvent{
				Type:         models.EventFaceRecognition,
				Timestamp:    ae.StartTime,
				Label:        name,
				Confidence:   ae.Score(),
				SnapshotPath: snapshotPath,
			}, ae)
		}

		if ae.HasClip && ae.EndTime != nil {
			end := *ae.EndTime
			add(models.CameraEvent{
				Type:           models.EventRecording,
				StartTimestamp: ae.StartTime,
				EndTimestamp:   &end,
				ThumbnailPath:  fmt.Sprintf("/api/events/%s/thumbnail.jpg", ae.ID),
			}, ae)
		}
	}

	return events
}
