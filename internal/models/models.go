package models

// Config defines the user settings
type Config struct {
	LogLevel string         `yaml:"log_level"`
	Timeline TimelineConfig `yaml:"timeline"`
	Input    InputConfig    `yaml:"input"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
}

type TimelineConfig struct {
	Scale           int64  `yaml:"scale"`             // seconds per tick
	TickHeight      int    `yaml:"tick_height"`       // px
	EventIconHeight int    `yaml:"event_icon_height"` // px
	ExtraTicks      int64  `yaml:"extra_ticks"`
	Timezone        string `yaml:"timezone"` // "Local", "UTC", "Europe/Stockholm"
}

type InputConfig struct {
	Events   string  `yaml:"events"`
	Format   string  `yaml:"format"`   // "viseron" or "frigate"
	Playlist string  `yaml:"playlist"` // optional HLS media playlist
	MaxGap   float64 `yaml:"max_gap"`  // seconds
	Sort     string  `yaml:"sort"`     // "newest_first" or "none"
}

type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
	Retain   bool   `yaml:"retain"`
}

// EventType discriminates the CameraEvent union
type EventType string

const (
	EventMotion          EventType = "motion"
	EventRecording       EventType = "recording"
	EventObject          EventType = "object"
	EventFaceRecognition EventType = "face_recognition"
)

// CameraEvent is a single event reported for a camera. Timed events (motion,
// recording) use StartTimestamp/EndTimestamp, snapshot events (object,
// face_recognition) use Timestamp.
type CameraEvent struct {
	ID               int64     `json:"id"`
	SourceID         string    `json:"source_id,omitempty"` // ID in the system the event was imported from
	Type             EventType `json:"type"`
	CameraIdentifier string    `json:"camera_identifier"`
	CreatedAt        string    `json:"created_at,omitempty"`

	StartTimestamp float64  `json:"start_timestamp,omitempty"`
	EndTimestamp   *float64 `json:"end_timestamp,omitempty"` // nil while in progress

	Timestamp    float64 `json:"timestamp,omitempty"`
	Label        string  `json:"label,omitempty"`
	Confidence   float64 `json:"confidence,omitempty"`
	SnapshotPath string  `json:"snapshot_path,omitempty"`

	ThumbnailPath string `json:"thumbnail_path,omitempty"`
}

func (e CameraEvent) IsTimed() bool {
	return e.Type == EventMotion || e.Type == EventRecording
}

func (e CameraEvent) IsSnapshot() bool {
	return e.Type == EventObject || e.Type == EventFaceRecognition
}

// Time returns the timestamp used to order events, the start for timed events.
func (e CameraEvent) Time() float64 {
	if e.IsTimed() {
		return e.StartTimestamp
	}
	return e.Timestamp
}

// AvailableTimespan is a contiguous span of recorded media
type AvailableTimespan struct {
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

// Dataset is what the timeline is built from
type Dataset struct {
	Events             []CameraEvent       `json:"events"`
	AvailableTimespans []AvailableTimespan `json:"available_timespans"`
}
