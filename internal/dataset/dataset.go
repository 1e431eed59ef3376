// Package dataset loads the events and media spans a timeline is built from.
package dataset

import (
	"encoding/json"
	"fmt"

	"camera-timeline/internal/config"
	"camera-timeline/internal/frigate"
	"camera-timeline/internal/hls"
	"camera-timeline/internal/logger"
	"camera-timeline/internal/models"

	"github.com/spf13/afero"
)

var log = logger.New("dataset")

// Load reads the event dump and, if configured, the HLS playlist whose
// fragments become additional available timespans.
func Load(fs afero.Fs, in models.InputConfig) (*models.Dataset, error) {
	ds, err := loadEvents(fs, in.Events, in.Format)
	if err != nil {
		return nil, err
	}

	if in.Playlist != "" {
		fragments, err := hls.LoadPlaylist(fs, in.Playlist)
		if err != nil {
			return nil, err
		}
		spans := hls.Timespans(fragments, in.MaxGap)
		log.Debugf("Playlist %s: %d fragments, %d timespans", in.Playlist, len(fragments), len(spans))
		ds.AvailableTimespans = append(ds.AvailableTimespans, spans...)
	}

	return ds, nil
}

func loadEvents(fs afero.Fs, path, format string) (*models.Dataset, error) {
	ds := &models.Dataset{}
	if path == "" {
		return ds, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	switch format {
	case config.FormatFrigate:
		apiEvents, err := frigate.ParseEvents(data)
		if err != nil {
			return nil, err
		}
		ds.Events = frigate.ToCameraEvents(apiEvents)
	case config.FormatViseron, "":
		if err := json.Unmarshal(data, ds); err != nil {
			return nil, fmt.Errorf("failed to decode events file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}

	ds.Events = knownEvents(ds.Events)
	log.Infof("Loaded %d events and %d timespans from %s", len(ds.Events), len(ds.AvailableTimespans), path)

	return ds, nil
}

func knownEvents(events []models.CameraEvent) []models.CameraEvent {
	out := events[:0]
	for _, evt := range events {
		if !evt.IsTimed() && !evt.IsSnapshot() {
			log.Warnf("Skipping event %d with unknown type %q", evt.ID, evt.Type)
			continue
		}
		out = append(out, evt)
	}
	return out
}
