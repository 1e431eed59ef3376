package main

import (
	"encoding/json"
	"flag"
	"os"

	"camera-timeline/internal/config"
	"camera-timeline/internal/dataset"
	"camera-timeline/internal/engine"
	"camera-timeline/internal/logger"
	"camera-timeline/internal/mqtt"

	"github.com/spf13/afero"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	date := flag.String("date", "", "Day to build the timeline for, YYYY-MM-DD (default today)")
	publish := flag.Bool("publish", false, "Publish the timeline to MQTT instead of printing it")
	flag.Parse()

	fs := afero.NewOsFs()

	// 1. Load Configuration
	cfg, err := config.LoadConfig(fs, *configPath)
	if err != nil {
		logger.Fatalf("Error loading config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	logger.Infof("Loaded config from %s", *configPath)

	loc, err := config.Location(cfg)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	// 2. Initialize Engine
	eng, err := engine.NewEngine(
		engine.WithSettings(engine.Settings{
			Scale:      cfg.Timeline.Scale,
			TickHeight: cfg.Timeline.TickHeight,
			IconHeight: cfg.Timeline.EventIconHeight,
			ExtraTicks: cfg.Timeline.ExtraTicks,
		}),
		engine.WithLocation(loc),
	)
	if err != nil {
		logger.Fatalf("Error creating engine: %v", err)
	}

	day, err := eng.ParseDate(*date)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	window := eng.NewWindow(day)

	// 3. Load events and available media
	ds, err := dataset.Load(fs, cfg.Input)
	if err != nil {
		logger.Fatalf("Error loading dataset: %v", err)
	}

	events := ds.Events
	if cfg.Input.Sort == config.SortNewestFirst {
		events = engine.SortNewestFirst(events)
	}

	// 4. Build
	snap, err := eng.Snapshot(window, events, ds.AvailableTimespans)
	if err != nil {
		logger.Fatalf("Error building timeline: %v", err)
	}
	logger.Infof("Built timeline %s: %d ticks, %d materialized", snap.ID, snap.ItemCount, len(snap.Items))

	if !*publish {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			logger.Fatalf("Error writing timeline: %v", err)
		}
		return
	}

	// 5. Publish once
	mqttClient := mqtt.NewClient(cfg.MQTT)
	if err := mqttClient.Connect(); err != nil {
		logger.Fatalf("Failed to connect to MQTT: %v", err)
	}
	defer mqttClient.Disconnect()

	if err := mqttClient.Publish(cfg.MQTT.Topic, snap); err != nil {
		logger.Errorf("Error publishing timeline: %v", err)
		return
	}
	logger.Infof("Published timeline %s to %s", snap.ID, cfg.MQTT.Topic)
}
