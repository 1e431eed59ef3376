package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"camera-timeline/internal/logger"
	"camera-timeline/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var log = logger.New("mqtt")

type Client struct {
	client mqtt.Client
	config models.MQTTConfig
}

func NewClient(cfg models.MQTTConfig) *Client {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.User != "" {
		opts.SetUsername(cfg.User)
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		log.Infof("Connected to MQTT broker at %s", cfg.Broker)
	})
	opts.SetConnectionLostHandler(func(c mqtt.Client, err error) {
		log.Warnf("Lost connection to MQTT broker: %v", err)
	})

	return &Client{
		client: mqtt.NewClient(opts),
		config: cfg,
	}
}

func (c *Client) Connect() error {
	token := c.client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.config.Broker, token.Error())
	}
	return nil
}

// Publish sends payload as JSON, retained when the config asks for it
func (c *Client) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := c.client.Publish(topic, 1, c.config.Retain, data)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Debugf("Published %d bytes to %s", len(data), topic)
	return nil
}

func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}
