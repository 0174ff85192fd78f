// Package announce publishes Seheri/Iftar boundary events over MQTT
// for subscribed displays (mosque or lobby screens that mirror the
// countdown without polling the API).
package announce

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const topic = "siyam/announcements"

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

type Announcer struct {
	client mqtt.Client
}

// NewAnnouncer connects to the broker. Callers skip construction
// entirely when no broker is configured.
func NewAnnouncer(brokerURL, clientID string) (*Announcer, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Announcer{client: client}, nil
}

type boundaryMessage struct {
	Label string `json:"label"`
	At    string `json:"at"`
	Day   int    `json:"day"`
}

// PublishBoundary announces an upcoming boundary. Best-effort: a
// failed publish is logged, never retried.
func (a *Announcer) PublishBoundary(label string, at time.Time, day int) {
	if a == nil {
		return
	}
	payload, err := json.Marshal(boundaryMessage{
		Label: label,
		At:    at.Format(time.RFC3339),
		Day:   day,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal boundary message")
		return
	}
	if token := a.client.Publish(topic, 1, false, payload); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("label", label).Msg("failed to publish boundary announcement")
	}
}

func (a *Announcer) Close() {
	if a == nil {
		return
	}
	a.client.Disconnect(250)
}
