package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const channel = "siyam.feed"

// Bus carries feed events through redis pub/sub so every server
// instance sees deltas written on any of them.
type Bus struct {
	rdb *redis.Client
}

func NewBus(address, username, password string) *Bus {
	return &Bus{rdb: redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})}
}

// Publish pushes an event onto the shared channel. Failures are logged
// and swallowed: the local write already succeeded and is never rolled
// back on a missed notification.
func (b *Bus) Publish(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal bus event")
		return
	}
	if err := b.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		log.Error().Err(err).Str("type", ev.Type).Msg("failed to publish feed event")
	}
}

// Forward subscribes to the shared channel and replays every event
// into the hub until ctx is cancelled.
func (b *Bus) Forward(ctx context.Context, hub *Hub) {
	sub := b.rdb.Subscribe(ctx, channel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Error().Err(err).Msg("malformed feed event on bus")
				continue
			}
			hub.Broadcast(ev)
		}
	}
}
