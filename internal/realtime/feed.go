package realtime

import "context"

// Feed is what writers publish deltas to. With a bus attached the
// event takes the redis round trip (so peer instances see it too);
// otherwise it goes straight to the local hub.
type Feed struct {
	hub *Hub
	bus *Bus
}

func NewFeed(hub *Hub, bus *Bus) *Feed {
	return &Feed{hub: hub, bus: bus}
}

func (f *Feed) Publish(ev Event) {
	if f == nil {
		return
	}
	if f.bus != nil {
		f.bus.Publish(context.Background(), ev)
		return
	}
	if f.hub != nil {
		f.hub.Broadcast(ev)
	}
}
