// Package reminder runs the tracker's periodic checks: the nightly
// "complete today's log" nudge on the group feed and the Seheri/Iftar
// boundary announcements.
package reminder

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nur-collective/siyam/internal/announce"
	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/model"
	"github.com/nur-collective/siyam/internal/ramadan"
	"github.com/nur-collective/siyam/internal/realtime"
)

// the nightly reminder window opens at 22:55
const (
	reminderHour       = 22
	reminderMinute     = 55
	reminderMessage    = "নিশীথ ঘন্টা (11:00 PM): আজকের আমলনামা পূর্ণ করেছেন কি?"
	announceLeadWindow = time.Minute
)

// Watcher drives both checks off one minute tick. The countdown itself
// stays a pure function; the watcher only owns the timer.
type Watcher struct {
	tracker   config.TrackerConfig
	schedule  []model.ScheduleEntry
	feed      *realtime.Feed
	announcer *announce.Announcer

	lastReminderDay int
	lastAnnounced   time.Time
}

func NewWatcher(tracker config.TrackerConfig, schedule []model.ScheduleEntry, feed *realtime.Feed, announcer *announce.Announcer) *Watcher {
	return &Watcher{
		tracker:   tracker,
		schedule:  schedule,
		feed:      feed,
		announcer: announcer,
	}
}

// Run ticks once a minute until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			w.check(now.In(w.tracker.Location))
		}
	}
}

func (w *Watcher) check(now time.Time) {
	w.checkNightlyReminder(now)
	w.checkBoundary(now)
}

// from 22:55 on, nudge everyone once to fill in today's record
func (w *Watcher) checkNightlyReminder(now time.Time) {
	if now.Hour() < reminderHour || (now.Hour() == reminderHour && now.Minute() < reminderMinute) {
		return
	}
	if now.YearDay() == w.lastReminderDay {
		return
	}
	w.lastReminderDay = now.YearDay()

	log.Info().Msg("sending nightly log reminder")
	w.feed.Publish(realtime.Event{
		Type:    realtime.EventReminder,
		Message: reminderMessage,
	})
}

// announce a boundary once when it is less than a minute away
func (w *Watcher) checkBoundary(now time.Time) {
	cd, ok := ramadan.ComputeCountdown(w.schedule, now, w.tracker.StartDate, 0)
	if !ok {
		return
	}
	if cd.Target.Sub(now) > announceLeadWindow || cd.Target.Equal(w.lastAnnounced) {
		return
	}
	w.lastAnnounced = cd.Target

	day := ramadan.CurrentDay(now, w.tracker.StartDate)
	log.Info().Str("label", cd.Label).Time("target", cd.Target).Msg("announcing boundary")
	w.announcer.PublishBoundary(cd.Label, cd.Target, day)
	w.feed.Publish(realtime.Event{
		Type:    realtime.EventBoundary,
		Message: cd.Label,
		Day:     day,
	})
}
