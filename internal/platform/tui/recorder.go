package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-hopper/internal/core"
	"github.com/vovakirdan/star-hopper/internal/storage"
)

// EventRecorder appends controller events to the run log. A nil store
// turns it into a logger only.
type EventRecorder struct {
	store  *storage.Store
	setID  string
	player string
	log    *log.Logger
}

// NewEventRecorder creates a recorder for one player and level set.
func NewEventRecorder(store *storage.Store, setID, player string, logger *log.Logger) *EventRecorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == "" {
		player = storage.LocalPlayer
	}
	return &EventRecorder{
		store:  store,
		setID:  setID,
		player: player,
		log:    logger,
	}
}

// Record persists every event in order. Failures are logged and skipped so
// the game keeps running.
func (r *EventRecorder) Record(events []core.Event) {
	for _, ev := range events {
		if err := r.record(ev); err != nil {
			r.log.Warn("could not record event", "kind", ev.Kind, "err", err)
		}
	}
}

func (r *EventRecorder) record(ev core.Event) error {
	r.log.Debug("event",
		"kind", ev.Kind,
		"set", r.setID,
		"player", r.player,
		"level", ev.Level,
		"time", ev.Time,
		"score", ev.Score,
		"deaths", ev.Deaths)

	if r.store == nil {
		return nil
	}

	var err error
	switch ev.Kind {
	case core.EventLevelComplete:
		_, err = r.store.SaveCompletion(storage.CompletionEntry{
			SetID:  r.setID,
			Player: r.player,
			Level:  ev.Level,
			Time:   ev.Time,
			Tokens: ev.Tokens,
			Deaths: ev.Deaths,
		})
	case core.EventFullRun:
		_, err = r.store.SaveFullRun(storage.RunEntry{
			SetID:  r.setID,
			Player: r.player,
			Time:   ev.Time,
			Score:  ev.Score,
			Deaths: ev.Deaths,
		})
	case core.EventRunEnded:
		// Runs aborted before scoring anything are noise
		if ev.Score == 0 && !ev.Finished {
			return nil
		}
		_, err = r.store.SaveScore(storage.ScoreEntry{
			SetID:    r.setID,
			Player:   r.player,
			Score:    ev.Score,
			Deaths:   ev.Deaths,
			Finished: ev.Finished,
		})
	}
	return err
}
