package game

import (
	"sync"

	"github.com/mitchelldurbincs/ratarena/internal/game/events"
)

// Stats are running totals for one game, gathered from its events
type Stats struct {
	Turns           int
	PelletsDropped  int
	RatsPoisoned    int // fine rats that ate a pellet and slowed down
	RatsKilled      int
	AdvisedTurns    int
	InvalidCommands int
}

// statsCollector is the event subscriber that keeps Stats current
type statsCollector struct {
	mu    sync.Mutex
	stats Stats
}

func newStatsCollector() *statsCollector {
	return &statsCollector{}
}

func (sc *statsCollector) ID() string {
	return "game_stats"
}

func (sc *statsCollector) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypePlayerActed, events.TypeRatsMoved, events.TypeCommandRejected:
		return true
	}
	return false
}

func (sc *statsCollector) HandleEvent(event events.Event) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	switch e := event.(type) {
	case *events.PlayerActedEvent:
		if e.Advised {
			sc.stats.AdvisedTurns++
		}
		if e.Dropped {
			sc.stats.PelletsDropped++
		}
	case *events.RatsMovedEvent:
		sc.stats.Turns = e.Turn
		sc.stats.RatsPoisoned += e.RatsSlowed
		sc.stats.RatsKilled += e.RatsKilled
	case *events.CommandRejectedEvent:
		sc.stats.InvalidCommands++
	}
}

func (sc *statsCollector) snapshot() Stats {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.stats
}
