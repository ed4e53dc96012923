package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ratarena/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("rows", e.Rows).
			Int("cols", e.Cols).
			Int("rats", e.Rats).
			Str("player", e.Player.String())

	case *events.GameEndedEvent:
		logEvent.
			Str("outcome", e.Outcome).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn).
			Int("rats_left", e.RatsLeft)

	case *events.PlayerActedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("action", e.Action).
			Bool("advised", e.Advised).
			Str("from", e.From.String()).
			Str("to", e.To.String()).
			Str("result", e.Message)
		if e.Action == events.ActionMove {
			logEvent.Str("direction", e.Direction.String())
		} else {
			logEvent.Bool("dropped", e.Dropped)
		}

	case *events.CommandRejectedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("input", e.Input)

	case *events.RatsMovedEvent:
		logEvent.
			Int("turn", e.Turn).
			Int("rats_moved", e.RatsMoved).
			Int("pellets_eaten", e.PelletsEaten).
			Int("rats_slowed", e.RatsSlowed).
			Int("rats_killed", e.RatsKilled).
			Int("rats_left", e.RatsLeft)

	case *events.PlayerDiedEvent:
		logEvent.
			Int("turn", e.Turn).
			Str("position", e.Position.String()).
			Str("cause", e.Cause)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
