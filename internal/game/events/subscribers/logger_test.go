package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ratarena/internal/game/core"
	"github.com/mitchelldurbincs/ratarena/internal/game/events"
	"github.com/mitchelldurbincs/ratarena/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// no filter means every event is of interest
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeRatsMoved))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	const gameID = "test-game-1"

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent(gameID, 10, 12, 25, core.NewCoordinate(4, 7)),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(10), logLine["rows"])
				assert.Equal(t, float64(12), logLine["cols"])
				assert.Equal(t, float64(25), logLine["rats"])
				assert.Equal(t, "(4,7)", logLine["player"])
			},
		},
		{
			name: "PlayerActedEvent move",
			event: events.NewPlayerActedEvent(gameID, 3, events.ActionMove, core.East, true, false,
				core.NewCoordinate(2, 2), core.NewCoordinate(2, 3), "Player moved east."),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["turn"])
				assert.Equal(t, "move", logLine["action"])
				assert.Equal(t, "east", logLine["direction"])
				assert.Equal(t, true, logLine["advised"])
				assert.Equal(t, "(2,3)", logLine["to"])
				assert.Equal(t, "Player moved east.", logLine["result"])
				assert.NotContains(t, logLine, "dropped")
			},
		},
		{
			name: "PlayerActedEvent drop",
			event: events.NewPlayerActedEvent(gameID, 0, events.ActionDrop, core.North, false, true,
				core.NewCoordinate(1, 1), core.NewCoordinate(1, 1), "A poison pellet has been dropped."),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "drop", logLine["action"])
				assert.Equal(t, true, logLine["dropped"])
				assert.NotContains(t, logLine, "direction")
			},
		},
		{
			name:  "CommandRejectedEvent",
			event: events.NewCommandRejectedEvent(gameID, 2, "north"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "north", logLine["input"])
			},
		},
		{
			name:  "RatsMovedEvent",
			event: events.NewRatsMovedEvent(gameID, 7, 5, 2, 1, 1, 4),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(7), logLine["turn"])
				assert.Equal(t, float64(5), logLine["rats_moved"])
				assert.Equal(t, float64(2), logLine["pellets_eaten"])
				assert.Equal(t, float64(1), logLine["rats_slowed"])
				assert.Equal(t, float64(1), logLine["rats_killed"])
				assert.Equal(t, float64(4), logLine["rats_left"])
			},
		},
		{
			name:  "PlayerDiedEvent",
			event: events.NewPlayerDiedEvent(gameID, 9, core.NewCoordinate(5, 5), events.CauseCaughtByRat),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "(5,5)", logLine["position"])
				assert.Equal(t, "caught_by_rat", logLine["cause"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent(gameID, "won", 5*time.Minute, 40, 0),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "won", logLine["outcome"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
				assert.Equal(t, float64(40), logLine["final_turn"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent(gameID, "PlayerTurn", "RatTurn", "player acted"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "PlayerTurn", logLine["from_phase"])
				assert.Equal(t, "RatTurn", logLine["to_phase"])
				assert.Equal(t, "player acted", logLine["reason"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, "event_logger", logLine["subscriber"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, gameID, logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("filtered-logger", logger, zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeRatsMoved))
	assert.False(t, logSub.InterestedIn(events.TypePlayerActed))

	// delivered through a bus, only filtered events reach the log
	bus := events.NewEventBus(zerolog.Nop())
	bus.Subscribe(logSub)
	bus.Publish(events.NewGameStartedEvent("game1", 3, 3, 1, core.NewCoordinate(1, 1)))
	bus.Publish(events.NewRatsMovedEvent("game1", 1, 1, 0, 0, 0, 1))
	bus.Publish(events.NewGameEndedEvent("game1", "lost", time.Second, 1, 1))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), events.TypeGameStarted)
	assert.Contains(t, string(lines[1]), events.TypeGameEnded)

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeRatsMoved))
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
		{"Unknown falls back to info", zerolog.TraceLevel, "info"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewGameStartedEvent("game1", 2, 2, 0, core.NewCoordinate(1, 1)))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("dev-logger", logger, zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewRatsMovedEvent("dev-game", 2, 4, 1, 1, 0, 4))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"]
	require.True(t, ok, "event_data should be present")

	eventDataBytes, err := json.Marshal(eventData)
	require.NoError(t, err)
	eventDataStr := string(eventDataBytes)

	assert.Contains(t, eventDataStr, "rats.moved")
	assert.Contains(t, eventDataStr, "PelletsEaten")
}

func TestLoggerSubscriber_DisabledLogger_DoesNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.Disabled)

	logSub := subscribers.NewLoggerSubscriber("quiet", logger, zerolog.InfoLevel)
	logSub.SetDevMode(true)

	assert.NotPanics(t, func() {
		for i := 0; i < 100; i++ {
			logSub.HandleEvent(events.NewRatsMovedEvent("quiet-game", i, 1, 0, 0, 0, 1))
		}
	})
	assert.Zero(t, buf.Len())
}
