package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Change notifications, one per accepted mutation
const (
	EventNameChanged       = "character.name_changed"
	EventLevelChanged      = "character.level_changed"
	EventRaceChanged       = "character.race_changed"
	EventClassChanged      = "character.class_changed"
	EventHeritageChanged   = "character.heritage_changed"
	EventBackgroundChanged = "character.background_changed"
	EventStatsChanged      = "character.stats_changed"
	EventSkillsChanged     = "character.skills_changed"
	EventFeatsChanged      = "character.feats_changed"
)

// ChangeEvents lists every notification a character can publish
var ChangeEvents = []string{
	EventNameChanged,
	EventLevelChanged,
	EventRaceChanged,
	EventClassChanged,
	EventHeritageChanged,
	EventBackgroundChanged,
	EventStatsChanged,
	EventSkillsChanged,
	EventFeatsChanged,
}

// begin claims the update guard. A mutation that arrives while another is
// still running, typically from a subscriber reacting to a notification, is
// rejected.
func (c *Character) begin(ctx context.Context, op string) bool {
	if c.updating {
		slog.DebugContext(ctx, "rejected nested character update", "id", c.id, "op", op)
		return false
	}
	c.updating = true
	return true
}

func (c *Character) end() {
	c.updating = false
}

// notify publishes while the guard is still held
func (c *Character) notify(ctx context.Context, eventType string) {
	if err := c.bus.Publish(ctx, events.NewGameEvent(eventType, c, nil)); err != nil {
		slog.WarnContext(ctx, "failed to publish character event",
			"id", c.id,
			"event", eventType,
			"error", err)
	}
}
