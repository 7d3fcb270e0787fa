package game

import "github.com/charmbracelet/log"

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	rules       Rules
	logger      *log.Logger
	subscribers []EventSubscriber
}

// WithRules replaces the standard ruleset. NewGame panics if the rules do
// not validate.
func WithRules(rules Rules) Option {
	return func(c *gameConfig) {
		c.rules = rules
	}
}

// WithLogger sets the logger used for per-turn debug output.
func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

// WithSubscriber registers an event subscriber before the first deal, so it
// also sees the initial GameStartEvent.
func WithSubscriber(s EventSubscriber) Option {
	return func(c *gameConfig) {
		c.subscribers = append(c.subscribers, s)
	}
}
