package autocuber

import "time"

// Option configures Sequencer behavior.
type Option func(*config)

type config struct {
	turnDuration time.Duration
	moveHistory  bool
}

func defaultConfig() *config {
	return &config{
		turnDuration: 300 * time.Millisecond,
		moveHistory:  true,
	}
}

// WithTurnDuration sets how long one move's animation lasts. The sequencer
// advances exactly one move per duration; non-positive values are ignored.
func WithTurnDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.turnDuration = d
		}
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), executed moves are recorded and the sequencer can
// jump to any step of the recorded sequence. Disable this for long sessions
// to reduce memory usage; JumpToHistoryStep then returns ErrNoHistory.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
