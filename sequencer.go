package autocuber

import "time"

// SequencerState represents the current state of the animation sequencer.
type SequencerState int

const (
	StateIdle SequencerState = iota
	StateAnimating
)

// String returns the string representation of the sequencer state.
func (s SequencerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return "unknown"
	}
}

// step is one scheduled move together with its effect on the history
// cursor (-1 when replaying backward through inverted moves).
type step struct {
	move        Move
	cursorDelta int
}

// Sequencer drives moves, full algorithms and history navigation over
// time. It is a single-flight state machine: only Idle accepts a new
// command, and commands issued while Animating are rejected with
// ErrAnimating. Callers are expected to check Animating first. There is no
// queuing and no cancellation; once started, a command runs to completion.
//
// The sequencer is advanced by Advance with frame deltas. Two independent
// clocks run there: the per-piece render clock, which every frame moves
// each piece's interpolated pose forward, and the discrete move clock,
// which fires the next pending move exactly one turn duration after the
// previous one regardless of frame timing.
//
// The Sequencer is not safe for concurrent use; all mutation is expected
// to happen on a single sequencing path.
type Sequencer struct {
	cube         *Cube
	turnDuration time.Duration
	moveHistory  bool

	state     SequencerState
	program   []Move
	cursor    int
	pending   []step
	remaining time.Duration
}

// NewSequencer creates a sequencer driving the given cube.
func NewSequencer(cube *Cube, opts ...Option) *Sequencer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Sequencer{
		cube:         cube,
		turnDuration: cfg.turnDuration,
		moveHistory:  cfg.moveHistory,
		state:        StateIdle,
	}
}

// Cube returns the cube the sequencer drives.
func (s *Sequencer) Cube() *Cube { return s.cube }

// TurnDuration returns the fixed duration of one move's animation.
func (s *Sequencer) TurnDuration() time.Duration { return s.turnDuration }

// State returns the current sequencer state.
func (s *Sequencer) State() SequencerState { return s.state }

// Animating reports whether a command is in flight. New commands are only
// accepted while this is false.
func (s *Sequencer) Animating() bool { return s.state == StateAnimating }

// Cursor returns the history cursor: how many recorded moves are currently
// applied to the cube.
func (s *Sequencer) Cursor() int { return s.cursor }

// Program returns a copy of the recorded move sequence.
func (s *Sequencer) Program() []Move {
	out := make([]Move, len(s.program))
	copy(out, s.program)
	return out
}

// Progress returns how far the current step's duration has elapsed, in
// [0, 1]. It is 1 when the sequencer is idle.
func (s *Sequencer) Progress() float64 {
	if s.state != StateAnimating || s.turnDuration <= 0 {
		return 1
	}
	return 1 - float64(s.remaining)/float64(s.turnDuration)
}

// Advance moves both clocks forward by one frame delta: every piece's
// rendered pose, and the discrete move schedule. A move's logical
// completion always lands exactly one turn duration after it started, even
// if frames run faster or slower.
func (s *Sequencer) Advance(dt time.Duration) {
	s.cube.Advance(dt)
	if s.state != StateAnimating {
		return
	}
	s.remaining -= dt
	for s.remaining <= 0 {
		if len(s.pending) == 0 {
			s.state = StateIdle
			s.remaining = 0
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.execute(next)
		s.remaining += s.turnDuration
	}
}

// ApplyMove animates a single move. Returns ErrAnimating if a command is
// already in flight.
func (s *Sequencer) ApplyMove(m Move) error {
	return s.PerformAlgorithm([]Move{m})
}

// PerformAlgorithm animates a sequence of moves, one per turn duration,
// returning to idle after the last move's duration elapses. The moves are
// appended to the recorded history at the cursor, discarding any redo tail
// beyond it.
func (s *Sequencer) PerformAlgorithm(moves []Move) error {
	if s.state == StateAnimating {
		return ErrAnimating
	}
	for _, m := range moves {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	if len(moves) == 0 {
		return nil
	}

	if s.moveHistory {
		s.program = append(s.program[:s.cursor], moves...)
	}

	steps := make([]step, len(moves))
	for i, m := range moves {
		steps[i] = step{move: m, cursorDelta: 1}
	}
	s.begin(steps)
	return nil
}

// Reset animates every piece back to its slot-identity pose along a
// straight path and clears the recorded history.
func (s *Sequencer) Reset() error {
	if s.state == StateAnimating {
		return ErrAnimating
	}
	s.cube.retargetHome()
	s.program = nil
	s.cursor = 0
	s.pending = nil
	s.state = StateAnimating
	s.remaining = s.turnDuration
	return nil
}

// JumpToHistoryStep animates the cube to the state after the first target
// moves of the recorded sequence: forward by replaying the sub-sequence
// ahead of the cursor, backward by replaying the inverted sub-sequence
// behind it in reverse.
func (s *Sequencer) JumpToHistoryStep(target int) error {
	if s.state == StateAnimating {
		return ErrAnimating
	}
	if !s.moveHistory {
		return ErrNoHistory
	}
	if target < 0 || target > len(s.program) {
		return ErrUnknownStep
	}
	if target == s.cursor {
		return nil
	}

	var steps []step
	if target > s.cursor {
		for _, m := range s.program[s.cursor:target] {
			steps = append(steps, step{move: m, cursorDelta: 1})
		}
	} else {
		for i := s.cursor - 1; i >= target; i-- {
			steps = append(steps, step{move: s.program[i].Inverse(), cursorDelta: -1})
		}
	}
	s.begin(steps)
	return nil
}

// begin starts a batch of steps: the first fires immediately, the rest one
// turn duration apart.
func (s *Sequencer) begin(steps []step) {
	s.state = StateAnimating
	s.remaining = s.turnDuration
	s.execute(steps[0])
	s.pending = steps[1:]
}

func (s *Sequencer) execute(st step) {
	s.cube.applyMove(st.move)
	if s.moveHistory {
		s.cursor += st.cursorDelta
	}
}
