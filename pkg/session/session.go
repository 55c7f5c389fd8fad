// Package session runs the interactive encrypt/decrypt dialogue.
//
// A Session is a small state machine:
//
//	ChooseOperation → EnterMessage → ChooseShift → Execute → AskRepeat
//	      ↑                                                      │
//	      └──────────────────────── yes ─────────────────────────┘
//
// Input is gathered through a [Prompter] and everything shown to the user goes
// through a [Display], so the same loop drives both the line-oriented terminal
// dialogue and richer frontends. Invalid answers are handled inside the
// prompter by asking again; a quit token at any prompt ends the session
// cleanly. Any other error, including a recovered panic, is returned from
// [Session.Run].
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/germanamz/caesar/pkg/caesar"
)

// State is a step of the session state machine.
type State int

const (
	ChooseOperation State = iota
	EnterMessage
	ChooseShift
	Execute
	AskRepeat
	Terminate
)

func (s State) String() string {
	switch s {
	case ChooseOperation:
		return "choose-operation"
	case EnterMessage:
		return "enter-message"
	case ChooseShift:
		return "choose-shift"
	case Execute:
		return "execute"
	case AskRepeat:
		return "ask-repeat"
	case Terminate:
		return "terminate"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// turn holds what the user entered since the last ChooseOperation.
type turn struct {
	op      Operation
	message string
	shift   ShiftChoice
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for state transitions and faults.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// Session drives one interactive conversation.
type Session struct {
	prompter Prompter
	display  Display
	log      *slog.Logger
}

// New creates a Session reading answers from p and rendering to d.
func New(p Prompter, d Display, opts ...Option) *Session {
	s := &Session{
		prompter: p,
		display:  d,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user quits or declines another round. It returns nil
// in both cases; any other failure is returned wrapped with the state it
// happened in.
func (s *Session) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session: panicked: %v", r)
			s.log.ErrorContext(ctx, "session fault", "error", err)
		}
	}()

	s.display.Intro()
	s.log.DebugContext(ctx, "session started")

	var t turn
	state := ChooseOperation
	for state != Terminate {
		next, err := s.step(ctx, state, &t)
		if errors.Is(err, ErrQuit) {
			s.log.DebugContext(ctx, "quit requested", "state", state)
			s.display.Goodbye(EndQuit)
			return nil
		}
		if err != nil {
			s.log.ErrorContext(ctx, "session fault", "state", state, "error", err)
			return fmt.Errorf("session: %s: %w", state, err)
		}

		s.log.DebugContext(ctx, "state transition", "from", state, "to", next)
		state = next
	}

	s.display.Goodbye(EndDeclined)
	return nil
}

func (s *Session) step(ctx context.Context, state State, t *turn) (State, error) {
	switch state {
	case ChooseOperation:
		op, err := s.prompter.Operation(ctx)
		if err != nil {
			return state, err
		}
		*t = turn{op: op}
		return EnterMessage, nil

	case EnterMessage:
		msg, err := s.prompter.Message(ctx, t.op)
		if err != nil {
			return state, err
		}
		t.message = msg
		return ChooseShift, nil

	case ChooseShift:
		choice, err := s.prompter.Shift(ctx)
		if err != nil {
			return state, err
		}
		t.shift = choice
		return Execute, nil

	case Execute:
		s.execute(ctx, t)
		return AskRepeat, nil

	case AskRepeat:
		again, err := s.prompter.Repeat(ctx)
		if err != nil {
			return state, err
		}
		if again {
			return ChooseOperation, nil
		}
		return Terminate, nil
	}

	return state, fmt.Errorf("unknown state %s", state)
}

func (s *Session) execute(ctx context.Context, t *turn) {
	dir := t.op.Direction()
	s.log.DebugContext(ctx, "executing", "direction", dir, "shift", t.shift, "length", len(t.message))

	s.display.Working(dir, t.shift)

	if t.shift.All {
		s.display.Candidates(dir, caesar.BruteForce(t.message, dir))
		return
	}

	s.display.Result(dir, caesar.Transform(t.message, int(t.shift.Shift), dir))
}
