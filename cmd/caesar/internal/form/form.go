// Package form implements session.Prompter with huh forms: a select for the
// operation, validated inputs for the message and shift, and a confirm for
// running again. Esc or Ctrl+C on any form quits the session.
package form

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/germanamz/caesar/pkg/session"
)

// quitOperation is the select value of the Quit option.
const quitOperation session.Operation = 0

// Options configures a Prompter.
type Options struct {
	// Accessible switches huh to line-based prompts for screen readers.
	Accessible bool
	// AltScreen draws each form on the alternate screen.
	AltScreen bool
	// Input and Output override stdin/stdout when set.
	Input  io.Reader
	Output io.Writer
	// Renderer, when set, supplies the color profile forms are drawn with.
	// huh styles render through lipgloss' default renderer, so its profile is
	// replaced with this one.
	Renderer *lipgloss.Renderer
}

// Prompter asks every session question with a huh form.
type Prompter struct {
	opts   Options
	keymap *huh.KeyMap
	theme  *huh.Theme
}

// New creates a Prompter.
func New(opts Options) *Prompter {
	if opts.Renderer != nil {
		lipgloss.SetColorProfile(opts.Renderer.ColorProfile())
	}
	return &Prompter{opts: opts, keymap: KeyMap(), theme: huh.ThemeCharm()}
}

// KeyMap returns huh's default bindings with Esc added to Quit.
func KeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	)
	return km
}

func (p *Prompter) Operation(ctx context.Context) (session.Operation, error) {
	op := session.Encrypt
	field := huh.NewSelect[session.Operation]().
		Title("Do you want to encrypt or decrypt a message?").
		Options(
			huh.NewOption("Encrypt", session.Encrypt),
			huh.NewOption("Decrypt", session.Decrypt),
			huh.NewOption("Quit", quitOperation),
		).
		Value(&op)

	if err := p.run(ctx, field); err != nil {
		return 0, err
	}
	if op == quitOperation {
		return 0, session.ErrQuit
	}
	return op, nil
}

func (p *Prompter) Message(ctx context.Context, op session.Operation) (string, error) {
	var msg string
	field := huh.NewInput().
		Title(session.MessagePrompt(op)).
		Placeholder("Attack at dawn").
		Value(&msg).
		Validate(Validator(session.ParseMessage))

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return session.ParseMessage(msg)
}

func (p *Prompter) Shift(ctx context.Context) (session.ShiftChoice, error) {
	var raw string
	field := huh.NewInput().
		Title(session.ShiftPrompt).
		Placeholder("1-25, all, or q").
		CharLimit(8).
		Value(&raw).
		Validate(Validator(session.ParseShift))

	if err := p.run(ctx, field); err != nil {
		return session.ShiftChoice{}, err
	}
	return session.ParseShift(raw)
}

func (p *Prompter) Repeat(ctx context.Context) (bool, error) {
	again := true
	field := huh.NewConfirm().
		Title("Run again?").
		Affirmative("Yes").
		Negative("No").
		Value(&again)

	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return again, nil
}

// run shows a single-field form. Aborting the form counts as quitting.
func (p *Prompter) run(ctx context.Context, field huh.Field) error {
	f := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithKeyMap(p.keymap).
		WithAccessible(p.opts.Accessible).
		WithShowHelp(true)

	// WithProgramOptions replaces earlier options, so it goes before
	// WithInput and WithOutput which append their own.
	if p.opts.AltScreen {
		f = f.WithProgramOptions(tea.WithAltScreen())
	}
	if p.opts.Input != nil {
		f = f.WithInput(p.opts.Input)
	}
	if p.opts.Output != nil {
		f = f.WithOutput(p.opts.Output)
	}

	err := f.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return session.ErrQuit
	}
	return err
}

// Validator adapts a session parser to a huh validation func. Quit tokens
// pass validation so that the caller can end the session after submit.
func Validator[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		var inputErr *session.InputError
		if errors.As(err, &inputErr) {
			return errors.New(inputErr.Hint)
		}
		return nil
	}
}
