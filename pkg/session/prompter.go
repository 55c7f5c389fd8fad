package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when input ends before the user quits.
var ErrInputClosed = errors.New("session: input closed")

// Prompter collects one answer per input state. Implementations keep asking
// until they get a valid answer and return ErrQuit for quit tokens.
type Prompter interface {
	Operation(ctx context.Context) (Operation, error)
	Message(ctx context.Context, op Operation) (string, error)
	Shift(ctx context.Context) (ShiftChoice, error)
	Repeat(ctx context.Context) (bool, error)
}

// LinePrompter reads one answer per line from an io.Reader.
type LinePrompter struct {
	in      *bufio.Reader
	display Display
}

// NewLinePrompter creates a LinePrompter reading from r. Prompts and
// invalid-input notices go to d.
func NewLinePrompter(r io.Reader, d Display) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(r), display: d}
}

func (p *LinePrompter) Operation(ctx context.Context) (Operation, error) {
	return ask(ctx, p, OperationPrompt, ParseOperation)
}

func (p *LinePrompter) Message(ctx context.Context, op Operation) (string, error) {
	return ask(ctx, p, MessagePrompt(op), ParseMessage)
}

func (p *LinePrompter) Shift(ctx context.Context) (ShiftChoice, error) {
	return ask(ctx, p, ShiftPrompt, ParseShift)
}

func (p *LinePrompter) Repeat(ctx context.Context) (bool, error) {
	return ask(ctx, p, RepeatPrompt, ParseAnswer)
}

// ask shows label and parses lines until parse accepts one. Input errors are
// shown and the prompt repeats; anything else is returned.
func ask[T any](ctx context.Context, p *LinePrompter, label string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		p.display.Prompt(label)

		line, err := p.readLine()
		if err != nil {
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			return zero, err
		}
		p.display.Invalid(inputErr)
	}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("session: read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
