package session

import (
	"fmt"
	"io"

	"github.com/germanamz/caesar/pkg/caesar"
)

// EndReason tells the display why the session stopped.
type EndReason int

const (
	// EndQuit means a quit token was entered at some prompt.
	EndQuit EndReason = iota
	// EndDeclined means the user answered no to the run-again prompt.
	EndDeclined
)

// Display renders everything the session shows to the user.
type Display interface {
	Intro()
	Prompt(label string)
	Invalid(err *InputError)
	Working(dir caesar.Direction, choice ShiftChoice)
	Result(dir caesar.Direction, text string)
	Candidates(dir caesar.Direction, candidates []caesar.Candidate)
	Goodbye(reason EndReason)
}

// User-facing text shared by every Display and Prompter.
const (
	IntroText       = "Type 'quit' or 'q' to end the program."
	OperationPrompt = "Do you want to encrypt or decrypt a message? "
	ShiftPrompt     = "Enter shift amount (1-25) or 'A' for all shifts: "
	RepeatPrompt    = "Run again? (Yes/No): "
)

// MessagePrompt returns the message prompt for op.
func MessagePrompt(op Operation) string {
	return fmt.Sprintf("Enter the message to be %sed: ", op)
}

// WorkingText describes the transformation about to run.
func WorkingText(dir caesar.Direction, choice ShiftChoice) string {
	verb := "Encoding"
	if dir == caesar.Decoding {
		verb = "Decoding"
	}
	if choice.All {
		return verb + " with all shifts..."
	}
	return fmt.Sprintf("%s with shift of %d...", verb, choice.Shift)
}

// ResultLabel names a single-shift result.
func ResultLabel(dir caesar.Direction) string {
	if dir == caesar.Decoding {
		return "Decrypted message"
	}
	return "Encrypted message"
}

// CandidateLabel names one brute-force row.
func CandidateLabel(s caesar.Shift) string {
	return fmt.Sprintf("Shift %d", s)
}

// GoodbyeText is the last line printed for reason.
func GoodbyeText(reason EndReason) string {
	if reason == EndDeclined {
		return "Exiting program."
	}
	return "Ending program."
}

// PlainDisplay writes unstyled text to W. The command uses it in line mode
// when color, banner and width limits are all turned off.
type PlainDisplay struct {
	W io.Writer
}

// NewPlainDisplay creates a PlainDisplay writing to w.
func NewPlainDisplay(w io.Writer) *PlainDisplay {
	return &PlainDisplay{W: w}
}

func (d *PlainDisplay) Intro() {
	_, _ = fmt.Fprintln(d.W, IntroText)
}

func (d *PlainDisplay) Prompt(label string) {
	_, _ = fmt.Fprint(d.W, label)
}

func (d *PlainDisplay) Invalid(err *InputError) {
	_, _ = fmt.Fprintf(d.W, "Invalid input. %s\n", err.Hint)
}

func (d *PlainDisplay) Working(dir caesar.Direction, choice ShiftChoice) {
	_, _ = fmt.Fprintf(d.W, "\n%s\n", WorkingText(dir, choice))
}

func (d *PlainDisplay) Result(dir caesar.Direction, text string) {
	_, _ = fmt.Fprintf(d.W, "%s: %s\n\n", ResultLabel(dir), text)
}

func (d *PlainDisplay) Candidates(_ caesar.Direction, candidates []caesar.Candidate) {
	_, _ = fmt.Fprintln(d.W)
	for _, c := range candidates {
		_, _ = fmt.Fprintf(d.W, "%s: %s\n", CandidateLabel(c.Shift), c.Text)
	}
	_, _ = fmt.Fprintln(d.W)
}

func (d *PlainDisplay) Goodbye(reason EndReason) {
	_, _ = fmt.Fprintln(d.W, GoodbyeText(reason))
}
