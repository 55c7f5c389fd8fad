package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/germanamz/caesar/pkg/caesar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript feeds script line by line to a plain session and returns what
// was printed.
func runScript(t *testing.T, script string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	d := NewPlainDisplay(&out)
	s := New(NewLinePrompter(strings.NewReader(script), d), d)

	err := s.Run(context.Background())
	return out.String(), err
}

func TestRunEncryptOnce(t *testing.T) {
	out, err := runScript(t, "e\nHello, World!\n3\nn\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, IntroText))
	assert.Contains(t, out, OperationPrompt)
	assert.Contains(t, out, "Enter the message to be encrypted: ")
	assert.Contains(t, out, "Encoding with shift of 3...")
	assert.Contains(t, out, "Encrypted message: Khoor, Zruog!")
	assert.True(t, strings.HasSuffix(out, "Exiting program.\n"))
}

func TestRunDecryptThenRepeat(t *testing.T) {
	out, err := runScript(t, "decrypt\nKhoor, Zruog!\n3\nyes\nE\nabcXYZ\n1\nno\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Enter the message to be decrypted: ")
	assert.Contains(t, out, "Decoding with shift of 3...")
	assert.Contains(t, out, "Decrypted message: Hello, World!")
	assert.Contains(t, out, "Encrypted message: bcdYZA")
	assert.Equal(t, 2, strings.Count(out, OperationPrompt))
}

func TestRunAllShifts(t *testing.T) {
	out, err := runScript(t, "e\nabc\nA\nn\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Encoding with all shifts...")
	for s := caesar.MinShift; s <= caesar.MaxShift; s++ {
		assert.Contains(t, out, CandidateLabel(s)+": "+caesar.Encode("abc", int(s))+"\n")
	}
	assert.Less(t, strings.Index(out, "Shift 1: bcd"), strings.Index(out, "Shift 2: cde"))
	assert.Less(t, strings.Index(out, "Shift 24: yza"), strings.Index(out, "Shift 25: zab"))
	assert.NotContains(t, out, "Encrypted message:")
}

func TestRunRepromptsOnInvalidInput(t *testing.T) {
	script := strings.Join([]string{
		"rot13", "", // bad operation twice
		"e",
		"   ", "", // blank messages
		"attack at dawn",
		"26", "0", "-1", "x", // bad shifts
		"13",
		"perhaps", // bad answer
		"n",
	}, "\n") + "\n"

	out, err := runScript(t, script)
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, ErrInvalidOperation.Hint))
	assert.Equal(t, 2, strings.Count(out, ErrEmptyMessage.Hint))
	assert.Equal(t, 4, strings.Count(out, ErrInvalidShift.Hint))
	assert.Equal(t, 1, strings.Count(out, ErrInvalidAnswer.Hint))
	assert.Equal(t, 5, strings.Count(out, ShiftPrompt))
	assert.Contains(t, out, "Encrypted message: nggnpx ng qnja")
}

func TestRunQuitAtEveryPrompt(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "operation", script: "q\n"},
		{name: "message", script: "e\nquit\n"},
		{name: "shift", script: "d\nabc\nQ\n"},
		{name: "repeat", script: "e\nabc\n1\nquit\n"},
		{name: "after invalid", script: "e\n\nq\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runScript(t, tt.script)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(out, "Ending program.\n"), out)
		})
	}
}

func TestRunQuitSkipsRemainingPrompts(t *testing.T) {
	out, err := runScript(t, "d\nabc\nq\nn\n")
	require.NoError(t, err)
	assert.NotContains(t, out, RepeatPrompt)
	assert.NotContains(t, out, "Decoding")
}

func TestRunInputClosed(t *testing.T) {
	_, err := runScript(t, "e\nabc\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Contains(t, err.Error(), "choose-shift")
}

func TestRunLastLineWithoutNewline(t *testing.T) {
	out, err := runScript(t, "e\nabc\n1\nn")
	require.NoError(t, err)
	assert.Contains(t, out, "Encrypted message: bcd")
}

func TestRunWindowsLineEndings(t *testing.T) {
	out, err := runScript(t, "e\r\nabc\r\n2\r\nn\r\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Encrypted message: cde\n")
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	d := NewPlainDisplay(&out)
	err := New(NewLinePrompter(strings.NewReader("e\n"), d), d).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// scriptedPrompter returns canned answers without any parsing.
type scriptedPrompter struct {
	ops     []Operation
	message string
	shift   ShiftChoice
	panics  bool
	err     error
}

func (p *scriptedPrompter) Operation(context.Context) (Operation, error) {
	if p.panics {
		panic("keyboard on fire")
	}
	if len(p.ops) == 0 {
		return 0, ErrQuit
	}
	op := p.ops[0]
	p.ops = p.ops[1:]
	return op, nil
}

func (p *scriptedPrompter) Message(context.Context, Operation) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.message, nil
}

func (p *scriptedPrompter) Shift(context.Context) (ShiftChoice, error) {
	return p.shift, nil
}

func (p *scriptedPrompter) Repeat(context.Context) (bool, error) {
	return len(p.ops) > 0, nil
}

// recordingDisplay keeps what the session asked it to render.
type recordingDisplay struct {
	results    []string
	candidates [][]caesar.Candidate
	goodbyes   []EndReason
}

func (d *recordingDisplay) Intro()                                {}
func (d *recordingDisplay) Prompt(string)                         {}
func (d *recordingDisplay) Invalid(*InputError)                   {}
func (d *recordingDisplay) Working(caesar.Direction, ShiftChoice) {}

func (d *recordingDisplay) Result(_ caesar.Direction, text string) {
	d.results = append(d.results, text)
}

func (d *recordingDisplay) Candidates(_ caesar.Direction, c []caesar.Candidate) {
	d.candidates = append(d.candidates, c)
}

func (d *recordingDisplay) Goodbye(r EndReason) {
	d.goodbyes = append(d.goodbyes, r)
}

func TestRunWithCustomPrompter(t *testing.T) {
	p := &scriptedPrompter{ops: []Operation{Encrypt, Decrypt}, message: "Caesar", shift: ShiftChoice{Shift: 4}}
	d := &recordingDisplay{}

	require.NoError(t, New(p, d).Run(context.Background()))

	assert.Equal(t, []string{"Geiwev", "Ywaown"}, d.results)
	assert.Equal(t, []EndReason{EndDeclined}, d.goodbyes)
}

func TestRunBruteForceWithCustomPrompter(t *testing.T) {
	p := &scriptedPrompter{ops: []Operation{Decrypt}, message: "Khoor", shift: ShiftChoice{All: true}}
	d := &recordingDisplay{}

	require.NoError(t, New(p, d).Run(context.Background()))

	require.Len(t, d.candidates, 1)
	assert.Len(t, d.candidates[0], 25)
	assert.Equal(t, "Hello", d.candidates[0][2].Text)
	assert.Empty(t, d.results)
}

func TestRunRecoversPanic(t *testing.T) {
	p := &scriptedPrompter{panics: true}

	err := New(p, &recordingDisplay{}).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
	assert.Contains(t, err.Error(), "keyboard on fire")
}

func TestRunReturnsPrompterFault(t *testing.T) {
	boom := errors.New("boom")
	p := &scriptedPrompter{ops: []Operation{Encrypt}, err: boom}
	d := &recordingDisplay{}

	err := New(p, d).Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "enter-message")
	assert.Empty(t, d.goodbyes)
}

func TestRunLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var out bytes.Buffer
	d := NewPlainDisplay(&out)
	s := New(NewLinePrompter(strings.NewReader("e\nabc\n1\nn\n"), d), d, WithLogger(log))
	require.NoError(t, s.Run(context.Background()))

	logs := buf.String()
	assert.Contains(t, logs, "session started")
	assert.Contains(t, logs, "state transition")
	assert.Contains(t, logs, "from=choose-shift")
	assert.Contains(t, logs, "to=execute")
	assert.Contains(t, logs, "executing")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "choose-operation", ChooseOperation.String())
	assert.Equal(t, "terminate", Terminate.String())
	assert.Equal(t, "state(42)", State(42).String())
}
