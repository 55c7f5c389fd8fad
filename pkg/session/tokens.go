package session

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/germanamz/caesar/pkg/caesar"
)

// ErrQuit is returned by parsers and prompters when the user typed a quit
// token. It ends the session without error.
var ErrQuit = errors.New("session: quit requested")

// InputError reports input that is recovered by asking again. Hint is the
// user-facing correction shown before the prompt repeats.
type InputError struct {
	Field string
	Hint  string
}

func (e *InputError) Error() string {
	return "session: invalid " + e.Field + ": " + e.Hint
}

var (
	ErrInvalidOperation = &InputError{Field: "operation", Hint: "Please enter 'encrypt', 'decrypt', or 'quit'."}
	ErrEmptyMessage     = &InputError{Field: "message", Hint: "Please enter a non-empty message."}
	ErrInvalidShift     = &InputError{Field: "shift", Hint: "Please enter a number between 1 and 25, or 'A' for all shifts."}
	ErrInvalidAnswer    = &InputError{Field: "answer", Hint: "Please specify Yes or No."}
)

// Operation is the user's choice at the first prompt of every turn.
type Operation int

const (
	Encrypt Operation = iota + 1
	Decrypt
)

// Direction maps the operation onto the cipher direction.
func (o Operation) Direction() caesar.Direction {
	if o == Decrypt {
		return caesar.Decoding
	}
	return caesar.Encoding
}

func (o Operation) String() string {
	switch o {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return "none"
}

// ShiftChoice is either a single shift or a request for all of them.
type ShiftChoice struct {
	All   bool
	Shift caesar.Shift
}

func (c ShiftChoice) String() string {
	if c.All {
		return "all"
	}
	return strconv.Itoa(int(c.Shift))
}

var (
	quitTokens    = []string{"quit", "q"}
	encryptTokens = []string{"encrypt", "e", "encode"}
	decryptTokens = []string{"decrypt", "d", "decode"}
	allTokens     = []string{"all", "a"}
	yesTokens     = []string{"yes", "y"}
	noTokens      = []string{"no", "n"}
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsQuit reports whether s is a quit token.
func IsQuit(s string) bool {
	return slices.Contains(quitTokens, normalize(s))
}

// ParseOperation parses the answer to the encrypt/decrypt prompt.
func ParseOperation(s string) (Operation, error) {
	tok := normalize(s)
	switch {
	case slices.Contains(encryptTokens, tok):
		return Encrypt, nil
	case slices.Contains(decryptTokens, tok):
		return Decrypt, nil
	case slices.Contains(quitTokens, tok):
		return 0, ErrQuit
	}
	return 0, ErrInvalidOperation
}

// ParseMessage trims s and rejects blank input. A message consisting only of
// a quit token ends the session.
func ParseMessage(s string) (string, error) {
	msg := strings.TrimSpace(s)
	if msg == "" {
		return "", ErrEmptyMessage
	}
	if IsQuit(msg) {
		return "", ErrQuit
	}
	return msg, nil
}

// ParseShift accepts a decimal number in [1, 25], "a"/"all" or a quit token.
// Leading zeros are allowed; signs and non-ASCII digits are not.
func ParseShift(s string) (ShiftChoice, error) {
	tok := normalize(s)
	switch {
	case slices.Contains(allTokens, tok):
		return ShiftChoice{All: true}, nil
	case slices.Contains(quitTokens, tok):
		return ShiftChoice{}, ErrQuit
	case !isDigits(tok):
		return ShiftChoice{}, ErrInvalidShift
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return ShiftChoice{}, ErrInvalidShift
	}

	shift := caesar.Shift(n)
	if !shift.Valid() {
		return ShiftChoice{}, ErrInvalidShift
	}

	return ShiftChoice{Shift: shift}, nil
}

// ParseAnswer parses the run-again prompt. It returns true for yes.
func ParseAnswer(s string) (bool, error) {
	tok := normalize(s)
	switch {
	case slices.Contains(yesTokens, tok):
		return true, nil
	case slices.Contains(noTokens, tok):
		return false, nil
	case slices.Contains(quitTokens, tok):
		return false, ErrQuit
	}
	return false, ErrInvalidAnswer
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
