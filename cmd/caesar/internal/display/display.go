// Package display renders the caesar session on a terminal with lipgloss
// styles and a glamour-rendered intro.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/germanamz/caesar/cmd/caesar/internal/styles"
	"github.com/germanamz/caesar/pkg/caesar"
	"github.com/germanamz/caesar/pkg/session"
)

const introMarkdown = "# Caesar cipher\n\n" +
	"Shift every letter of a message by a fixed amount (1-25) to **encrypt** or **decrypt** it. " +
	"Answer `all` at the shift prompt to list every possible shift.\n\n" +
	session.IntroText + "\n"

const ellipsis = "..."

// Options tunes a Console.
type Options struct {
	// Banner renders the markdown intro instead of the one-line hint.
	Banner bool
	// Width caps the display width of brute-force rows; 0 disables
	// truncation. A single result is always printed in full.
	Width int
}

// Console is a session.Display writing styled text to a terminal.
type Console struct {
	w     io.Writer
	theme styles.Theme
	opts  Options
	md    *glamour.TermRenderer
}

// New creates a Console writing to w with theme.
func New(w io.Writer, theme styles.Theme, opts Options) *Console {
	c := &Console{w: w, theme: theme, opts: opts}
	if opts.Banner {
		c.md = newMarkdownRenderer(theme.Plain())
	}
	return c
}

func newMarkdownRenderer(plain bool) *glamour.TermRenderer {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
	if plain {
		opts = append(opts,
			glamour.WithStandardStyle(glamourstyles.NoTTYStyle),
			glamour.WithColorProfile(termenv.Ascii),
		)
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil
	}
	return r
}

func (c *Console) Intro() {
	if c.md != nil {
		if out, err := c.md.Render(introMarkdown); err == nil {
			_, _ = fmt.Fprint(c.w, out)
			return
		}
	}
	_, _ = fmt.Fprintln(c.w, c.theme.Intro.Render(session.IntroText))
}

func (c *Console) Prompt(label string) {
	_, _ = fmt.Fprint(c.w, "\n"+c.theme.Prompt.Render(strings.TrimRight(label, " "))+" ")
}

func (c *Console) Invalid(err *session.InputError) {
	_, _ = fmt.Fprintln(c.w, c.theme.Error.Render("✗ Invalid input. "+err.Hint))
}

func (c *Console) Working(dir caesar.Direction, choice session.ShiftChoice) {
	_, _ = fmt.Fprintf(c.w, "\n%s\n", c.theme.Working.Render(session.WorkingText(dir, choice)))
}

func (c *Console) Result(dir caesar.Direction, text string) {
	label := session.ResultLabel(dir) + ": "
	_, _ = fmt.Fprintln(c.w, c.theme.Label.Render(label)+c.theme.Result.Render(text))
}

func (c *Console) Candidates(_ caesar.Direction, candidates []caesar.Candidate) {
	labelWidth := runewidth.StringWidth(session.CandidateLabel(caesar.MaxShift) + ":")

	for i, cand := range candidates {
		branch := styles.TreeTee
		if i == len(candidates)-1 {
			branch = styles.TreeCorner
		}

		label := runewidth.FillRight(session.CandidateLabel(cand.Shift)+":", labelWidth) + " "
		prefixWidth := runewidth.StringWidth(branch) + runewidth.StringWidth(label)
		text := c.truncate(cand.Text, prefixWidth)

		_, _ = fmt.Fprintln(c.w, c.theme.Dim.Render(branch)+c.theme.Shift.Render(label)+c.theme.Result.Render(text))
	}
}

func (c *Console) Goodbye(reason session.EndReason) {
	_, _ = fmt.Fprintln(c.w, "\n"+c.theme.Goodbye.Render(session.GoodbyeText(reason)))
}

// truncate shortens text so that a row starting with prefixWidth cells fits
// in the configured width.
func (c *Console) truncate(text string, prefixWidth int) string {
	if c.opts.Width <= 0 {
		return text
	}
	avail := c.opts.Width - prefixWidth
	if avail <= runewidth.StringWidth(ellipsis) {
		return text
	}
	return runewidth.Truncate(text, avail, ellipsis)
}
