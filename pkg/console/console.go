// Package console is the terminal boundary of the games: line prompts,
// validated retry loops and colored output.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/parlor/internal/types"
	"github.com/fadedpez/parlor/pkg/entities"
	"github.com/fatih/color"
)

// Console reads answers line by line from in and writes to out
type Console struct {
	in  *bufio.Reader
	out io.Writer

	title   *color.Color
	label   *color.Color
	success *color.Color
	failure *color.Color
	notice  *color.Color
	red     *color.Color
}

// Option configures a Console
type Option func(*Console)

// WithColor turns styling on or off. When on, fatih/color still drops the
// escape codes if stdout is not a terminal.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		if enabled {
			return
		}
		for _, style := range c.styles() {
			style.DisableColor()
		}
	}
}

// New creates a console over the given reader and writer
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:      bufio.NewReader(in),
		out:     out,
		title:   color.New(color.FgCyan, color.Bold),
		label:   color.New(color.FgCyan),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed),
		notice:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Console) styles() []*color.Color {
	return []*color.Color{c.title, c.label, c.success, c.failure, c.notice, c.red}
}

// Prompt writes label and reads one line. The line ending is removed and
// nothing else, so " h" stays " h". io.EOF is returned once input is closed.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Printf writes formatted text without styling
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line without styling
func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// Title writes a heading line
func (c *Console) Title(format string, args ...interface{}) {
	c.title.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Success writes a line announcing something good for the player
func (c *Console) Success(format string, args ...interface{}) {
	c.success.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Failure writes a line announcing a loss or a rejected answer
func (c *Console) Failure(format string, args ...interface{}) {
	c.failure.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Notice writes a neutral highlighted line
func (c *Console) Notice(format string, args ...interface{}) {
	c.notice.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Label styles a field name such as "Dealer's hand:"
func (c *Console) Label(text string) string {
	return c.label.Sprint(text)
}

// Card renders a card, hearts and diamonds in red
func (c *Console) Card(card entities.Card) string {
	if card.Suit.Red() {
		return c.red.Sprint(card.String())
	}
	return card.String()
}

// Cards renders cards separated by ", "
func (c *Console) Cards(cards []entities.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = c.Card(card)
	}
	return strings.Join(parts, ", ")
}

// Ask prompts with label until parse accepts the answer. Rejections print
// the error's user message and prompt again; read errors end the loop.
func Ask[T any](c *Console, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := c.Prompt(label)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}

		c.Failure("%s", types.UserMessage(err))
	}
}
