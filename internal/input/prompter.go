// apps/go-cli/internal/input/prompter.go
//
// Line-oriented prompting over an injected reader, so games can be driven by
// a terminal or by a scripted strings.Reader in tests.

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Prompter writes prompts to out and reads answers line by line from in.
type Prompter struct {
	sc     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

// NewPrompter reads from in; prompts go to out and validation messages to errOut.
func NewPrompter(in io.Reader, out, errOut io.Writer) *Prompter {
	return &Prompter{sc: bufio.NewScanner(in), out: out, errOut: errOut}
}

// Line prints prompt and returns the next line without its newline.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.sc.Text(), "\r"), nil
}

// Guess keeps asking until the player types a valid word. There is no retry
// limit; it only gives up when the input closes.
func (p *Prompter) Guess() (game.Word, error) {
	for {
		line, err := p.Line("\nEnter a 5 letter word: ")
		if err != nil {
			return game.Word{}, err
		}
		w, err := Validate(line)
		if err == nil {
			return w, nil
		}
		var verr *ValidationError
		if errors.As(err, &verr) {
			log.Debug().Str("kind", verr.Kind.String()).Msg("rejected guess")
		}
		fmt.Fprintf(p.errOut, "Error: %s\n", err)
	}
}
