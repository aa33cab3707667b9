// apps/go-cli/internal/cli/host.go
//
// Interactive host for the terminal game.
// Responsibilities:
//   - Run sessions: select a secret, prompt for guesses, print colored feedback.
//   - Record each finished session through the history sink.
//   - Ask "play again?" and count consecutive invalid answers; after
//     MaxInvalidResponses of them the OnRepeatedInvalidResponse hook fires.
//
// The hook does nothing unless the caller binds it.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/history"
	"github.com/robalobadob/wordle/apps/go-cli/internal/input"
	"github.com/robalobadob/wordle/apps/go-cli/internal/render"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

const (
	answerYes = "YES"
	answerNo  = "NO"
)

// Options configures a Host. In, Out and Selector are required.
type Options struct {
	In       io.Reader
	Out      io.Writer
	ErrOut   io.Writer // defaults to Out
	Selector words.Selector
	Sink     history.Sink // defaults to a sink that records nothing

	// Replay asks "play again?" after each session. The daily game turns it off.
	Replay              bool
	ShowSecret          bool
	MaxInvalidResponses int // defaults to 3

	// OnRepeatedInvalidResponse runs each time MaxInvalidResponses consecutive
	// invalid play-again answers have been given.
	OnRepeatedInvalidResponse func()

	Now func() time.Time
}

// Host drives sessions one after another over a line-oriented terminal.
type Host struct {
	opts   Options
	prompt *input.Prompter
	games  int
}

func New(opts Options) *Host {
	if opts.ErrOut == nil {
		opts.ErrOut = opts.Out
	}
	if opts.Sink == nil {
		opts.Sink = history.Guard(nil)
	}
	if opts.MaxInvalidResponses < 1 {
		opts.MaxInvalidResponses = 3
	}
	if opts.OnRepeatedInvalidResponse == nil {
		opts.OnRepeatedInvalidResponse = func() {}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Host{
		opts:   opts,
		prompt: input.NewPrompter(opts.In, opts.Out, opts.ErrOut),
	}
}

// Games reports how many sessions have been started.
func (h *Host) Games() int { return h.games }

// Run plays sessions until the player declines another or input ends.
// Running out of input is a normal way to quit and is not an error.
func (h *Host) Run(ctx context.Context) error {
	for {
		if _, err := h.PlaySession(ctx); err != nil {
			if errors.Is(err, input.ErrInputClosed) {
				return nil
			}
			return err
		}
		if !h.opts.Replay {
			return nil
		}
		again, err := h.playAgain()
		if err != nil {
			if errors.Is(err, input.ErrInputClosed) {
				return nil
			}
			return err
		}
		if !again {
			fmt.Fprintln(h.opts.Out, "\nI hope you enjoyed the game. See you next time!")
			return nil
		}
	}
}

// PlaySession plays one session to the end. An abandoned session (input
// closed mid-game) is not recorded.
func (h *Host) PlaySession(ctx context.Context) (game.Outcome, error) {
	h.games++
	out := h.opts.Out
	s := game.NewSession(h.opts.Selector.Select())
	log.Debug().Str("session", s.ID()).Int("game", h.games).Msg("session started")

	fmt.Fprintf(out, "\nStarting game #%d\n%s\n", h.games, render.Banner("START"))
	for !s.State().Terminal() {
		if h.opts.ShowSecret {
			fmt.Fprintf(out, "\nSecret word (testing only): %s", s.Secret())
		}
		w, err := h.prompt.Guess()
		if err != nil {
			log.Info().Str("session", s.ID()).Int("attempts", len(s.Attempts())).Msg("session abandoned")
			return game.OutcomeUndecided, err
		}
		a, err := s.Guess(w)
		if err != nil {
			return game.OutcomeUndecided, err
		}

		switch s.State() {
		case game.Won:
			fmt.Fprintf(out, "\n%s\n", render.Won(a.Guess))
		case game.Lost:
			fmt.Fprintf(out, "\n%s\n\nAll your attempts:\n%s", render.Lost(s.Secret()), render.History(s.Attempts()))
		default:
			fmt.Fprintf(out, "\n%s\nYour previous attempts:\n%s",
				render.Progress(s.Progress(), s.Remaining()), render.History(s.Attempts()))
		}
	}

	h.opts.Sink.Record(ctx, game.BuildTranscript(s, h.opts.Now()))
	fmt.Fprintln(out, render.Banner("END"))
	return s.Outcome(), nil
}

// playAgain asks until it gets YES or NO (any case).
func (h *Host) playAgain() (bool, error) {
	invalid := 0
	for {
		line, err := h.prompt.Line(fmt.Sprintf("\nPlay another game? Answer only %s or %s: ", answerYes, answerNo))
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case answerYes:
			return true, nil
		case answerNo:
			return false, nil
		}

		invalid++
		fmt.Fprintf(h.opts.ErrOut, "\nError: only %s or %s are accepted\n", answerYes, answerNo)
		limit := h.opts.MaxInvalidResponses
		if limit > 1 && invalid == limit-1 {
			fmt.Fprintf(h.opts.ErrOut, "Please answer only %s or %s.\n", strings.ToLower(answerYes), strings.ToLower(answerNo))
		}
		if invalid >= limit {
			log.Warn().Int("invalid", invalid).Msg("repeated invalid play-again answers")
			h.opts.OnRepeatedInvalidResponse()
			invalid = 0
		}
	}
}
