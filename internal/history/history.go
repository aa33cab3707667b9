// apps/go-cli/internal/history/history.go
//
// History Recorder sinks for finished sessions.
//
// Recorders return errors; the game never sees them. Hosts wrap recorders in
// Guard, which logs storage failures and carries on, so a full disk can never
// change a win into a crash.

package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Recorder persists a transcript.
type Recorder interface {
	Record(ctx context.Context, t game.Transcript) error
}

// StorageError wraps a failed write with the operation and target.
type StorageError struct {
	Op     string
	Target string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("history: %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Multi records to every recorder and joins their errors.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, t game.Transcript) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Sink is the recorder as seen by the game loop: it cannot fail.
type Sink interface {
	Record(ctx context.Context, t game.Transcript)
}

type guard struct{ r Recorder }

// Guard turns r into a Sink that logs storage errors instead of returning them.
// A nil recorder yields a sink that records nothing.
func Guard(r Recorder) Sink { return guard{r: r} }

func (g guard) Record(ctx context.Context, t game.Transcript) {
	if g.r == nil {
		return
	}
	if err := g.r.Record(ctx, t); err != nil {
		log.Error().Err(err).
			Str("session", t.SessionID).
			Str("outcome", t.Outcome.String()).
			Msg("failed to record game history")
		return
	}
	log.Debug().Str("session", t.SessionID).Msg("recorded game history")
}
