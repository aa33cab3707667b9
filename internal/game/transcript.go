// apps/go-cli/internal/game/transcript.go
//
// Plain-text transcript of a finished session, handed to history sinks.

package game

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the day-first layout used inside transcripts.
const TimestampLayout = "02-01-2006 15:04:05"

// Transcript is the recordable form of a finished session.
type Transcript struct {
	SessionID  string
	FinishedAt time.Time
	Outcome    Outcome
	Secret     Word
	Attempts   int
	Text       string
}

// BuildTranscript renders s as of at. The text contains the timestamp, one
// annotated line per attempt, and the outcome line:
//
//	[C] = right letter, right place
//	(C) = right letter, wrong place
//	 C  = letter not in the word
func BuildTranscript(s *Session, at time.Time) Transcript {
	var b strings.Builder
	b.WriteString("GAME DATE AND TIME:\n---------------------\n")
	b.WriteString(at.Format(TimestampLayout))
	b.WriteString("\n\nYOUR ATTEMPTS:\n-----------\n")
	for _, a := range s.attempts {
		fmt.Fprintf(&b, "%d. %s\n", a.Index, Annotate(a))
	}
	b.WriteString(OutcomeLine(s))
	b.WriteByte('\n')

	return Transcript{
		SessionID:  s.id,
		FinishedAt: at,
		Outcome:    s.Outcome(),
		Secret:     s.secret,
		Attempts:   len(s.attempts),
		Text:       b.String(),
	}
}

// Annotate renders one attempt without color: [X] match, (X) present, " X " absent.
func Annotate(a Attempt) string {
	var b strings.Builder
	for i, r := range a.Guess {
		switch a.Feedback[i] {
		case Match:
			fmt.Fprintf(&b, "[%c]", r)
		case Present:
			fmt.Fprintf(&b, "(%c)", r)
		default:
			fmt.Fprintf(&b, " %c ", r)
		}
	}
	return b.String()
}

// OutcomeLine is the closing sentence of a transcript.
func OutcomeLine(s *Session) string {
	switch s.state {
	case Won:
		last, _ := s.Last()
		return "Bravo! You guessed the secret word: " + last.Guess.String()
	case Lost:
		return "Bad luck, you lost. The secret word was: " + s.secret.String()
	default:
		return "Game abandoned."
	}
}
