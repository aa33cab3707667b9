// apps/go-cli/internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create sessions with fixed dimensions (6 tries x 5 letters).
//   - Score guesses using the two-pass counting algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Guesses reach the engine already validated (see package input);
//     the engine does not re-check word shape.
//   - A Session is not safe for concurrent use. Hosts that share one across
//     goroutines (the HTTP store) serialize access themselves.
package game

import (
	"errors"

	"github.com/google/uuid"
)

// ErrSessionFinished is returned when guessing on a won or lost session.
var ErrSessionFinished = errors.New("game finished")

// Session holds the state of one play-through, from secret selection to
// win or loss. Nothing carries over between sessions.
type Session struct {
	id       string
	secret   Word
	attempts []Attempt
	state    State
}

// NewSession starts a session for secret.
func NewSession(secret Word) *Session {
	return &Session{
		id:       uuid.NewString(),
		secret:   secret,
		attempts: make([]Attempt, 0, MaxTries),
		state:    AwaitingGuess,
	}
}

// Guess scores guess against the secret and appends the attempt.
//
// State transitions:
//   - All positions Match → Won.
//   - Else if MaxTries attempts have been made → Lost.
//   - Else back to AwaitingGuess.
func (s *Session) Guess(guess Word) (Attempt, error) {
	if s.state.Terminal() {
		return Attempt{}, ErrSessionFinished
	}
	s.state = Evaluating

	a := Attempt{
		Index:    len(s.attempts) + 1,
		Guess:    guess,
		Feedback: Evaluate(s.secret, guess),
	}
	s.attempts = append(s.attempts, a)

	switch {
	case a.Feedback.Solved():
		s.state = Won
	case len(s.attempts) >= MaxTries:
		s.state = Lost
	default:
		s.state = AwaitingGuess
	}
	return a, nil
}

// ID is a unique identifier for the session, used by transcripts and stores.
func (s *Session) ID() string { return s.id }

// Secret returns the secret word. Hosts should only show it once the
// session is Lost.
func (s *Session) Secret() Word { return s.secret }

// State reports where the session is in its turn loop.
func (s *Session) State() State { return s.state }

// Outcome maps the state onto the three session outcomes.
func (s *Session) Outcome() Outcome {
	switch s.state {
	case Won:
		return OutcomeWon
	case Lost:
		return OutcomeLost
	default:
		return OutcomeUndecided
	}
}

// Remaining is MaxTries minus the attempts made so far.
func (s *Session) Remaining() int { return MaxTries - len(s.attempts) }

// Attempts returns a copy of the attempt history in chronological order.
func (s *Session) Attempts() []Attempt {
	out := make([]Attempt, len(s.attempts))
	copy(out, s.attempts)
	return out
}

// Last returns the most recent attempt, if any.
func (s *Session) Last() (Attempt, bool) {
	if len(s.attempts) == 0 {
		return Attempt{}, false
	}
	return s.attempts[len(s.attempts)-1], true
}

// Progress grades how urgent the message after a failed attempt should be.
func (s *Session) Progress() Urgency {
	switch r := s.Remaining(); {
	case r <= 1:
		return FinalWarning
	case r == 2:
		return Warning
	default:
		return Encourage
	}
}

// Evaluate implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as Match.
//   - Count the secret letters left over at non-matching positions.
//
// Pass 2:
//   - Walk the non-matching guess positions left to right. A letter is
//     Present while leftover secret copies of it remain; each one consumes a
//     copy. Everything else is Absent.
//
// Walking left to right against the leftover count grants a letter exactly
// min(secret leftovers, guess leftovers) Present marks, leftmost first, so
// Match+Present for any letter never exceeds its count in the secret.
func Evaluate(secret, guess Word) Feedback {
	var res Feedback

	// leftover secret letters at non-matching positions
	counts := make(map[rune]int, WordLength)

	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			res[i] = Match
		} else {
			counts[secret[i]]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == Match {
			continue
		}
		if counts[guess[i]] > 0 {
			res[i] = Present
			counts[guess[i]]--
		} else {
			res[i] = Absent
		}
	}
	return res
}
