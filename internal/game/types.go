// apps/go-cli/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word:         a fixed-length, upper-cased guess or secret.
//   - LetterStatus: per-letter result of a guess (match/present/absent).
//   - Feedback:     the statuses of one guess, index-aligned with it.
//   - Attempt:      one scored guess and its 1-based ordinal.
//   - State/Outcome/Urgency: session bookkeeping.

package game

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// WordLength is the number of letters in every secret and guess.
	WordLength = 5
	// MaxTries is the number of guesses a session allows.
	MaxTries = 6
)

// ErrNotAWord is returned by ParseWord for anything that is not exactly
// WordLength letters of the alphabet.
var ErrNotAWord = errors.New("not a five letter word")

// Word is an immutable five-letter word in canonical (upper) case.
type Word [WordLength]rune

// IsLetter reports whether r belongs to the game alphabet (A–Z plus Ñ),
// in either case.
func IsLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == 'ñ' || r == 'Ñ':
		return true
	}
	return false
}

// ParseWord normalizes s to upper case and checks it is a valid Word.
// Surrounding whitespace is not trimmed; callers decide on that.
func ParseWord(s string) (Word, error) {
	var w Word
	if utf8.RuneCountInString(s) != WordLength {
		return w, ErrNotAWord
	}
	i := 0
	for _, r := range s {
		if !IsLetter(r) {
			return Word{}, ErrNotAWord
		}
		w[i] = unicode.ToUpper(r)
		i++
	}
	return w, nil
}

// MustParseWord is ParseWord for constants and tests.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic("game: " + err.Error() + ": " + s)
	}
	return w
}

// String returns the word as text.
func (w Word) String() string {
	var b strings.Builder
	for _, r := range w {
		b.WriteRune(r)
	}
	return b.String()
}

// LetterStatus is the evaluation result for a single letter in a guess.
//   - Absent:  no credit left for this letter at this position.
//   - Present: letter is in the secret, but at a different position.
//   - Match:   letter is correct and in the correct position.
type LetterStatus uint8

const (
	Absent LetterStatus = iota
	Present
	Match
)

func (s LetterStatus) String() string {
	switch s {
	case Match:
		return "match"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// MarshalText lets Feedback serialize as ["match","absent",...] over JSON.
func (s LetterStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Feedback holds one status per guess position.
type Feedback [WordLength]LetterStatus

// Solved reports whether every position is a Match.
func (f Feedback) Solved() bool {
	for _, s := range f {
		if s != Match {
			return false
		}
	}
	return true
}

// Attempt is a scored guess. It is never modified after the session appends it.
type Attempt struct {
	Index    int // 1-based
	Guess    Word
	Feedback Feedback
}

// State is the position of a Session in its turn loop.
type State uint8

const (
	AwaitingGuess State = iota
	Evaluating
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Evaluating:
		return "evaluating"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == Won || s == Lost }

// Outcome is the result of a session: undecided until it reaches Won or Lost.
type Outcome uint8

const (
	OutcomeUndecided Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "undecided"
	}
}

// Urgency grades the progress message shown after a failed attempt.
type Urgency uint8

const (
	Encourage    Urgency = iota // more than two tries left
	Warning                     // exactly two tries left
	FinalWarning                // one try left
)
