// apps/go-cli/internal/input/validate.go
//
// Shape checks for raw guesses typed by the player.
//
// Rules, most specific first:
//  1. empty                                     → EmptyInput
//  2. wrong length, letters only                → Length
//  3. contains a digit and no symbol            → NumericCharacter
//  4. contains a symbol (digits or not)         → SpecialCharacter
//  5. anything else that is not a 5-letter word → NonAlphabetic
//
// A symbol is any rune that is neither a digit nor an alphabet letter;
// Ñ counts as a letter.
//
// Leading and trailing whitespace is trimmed before any rule runs, so
// " crane " is accepted and a blank line is EmptyInput. Whitespace inside
// the word ("cr ne") is still a symbol.

package input

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Kind classifies a ValidationError.
type Kind uint8

const (
	EmptyInput Kind = iota + 1
	Length
	NumericCharacter
	SpecialCharacter
	NonAlphabetic
)

var (
	ErrEmptyInput       = errors.New("the word cannot be empty")
	ErrLength           = errors.New("the word must be exactly 5 letters long")
	ErrNumericCharacter = errors.New("numbers are not accepted")
	ErrSpecialCharacter = errors.New("special characters are not accepted")
	ErrNonAlphabetic    = errors.New("only letters are accepted")
)

var kindErrs = map[Kind]error{
	EmptyInput:       ErrEmptyInput,
	Length:           ErrLength,
	NumericCharacter: ErrNumericCharacter,
	SpecialCharacter: ErrSpecialCharacter,
	NonAlphabetic:    ErrNonAlphabetic,
}

func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty_input"
	case Length:
		return "length"
	case NumericCharacter:
		return "numeric_character"
	case SpecialCharacter:
		return "special_character"
	case NonAlphabetic:
		return "non_alphabetic"
	}
	return "unknown"
}

// ValidationError reports why raw input is not a guess. It matches the
// per-kind sentinel under errors.Is.
type ValidationError struct {
	Kind  Kind
	Input string
}

func (e *ValidationError) Error() string { return kindErrs[e.Kind].Error() }

func (e *ValidationError) Unwrap() error { return kindErrs[e.Kind] }

// Validate turns raw player input into a Word in canonical case.
func Validate(raw string) (game.Word, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return game.Word{}, &ValidationError{Kind: EmptyInput, Input: raw}
	}

	var digit, special bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case !game.IsLetter(r):
			special = true
		}
	}
	length := utf8.RuneCountInString(s) != game.WordLength

	var kind Kind
	switch {
	case length && !digit && !special:
		kind = Length
	case special:
		kind = SpecialCharacter
	case digit:
		kind = NumericCharacter
	}
	if kind != 0 {
		return game.Word{}, &ValidationError{Kind: kind, Input: raw}
	}

	w, err := game.ParseWord(s)
	if err != nil {
		return game.Word{}, &ValidationError{Kind: NonAlphabetic, Input: raw}
	}
	return w, nil
}
