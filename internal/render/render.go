// apps/go-cli/internal/render/render.go
//
// Terminal presentation of feedback and progress, layered on game types.
// Nothing in package game depends on this.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Attempt colors each letter of the guess by its status.
func Attempt(a game.Attempt) string {
	var b strings.Builder
	for i, r := range a.Guess {
		b.WriteString(statusStyle(a.Feedback[i]).Render(string(r)))
	}
	return b.String()
}

func statusStyle(s game.LetterStatus) lipgloss.Style {
	switch s {
	case game.Match:
		return MatchStyle
	case game.Present:
		return PresentStyle
	default:
		return AbsentStyle
	}
}

// History renders every attempt, one per line.
func History(attempts []game.Attempt) string {
	var b strings.Builder
	for _, a := range attempts {
		b.WriteString(Attempt(a))
		b.WriteByte('\n')
	}
	return b.String()
}

// Progress is the message shown after a failed attempt, escalating as tries run out.
func Progress(u game.Urgency, remaining int) string {
	switch u {
	case game.FinalWarning:
		return FinalWarningStyle.Render(fmt.Sprintf("Last chance, only %d try left", remaining))
	case game.Warning:
		return WarningStyle.Render(fmt.Sprintf("No pressure, but you only have %d tries left", remaining))
	default:
		return EncourageStyle.Render(fmt.Sprintf("You're getting close, keep trying: %d tries left", remaining))
	}
}

// Won congratulates the player with the winning guess.
func Won(guess game.Word) string {
	return "Bravo! You guessed the secret word: " + WinStyle.Render(guess.String())
}

// Lost reveals the secret.
func Lost(secret game.Word) string {
	return LossStyle.Render("YOU LOST, BAD LUCK") + "\nThe secret word was: " + secret.String()
}

// Banner frames the start and end of a game.
func Banner(title string) string {
	return BannerStyle.Render(fmt.Sprintf("----------------%s----------------", title))
}
