// apps/go-cli/internal/words/words.go
//
// Word Source: loads candidate secret words.
//
// Format:
//   - Whitespace-delimited tokens across any number of lines.
//   - Lines whose first non-blank rune is '#' are comments.
//   - Tokens are upper-cased; tokens that are not 5 alphabet letters are
//     skipped (and counted in the debug log).
//
// An empty or missing source is a startup error (ErrEmptySource), never a
// game-time one.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// ErrEmptySource means the source yielded no usable words.
var ErrEmptySource = errors.New("words: source is empty or contains no words")

// Parse reads every token in r as a candidate word.
func Parse(r io.Reader) ([]game.Word, error) {
	var (
		out     []game.Word
		skipped int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			w, err := game.ParseWord(tok)
			if err != nil {
				skipped++
				continue
			}
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("kept", len(out)).Msg("ignored tokens that are not 5 letter words")
	}
	if len(out) == 0 {
		return nil, ErrEmptySource
	}
	return out, nil
}

// LoadFile reads the word source at path. A missing file is reported as
// ErrEmptySource wrapping the open error.
func LoadFile(path string) ([]game.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptySource, err)
	}
	defer f.Close()
	return Parse(f)
}

// Default returns the embedded word list.
func Default() ([]game.Word, error) {
	f, err := assets.DefaultWords()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptySource, err)
	}
	defer f.Close()
	return Parse(f)
}

// Load reads path, or the embedded list when path is empty.
func Load(path string) ([]game.Word, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
