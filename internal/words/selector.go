// apps/go-cli/internal/words/selector.go
//
// Secret Selector: picks the secret word for each new session.

package words

import (
	"math/rand/v2"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Selector supplies the secret for a new session.
type Selector interface {
	Select() game.Word
}

// RandomSelector draws uniformly from a fixed word list. Each call is an
// independent draw over the whole list.
type RandomSelector struct {
	words []game.Word
	rng   *rand.Rand
}

// NewRandomSelector validates words up front so an empty source fails at
// startup rather than mid-game.
func NewRandomSelector(words []game.Word, rng *rand.Rand) (*RandomSelector, error) {
	if len(words) == 0 {
		return nil, ErrEmptySource
	}
	return &RandomSelector{words: words, rng: rng}, nil
}

// NewRNG returns a PCG source seeded with seed, or from the clock when seed is 0.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (s *RandomSelector) Select() game.Word {
	return s.words[s.rng.IntN(len(s.words))]
}

// DailySelector returns the same word for everyone on a given UTC date.
type DailySelector struct {
	words []game.Word
	salt  string
	now   func() time.Time
}

// NewDailySelector builds a selector keyed by salt. now defaults to time.Now.
func NewDailySelector(words []game.Word, salt string, now func() time.Time) (*DailySelector, error) {
	if len(words) == 0 {
		return nil, ErrEmptySource
	}
	if now == nil {
		now = time.Now
	}
	return &DailySelector{words: words, salt: salt, now: now}, nil
}

func (s *DailySelector) Select() game.Word {
	return s.words[daily.WordIndex(s.now(), s.salt, len(s.words))]
}
