// apps/go-cli/assets/embed.go
//
// Embedded default word source, used when no WORDS_FILE is configured.

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// DefaultWords opens the embedded word list.
func DefaultWords() (fs.File, error) {
	return FS.Open("words.txt")
}
