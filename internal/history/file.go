// apps/go-cli/internal/history/file.go
//
// FileRecorder writes one transcript file per finished session.

package history

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// FileRecorder writes transcripts into Dir, creating it if needed.
type FileRecorder struct {
	Dir string
}

func NewFileRecorder(dir string) *FileRecorder { return &FileRecorder{Dir: dir} }

// FileName builds a filesystem-safe name from the transcript timestamp,
// e.g. 18-10-2026_14_03_22_history.txt.
func FileName(at time.Time) string {
	r := strings.NewReplacer(":", "_", "/", "_", " ", "_")
	return r.Replace(at.Format(game.TimestampLayout)) + "_history.txt"
}

func (f *FileRecorder) Record(_ context.Context, t game.Transcript) error {
	if f.Dir != "" {
		if err := os.MkdirAll(f.Dir, 0o755); err != nil {
			return &StorageError{Op: "mkdir", Target: f.Dir, Err: err}
		}
	}

	// Two games finished in the same second get distinct files.
	path := filepath.Join(f.Dir, FileName(t.FinishedAt))
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		path = strings.TrimSuffix(path, ".txt") + "_" + shortID(t.SessionID) + ".txt"
		fh, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return &StorageError{Op: "create", Target: path, Err: err}
	}
	defer fh.Close()

	if _, err := fh.WriteString(t.Text); err != nil {
		return &StorageError{Op: "write", Target: path, Err: err}
	}
	if err := fh.Close(); err != nil {
		return &StorageError{Op: "close", Target: path, Err: err}
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
