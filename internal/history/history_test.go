package history

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

var finishedAt = time.Date(2026, time.October, 18, 14, 3, 22, 0, time.UTC)

func wonTranscript(t *testing.T) game.Transcript {
	t.Helper()
	s := game.NewSession(game.MustParseWord("CRANE"))
	_, err := s.Guess(game.MustParseWord("SLATE"))
	require.NoError(t, err)
	_, err = s.Guess(game.MustParseWord("CRANE"))
	require.NoError(t, err)
	return game.BuildTranscript(s, finishedAt)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "18-10-2026_14_03_22_history.txt", FileName(finishedAt))
}

func TestFileRecorder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "trackers")
	rec := NewFileRecorder(dir)
	tr := wonTranscript(t)

	require.NoError(t, rec.Record(context.Background(), tr))
	b, err := os.ReadFile(filepath.Join(dir, FileName(finishedAt)))
	require.NoError(t, err)
	assert.Equal(t, tr.Text, string(b))

	// same second, different session
	other := wonTranscript(t)
	require.NoError(t, rec.Record(context.Background(), other))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileRecorderStorageError(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "trackers")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	err := NewFileRecorder(blocker).Record(context.Background(), wonTranscript(t))
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "mkdir", serr.Op)
}

type failing struct{ calls int }

func (f *failing) Record(context.Context, game.Transcript) error {
	f.calls++
	return errors.New("disk full")
}

type capture struct{ got []game.Transcript }

func (c *capture) Record(_ context.Context, t game.Transcript) error {
	c.got = append(c.got, t)
	return nil
}

func TestMultiRecordsEverywhere(t *testing.T) {
	f, c := &failing{}, &capture{}
	err := Multi{f, c}.Record(context.Background(), wonTranscript(t))
	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, f.calls)
	assert.Len(t, c.got, 1)
}

func TestGuardLogsAndSwallows(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	f := &failing{}
	tr := wonTranscript(t)
	assert.NotPanics(t, func() { Guard(f).Record(context.Background(), tr) })
	assert.Equal(t, 1, f.calls)
	assert.Contains(t, buf.String(), "disk full")
	assert.Contains(t, buf.String(), tr.SessionID)

	assert.NotPanics(t, func() { Guard(nil).Record(context.Background(), tr) })
}

func TestSQLiteRecorder(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "history.db")
	rec, err := OpenSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Close() })

	ctx := context.Background()
	first := wonTranscript(t)
	second := wonTranscript(t)
	second.FinishedAt = finishedAt.Add(time.Minute)
	require.NoError(t, rec.Record(ctx, first))
	require.NoError(t, rec.Record(ctx, second))

	err = rec.Record(ctx, first)
	var serr *StorageError
	assert.True(t, errors.As(err, &serr), "duplicate id is a storage error")

	rows, err := rec.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.SessionID, rows[0].ID)
	assert.Equal(t, "won", rows[0].Outcome)
	assert.Equal(t, 2, rows[0].Attempts)
	assert.Equal(t, first.Text, rows[1].Body)
	assert.True(t, rows[1].FinishedAt.Equal(finishedAt))

	// Reopening does not re-apply migrations or lose rows.
	require.NoError(t, rec.Close())
	rec, err = OpenSQLite(dsn)
	require.NoError(t, err)
	rows, err = rec.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSQLiteLogOpensPerRecord(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "history.db")
	l, err := NewSQLiteLog(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	first, second := wonTranscript(t), wonTranscript(t)
	require.NoError(t, l.Record(ctx, first))
	require.NoError(t, l.Record(ctx, second))

	// A duplicate insert still releases the handle, so the next write works.
	err = l.Record(ctx, first)
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	require.NoError(t, l.Record(ctx, wonTranscript(t)))

	db, err := OpenSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	rows, err := db.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestSQLiteLogOpenFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := NewSQLiteLog(filepath.Join(blocker, "history.db"))
	assert.Error(t, err)

	l := &SQLiteLog{DSN: filepath.Join(blocker, "history.db")}
	err = l.Record(context.Background(), wonTranscript(t))
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "open", serr.Op)
}
