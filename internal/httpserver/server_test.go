package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

type fixed struct{ w game.Word }

func (f fixed) Select() game.Word { return f.w }

type memSink struct {
	got     []game.Transcript
	ctxErrs []error
}

func (m *memSink) Record(ctx context.Context, t game.Transcript) {
	m.got = append(m.got, t)
	m.ctxErrs = append(m.ctxErrs, ctx.Err())
}

func newTestServer(t *testing.T) (*Server, *memSink, store.Store) {
	t.Helper()
	sink := &memSink{}
	st := store.NewMemoryStore()
	srv := New(Options{
		Store:     st,
		Selector:  fixed{game.MustParseWord("CRANE")},
		Daily:     fixed{game.MustParseWord("SLATE")},
		Sink:      sink,
		JWTSecret: "test-secret",
	})
	return srv, sink, st
}

func do(t *testing.T, srv *Server, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func newGame(t *testing.T, srv *Server, path string) newGameRes {
	t.Helper()
	rec := do(t, srv, http.MethodPost, path, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res newGameRes
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res
}

func TestHealth(t *testing.T) {
	srv, _, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"sessions":0}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestGameWin(t *testing.T) {
	srv, sink, st := newTestServer(t)
	g := newGame(t, srv, "/game/new")
	assert.Equal(t, game.WordLength, g.WordLength)
	assert.Equal(t, game.MaxTries, g.MaxTries)
	assert.Equal(t, 1, st.Len())

	rec := do(t, srv, http.MethodPost, "/game/guess", g.Token, `{"guess":"react"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"feedback":["present","present","match","present","absent"],"state":"playing","remaining":5}`, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/game/guess", g.Token, `{"guess":"CRANE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"feedback":["match","match","match","match","match"],"state":"won","remaining":4}`, rec.Body.String())

	require.Len(t, sink.got, 1)
	assert.Equal(t, g.GameID, sink.got[0].SessionID)
	assert.Equal(t, 0, st.Len(), "finished games are dropped")

	rec = do(t, srv, http.MethodPost, "/game/guess", g.Token, `{"guess":"CRANE"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGameLossRevealsSecret(t *testing.T) {
	srv, sink, _ := newTestServer(t)
	g := newGame(t, srv, "/game/new")

	var last map[string]any
	for i := 0; i < game.MaxTries; i++ {
		rec := do(t, srv, http.MethodPost, "/game/guess", g.Token, `{"guess":"toils"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		last = nil
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
		if i < game.MaxTries-1 {
			assert.NotContains(t, last, "secret")
		}
	}
	assert.Equal(t, "lost", last["state"])
	assert.Equal(t, "CRANE", last["secret"])
	require.Len(t, sink.got, 1)
	assert.Equal(t, game.OutcomeLost, sink.got[0].Outcome)
}

func TestDailyNew(t *testing.T) {
	srv, _, _ := newTestServer(t)
	g := newGame(t, srv, "/daily/new")
	rec := do(t, srv, http.MethodPost, "/game/guess", g.Token, `{"guess":"slate"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"won"`)
}

func TestGuessValidation(t *testing.T) {
	srv, _, _ := newTestServer(t)
	g := newGame(t, srv, "/game/new")

	rec := do(t, srv, http.MethodPost, "/game/guess", g.Token, `{"guess":"cr4ne"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"numbers are not accepted","kind":"numeric_character"}`, rec.Body.String())

	rec = do(t, srv, http.MethodPost, "/game/guess", g.Token, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad_json"}`, rec.Body.String())
}

func TestGuessTokens(t *testing.T) {
	srv, _, _ := newTestServer(t)
	_ = newGame(t, srv, "/game/new")

	rec := do(t, srv, http.MethodPost, "/game/guess", "", `{"guess":"crane"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, srv, http.MethodPost, "/game/guess", "garbage", `{"guess":"crane"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other := New(Options{Selector: fixed{game.MustParseWord("CRANE")}, JWTSecret: "other-secret"})
	forged, err := other.signToken("whatever")
	require.NoError(t, err)
	rec = do(t, srv, http.MethodPost, "/game/guess", forged, `{"guess":"crane"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired := New(Options{
		Selector:  fixed{game.MustParseWord("CRANE")},
		JWTSecret: "test-secret",
		Now:       func() time.Time { return time.Now().Add(-48 * time.Hour) },
	})
	old, err := expired.signToken("whatever")
	require.NoError(t, err)
	rec = do(t, srv, http.MethodPost, "/game/guess", old, `{"guess":"crane"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	valid, err := srv.signToken("unknown-game")
	require.NoError(t, err)
	rec = do(t, srv, http.MethodPost, "/game/guess", valid, `{"guess":"crane"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORS(t *testing.T) {
	srv := New(Options{Selector: fixed{game.MustParseWord("CRANE")}, ClientOrigin: "http://localhost:5173"})
	rec := do(t, srv, http.MethodOptions, "/game/new", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFinishedGameRecordedAfterClientGoesAway(t *testing.T) {
	srv, sink, st := newTestServer(t)
	g := newGame(t, srv, "/game/new")

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/game/guess", strings.NewReader(`{"guess":"crane"}`)).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+g.Token)
	cancel()
	srv.Handler().ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, sink.got, 1)
	assert.NoError(t, sink.ctxErrs[0], "recording must not see the request's cancellation")
	assert.Equal(t, 0, st.Len())
}
