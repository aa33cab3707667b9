// apps/go-cli/internal/httpserver/server.go
//
// Optional HTTP host for single-player sessions (`wordle serve`).
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /daily/new, POST /game/guess.
//   - Signed game tokens: a client may only guess on the session it was given.
//   - Recording finished sessions through the history sink.
//
// Notes:
//   - Sessions live in the store until they finish, then are recorded and dropped.
//   - The secret is only ever sent back once the session is lost.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/history"
	"github.com/robalobadob/wordle/apps/go-cli/internal/input"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// Options wires a Server. Selector is required; Daily enables /daily/new.
type Options struct {
	Store        store.Store
	Selector     words.Selector
	Daily        words.Selector
	Sink         history.Sink
	JWTSecret    string
	ClientOrigin string
	TokenTTL     time.Duration
	Now          func() time.Time
}

// Server bundles router, session store, selectors and the history sink.
type Server struct {
	r    *chi.Mux
	opts Options

	// selectors are not safe for concurrent use
	selectMu sync.Mutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Sink == nil {
		opts.Sink = history.Guard(nil)
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","POST /daily/new","POST /game/guess"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "sessions": s.opts.Store.Len()})
	})

	s.r.Post("/game/new", s.handleNew(opts.Selector))
	if opts.Daily != nil {
		s.r.Post("/daily/new", s.handleNew(opts.Daily))
	}
	s.r.Post("/game/guess", s.handleGuess)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Handler exposes the router (useful for tests and custom http.Servers).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors allows a single browser origin; with no origin configured it is a no-op.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if origin == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ GAME ---------------------------------------

type newGameRes struct {
	GameID     string `json:"gameId"`
	Token      string `json:"token"`
	WordLength int    `json:"wordLength"`
	MaxTries   int    `json:"maxTries"`
}

// handleNew starts a session with a secret from sel and returns its token.
func (s *Server) handleNew(sel words.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.selectMu.Lock()
		secret := sel.Select()
		s.selectMu.Unlock()

		g := game.NewSession(secret)
		tok, err := s.signToken(g.ID())
		if err != nil {
			log.Error().Err(err).Msg("sign game token")
			writeError(w, http.StatusInternalServerError, "sign_failed")
			return
		}
		if err := s.opts.Store.Save(r.Context(), g); err != nil {
			log.Error().Err(err).Msg("save game")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}
		log.Info().Str("gameId", g.ID()).Str("path", r.URL.Path).Msg("game started")
		_ = json.NewEncoder(w).Encode(newGameRes{
			GameID:     g.ID(),
			Token:      tok,
			WordLength: game.WordLength,
			MaxTries:   game.MaxTries,
		})
	}
}

type guessReq struct {
	Guess string `json:"guess"`
}

type guessRes struct {
	Feedback  game.Feedback `json:"feedback"`
	State     string        `json:"state"` // "playing" | "won" | "lost"
	Remaining int           `json:"remaining"`
	Secret    string        `json:"secret,omitempty"`
}

// handleGuess validates and applies a guess to the token's session. Finished
// sessions are recorded and dropped from the store.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	id, err := s.parseToken(bearer(r))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_token")
		return
	}
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word, err := input.Validate(req.Guess)
	if err != nil {
		var verr *input.ValidationError
		if errors.As(err, &verr) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": verr.Error(), "kind": verr.Kind.String()})
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_guess")
		return
	}

	var (
		res        guessRes
		transcript *game.Transcript
	)
	err = s.opts.Store.Update(r.Context(), id, func(g *game.Session) error {
		a, err := g.Guess(word)
		if err != nil {
			return err
		}
		res = guessRes{Feedback: a.Feedback, State: g.State().String(), Remaining: g.Remaining()}
		if g.State() == game.Lost {
			res.Secret = g.Secret().String()
		}
		if g.State().Terminal() {
			t := game.BuildTranscript(g, s.opts.Now())
			transcript = &t
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrSessionFinished):
		writeError(w, http.StatusConflict, "game_finished")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", id).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if transcript != nil {
		// the session is dropped below, so the write must outlive the request
		s.opts.Sink.Record(context.WithoutCancel(r.Context()), *transcript)
		if err := s.opts.Store.Delete(r.Context(), id); err != nil {
			log.Warn().Err(err).Str("gameId", id).Msg("drop finished game")
		}
		log.Info().Str("gameId", id).Str("state", res.State).Msg("game finished")
	}
	_ = json.NewEncoder(w).Encode(res)
}

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
