package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/history"
	"github.com/robalobadob/wordle/apps/go-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

func newServeCmd(a *app) *cobra.Command {
	var addr, origin string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve single-player games over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}
			// the interactive default (warn) hides request logs
			if zerolog.GlobalLevel() > zerolog.InfoLevel && !a.verbose {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			rnd, err := words.NewRandomSelector(a.words, words.NewRNG(a.cfg.Seed))
			if err != nil {
				return err
			}
			daily, err := words.NewDailySelector(a.words, a.cfg.DailySalt, nil)
			if err != nil {
				return err
			}
			rec, err := a.recorder()
			if err != nil {
				return err
			}

			srv := httpserver.New(httpserver.Options{
				Store:        store.NewMemoryStore(),
				Selector:     rnd,
				Daily:        daily,
				Sink:         history.Guard(rec),
				JWTSecret:    a.cfg.JWTSecret,
				ClientOrigin: origin,
			})
			hs := &http.Server{Addr: addr, Handler: srv.Handler(), ReadHeaderTimeout: 5 * time.Second}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = hs.Shutdown(shutdownCtx)
			}()

			log.Info().Str("addr", addr).Int("words", len(a.words)).Msg("starting wordle server")
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: HTTP_ADDR)")
	cmd.Flags().StringVar(&origin, "origin", "", "allowed CORS origin")
	return cmd
}
