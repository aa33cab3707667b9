package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-cli/internal/cli"
	"github.com/robalobadob/wordle/apps/go-cli/internal/config"
	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/history"
	"github.com/robalobadob/wordle/apps/go-cli/internal/words"
)

// app carries what every subcommand needs once config is loaded.
type app struct {
	cfg   *config.Config
	words []game.Word

	// flag overrides
	wordsFile string
	seed      uint64
	verbose   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the secret five letter word in six tries",
		Long: `wordle picks a secret five letter word and gives you six tries to find it.

After each guess every letter is marked:
  green   right letter, right place
  yellow  right letter, wrong place
  plain   the word has no (more) of that letter

Run without a subcommand to play.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := words.NewRandomSelector(a.words, words.NewRNG(a.cfg.Seed))
			if err != nil {
				return err
			}
			return a.play(cmd, sel, true)
		},
	}
	root.PersistentFlags().StringVarP(&a.wordsFile, "words", "w", "", "word source file (default: WORDS_FILE or the built-in list)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.Flags().Uint64Var(&a.seed, "seed", 0, "random seed for reproducible games (default: WORDLE_SEED or the clock)")

	root.AddCommand(newDailyCmd(a), newServeCmd(a), newHistoryCmd(a))
	return root
}

// setup loads config, configures logging and reads the word source. An empty
// source stops here, before any game starts.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.wordsFile != "" {
		cfg.WordsFile = a.wordsFile
	}
	if a.seed != 0 {
		cfg.Seed = a.seed
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})

	if cmd.Name() == "history" {
		return nil
	}
	a.words, err = words.Load(cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("loading word source: %w", err)
	}
	log.Debug().Int("words", len(a.words)).Str("file", cfg.WordsFile).Msg("word source loaded")
	return nil
}

// recorder builds the configured history sinks: always the transcript files,
// plus the SQLite log when HISTORY_DB is set.
func (a *app) recorder() (history.Recorder, error) {
	recs := history.Multi{history.NewFileRecorder(a.cfg.HistoryDir)}
	if a.cfg.HistoryDB != "" {
		db, err := history.NewSQLiteLog(a.cfg.HistoryDB)
		if err != nil {
			return nil, fmt.Errorf("opening history db: %w", err)
		}
		recs = append(recs, db)
	}
	return recs, nil
}

func (a *app) play(cmd *cobra.Command, sel words.Selector, replay bool) error {
	rec, err := a.recorder()
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	h := cli.New(cli.Options{
		In:                        cmd.InOrStdin(),
		Out:                       cmd.OutOrStdout(),
		ErrOut:                    cmd.ErrOrStderr(),
		Selector:                  sel,
		Sink:                      history.Guard(rec),
		Replay:                    replay,
		ShowSecret:                a.cfg.ShowSecret,
		MaxInvalidResponses:       a.cfg.MaxInvalidResponses,
		// Keep asking; nothing else happens to players who never answer.
		OnRepeatedInvalidResponse: func() { fmt.Fprintln(errOut, "Still waiting for a yes or a no.") },
	})
	return h.Run(cmd.Context())
}
