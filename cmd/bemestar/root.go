package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/config"
	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/internal/logging"
	"github.com/scrypster/bemestar/internal/notify"
	"github.com/scrypster/bemestar/internal/session"
	"github.com/scrypster/bemestar/internal/speech"
	"github.com/scrypster/bemestar/pkg/types"
)

// app carries what every subcommand needs. It is filled by the root
// command's PersistentPreRunE.
type app struct {
	cfg    *config.Config
	logger *zap.Logger

	// flags
	verbose  bool
	demo     bool
	noEvents bool
	energy   int
	itemsArg string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bemestar",
		Short: "Rule-based mood, crisis, workload and goal assistant",
		Long: `bemestar classifies free text and an energy level into a mood tier,
a crisis-risk tier, a workload tier and an energy-aware goal recommendation.

Configuration comes from BEMESTAR_* environment variables and an optional
YAML policy file (BEMESTAR_POLICY_FILE).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if a.verbose {
				cfg.Log.Level = "debug"
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			a.cfg, a.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.demo, "demo", false, "seed the session with example goals and schedule items")
	pf.BoolVar(&a.noEvents, "no-events", false, "do not write event files for watchers")
	pf.IntVar(&a.energy, "energy", session.DefaultEnergy, "current energy level (1-10)")
	pf.StringVar(&a.itemsArg, "items", "", "YAML file with schedule items to load")

	root.AddCommand(
		a.moodCmd(),
		a.journalCmd(),
		a.dayCmd(),
		a.calendarCmd(),
		a.redistributeCmd(),
		a.restCmd(),
		a.goalCmd(),
		a.simulateCmd(),
		a.scenariosCmd(),
		a.progressCmd(),
		a.notificationsCmd(),
		a.speakCmd(),
		a.watchCmd(),
	)
	return root
}

// newSession builds a session from the loaded configuration and flags.
func (a *app) newSession() (*session.Session, error) {
	lex, err := a.cfg.LexiconSet()
	if err != nil {
		return nil, err
	}
	agg, err := engine.NewAggregator(a.cfg.Workload.Thresholds())
	if err != nil {
		return nil, err
	}

	opts := session.Options{
		Lexicons:      lex,
		Aggregator:    agg,
		ThinkingDelay: a.cfg.Session.ThinkingDelay,
		Speaker:       speech.NewLogSpeaker(a.logger),
		Voice:         speech.NewCannedVoice(a.cfg.Session.VoiceDelay),
		Locale:        a.cfg.Session.Locale,
		Logger:        a.logger,
		Demo:          a.demo,
	}
	if !a.noEvents {
		opts.Alerter = notify.NewEventWriter(a.cfg.Storage.DataPath)
	}

	s, err := session.New(opts)
	if err != nil {
		return nil, err
	}
	if err := s.SetEnergy(a.energy); err != nil {
		return nil, err
	}
	if a.itemsArg != "" {
		items, err := loadItems(a.itemsArg)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if _, err := s.AddItem(item); err != nil {
				return nil, fmt.Errorf("%s: %w", a.itemsArg, err)
			}
		}
	}
	return s, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// parseDay reads a YYYY-MM-DD flag value; empty means today.
func parseDay(value string) (types.Date, error) {
	if value == "" {
		return types.DateOf(time.Now()), nil
	}
	return types.ParseDate(value)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
