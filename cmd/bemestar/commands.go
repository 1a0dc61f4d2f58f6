package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scrypster/bemestar/internal/engine"
	"github.com/scrypster/bemestar/internal/lexicon"
	"github.com/scrypster/bemestar/internal/notify"
	"github.com/scrypster/bemestar/internal/speech"
	"github.com/scrypster/bemestar/pkg/types"
)

// waitTimeout bounds how long a command waits for deferred replies.
const waitTimeout = time.Minute

func (a *app) moodCmd() *cobra.Command {
	var voice bool
	cmd := &cobra.Command{
		Use:   "mood [text...]",
		Short: "Send messages to the motivational chat and print the replies",
		Long: `Each argument is one chat message. Every message gets its own reply,
delivered after the thinking delay (BEMESTAR_THINKING_DELAY).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if voice {
				text, err := s.CaptureVoice(cmd.Context(), speech.ChannelMood)
				if err != nil {
					return err
				}
				args = append(args, text)
			}
			if len(args) == 0 {
				return fmt.Errorf("mood: at least one message is required")
			}
			for _, text := range args {
				if _, err := s.SendMood(text); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), waitTimeout)
			defer cancel()
			if err := s.Wait(ctx); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"messages":           s.Messages(),
				"contextual_message": s.ContextualMessage(),
			})
		},
	}
	cmd.Flags().BoolVar(&voice, "voice", false, "append a captured voice message")
	return cmd
}

func (a *app) journalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "journal <text>",
		Short: "Write a journal entry and print its crisis-risk assessment",
		Long: `Classifies the entry as low, medium or high risk and prints the full
guidance for that tier. High-risk entries also print the professional and
emergency contacts and write a crisis_high event for watchers.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			res, err := s.SubmitJournal(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (a *app) dayCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Analyze the workload of one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(date)
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"analysis": s.AnalyzeDay(d),
				"items":    engine.ItemsOn(d, s.Items()),
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to analyze (YYYY-MM-DD, default today)")
	return cmd
}

func (a *app) calendarCmd() *cobra.Command {
	var month string
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the six-week calendar grid of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(month)
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.MonthGrid(d))
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "any day of the month (YYYY-MM-DD, default today)")
	return cmd
}

func (a *app) redistributeCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "redistribute",
		Short: "Move one heavy task off an overloaded day",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(date)
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			before := s.AnalyzeDay(d)
			moved, ok := s.Redistribute(d)
			out := map[string]any{
				"before": before,
				"after":  s.AnalyzeDay(d),
				"moved":  nil,
				"items":  s.Items(),
			}
			if ok {
				out["moved"] = moved
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "overloaded day (YYYY-MM-DD, default today)")
	return cmd
}

func (a *app) restCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "rest",
		Short: "Insert a rest period and print the day's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDay(date)
			if err != nil {
				return err
			}
			s, err := a.newSession()
			if err != nil {
				return err
			}
			rest := s.AddRestPeriod(d)
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"rest":     rest,
				"analysis": s.AnalyzeDay(d),
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day (YYYY-MM-DD, default today)")
	return cmd
}

// goalView is a goal with its derived progress.
type goalView struct {
	types.Goal
	Completion       int                  `json:"completion_percent"`
	RemainingMinutes int                  `json:"remaining_minutes"`
	Recommendation   types.Recommendation `json:"recommendation"`
}

func (a *app) goalCmd() *cobra.Command {
	var (
		required int
		toggle   []string
	)
	cmd := &cobra.Command{
		Use:   "goal [title]",
		Short: "Advise on goals given the current energy level",
		Long: `With a title, records a new goal requiring --required energy. Without a
title, lists the session's goals (use --demo for examples). Each goal is
printed with its completion and an energy recommendation.

--toggle goalID/stepID flips a micro-step before printing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				if _, err := s.AddGoal(types.Goal{Title: strings.Join(args, " "), EnergyRequired: required}); err != nil {
					return err
				}
			}
			for _, ref := range toggle {
				goalID, stepID, ok := strings.Cut(ref, "/")
				if !ok {
					return fmt.Errorf("goal: --toggle wants goalID/stepID, got %q", ref)
				}
				if _, err := s.ToggleMicroStep(goalID, stepID); err != nil {
					return err
				}
			}

			views := []goalView{}
			for _, g := range s.Goals() {
				rec, err := s.Recommendation(g.ID)
				if err != nil {
					return err
				}
				views = append(views, goalView{
					Goal:             g,
					Completion:       engine.Completion(g),
					RemainingMinutes: engine.RemainingMinutes(g),
					Recommendation:   rec,
				})
			}
			return printJSON(cmd.OutOrStdout(), views)
		},
	}
	cmd.Flags().IntVar(&required, "required", 5, "energy required by a new goal (0-10)")
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "goalID/stepID micro-steps to toggle")
	return cmd
}

func (a *app) simulateCmd() *cobra.Command {
	var (
		scenario string
		voice    bool
	)
	cmd := &cobra.Command{
		Use:   "simulate [line...]",
		Short: "Rehearse a social scenario and print feedback and score",
		Long: `Starts the scenario and sends each argument as one line. Every line is
scored for politeness, confidence, length and (in interviews) interest in
the company, and the NPC answers in turn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if _, err := s.StartSimulation(scenario); err != nil {
				return err
			}
			if voice {
				text, err := s.CaptureVoice(cmd.Context(), speech.ChannelSimulation)
				if err != nil {
					return err
				}
				args = append(args, text)
			}
			for _, line := range args {
				if _, err := s.SendSimulation(line); err != nil {
					return err
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), waitTimeout)
			defer cancel()
			if err := s.Wait(ctx); err != nil {
				return err
			}
			score, err := s.SimulationScore()
			if err != nil {
				return err
			}
			sc, _ := s.ActiveScenario()
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"scenario":   sc,
				"transcript": s.SimulationTranscript(),
				"score":      score,
			})
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", "1", "scenario ID (see the scenarios command)")
	cmd.Flags().BoolVar(&voice, "voice", false, "append a captured voice line")
	return cmd
}

func (a *app) scenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List rehearsal scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), lexicon.Scenarios())
		},
	}
}

func (a *app) notificationsCmd() *cobra.Command {
	var (
		mood     string
		toggle   []string
		schedule string
	)
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List smart notifications and the mood-aware message",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if mood != "" {
				if _, err := s.SendMood(mood); err != nil {
					return err
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), waitTimeout)
				defer cancel()
				if err := s.Wait(ctx); err != nil {
					return err
				}
			}
			for _, id := range toggle {
				if _, err := s.ToggleNotification(id); err != nil {
					return err
				}
			}
			if schedule != "" {
				if _, err := s.AddContextualNotification(schedule); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"settings":           s.NotificationSettings(),
				"notifications":      s.Notifications(),
				"contextual_message": s.ContextualMessage(),
			})
		},
	}
	cmd.Flags().StringVar(&mood, "mood", "", "chat message whose mood sets the contextual tone")
	cmd.Flags().StringSliceVar(&toggle, "toggle", nil, "notification IDs to switch on or off")
	cmd.Flags().StringVar(&schedule, "schedule", "", "add a contextual notification at HH:MM")
	return cmd
}

func (a *app) progressCmd() *cobra.Command {
	var samples string
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Summarize weekly mood, energy, goal and social trends",
		Long: `Reads weekly averages from --samples (use --demo for four example weeks)
and prints each series' trend from the first to the last week, its average
and the largest value across all series.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			if samples != "" {
				weeks, err := loadWeeks(samples)
				if err != nil {
					return err
				}
				for _, w := range weeks {
					if err := s.AddWeeklySample(w); err != nil {
						return fmt.Errorf("%s: %w", samples, err)
					}
				}
			}
			return printJSON(cmd.OutOrStdout(), s.ProgressReport())
		},
	}
	cmd.Flags().StringVar(&samples, "samples", "", "YAML file with weekly samples")
	return cmd
}

func (a *app) speakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "speak <text>",
		Short: "Send text to the text-to-speech sink",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}
			return s.Speak(strings.Join(args, " "))
		},
	}
}

func (a *app) watchCmd() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print session events as other bemestar processes write them",
		Long: `Watches {BEMESTAR_DATA_PATH}/events and prints each event as a JSON line.
Pending events are printed first. Stops on SIGINT/SIGTERM, or after the
pending events with --once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			events := make(chan notify.Event, 16)
			watcher := notify.NewEventWatcher(a.cfg.Storage.DataPath, forward(ctx, events), a.logger)

			drained := make(chan error, 1)
			go func() { drained <- watcher.Start() }()
			defer watcher.Stop()
			// Runs before Stop so a callback blocked on a full channel returns.
			defer stop()

			started := false
			for {
				select {
				case err := <-drained:
					if err != nil {
						return err
					}
					started = true
					if once {
						return drainPrinted(events, func(evt notify.Event) error { return printJSON(out, evt) })
					}
				case evt := <-events:
					if evt.Type == notify.EventCrisisHigh {
						a.logger.Warn("watch: crisis alert", zap.String("record_id", evt.RecordID))
					}
					if err := printJSON(out, evt); err != nil {
						return err
					}
				case <-ctx.Done():
					if !started {
						<-drained
						return ctx.Err()
					}
					return nil
				}
			}
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "print pending events and exit")
	return cmd
}

// forward returns a watcher callback that hands events to the command loop
// until ctx ends. Events arriving after that are dropped.
func forward(ctx context.Context, events chan<- notify.Event) func(notify.Event) {
	return func(evt notify.Event) {
		select {
		case events <- evt:
		case <-ctx.Done():
		}
	}
}

// drainPrinted prints every buffered event without blocking.
func drainPrinted(events <-chan notify.Event, emit func(notify.Event) error) error {
	for {
		select {
		case evt := <-events:
			if err := emit(evt); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
