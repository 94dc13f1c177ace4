package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/cadence/internal/config"
	"github.com/misterclayt0n/cadence/internal/logging"
	"github.com/misterclayt0n/cadence/internal/models"
	"github.com/misterclayt0n/cadence/internal/notify"
	"github.com/misterclayt0n/cadence/internal/schedule"
	"github.com/misterclayt0n/cadence/internal/storage"
	"github.com/misterclayt0n/cadence/internal/utils"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "CLI activity log with recurring exercise reminders",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}
		}

		loaded, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
		cfg = loaded

		logging.Setup(logging.LoggerSetupParams{
			LogFileName:   cfg.Log.File,
			LogToStdout:   cfg.Log.Stdout,
			LogLevel:      cfg.Log.Level,
			LogFormatJSON: cfg.Log.JSON,
		})
		return nil
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/cadence/config.toml)")
}

func openStorage(ctx context.Context) (*storage.Storage, error) {
	st, err := storage.Open(ctx, cfg.DB.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// location is the zone that decides the calendar day of "now".
func location() (*time.Location, error) {
	loc, err := utils.LoadLocation(cfg.Reminders.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Reminders.Timezone, err)
	}
	return loc, nil
}

func newEvaluator(st *storage.Storage, loc *time.Location) *schedule.Evaluator {
	return schedule.NewEvaluator(st, st,
		schedule.WithLocation(loc),
		schedule.WithConcurrency(cfg.Reminders.Concurrency),
	)
}

func newCoordinator(st *storage.Storage, loc *time.Location, dispatcher notify.Dispatcher) *notify.Coordinator {
	return notify.NewCoordinator(newEvaluator(st, loc), st, dispatcher,
		notify.WithLocation(loc),
		notify.WithDefaultMessage(cfg.Reminders.DefaultMessage),
	)
}

// parseDayArg resolves an optional YYYY-MM-DD argument, defaulting to today in loc.
func parseDayArg(args []string, now time.Time, loc *time.Location) (models.Day, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" || args[0] == "today" {
		return utils.Today(now, loc), nil
	}
	day, err := models.ParseDay(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
	}
	return day, nil
}
