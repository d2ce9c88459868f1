package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"daily-journal/internal/calendar"
	"daily-journal/internal/config"
	"daily-journal/internal/ingest"
	"daily-journal/internal/repository"
	"daily-journal/internal/service"
)

// app holds the stores shared by every subcommand.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	db       *gorm.DB
	cal      *calendar.Calendar
	days     *service.DayRecordStore
	tags     *service.TagStore
	capture  *service.CaptureService
	manifest *service.ManifestService

	dbFlag   string
	dateFlag string
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if a.dbFlag != "" {
		cfg.DatabaseURL = a.dbFlag
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	a.db = db

	a.cal = calendar.New(cfg.Location)
	a.days = service.NewDayRecordStore(
		repository.NewDayRecordRepository(db),
		repository.NewLoggedItemRepository(db),
		repository.NewCareerJournalRepository(db),
		a.cal,
		a.logger,
	)
	a.tags = service.NewTagStore(db, a.logger)
	ingester := ingest.NewService(ingest.Options{
		Timeout: cfg.FetchTimeoutDuration(),
		MaxEdge: cfg.ThumbnailMaxEdge,
		Quality: cfg.ThumbnailQuality,
		Logger:  a.logger,
	})
	a.capture = service.NewCaptureService(ingester, a.days, a.logger)
	a.manifest = service.NewManifestService(repository.NewVisionNoteRepository(db), a.logger)
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}

// date returns the day selected with --date, or now.
func (a *app) date() (time.Time, error) {
	if a.dateFlag == "" {
		return time.Now(), nil
	}
	day, err := a.cal.Parse(a.dateFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date %q: expected YYYY-MM-DD", a.dateFlag)
	}
	return day.Start, nil
}

// execute runs one command line and always releases the database, including
// when the command fails.
func (a *app) execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer a.close()
	return root.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dailyjournal",
		Short:         "Daily journal: logged content, career journal, tags and manifest board",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.dbFlag, "db", "", "database DSN (overrides DATABASE_URL)")
	root.PersistentFlags().StringVar(&a.dateFlag, "date", "", "day to work on, YYYY-MM-DD (default today)")

	root.AddCommand(todayCmd(a))
	root.AddCommand(logCmd(a))
	root.AddCommand(tagsCmd(a))
	root.AddCommand(journalCmd(a))
	root.AddCommand(manifestCmd(a))
	root.AddCommand(watchCmd(a))

	return root
}
