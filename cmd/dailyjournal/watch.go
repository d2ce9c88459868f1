package main

import (
	"github.com/spf13/cobra"

	"daily-journal/internal/service"
)

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run in the foreground and create each new day at ROLLOVER_AT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.days.Rollover(ctx); err != nil {
				return err
			}

			scheduler := service.NewSchedulerService(a.cal.Location(), a.logger)
			id, err := scheduler.ScheduleRollover(a.cfg.RolloverAt, a.days)
			if err != nil {
				return err
			}
			scheduler.Start()
			defer scheduler.Stop()

			a.logger.Info("watching for day rollover", "at", a.cfg.RolloverAt, "next", scheduler.Next(id))
			<-ctx.Done()
			a.logger.Info("shutdown complete")
			return nil
		},
	}
}
