package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargesim/app"
	"github.com/kilianp07/chargesim/infra/logger"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-simulate the day incrementally, streaming progress frames",
	RunE:  replay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func replay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	if err := svc.Replay(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
