package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/chargesim/app"
	"github.com/kilianp07/chargesim/core/model"
	"github.com/kilianp07/chargesim/infra/logger"
	"github.com/kilianp07/chargesim/pkg/export"
)

var (
	runSteps  int
	runOutput string
	runFormat string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one charging day and print the summary",
	RunE:  runOnce,
}

func init() {
	runCmd.Flags().IntVar(&runSteps, "steps", 0, "step limit, 0 simulates the whole horizon")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the augmented series to this file")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "csv", "series output format: csv or json")
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
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

	res, sum, err := svc.RunOnce(runSteps)
	if err != nil {
		return err
	}
	if runOutput != "" {
		if err := writeSeries(runOutput, runFormat, res.Steps); err != nil {
			return fmt.Errorf("write series: %w", err)
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}

func writeSeries(path, format string, steps []model.StepResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	switch format {
	case "csv":
		return export.WriteSeriesCSV(f, steps)
	case "json":
		return export.WriteSeriesJSON(f, steps)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
