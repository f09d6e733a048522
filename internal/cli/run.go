package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/forPelevin/takenotes/internal/config"
	"github.com/forPelevin/takenotes/internal/logger"
	"github.com/forPelevin/takenotes/internal/pipeline"
)

func run(cmd *cobra.Command, inputs []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = os.Getenv("TAKENOTES_CONFIG")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	opts, err := cfg.NotesOptions()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	pcfg := pipeline.Config{
		Inputs:  inputs,
		OutDir:  cfg.OutDir,
		Suffix:  cfg.Suffix,
		Workers: cfg.Workers,
		Notes:   opts,
		Logf:    log.Logf,
		Log:     log,
	}
	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		pcfg.Stdout = cmd.OutOrStdout()
	}
	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	res, err := pipeline.Run(ctx, pcfg)
	if err != nil {
		if n := len(res.Failed()); n > 0 {
			return fmt.Errorf("%d of %d transcripts failed: %w", n, len(inputs), err)
		}
		return err
	}
	return nil
}

// applyFlags overrides file and env settings with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("out") {
		cfg.OutDir, _ = fs.GetString("out")
	}
	if fs.Changed("threshold") {
		cfg.SilenceThreshold, _ = fs.GetFloat64("threshold")
	}
	if fs.Changed("suffix") {
		cfg.Suffix, _ = fs.GetString("suffix")
	}
	if fs.Changed("log") {
		cfg.LogMode, _ = fs.GetString("log")
	}
	if fs.Changed("workers") {
		cfg.Workers, _ = fs.GetInt("workers")
	}
}
