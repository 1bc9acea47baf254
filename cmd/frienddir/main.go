package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jlym/frienddir/internal/config"
	"github.com/jlym/frienddir/internal/memory"
	"github.com/jlym/frienddir/internal/shell"
	"github.com/jlym/frienddir/internal/util"
)

type flags struct {
	configPath string
	scriptPath string
	logLevel   string
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "frienddir",
		Short:         "Interactive in-memory friend directory",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f)
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&f.scriptPath, "script", "s", "", "read commands from this file instead of stdin")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "override the configured log level")
	return cmd
}

func run(ctx context.Context, f *flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	logger, err := util.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	server := memory.NewMemServer(memory.Options{
		Limits:     cfg.Limits(),
		TimeFormat: cfg.Profile.TimeFormat,
		Logger:     logger,
	})
	sh := shell.New(server, os.Stdout, logger)

	var in io.Reader = os.Stdin
	if f.scriptPath != "" {
		file, err := os.Open(f.scriptPath)
		if err != nil {
			return errors.Wrapf(err, "opening script failed, path=%q", f.scriptPath)
		}
		defer file.Close()
		in = file
	} else if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		sh.Prompt = "> "
	}

	logger.DebugContext(ctx, "shell starting",
		"max_friends", cfg.Directory.MaxFriends,
		"max_name_length", cfg.Directory.MaxNameLength)
	return sh.Run(ctx, in)
}
