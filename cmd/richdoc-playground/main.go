// Command richdoc-playground replays YAML editing scripts against the
// rich-text model and prints the resulting document outline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iw2rmb/richdoc"
	"github.com/iw2rmb/richdoc/internal/playground"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	verbose bool
	logFile string
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "richdoc-playground",
		Short:         "Replay rich-text editing scripts",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every step and tree operation")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this rotated file")

	root.AddCommand(newRunCmd(&opts), newVersionCmd())
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a script and print the final outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			s, err := playground.LoadScript(args[0])
			if err != nil {
				return err
			}
			sess, err := playground.Run(s, log)
			if err != nil {
				log.Error("script failed", zap.String("script", args[0]), zap.Error(err))
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), playground.Outline(sess.Document()))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), richdoc.ReadBuildInfo().String())
			return err
		},
	}
}

// newLogger builds a production logger on stderr, teed into a rotated JSON
// file when --log-file is set.
func newLogger(opts *options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	if opts.logFile == "" {
		return log, nil
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.logFile,
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), cfg.Level)

	return log.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, fileCore)
	})), nil
}
