package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-sdft/dsp/core"
)

const envPrefix = "SDFTINFO"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	out    io.Writer
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "sdftinfo",
		Short: "Inspect block and sliding DFT spectra of synthetic signals",
		Long: `sdftinfo runs the radix-2 block transform and the sliding DFT estimators
on generated test tones and prints the resulting half-spectra.

Every flag can also be set in a YAML config file (--config) or through
environment variables prefixed with SDFTINFO_, e.g. SDFTINFO_SAMPLE_RATE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML config file")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringP("output", "o", "table", "output format (table, json, yaml)")
	flags.Float64("sample-rate", core.DefaultAnalysisConfig().SampleRate, "sample rate used to label bins in Hz")

	root.SetOut(out)
	root.AddCommand(newFFTCmd(a), newSlideCmd(a), newCheckCmd(a))

	return root
}

// initialize loads the config file, binds flags and environment to viper and
// builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", file, err)
		}
	}

	logger, err := newLogger(a.v.GetString("log-level"))
	if err != nil {
		return err
	}

	a.logger = logger.With(zap.String("command", cmd.Name()))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config file", zap.String("path", used))
	}

	return nil
}

// bindFlags binds every flag visible to cmd, local and inherited, to its
// viper key of the same name.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	}

	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)

	return lastErr
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}

func (a *app) analysisOptions() []core.AnalysisOption {
	return []core.AnalysisOption{core.WithSampleRate(a.v.GetFloat64("sample-rate"))}
}
