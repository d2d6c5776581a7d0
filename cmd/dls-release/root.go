package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dls-controls/dls-release-tools"
)

type options struct {
	configPath string
	verbose    bool
	flags      releasetools.Source

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logger *zap.Logger
}

func newRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cobra.Command {
	opts := &options{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "dls-release",
		Short:         "Work with module releases in a release store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(opts.stderr, opts.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default $"+releasetools.ConfigEnvironmentVariable+" or ~/.dls-release.yml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	flags.StringVar(&opts.flags.Bucket, "bucket", "", "GCS bucket holding the release area")
	flags.StringVar(&opts.flags.ReleaseRoot, "root", "", "release area on a shared filesystem")
	flags.StringVar(&opts.flags.JSONKey, "json-key", "", "GCS service account key")
	flags.StringVarP(&opts.flags.Area, "area", "a", "", "module area (support, ioc, python, tools, matlab, etc)")
	flags.StringVar(&opts.flags.VersionScheme, "scheme", "", "release ordering: dls or semantic")

	root.AddCommand(
		newSortCommand(opts),
		newClassifyCommand(opts),
		newListCommand(opts),
		newLatestCommand(opts),
		newTarCommand(opts),
		newUntarCommand(opts),
		newDiffCommand(opts),
	)

	return root
}

func newLogger(output io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(output),
		level,
	)

	return zap.New(core)
}

// source merges the config file with the command-line flags, flags winning,
// and validates the result for module.
func (opts *options) source(module string) (releasetools.Source, error) {
	source, err := opts.configured()
	if err != nil {
		return source, err
	}

	source.Module = module
	return opts.validate(source)
}

// configured is the config file overlaid with the command-line flags. Values
// neither of them sets are left empty.
func (opts *options) configured() (releasetools.Source, error) {
	configPath := opts.configPath
	optional := false
	if configPath == "" {
		configPath = releasetools.DefaultConfigPath()
		optional = true
	}

	source, err := releasetools.LoadConfig(configPath, optional)
	if err != nil {
		return source, err
	}

	if opts.flags.Bucket != "" || opts.flags.ReleaseRoot != "" {
		source.Bucket = opts.flags.Bucket
		source.ReleaseRoot = opts.flags.ReleaseRoot
	}
	if opts.flags.JSONKey != "" {
		source.JSONKey = opts.flags.JSONKey
	}
	if opts.flags.Area != "" {
		source.Area = opts.flags.Area
	}
	if opts.flags.VersionScheme != "" {
		source.VersionScheme = opts.flags.VersionScheme
	}

	return source, nil
}

func (opts *options) validate(source releasetools.Source) (releasetools.Source, error) {
	if source.Area == "" {
		source.Area = string(releasetools.AreaSupport)
	}

	if ok, message := source.IsValid(); !ok {
		return source, errors.New(message)
	}

	opts.logger.Debug("resolved source",
		zap.String("bucket", source.Bucket),
		zap.String("release_root", source.ReleaseRoot),
		zap.String("area", source.Area),
		zap.String("module", source.Module),
	)

	return source, nil
}

func (opts *options) store(source releasetools.Source) (releasetools.ReleaseStore, error) {
	return releasetools.NewReleaseStore(opts.stderr, source)
}
