package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/gregor/foundation/core/error"
	mdwlog "github.com/msto63/gregor/foundation/core/log"
	"github.com/msto63/gregor/foundation/utils/filex"
	"github.com/msto63/gregor/pkg/core/config"
	"github.com/msto63/gregor/pkg/core/logging"
	"github.com/msto63/gregor/pkg/core/version"
	"github.com/msto63/gregor/pkg/datetime"
)

var (
	cfgFile string
	verbose bool
	zone    string

	// set by the root PersistentPreRunE
	cfg    *config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gregor",
	Short: "gregor - Gregorian calendar arithmetic",
	Long: `gregor works with dates, times of day and instants in fixed-offset
timezones.

It parses and formats datetimes, adds offsets with correct day carry,
converts to and from millisecond timestamps, draws month calendars and
keeps a timeline of labelled instants ("marks").`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/gregor/config.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&zone, "tz", "", "timezone name, hour offset or \"local\" (default: from config)")

	rootCmd.Version = version.String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// setup loads the configuration, installs its defaults and mocks into the
// datetime package and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}
	base := logging.NewLogger(logging.LoggerConfig{
		Component: "cli",
		Level:     level,
		Format:    cfg.General.LogFormat,
		Output:    cmd.ErrOrStderr(),
	})
	mdwlog.SetDefault(base)
	logger = logging.Wrap(base, "cli")

	if err := cfg.Apply(); err != nil {
		return err
	}
	logger.Debug("configuration applied",
		"config", cfgFile,
		"timezone", datetime.DefaultTimezone().Name(),
		"mock_date", cfg.Calendar.MockDate,
		"mock_time", cfg.Calendar.MockTime)
	return nil
}

// loadConfig reads --config, else the per-user file when it exists, else
// the defaults. Only an explicit --config may be missing with an error.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if path := filex.UserConfigPath("gregor", "config.toml"); filex.IsFile(path) {
		cfgFile = path
		return config.Load(path)
	}
	return config.Default(), nil
}

// timezone returns --tz or the configured default. "local" resolves the
// host zone, which only works for the registry's standard-time zones.
func timezone() (datetime.Timezone, error) {
	switch zone {
	case "":
		return datetime.DefaultTimezone(), nil
	case "local":
		tz, err := datetime.LocalTimezone()
		if err != nil {
			logger.Warn("host timezone is not a fixed-offset registry zone", "error", err.Error())
			return datetime.Timezone{}, err
		}
		return tz, nil
	}
	return datetime.ParseTimezone(zone)
}

// parseInstant reads "now", a date (midnight), or a datetime with an
// optional trailing zone name such as "2024-03-05 9:30 EST". Without a zone
// the value is on tz's clock.
func parseInstant(s string, tz datetime.Timezone, dateOrder []datetime.Field) (datetime.Datetime, error) {
	s = strings.TrimSpace(s)
	if s == "now" {
		return datetime.NowIn(tz), nil
	}

	if i := strings.LastIndexByte(s, ' '); i > 0 {
		if named, err := datetime.ParseTimezone(s[i+1:]); err == nil && !isDigits(s[i+1:]) {
			s, tz = strings.TrimSpace(s[:i]), named
		}
	}

	if len(s) == 10 {
		d, err := datetime.ParseDate(s, dateOrder...)
		if err != nil {
			return datetime.Datetime{}, err
		}
		return datetime.Combine(d, datetime.Midnight(tz)), nil
	}
	return datetime.ParseDatetime(s, tz, dateOrder)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// parseOffsets reads arguments like "2h" "-15m" "3d"
func parseOffsets(args []string) ([]datetime.Offset, error) {
	offsets := make([]datetime.Offset, 0, len(args))
	for _, a := range args {
		o, err := datetime.ParseOffset(a)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, o)
	}
	return offsets, nil
}

// fieldOrder parses a --order flag; empty means the default order
func fieldOrder(s string) ([]datetime.Field, error) {
	if s == "" {
		return nil, nil
	}
	return datetime.ParseFieldOrder(s)
}

func usageError(format string, args ...interface{}) error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cli")
}
