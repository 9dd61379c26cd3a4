package commands

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytrout/buildingblocks/internal/cli/config"
	"github.com/mytrout/buildingblocks/internal/cli/ui"
	"github.com/mytrout/buildingblocks/internal/logging"
	"github.com/mytrout/buildingblocks/internal/resources"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// session is the state shared by every subcommand of one invocation. It is
// filled in by the root command's PersistentPreRunE.
type session struct {
	configDir string
	format    string
	logLevel  string
	noColor   bool

	cfg    *config.Config
	logger *zap.Logger
}

func (s *session) colorOff() bool {
	return s.cfg != nil && s.cfg.Output.NoColor
}

// setup loads configuration, applies flag overrides and builds the logger.
func (s *session) setup(cmd *cobra.Command) error {
	dir := s.configDir
	if dir == "" {
		if found, err := config.FindConfig("."); err == nil {
			dir = found
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), s.noColor))
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		f := strings.ToLower(strings.TrimSpace(s.format))
		switch f {
		case "table", "json", "yaml":
			cfg.Output.Format = f
		default:
			return fmt.Errorf("--format must be one of table, json, yaml, got: %s", s.format)
		}
	}
	if flags.Changed("log-level") {
		if _, err := logging.ParseLevel(s.logLevel); err != nil {
			return err
		}
		cfg.Log.Level = s.logLevel
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = s.noColor
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Development: cfg.Log.Development})
	if err != nil {
		return err
	}

	resources.SetLocale(cfg.LocaleTag())
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	s.cfg = cfg
	s.logger = logger
	logger.Debug("configuration loaded",
		zap.String("locale", cfg.Locale),
		zap.String("format", cfg.Output.Format),
		zap.Duration("debounce", cfg.Watch.Debounce),
	)
	return nil
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	s := &session{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "bbmodel",
		Short: "Validate and inspect building block model documents",
		Long: `bbmodel works with model documents: YAML or JSON files describing an
application together with its concepts, lookups, entities and relationships.

Every value is checked by the same constructors the library exposes, so a
document that loads here can be used to build the model in code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&s.configDir, "config-dir", "", "Directory holding buildingblocks.yml (default: nearest one above the working directory)")
	pf.StringVarP(&s.format, "format", "o", "table", "Output format: table, json or yaml")
	pf.StringVar(&s.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.BoolVar(&s.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newInitCommand(s))
	rootCmd.AddCommand(newValidateCommand(s))
	rootCmd.AddCommand(newDescribeCommand(s))
	rootCmd.AddCommand(newExportCommand(s))

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the bbmodel version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			writeVersion(cmd.OutOrStdout())
		},
	}
}

func writeVersion(w io.Writer) {
	goVer := GoVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Fprint(w, "bbmodel version: ")
	fmt.Fprintln(w, Version)

	titleColor.Fprint(w, "Git commit: ")
	fmt.Fprintln(w, GitCommit)

	titleColor.Fprint(w, "Build date: ")
	fmt.Fprintln(w, BuildDate)

	titleColor.Fprint(w, "Go version: ")
	fmt.Fprintln(w, goVer)
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
