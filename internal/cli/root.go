package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/startstream/internal/config"
	"github.com/tessro/startstream/internal/logging"
	"github.com/tessro/startstream/internal/paths"
	"github.com/tessro/startstream/internal/proc"
	"github.com/tessro/startstream/internal/programs"
)

// Global flag values.
var (
	configPath   string
	programsPath string
	logLevel     string
	killTimeout  time.Duration
	noPause      bool
)

// settings holds the loaded settings file; nil means defaults.
var settings *config.GlobalConfig

// logCleanup closes the log file opened by PersistentPreRunE.
var logCleanup func()

// newController builds the process controller. Tests replace it with a fake.
var newController = func() proc.Controller {
	return proc.NewSystem()
}

var rootCmd = &cobra.Command{
	Use:   "startstream",
	Short: "Open or close a configured set of programs",
	Long: `startstream reads a list of program paths from Programs.json and opens or
closes all of them in one go. A directory containing obs64.exe is started
through that executable with the directory as its working directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		settings, err = config.LoadGlobalConfigFromPath(configPath)
	} else {
		settings, err = config.LoadGlobalConfig()
	}
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	level := settings.GetLogLevel()
	if logLevel != "" {
		if err := config.ValidateLogLevel(logLevel); err != nil {
			return err
		}
		level = logLevel
	}

	cleanup, err := logging.Setup("", logging.ParseLevel(level))
	if err != nil {
		// The log file is a convenience; batches still run without it.
		logging.SetupDiscard()
		return nil
	}
	logCleanup = cleanup
	slog.Debug("startstream starting", "command", cmd.Name(), "args", args)
	return nil
}

// newManager builds a Manager from flags and settings.
func newManager() *programs.Manager {
	timeout := settings.GetKillTimeout()
	if killTimeout > 0 {
		timeout = killTimeout
	}

	listPath := paths.ProgramsPath(settings.GetProgramsFile())
	if programsPath != "" {
		listPath = programsPath
	}

	return programs.New(newController(), programs.Options{
		ListPath:    listPath,
		Marker:      settings.GetMarker(),
		KillTimeout: timeout,
	})
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "settings file (default ~/.config/startstream/config.toml)")
	flags.StringVarP(&programsPath, "programs", "p", "", "program list file (default Programs.json in the working directory)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.DurationVar(&killTimeout, "kill-timeout", 0, "how long to wait for each closed process to exit")
	flags.BoolVar(&noPause, "no-pause", false, "do not wait for a key press after open or close")
}

// Execute runs the root command. Ctrl-C cancels the running batch.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
