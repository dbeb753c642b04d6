// Package main provides the Greanium CLI application entry point.
// Greanium is a terminal front end for the Greanium OS portfolio dashboard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"greanium/internal/config"
	"greanium/internal/logger"
	"greanium/internal/version"
)

var (
	logLevel   string
	logFile    string
	configFile string
	testMode   bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "greanium",
	Short: "Greanium OS - terminal dashboard",
	Long: `Greanium is the command line of the Greanium OS dashboard.
It lists projects, skills and links, opens resources and talks to Greanium AI.`,
	SilenceUsage: true,
	RunE:         runShell, // Default behavior is to run the interactive shell
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:          "shell",
	Short:        "Start interactive shell mode",
	Long:         `Start the interactive Greanium command interpreter.`,
	SilenceUsage: true,
	RunE:         runShell,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of Greanium.`,
	Run: func(_ *cobra.Command, _ []string) {
		if verbose {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")
	flags.StringVar(&configFile, "config", "", "Config file (default ~/.config/greanium/config.yaml)")

	flags.String("base-url", "", "Backend base URL")
	flags.String("data-dir", "", "Data directory for the file source")
	flags.String("source", "", "Data source (http|file)")
	flags.Bool("watch", false, "Reload data when the data directory changes")
	flags.String("chat-provider", "", "AI provider (http|openai|anthropic|gemini)")
	flags.String("chat-model", "", "AI model name")
	flags.String("theme", "", "Color theme (default|dark|plain)")
	flags.Bool("render-markdown", false, "Render AI replies as markdown")

	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show build details")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initLogger)
}

func initLogger() {
	if err := logger.Configure(logLevel, logFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{
		ConfigFile: configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	logger.Info("Starting Greanium", "version", version.GetVersion(), "source", cfg.Source)
	if version.IsDevelopment() {
		logger.Debug("Development build", "commit", version.GitCommit, "date", version.BuildDate)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
