// Package cli implements the lectern command-line interface using cobra.
// Commands are thin: they validate arguments, call the driving ports, and
// render results. Services are injected once at startup via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/helektron-labs/lectern/internal/core/ports/driving"
	"github.com/helektron-labs/lectern/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	sessionService driving.SessionManager
	studyService   driving.StudyGenerator
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "lectern",
	Short: "Turn course material into study aids",
	Long: `Lectern builds study aids from your own course material.

Upload lecture notes, slides, papers, and recordings into a session, then
generate summaries, key terms, practice questions, and resource suggestions
grounded in what you actually uploaded.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline progress to stderr")
}

// SetServices injects the driving-port implementations the commands use.
func SetServices(sessions driving.SessionManager, study driving.StudyGenerator) {
	sessionService = sessions
	studyService = study
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
