package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitkeeper/internal"
)

// flagProvider is implemented by controllers that declare their own flags.
type flagProvider interface {
	AddFlags(cmd *cobra.Command)
}

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "gitkeeper",
		Short: "Authenticated git clone and pull for unattended hosts",
		Long: `Keeps local checkouts of remote Git repositories in sync.

SSH URLs authenticate with a private key (--ssh-key or GIT_SSH_KEY_PATH),
HTTPS URLs with an access token (--token or GIT_TOKEN). Checkouts live
under the base path (--base-path or GIT_BASE_PATH, default ./repos).

Usage modes:
  gitkeeper clone <url>            Clone one repository
  gitkeeper pull <path>            Pull one checkout
  gitkeeper sync                   Batch mode using a config file (cronjob)`,
		SilenceUsage: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("base-path", "",
		"Directory checkouts are kept in (overrides GIT_BASE_PATH)")
	cmd.PersistentFlags().String("token", "",
		"Access token for HTTPS remotes (overrides GIT_TOKEN)")
	cmd.PersistentFlags().String("ssh-key", "",
		"Private key for SSH remotes (overrides GIT_SSH_KEY_PATH)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fp, ok := ctrl.(flagProvider); ok {
			fp.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG
	appContext, err := injectAppContext()
	if err != nil {
		logger.Fatalf("Failed to build 'gitkeeper': %s", err)
	}
	addSubcommands(cobraRoot, appContext)

	if err = cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'gitkeeper': %s", err)
	}
}
