// Package cli implements the sekolah command tree: a terminal frontend
// for the school and residential unit management API.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
	"sekolah-cli/internal/session"
)

var (
	version = "dev"
	commit  = "none"
)

// app bundles the API client and local stores shared by every command.
// The fields are filled in by the root command's PersistentPreRunE once
// flags, env, and profile config are resolved.
type app struct {
	client  *api.Client
	session *session.Store
	orgs    *session.OrgStore
}

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				errObj["http_status"] = apiErr.Status
			}
			_ = PrintJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		host    string
		token   string
		output  string
		profile string
	)

	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "sekolah",
		Short:         "Sekolah management CLI",
		Long:          "Command-line interface for the sekolah-madrasah management API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.ActiveProfile(profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("SEKOLAH_HOST"); v != "" {
					host = v
				} else if p.Host != "" {
					host = p.Host
				}
			}
			if !cmd.Flags().Changed("token") {
				if v := os.Getenv("SEKOLAH_TOKEN"); v != "" {
					token = v
				} else if p.Token != "" {
					token = p.Token
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("SEKOLAH_OUTPUT"); v != "" {
					output = v
				} else if p.Output != "" {
					output = p.Output
				}
			}
			if err := validateOutputFormat(output); err != nil {
				return err
			}

			a.client = api.NewClient(host)
			a.session = session.NewStore(StateDir())
			a.session.Restore()
			a.orgs = session.NewOrgStore(StateDir())
			a.orgs.Restore()

			// An explicit token beats the stored session.
			if token != "" {
				a.client.SetToken(token)
			} else {
				a.client.SetToken(a.session.Token())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "API host URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authentication")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newAuthCmd(a))
	rootCmd.AddCommand(newOrgCmd(a))
	rootCmd.AddCommand(newRoleCmd(a))
	rootCmd.AddCommand(newPermissionCmd(a))
	rootCmd.AddCommand(newUserCmd(a))
	rootCmd.AddCommand(newUnitCmd(a))
	rootCmd.AddCommand(newPengurusCmd(a))
	rootCmd.AddCommand(newWargaCmd(a))
	rootCmd.AddCommand(newRTCmd(a))
	rootCmd.AddCommand(newRoomCmd(a))
	rootCmd.AddCommand(newScheduleCmd(a))
	rootCmd.AddCommand(newKegiatanCmd(a))
	rootCmd.AddCommand(newIuranCmd(a))
	rootCmd.AddCommand(newAttendanceCmd(a))
	rootCmd.AddCommand(newEventCmd(a))
	rootCmd.AddCommand(newCalendarCmd(a))

	// Shell completions
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
