package cli

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"sekolah-cli/internal/api"
	"sekolah-cli/internal/session"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in and inspect the current session",
	}

	cmd.AddCommand(newAuthLoginCmd(a))
	cmd.AddCommand(newAuthRegisterCmd(a))
	cmd.AddCommand(newAuthLogoutCmd(a))
	cmd.AddCommand(newAuthStatusCmd(a))
	cmd.AddCommand(newAuthCapabilitiesCmd(a))
	return cmd
}

func newAuthLoginCmd(a *app) *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		Example: `  # Prompt for the password
  sekolah auth login --email admin@example.com

  # Non-interactive
  sekolah auth login --email admin@example.com --password secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				pw, err := promptPassword("Password: ")
				if err != nil {
					return err
				}
				password = pw
			}

			res, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			a.client.SetToken(res.Data.AccessToken)
			err = a.session.Set(session.State{
				Token:        res.Data.AccessToken,
				RefreshToken: res.Data.RefreshToken,
				ExpiresAt:    res.Data.ExpiresAt,
				User:         &res.Data.User,
			})
			if err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res.Data.User)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Signed in as %s (%s)\n", res.Data.User.FullName, res.Data.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func promptPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal: pass --password")
	}
	_, _ = fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func newAuthRegisterCmd(a *app) *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res.Data)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Account created for %s\n", req.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}

func newAuthLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session and organization selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.session.Clear(); err != nil {
				return err
			}
			// A session belongs to a user; the org selection goes with it.
			if err := a.orgs.Clear(); err != nil {
				return err
			}
			a.client.SetToken("")

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintln(os.Stdout, "Signed out")
			return nil
		},
	}
}

func newAuthStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fields := map[string]any{
				"authenticated": a.session.IsAuthenticated(),
			}
			if u := a.session.CurrentUser(); u != nil {
				fields["email"] = u.Email
				fields["name"] = u.FullName
				fields["super_admin"] = u.IsSuperAdmin
			}
			if org := a.orgs.Selected(); org != nil {
				fields["organization"] = org.Name
			}
			if claims, err := a.session.Claims(); err == nil {
				if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
					fields["token_expires"] = exp.Format(time.RFC3339)
				}
				if sub, err := claims.GetSubject(); err == nil && sub != "" {
					fields["subject"] = sub
				}
			}

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, fields)
			}
			PrintDetail(os.Stdout, fields)
			return nil
		},
	}
}

// newAuthCapabilitiesCmd reports the signed-in user's effective
// permissions in the selected organization, fetching each role's
// permission list concurrently.
func newAuthCapabilitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List effective permissions in the selected organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !a.session.IsAuthenticated() {
				return fmt.Errorf("not signed in: run 'sekolah auth login'")
			}

			ms, err := a.client.MyMemberships(cmd.Context())
			if err != nil {
				return err
			}

			orgID := a.orgs.SelectedID()
			var roleIDs []string
			for _, m := range ms.Data.OrganizationMemberships {
				if orgID == "" || m.OrgID == orgID {
					roleIDs = append(roleIDs, m.RoleID)
				}
			}

			roles := make([]*api.Response[api.Role], len(roleIDs))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, id := range roleIDs {
				i, id := i, id
				g.Go(func() error {
					res, err := a.client.GetRole(ctx, id)
					if err != nil {
						return err
					}
					roles[i] = res
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			var perms []api.Permission
			for _, r := range roles {
				perms = append(perms, r.Data.Permissions...)
			}
			set := session.NewPermissionSet(perms, ms.Data.IsSuperAdmin)

			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]any{
					"super_admin": ms.Data.IsSuperAdmin,
					"permissions": perms,
					"units": map[string]bool{
						"view":   set.CanViewPerumahans(),
						"create": set.CanCreatePerumahan(),
						"update": set.CanUpdatePerumahan(),
						"delete": set.CanDeletePerumahan(),
					},
				})
			}

			seen := map[string]bool{}
			var rows [][]string
			for _, p := range perms {
				key := p.Resource + ":" + p.Action
				if seen[key] {
					continue
				}
				seen[key] = true
				rows = append(rows, []string{p.Resource, p.Action})
			}
			sort.Slice(rows, func(i, j int) bool {
				if rows[i][0] != rows[j][0] {
					return rows[i][0] < rows[j][0]
				}
				return rows[i][1] < rows[j][1]
			})
			if ms.Data.IsSuperAdmin {
				_, _ = fmt.Fprintln(os.Stdout, "Super admin: all permissions granted")
			}
			PrintTable(os.Stdout, []string{"resource", "action"}, rows)
			return nil
		},
	}
}
