package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage platform accounts",
	}

	cmd.AddCommand(newUserListCmd(a))
	cmd.AddCommand(newUserGetCmd(a))
	cmd.AddCommand(newUserCreateCmd(a))
	cmd.AddCommand(newUserUpdateCmd(a))
	cmd.AddCommand(newUserDeleteCmd(a))
	cmd.AddCommand(newUserMeCmd(a))
	cmd.AddCommand(newUserMembershipsCmd(a))
	return cmd
}

func newUserListCmd(a *app) *cobra.Command {
	var p api.UserListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListUsers(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, u := range res.Data {
				rows = append(rows, []string{u.ID, u.Email, u.FullName, yesNo(u.IsSuperAdmin), yesNo(u.IsActive)})
			}
			PrintTable(os.Stdout, []string{"id", "email", "name", "super_admin", "active"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().BoolVar(&p.PlatformOnly, "platform-only", false, "Only accounts without organization membership")

	return cmd
}

func newUserGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			printUserDetail(res.Data)
			return nil
		},
	}
}

func printUserDetail(u api.User) {
	PrintDetail(os.Stdout, map[string]any{
		"id":          u.ID,
		"email":       u.Email,
		"name":        u.FullName,
		"phone":       u.Phone,
		"super_admin": u.IsSuperAdmin,
		"active":      u.IsActive,
		"last_login":  u.LastLoginAt,
	})
}

func newUserCreateCmd(a *app) *cobra.Command {
	var req api.CreateUserRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Provision an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Account created for %s (%s)\n", res.Data.Email, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("full-name")

	return cmd
}

func newUserUpdateCmd(a *app) *cobra.Command {
	var (
		email    string
		password string
		fullName string
		phone    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateUserRequest{
				Email:    changedString(cmd, "email", email),
				Password: changedString(cmd, "password", password),
				FullName: changedString(cmd, "full-name", fullName),
				Phone:    changedString(cmd, "phone", phone),
			}
			res, err := a.client.UpdateUser(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Account %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")

	return cmd
}

func newUserDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Account %s deleted\n", args[0])
			return nil
		},
	}
}

func newUserMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			printUserDetail(res.Data)
			return nil
		},
	}
}

func newUserMembershipsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "memberships",
		Short: "Show the authenticated account's memberships",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.MyMemberships(cmd.Context())
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			m := res.Data
			if m.IsSuperAdmin {
				_, _ = fmt.Fprintln(os.Stdout, "Super admin")
			}
			if len(m.OrganizationMemberships) > 0 {
				rows := make([][]string, 0, len(m.OrganizationMemberships))
				for _, om := range m.OrganizationMemberships {
					rows = append(rows, []string{om.OrgID, om.OrgName, om.RoleName})
				}
				PrintTable(os.Stdout, []string{"org", "name", "role"}, rows)
			}
			if len(m.UnitMemberships) > 0 {
				_, _ = fmt.Fprintln(os.Stdout)
				rows := make([][]string, 0, len(m.UnitMemberships))
				for _, um := range m.UnitMemberships {
					rows = append(rows, []string{um.UnitID, um.PerumahanName, um.Role, yesNo(um.IsActive)})
				}
				PrintTable(os.Stdout, []string{"unit", "name", "role", "active"}, rows)
			}
			return nil
		},
	}
}
