package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newOrgCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "org",
		Aliases: []string{"organization"},
		Short:   "Manage organizations",
	}

	cmd.AddCommand(newOrgListCmd(a))
	cmd.AddCommand(newOrgGetCmd(a))
	cmd.AddCommand(newOrgCreateCmd(a))
	cmd.AddCommand(newOrgUpdateCmd(a))
	cmd.AddCommand(newOrgDeleteCmd(a))
	cmd.AddCommand(newOrgUseCmd(a))
	cmd.AddCommand(newOrgCurrentCmd(a))
	cmd.AddCommand(newOrgClearCmd(a))
	cmd.AddCommand(newOrgMemberCmd(a))
	return cmd
}

func orgRows(orgs []api.Organization) [][]string {
	rows := make([][]string, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, []string{o.ID, o.Name, o.Code, o.Type, yesNo(o.IsActive)})
	}
	return rows
}

func newOrgListCmd(a *app) *cobra.Command {
	var p api.OrganizationListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListOrganizations(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			PrintTable(os.Stdout, []string{"id", "name", "code", "type", "active"}, orgRows(res.Data))
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.Search, "search", "", "Filter by name or code")

	return cmd
}

func newOrgGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetOrganization(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			o := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":          o.ID,
				"name":        o.Name,
				"code":        o.Code,
				"type":        o.Type,
				"description": o.Description,
				"address":     o.Address,
				"active":      o.IsActive,
			})
			return nil
		},
	}
}

func newOrgCreateCmd(a *app) *cobra.Command {
	var req api.CreateOrganizationRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateOrganization(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Organization %q created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Organization name (required)")
	cmd.Flags().StringVar(&req.Code, "code", "", "Short code (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Organization type (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newOrgUpdateCmd(a *app) *cobra.Command {
	var (
		name        string
		description string
		address     string
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateOrganizationRequest{
				Name:        changedString(cmd, "name", name),
				Description: changedString(cmd, "description", description),
				Address:     changedString(cmd, "address", address),
				IsActive:    changedBool(cmd, "active", active),
			}
			res, err := a.client.UpdateOrganization(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Organization %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Organization name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newOrgDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteOrganization(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Organization %s deleted\n", args[0])
			return nil
		},
	}
}

func newOrgUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Select the working organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetOrganization(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := a.orgs.Set(res.Data); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res.Data)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Working organization set to %q\n", res.Data.Name)
			return nil
		},
	}
}

func newOrgCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the selected organization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			org := a.orgs.Selected()
			if org == nil {
				return fmt.Errorf("no organization selected: run 'sekolah org use <id>'")
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, org)
			}
			PrintDetail(os.Stdout, map[string]any{
				"id":   org.ID,
				"name": org.Name,
				"code": org.Code,
				"type": org.Type,
			})
			return nil
		},
	}
}

func newOrgClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the organization selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.orgs.Clear(); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintln(os.Stdout, "Organization selection cleared")
			return nil
		},
	}
}

func newOrgMemberCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage organization members",
	}

	cmd.AddCommand(newOrgMemberListCmd(a))
	cmd.AddCommand(newOrgMemberAddCmd(a))
	cmd.AddCommand(newOrgMemberSetRoleCmd(a))
	cmd.AddCommand(newOrgMemberRemoveCmd(a))
	return cmd
}

func newOrgMemberListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <org-id>",
		Short: "List members of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListOrganizationMembers(cmd.Context(), args[0], api.OrganizationListParams{})
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, m := range res.Data {
				email := ""
				if m.User != nil {
					email = m.User.Email
				}
				rows = append(rows, []string{m.UserID, email, m.RoleName, yesNo(m.IsActive)})
			}
			PrintTable(os.Stdout, []string{"user", "email", "role", "active"}, rows)
			return nil
		},
	}
}

func newOrgMemberAddCmd(a *app) *cobra.Command {
	var req api.AddOrgMemberRequest

	cmd := &cobra.Command{
		Use:   "add <org-id>",
		Short: "Add a user to an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.AddOrganizationMember(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "User %s added to organization %s\n", req.UserID, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UserID, "user", "", "User ID (required)")
	cmd.Flags().StringVar(&req.RoleID, "role", "", "Role ID (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newOrgMemberSetRoleCmd(a *app) *cobra.Command {
	var roleID string

	cmd := &cobra.Command{
		Use:   "set-role <org-id> <user-id>",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.UpdateOrganizationMemberRole(cmd.Context(), args[0], args[1], roleID)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Role updated for user %s\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&roleID, "role", "", "New role ID (required)")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newOrgMemberRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <org-id> <user-id>",
		Short: "Remove a member from an organization",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.RemoveOrganizationMember(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintf(os.Stdout, "User %s removed from organization %s\n", args[1], args[0])
			return nil
		},
	}
}
