package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newRoleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Manage roles and their permission bindings",
	}

	cmd.AddCommand(newRoleListCmd(a))
	cmd.AddCommand(newRoleGetCmd(a))
	cmd.AddCommand(newRoleCreateCmd(a))
	cmd.AddCommand(newRoleUpdateCmd(a))
	cmd.AddCommand(newRoleDeleteCmd(a))
	return cmd
}

func newRoleListCmd(a *app) *cobra.Command {
	var p api.RoleListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if p.OrganizationID == "" {
				p.OrganizationID = a.orgs.SelectedID()
			}
			res, err := a.client.ListRoles(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, r := range res.Data {
				rows = append(rows, []string{r.ID, r.Name, r.DisplayName, r.Type, itoa(r.Level), itoa(len(r.Permissions))})
			}
			PrintTable(os.Stdout, []string{"id", "name", "display", "type", "level", "permissions"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.OrganizationID, "org", "", "Organization ID (defaults to the selection)")

	return cmd
}

func newRoleGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one role with its permissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetRole(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			r := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":           r.ID,
				"name":         r.Name,
				"display_name": r.DisplayName,
				"type":         r.Type,
				"level":        r.Level,
				"default":      r.IsDefault,
				"active":       r.IsActive,
			})
			if len(r.Permissions) > 0 {
				_, _ = fmt.Fprintln(os.Stdout)
				rows := make([][]string, 0, len(r.Permissions))
				for _, p := range r.Permissions {
					rows = append(rows, []string{p.Resource, p.Action, p.Description})
				}
				PrintTable(os.Stdout, []string{"resource", "action", "description"}, rows)
			}
			return nil
		},
	}
}

func newRoleCreateCmd(a *app) *cobra.Command {
	var req api.CreateRoleRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.OrganizationID == "" {
				req.OrganizationID = a.orgs.SelectedID()
			}
			if req.OrganizationID == "" {
				return fmt.Errorf("no organization: pass --org or run 'sekolah org use'")
			}
			res, err := a.client.CreateRole(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Role %q created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.OrganizationID, "org", "", "Organization ID (defaults to the selection)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Role name (required)")
	cmd.Flags().StringVar(&req.DisplayName, "display-name", "", "Human-readable name")
	cmd.Flags().StringVar(&req.Type, "type", "custom", "Role type")
	cmd.Flags().IntVar(&req.Level, "level", 0, "Role level")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringSliceVar(&req.PermissionIDs, "permissions", nil, "Permission IDs to bind")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoleUpdateCmd(a *app) *cobra.Command {
	var (
		name        string
		displayName string
		level       int
		description string
		permissions []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateRoleRequest{
				Name:        changedString(cmd, "name", name),
				DisplayName: changedString(cmd, "display-name", displayName),
				Level:       changedInt(cmd, "level", level),
				Description: changedString(cmd, "description", description),
			}
			if cmd.Flags().Changed("permissions") {
				req.PermissionIDs = permissions
			}
			res, err := a.client.UpdateRole(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Role %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name")
	cmd.Flags().StringVar(&displayName, "display-name", "", "Human-readable name")
	cmd.Flags().IntVar(&level, "level", 0, "Role level")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringSliceVar(&permissions, "permissions", nil, "Permission IDs (replaces existing bindings)")

	return cmd
}

func newRoleDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteRole(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Role %s deleted\n", args[0])
			return nil
		},
	}
}
