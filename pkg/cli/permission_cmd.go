package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newPermissionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permission",
		Short: "Manage the permission catalog",
	}

	cmd.AddCommand(newPermissionListCmd(a))
	cmd.AddCommand(newPermissionGetCmd(a))
	cmd.AddCommand(newPermissionCreateCmd(a))
	cmd.AddCommand(newPermissionDeleteCmd(a))
	return cmd
}

func newPermissionListCmd(a *app) *cobra.Command {
	var p api.PermissionListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListPermissions(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, perm := range res.Data {
				rows = append(rows, []string{perm.ID, perm.Resource, perm.Action, perm.Description})
			}
			PrintTable(os.Stdout, []string{"id", "resource", "action", "description"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.Resource, "resource", "", "Filter by resource")

	return cmd
}

func newPermissionGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one permission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetPermission(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			p := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":          p.ID,
				"name":        p.Name,
				"resource":    p.Resource,
				"action":      p.Action,
				"description": p.Description,
			})
			return nil
		},
	}
}

func newPermissionCreateCmd(a *app) *cobra.Command {
	var req api.CreatePermissionRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a permission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreatePermission(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Permission %s:%s created (%s)\n", req.Resource, req.Action, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Resource, "resource", "", "Resource name (required)")
	cmd.Flags().StringVar(&req.Action, "action", "", "Action name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("resource")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}

func newPermissionDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a permission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeletePermission(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Permission %s deleted\n", args[0])
			return nil
		},
	}
}
