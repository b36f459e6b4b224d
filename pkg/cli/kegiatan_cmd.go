package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newKegiatanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kegiatan",
		Short: "Manage activities",
	}

	cmd.AddCommand(newKegiatanListCmd(a))
	cmd.AddCommand(newKegiatanGetCmd(a))
	cmd.AddCommand(newKegiatanCreateCmd(a))
	cmd.AddCommand(newKegiatanUpdateCmd(a))
	cmd.AddCommand(newKegiatanDeleteCmd(a))
	cmd.AddCommand(newKegiatanPengurusListCmd(a))
	return cmd
}

func newKegiatanListCmd(a *app) *cobra.Command {
	var p api.KegiatanListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListKegiatans(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, k := range res.Data {
				rows = append(rows, []string{k.ID, k.Code, k.Name, itoa(k.Credits), yesNo(k.IsActive)})
			}
			PrintTable(os.Stdout, []string{"id", "code", "name", "credits", "active"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")

	return cmd
}

func newKegiatanGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetKegiatan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			k := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":          k.ID,
				"code":        k.Code,
				"name":        k.Name,
				"description": k.Description,
				"credits":     k.Credits,
				"active":      k.IsActive,
			})
			return nil
		},
	}
}

func newKegiatanCreateCmd(a *app) *cobra.Command {
	var req api.CreateKegiatanRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateKegiatan(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Kegiatan %q created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.Code, "code", "", "Short code (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().IntVar(&req.Credits, "credits", 0, "Credit weight")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newKegiatanUpdateCmd(a *app) *cobra.Command {
	var (
		code        string
		name        string
		description string
		credits     int
		active      bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateKegiatanRequest{
				Code:        changedString(cmd, "code", code),
				Name:        changedString(cmd, "name", name),
				Description: changedString(cmd, "description", description),
				Credits:     changedInt(cmd, "credits", credits),
				IsActive:    changedBool(cmd, "active", active),
			}
			res, err := a.client.UpdateKegiatan(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Kegiatan %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Short code")
	cmd.Flags().StringVar(&name, "name", "", "Name")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().IntVar(&credits, "credits", 0, "Credit weight")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newKegiatanDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteKegiatan(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Kegiatan %s deleted\n", args[0])
			return nil
		},
	}
}

func newKegiatanPengurusListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "penguruss <id>",
		Short: "List the staff assigned to an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListKegiatanPenguruss(cmd.Context(), args[0], api.PengurusListParams{})
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, as := range res.Data {
				name := as.PengurusID
				if as.Pengurus != nil {
					name = as.Pengurus.Name
				}
				rows = append(rows, []string{as.ID, name, as.AcademicYear, yesNo(as.IsPrimary)})
			}
			PrintTable(os.Stdout, []string{"id", "pengurus", "year", "primary"}, rows)
			return nil
		},
	}
}
