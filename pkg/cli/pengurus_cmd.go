package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newPengurusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pengurus",
		Short: "Manage staff profiles",
	}

	cmd.AddCommand(newPengurusListCmd(a))
	cmd.AddCommand(newPengurusGetCmd(a))
	cmd.AddCommand(newPengurusCreateCmd(a))
	cmd.AddCommand(newPengurusUpdateCmd(a))
	cmd.AddCommand(newPengurusDeleteCmd(a))
	cmd.AddCommand(newPengurusKegiatanCmd(a))
	return cmd
}

func newPengurusListCmd(a *app) *cobra.Command {
	var p api.PengurusListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListPengurusProfiles(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, t := range res.Data {
				rows = append(rows, []string{t.ID, t.Name, t.NIP, t.Specialization, t.Status})
			}
			PrintTable(os.Stdout, []string{"id", "name", "nip", "specialization", "status"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")

	return cmd
}

func newPengurusGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one staff profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetPengurusProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			t := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":             t.ID,
				"name":           t.Name,
				"nip":            t.NIP,
				"specialization": t.Specialization,
				"gender":         t.Gender,
				"address":        t.Address,
				"status":         t.Status,
			})
			return nil
		},
	}
}

func newPengurusCreateCmd(a *app) *cobra.Command {
	var req api.CreatePengurusRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a staff profile for an existing unit member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreatePengurusProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Staff profile created (%s)\n", res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitMemberID, "member", "", "Unit member ID (required)")
	cmd.Flags().StringVar(&req.NIP, "nip", "", "Staff number")
	cmd.Flags().StringVar(&req.Specialization, "specialization", "", "Specialization")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address")
	_ = cmd.MarkFlagRequired("member")

	return cmd
}

func newPengurusUpdateCmd(a *app) *cobra.Command {
	var (
		nip            string
		specialization string
		gender         string
		address        string
		status         string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a staff profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdatePengurusRequest{
				NIP:            changedString(cmd, "nip", nip),
				Specialization: changedString(cmd, "specialization", specialization),
				Gender:         changedString(cmd, "gender", gender),
				Address:        changedString(cmd, "address", address),
				Status:         changedString(cmd, "status", status),
			}
			res, err := a.client.UpdatePengurusProfile(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Staff profile %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&nip, "nip", "", "Staff number")
	cmd.Flags().StringVar(&specialization, "specialization", "", "Specialization")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&status, "status", "", "Status")

	return cmd
}

func newPengurusDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a staff profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeletePengurusProfile(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Staff profile %s deleted\n", args[0])
			return nil
		},
	}
}

func newPengurusKegiatanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kegiatan",
		Short: "Manage a staff member's activity assignments",
	}

	cmd.AddCommand(newPengurusKegiatanListCmd(a))
	cmd.AddCommand(newPengurusKegiatanAssignCmd(a))
	cmd.AddCommand(newPengurusKegiatanRemoveCmd(a))
	return cmd
}

func newPengurusKegiatanListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <pengurus-id>",
		Short: "List a staff member's activity assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListPengurusKegiatans(cmd.Context(), args[0], api.PengurusListParams{})
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, as := range res.Data {
				name := as.KegiatanID
				if as.Kegiatan != nil {
					name = as.Kegiatan.Name
				}
				rows = append(rows, []string{as.ID, name, as.AcademicYear, yesNo(as.IsPrimary)})
			}
			PrintTable(os.Stdout, []string{"id", "kegiatan", "year", "primary"}, rows)
			return nil
		},
	}
}

func newPengurusKegiatanAssignCmd(a *app) *cobra.Command {
	var req api.AssignKegiatanRequest

	cmd := &cobra.Command{
		Use:   "assign <pengurus-id>",
		Short: "Assign an activity to a staff member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.AssignKegiatanToPengurus(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Kegiatan %s assigned to %s\n", req.KegiatanID, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&req.KegiatanID, "kegiatan", "", "Kegiatan ID (required)")
	cmd.Flags().StringVar(&req.AcademicYear, "academic-year", "", "Academic year")
	cmd.Flags().BoolVar(&req.IsPrimary, "primary", false, "Mark as the primary assignment")
	_ = cmd.MarkFlagRequired("kegiatan")

	return cmd
}

func newPengurusKegiatanRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pengurus-id> <kegiatan-id>",
		Short: "Remove an activity assignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.RemoveKegiatanFromPengurus(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Kegiatan %s removed from %s\n", args[1], args[0])
			return nil
		},
	}
}
