package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newRTCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rt",
		Short: "Manage RTs (classes or blocks) within a unit",
	}

	cmd.AddCommand(newRTListCmd(a))
	cmd.AddCommand(newRTGetCmd(a))
	cmd.AddCommand(newRTCreateCmd(a))
	cmd.AddCommand(newRTUpdateCmd(a))
	cmd.AddCommand(newRTDeleteCmd(a))
	cmd.AddCommand(newRTWargaCmd(a))
	return cmd
}

func newRTListCmd(a *app) *cobra.Command {
	var p api.RTListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List RTs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListRTs(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, rt := range res.Data {
				rows = append(rows, []string{rt.ID, rt.Name, rt.AcademicYear, itoa(rt.Iuran), yesNo(rt.IsActive)})
			}
			PrintTable(os.Stdout, []string{"id", "name", "year", "iuran", "active"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().IntVar(&p.Iuran, "iuran", 0, "Filter by dues amount")

	return cmd
}

func newRTGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one RT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetRT(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rt := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":            rt.ID,
				"name":          rt.Name,
				"unit":          rt.UnitID,
				"academic_year": rt.AcademicYear,
				"iuran":         rt.Iuran,
				"homeroom":      rt.HomeroomID,
				"type":          rt.Type,
				"capacity":      rt.Capacity,
				"active":        rt.IsActive,
			})
			return nil
		},
	}
}

func newRTCreateCmd(a *app) *cobra.Command {
	var req api.CreateRTRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an RT",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateRT(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "RT %q created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "RT name (required)")
	cmd.Flags().IntVar(&req.Iuran, "iuran", 0, "Monthly dues amount")
	cmd.Flags().StringVar(&req.HomeroomID, "homeroom", "", "Homeroom pengurus ID")
	cmd.Flags().StringVar(&req.AcademicYear, "academic-year", "", "Academic year (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "RT type")
	cmd.Flags().IntVar(&req.Capacity, "capacity", 0, "Capacity")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("academic-year")

	return cmd
}

func newRTUpdateCmd(a *app) *cobra.Command {
	var (
		name         string
		iuran        int
		homeroom     string
		academicYear string
		rtType       string
		capacity     int
		active       bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an RT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateRTRequest{
				Name:         changedString(cmd, "name", name),
				Iuran:        changedInt(cmd, "iuran", iuran),
				HomeroomID:   changedString(cmd, "homeroom", homeroom),
				AcademicYear: changedString(cmd, "academic-year", academicYear),
				Type:         changedString(cmd, "type", rtType),
				Capacity:     changedInt(cmd, "capacity", capacity),
				IsActive:     changedBool(cmd, "active", active),
			}
			res, err := a.client.UpdateRT(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "RT %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "RT name")
	cmd.Flags().IntVar(&iuran, "iuran", 0, "Monthly dues amount")
	cmd.Flags().StringVar(&homeroom, "homeroom", "", "Homeroom pengurus ID")
	cmd.Flags().StringVar(&academicYear, "academic-year", "", "Academic year")
	cmd.Flags().StringVar(&rtType, "type", "", "RT type")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Capacity")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newRTDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an RT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteRT(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "RT %s deleted\n", args[0])
			return nil
		},
	}
}

func newRTWargaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warga",
		Short: "Manage an RT's residents",
	}

	cmd.AddCommand(newRTWargaListCmd(a))
	cmd.AddCommand(newRTWargaAddCmd(a))
	cmd.AddCommand(newRTWargaRemoveCmd(a))
	return cmd
}

func newRTWargaListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <rt-id>",
		Short: "List an RT's residents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListRTWargas(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, w := range res.Data {
				rows = append(rows, []string{w.ID, w.Name, w.NIS, w.Status})
			}
			PrintTable(os.Stdout, []string{"id", "name", "nis", "status"}, rows)
			return nil
		},
	}
}

func newRTWargaAddCmd(a *app) *cobra.Command {
	var req api.AddWargaToRTRequest

	cmd := &cobra.Command{
		Use:   "add <rt-id>",
		Short: "Place a resident in an RT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.AddWargaToRT(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Warga %s added to RT %s\n", req.WargaID, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&req.WargaID, "warga", "", "Warga ID (required)")
	cmd.Flags().StringVar(&req.RTType, "type", "", "Placement type")
	_ = cmd.MarkFlagRequired("warga")

	return cmd
}

func newRTWargaRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <rt-id> <warga-id>",
		Short: "Remove a resident from an RT",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.RemoveWargaFromRT(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Warga %s removed from RT %s\n", args[1], args[0])
			return nil
		},
	}
}
