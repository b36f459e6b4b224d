package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newAttendanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Manage attendance records",
	}

	cmd.AddCommand(newAttendanceListCmd(a))
	cmd.AddCommand(newAttendanceGetCmd(a))
	cmd.AddCommand(newAttendanceCreateCmd(a))
	cmd.AddCommand(newAttendanceUpdateCmd(a))
	cmd.AddCommand(newAttendanceDeleteCmd(a))
	return cmd
}

func newAttendanceListCmd(a *app) *cobra.Command {
	var p api.AttendanceListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListAttendances(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, at := range res.Data {
				warga := at.WargaID
				if at.Warga != nil {
					warga = at.Warga.Name
				}
				rows = append(rows, []string{at.ID, warga, at.Date, at.Status, at.Notes})
			}
			PrintTable(os.Stdout, []string{"id", "warga", "date", "status", "notes"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.WargaID, "warga", "", "Filter by warga ID")
	cmd.Flags().StringVar(&p.RTID, "rt", "", "Filter by RT ID")
	cmd.Flags().StringVar(&p.Date, "date", "", "Filter by date YYYY-MM-DD")
	cmd.Flags().StringVar(&p.Status, "status", "", "Filter by status")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")

	return cmd
}

func newAttendanceGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetAttendance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			at := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":     at.ID,
				"warga":  at.WargaID,
				"rt":     at.RTID,
				"date":   at.Date,
				"status": at.Status,
				"notes":  at.Notes,
			})
			return nil
		},
	}
}

func newAttendanceCreateCmd(a *app) *cobra.Command {
	var req api.CreateAttendanceRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record attendance for a resident",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateAttendance(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Attendance recorded (%s)\n", res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.WargaID, "warga", "", "Warga ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "RT ID")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (required)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("warga")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newAttendanceUpdateCmd(a *app) *cobra.Command {
	var (
		status string
		date   string
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateAttendanceRequest{
				Status: changedString(cmd, "status", status),
				Date:   changedString(cmd, "date", date),
				Notes:  changedString(cmd, "notes", notes),
			}
			res, err := a.client.UpdateAttendance(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Attendance %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status")
	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newAttendanceDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteAttendance(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Attendance %s deleted\n", args[0])
			return nil
		},
	}
}
