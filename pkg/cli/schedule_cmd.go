package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newScheduleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage weekly schedules",
	}

	cmd.AddCommand(newScheduleListCmd(a))
	cmd.AddCommand(newScheduleGetCmd(a))
	cmd.AddCommand(newScheduleCreateCmd(a))
	cmd.AddCommand(newScheduleUpdateCmd(a))
	cmd.AddCommand(newScheduleDeleteCmd(a))
	cmd.AddCommand(newScheduleCheckCmd(a))
	cmd.AddCommand(newScheduleCopyCmd(a))
	cmd.AddCommand(newScheduleTemplateCmd(a))
	return cmd
}

func scheduleRows(items []api.Schedule) [][]string {
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		kegiatan := s.KegiatanID
		if s.Kegiatan != nil {
			kegiatan = s.Kegiatan.Name
		}
		pengurus := s.PengurusID
		if s.Pengurus != nil {
			pengurus = s.Pengurus.Name
		}
		rows = append(rows, []string{s.ID, itoa(s.DayOfWeek), s.StartTime, s.EndTime, kegiatan, pengurus, s.Room})
	}
	return rows
}

var scheduleColumns = []string{"id", "day", "start", "end", "kegiatan", "pengurus", "room"}

func newScheduleListCmd(a *app) *cobra.Command {
	var p api.ScheduleListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListSchedules(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			PrintTable(os.Stdout, scheduleColumns, scheduleRows(res.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.RTID, "rt", "", "Filter by RT ID")
	cmd.Flags().StringVar(&p.PengurusID, "pengurus", "", "Filter by pengurus ID")
	cmd.Flags().IntVar(&p.DayOfWeek, "day", 0, "Filter by day of week (1 = Monday)")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")

	return cmd
}

func newScheduleGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			s := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":         s.ID,
				"rt":         s.RTID,
				"kegiatan":   s.KegiatanID,
				"pengurus":   s.PengurusID,
				"day":        s.DayOfWeek,
				"start":      s.StartTime,
				"end":        s.EndTime,
				"room":       s.Room,
				"recurrence": s.RecurrenceType,
				"active":     s.IsActive,
			})
			return nil
		},
	}
}

func newScheduleCreateCmd(a *app) *cobra.Command {
	var (
		req   api.CreateScheduleRequest
		force bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a schedule slot",
		Long:  "Create a weekly slot. Conflicts are checked first; pass --force to create anyway.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				check, err := a.client.CheckScheduleConflicts(cmd.Context(), api.ConflictCheckRequest{
					UnitID:     req.UnitID,
					RTID:       req.RTID,
					PengurusID: req.PengurusID,
					Room:       req.Room,
					DayOfWeek:  req.DayOfWeek,
					StartTime:  req.StartTime,
					EndTime:    req.EndTime,
				})
				if err != nil {
					return err
				}
				if check.Data.HasConflict {
					for _, c := range check.Data.Conflicts {
						_, _ = fmt.Fprintf(os.Stderr, "conflict (%s): %s\n", c.Type, c.Message)
					}
					return fmt.Errorf("%d schedule conflict(s): use --force to override", len(check.Data.Conflicts))
				}
			}

			res, err := a.client.CreateSchedule(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Schedule created (%s)\n", res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "RT ID (required)")
	cmd.Flags().StringVar(&req.KegiatanID, "kegiatan", "", "Kegiatan ID (required)")
	cmd.Flags().StringVar(&req.PengurusID, "pengurus", "", "Pengurus ID (required)")
	cmd.Flags().IntVar(&req.DayOfWeek, "day", 0, "Day of week, 1 = Monday (required)")
	cmd.Flags().StringVar(&req.StartTime, "start", "", "Start time HH:MM (required)")
	cmd.Flags().StringVar(&req.EndTime, "end", "", "End time HH:MM (required)")
	cmd.Flags().StringVar(&req.Room, "room", "", "Room")
	cmd.Flags().StringVar(&req.StartDate, "start-date", "", "First date YYYY-MM-DD")
	cmd.Flags().StringVar(&req.EndDate, "end-date", "", "Last date YYYY-MM-DD")
	cmd.Flags().StringVar(&req.RecurrenceType, "recurrence", "", "Recurrence type")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the conflict check")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("rt")
	_ = cmd.MarkFlagRequired("kegiatan")
	_ = cmd.MarkFlagRequired("pengurus")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleUpdateCmd(a *app) *cobra.Command {
	var (
		rtID       string
		kegiatanID string
		pengurusID string
		day        int
		start      string
		end        string
		room       string
		active     bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a schedule slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateScheduleRequest{
				RTID:       changedString(cmd, "rt", rtID),
				KegiatanID: changedString(cmd, "kegiatan", kegiatanID),
				PengurusID: changedString(cmd, "pengurus", pengurusID),
				DayOfWeek:  changedInt(cmd, "day", day),
				StartTime:  changedString(cmd, "start", start),
				EndTime:    changedString(cmd, "end", end),
				Room:       changedString(cmd, "room", room),
				IsActive:   changedBool(cmd, "active", active),
			}
			res, err := a.client.UpdateSchedule(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Schedule %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&rtID, "rt", "", "RT ID")
	cmd.Flags().StringVar(&kegiatanID, "kegiatan", "", "Kegiatan ID")
	cmd.Flags().StringVar(&pengurusID, "pengurus", "", "Pengurus ID")
	cmd.Flags().IntVar(&day, "day", 0, "Day of week")
	cmd.Flags().StringVar(&start, "start", "", "Start time HH:MM")
	cmd.Flags().StringVar(&end, "end", "", "End time HH:MM")
	cmd.Flags().StringVar(&room, "room", "", "Room")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newScheduleDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a schedule slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteSchedule(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Schedule %s deleted\n", args[0])
			return nil
		},
	}
}

func newScheduleCheckCmd(a *app) *cobra.Command {
	var req api.ConflictCheckRequest

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a proposed slot for conflicts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CheckScheduleConflicts(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			if !res.Data.HasConflict {
				_, _ = fmt.Fprintln(os.Stdout, "No conflicts")
				return nil
			}
			rows := make([][]string, 0, len(res.Data.Conflicts))
			for _, c := range res.Data.Conflicts {
				rows = append(rows, []string{c.Type, c.ConflictsWith.ID, c.Message})
			}
			PrintTable(os.Stdout, []string{"type", "schedule", "message"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "RT ID")
	cmd.Flags().StringVar(&req.PengurusID, "pengurus", "", "Pengurus ID")
	cmd.Flags().StringVar(&req.Room, "room", "", "Room")
	cmd.Flags().IntVar(&req.DayOfWeek, "day", 0, "Day of week (required)")
	cmd.Flags().StringVar(&req.StartTime, "start", "", "Start time HH:MM (required)")
	cmd.Flags().StringVar(&req.EndTime, "end", "", "End time HH:MM (required)")
	cmd.Flags().StringVar(&req.ExcludeID, "exclude", "", "Schedule ID to ignore")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleCopyCmd(a *app) *cobra.Command {
	var req api.CopySchedulesRequest

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy one RT's weekly schedule onto another",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CopySchedulesFromRT(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "%d schedule(s) copied to RT %s\n", len(res.Data), req.TargetRTID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.SourceRTID, "from", "", "Source RT ID (required)")
	cmd.Flags().StringVar(&req.TargetRTID, "to", "", "Target RT ID (required)")
	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newScheduleTemplateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save and load schedule templates",
	}

	cmd.AddCommand(newScheduleTemplateListCmd(a))
	cmd.AddCommand(newScheduleTemplateSaveCmd(a))
	cmd.AddCommand(newScheduleTemplateLoadCmd(a))
	cmd.AddCommand(newScheduleTemplateDeleteCmd(a))
	return cmd
}

func newScheduleTemplateListCmd(a *app) *cobra.Command {
	var unitID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListScheduleTemplates(cmd.Context(), unitID)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, t := range res.Data {
				rows = append(rows, []string{t.ID, t.Name, t.AcademicYear, itoa(len(t.Items))})
			}
			PrintTable(os.Stdout, []string{"id", "name", "year", "slots"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&unitID, "unit", "", "Unit ID (required)")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newScheduleTemplateSaveCmd(a *app) *cobra.Command {
	var req api.SaveScheduleTemplateRequest

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Snapshot an RT's schedule as a template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.SaveScheduleTemplate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Template %q saved (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "Source RT ID (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Template name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.AcademicYear, "academic-year", "", "Academic year")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("rt")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newScheduleTemplateLoadCmd(a *app) *cobra.Command {
	var req api.LoadScheduleTemplateRequest

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Apply a template onto an RT",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.LoadScheduleTemplate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "%d schedule(s) created on RT %s\n", len(res.Data), req.RTID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.TemplateID, "template", "", "Template ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "Target RT ID (required)")
	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("rt")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newScheduleTemplateDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a schedule template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteScheduleTemplate(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Template %s deleted\n", args[0])
			return nil
		},
	}
}
