package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newCalendarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Manage academic calendar entries",
	}

	cmd.AddCommand(newCalendarListCmd(a))
	cmd.AddCommand(newCalendarGetCmd(a))
	cmd.AddCommand(newCalendarCreateCmd(a))
	cmd.AddCommand(newCalendarUpdateCmd(a))
	cmd.AddCommand(newCalendarDeleteCmd(a))
	return cmd
}

func newCalendarListCmd(a *app) *cobra.Command {
	var p api.CalendarEntryListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendar entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListCalendarEntries(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, e := range res.Data {
				rows = append(rows, []string{e.ID, e.EntryType, e.Title, e.StartDate, e.EndDate})
			}
			PrintTable(os.Stdout, []string{"id", "type", "title", "start", "end"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.Type, "type", "", "Filter by entry type")
	cmd.Flags().StringVar(&p.StartDate, "start", "", "Window start YYYY-MM-DD")
	cmd.Flags().StringVar(&p.EndDate, "end", "", "Window end YYYY-MM-DD")
	cmd.Flags().IntVar(&p.Year, "year", 0, "Filter by year")
	cmd.Flags().IntVar(&p.Month, "month", 0, "Filter by month")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")

	return cmd
}

func newCalendarGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetCalendarEntry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			e := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":          e.ID,
				"type":        e.EntryType,
				"title":       e.Title,
				"description": e.Description,
				"start":       e.StartDate,
				"end":         e.EndDate,
				"all_day":     e.IsAllDay,
				"color":       e.Color,
			})
			return nil
		},
	}
}

func newCalendarCreateCmd(a *app) *cobra.Command {
	var (
		unitID string
		req    api.CreateCalendarEntryRequest
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a calendar entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateCalendarEntry(cmd.Context(), unitID, req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Calendar entry %q created (%s)\n", res.Data.Title, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&unitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Type, "type", "", "Entry type (required)")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "Start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().BoolVar(&req.IsAllDay, "all-day", false, "All-day entry")
	cmd.Flags().StringVar(&req.Color, "color", "", "Display color")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newCalendarUpdateCmd(a *app) *cobra.Command {
	var (
		title       string
		description string
		entryType   string
		start       string
		end         string
		allDay      bool
		color       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateCalendarEntryRequest{
				Title:       changedString(cmd, "title", title),
				Description: changedString(cmd, "description", description),
				Type:        changedString(cmd, "type", entryType),
				StartDate:   changedString(cmd, "start", start),
				EndDate:     changedString(cmd, "end", end),
				IsAllDay:    changedBool(cmd, "all-day", allDay),
				Color:       changedString(cmd, "color", color),
			}
			res, err := a.client.UpdateCalendarEntry(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Calendar entry %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&entryType, "type", "", "Entry type")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day entry")
	cmd.Flags().StringVar(&color, "color", "", "Display color")

	return cmd
}

func newCalendarDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a calendar entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteCalendarEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Calendar entry %s deleted\n", args[0])
			return nil
		},
	}
}
