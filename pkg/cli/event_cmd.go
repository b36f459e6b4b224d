package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newEventCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage events",
	}

	cmd.AddCommand(newEventListCmd(a))
	cmd.AddCommand(newEventGetCmd(a))
	cmd.AddCommand(newEventCalendarCmd(a))
	cmd.AddCommand(newEventCreateCmd(a))
	cmd.AddCommand(newEventUpdateCmd(a))
	cmd.AddCommand(newEventDeleteCmd(a))
	return cmd
}

func eventRows(items []api.Event) [][]string {
	rows := make([][]string, 0, len(items))
	for _, e := range items {
		rows = append(rows, []string{e.ID, e.Title, e.EventType, e.StartDate, e.EndDate, e.Location})
	}
	return rows
}

func newEventListCmd(a *app) *cobra.Command {
	var p api.EventListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListEvents(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			PrintTable(os.Stdout, []string{"id", "title", "type", "start", "end", "location"}, eventRows(res.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.Type, "type", "", "Filter by event type")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")

	return cmd
}

func newEventGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			e := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":          e.ID,
				"title":       e.Title,
				"description": e.Description,
				"type":        e.EventType,
				"start":       e.StartDate,
				"end":         e.EndDate,
				"all_day":     e.IsAllDay,
				"location":    e.Location,
				"active":      e.IsActive,
			})
			return nil
		},
	}
}

func newEventCalendarCmd(a *app) *cobra.Command {
	var p api.CalendarEventsParams

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if p.Year == 0 {
				p.Year = now.Year()
			}
			if p.Month == 0 {
				p.Month = int(now.Month())
			}
			res, err := a.client.CalendarEvents(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			PrintTable(os.Stdout, []string{"id", "title", "type", "start", "end", "location"}, eventRows(res.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().IntVar(&p.Year, "year", 0, "Year (defaults to the current year)")
	cmd.Flags().IntVar(&p.Month, "month", 0, "Month 1-12 (defaults to the current month)")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}

func newEventCreateCmd(a *app) *cobra.Command {
	var req api.CreateEventRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateEvent(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Event %q created (%s)\n", res.Data.Title, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Type, "type", "", "Event type")
	cmd.Flags().StringVar(&req.StartDate, "start", "", "Start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.EndDate, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().StringVar(&req.Location, "location", "", "Location")
	cmd.Flags().BoolVar(&req.IsAllDay, "all-day", false, "All-day event")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newEventUpdateCmd(a *app) *cobra.Command {
	var (
		title       string
		description string
		eventType   string
		start       string
		end         string
		location    string
		allDay      bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateEventRequest{
				Title:       changedString(cmd, "title", title),
				Description: changedString(cmd, "description", description),
				Type:        changedString(cmd, "type", eventType),
				StartDate:   changedString(cmd, "start", start),
				EndDate:     changedString(cmd, "end", end),
				Location:    changedString(cmd, "location", location),
				IsAllDay:    changedBool(cmd, "all-day", allDay),
			}
			res, err := a.client.UpdateEvent(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Event %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title")
	cmd.Flags().StringVar(&description, "description", "", "Description")
	cmd.Flags().StringVar(&eventType, "type", "", "Event type")
	cmd.Flags().StringVar(&start, "start", "", "Start date YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "End date YYYY-MM-DD")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event")

	return cmd
}

func newEventDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Event %s deleted\n", args[0])
			return nil
		},
	}
}
