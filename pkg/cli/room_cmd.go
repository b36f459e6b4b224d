package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newRoomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Manage rooms",
	}

	cmd.AddCommand(newRoomListCmd(a))
	cmd.AddCommand(newRoomGetCmd(a))
	cmd.AddCommand(newRoomCreateCmd(a))
	cmd.AddCommand(newRoomUpdateCmd(a))
	cmd.AddCommand(newRoomDeleteCmd(a))
	return cmd
}

func newRoomListCmd(a *app) *cobra.Command {
	var p api.RoomListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListRooms(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, r := range res.Data {
				rows = append(rows, []string{r.ID, r.Code, r.Name, r.Type, r.Building, itoa(r.Capacity)})
			}
			PrintTable(os.Stdout, []string{"id", "code", "name", "type", "building", "capacity"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.Type, "type", "", "Filter by room type")
	cmd.Flags().StringVar(&p.Building, "building", "", "Filter by building")

	return cmd
}

func newRoomGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetRoom(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			r := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":         r.ID,
				"code":       r.Code,
				"name":       r.Name,
				"type":       r.Type,
				"building":   r.Building,
				"floor":      r.Floor,
				"capacity":   r.Capacity,
				"facilities": r.Facilities,
			})
			return nil
		},
	}
}

func newRoomCreateCmd(a *app) *cobra.Command {
	var req api.CreateRoomRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a room",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateRoom(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Room %q created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.Code, "code", "", "Room code (required)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Room name (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Room type")
	cmd.Flags().StringVar(&req.Building, "building", "", "Building")
	cmd.Flags().IntVar(&req.Floor, "floor", 0, "Floor")
	cmd.Flags().IntVar(&req.Capacity, "capacity", 0, "Capacity")
	cmd.Flags().StringVar(&req.Facilities, "facilities", "", "Facilities")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomUpdateCmd(a *app) *cobra.Command {
	var (
		code       string
		name       string
		roomType   string
		building   string
		floor      int
		capacity   int
		facilities string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateRoomRequest{
				Code:       changedString(cmd, "code", code),
				Name:       changedString(cmd, "name", name),
				Type:       changedString(cmd, "type", roomType),
				Building:   changedString(cmd, "building", building),
				Floor:      changedInt(cmd, "floor", floor),
				Capacity:   changedInt(cmd, "capacity", capacity),
				Facilities: changedString(cmd, "facilities", facilities),
			}
			res, err := a.client.UpdateRoom(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Room %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Room code")
	cmd.Flags().StringVar(&name, "name", "", "Room name")
	cmd.Flags().StringVar(&roomType, "type", "", "Room type")
	cmd.Flags().StringVar(&building, "building", "", "Building")
	cmd.Flags().IntVar(&floor, "floor", 0, "Floor")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "Capacity")
	cmd.Flags().StringVar(&facilities, "facilities", "", "Facilities")

	return cmd
}

func newRoomDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteRoom(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Room %s deleted\n", args[0])
			return nil
		},
	}
}
