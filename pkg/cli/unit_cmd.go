package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sekolah-cli/internal/api"
)

func newUnitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unit",
		Aliases: []string{"perumahan"},
		Short:   "Manage operational units",
	}

	cmd.AddCommand(newUnitListCmd(a))
	cmd.AddCommand(newUnitGetCmd(a))
	cmd.AddCommand(newUnitCreateCmd(a))
	cmd.AddCommand(newUnitUpdateCmd(a))
	cmd.AddCommand(newUnitDeleteCmd(a))
	cmd.AddCommand(newUnitOverviewCmd(a))
	cmd.AddCommand(newUnitMemberCmd(a))
	cmd.AddCommand(newUnitSettingsCmd(a))
	cmd.AddCommand(newUnitPeriodCmd(a))
	cmd.AddCommand(newUnitRegisterPengurusCmd(a))
	cmd.AddCommand(newUnitRegisterWargaCmd(a))
	return cmd
}

func newUnitListCmd(a *app) *cobra.Command {
	var p api.UnitListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if p.OrganizationID == "" {
				p.OrganizationID = a.orgs.SelectedID()
			}
			res, err := a.client.ListPerumahans(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, u := range res.Data {
				rows = append(rows, []string{u.ID, u.Name, u.Code, u.Type, yesNo(u.IsActive)})
			}
			PrintTable(os.Stdout, []string{"id", "name", "code", "type", "active"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.OrganizationID, "org", "", "Organization ID (defaults to the selection)")
	cmd.Flags().StringVar(&p.Type, "type", "", "Filter by unit type")

	return cmd
}

func newUnitGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetPerumahan(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			u := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":      u.ID,
				"name":    u.Name,
				"code":    u.Code,
				"type":    u.Type,
				"address": u.Address,
				"phone":   u.Phone,
				"email":   u.Email,
				"active":  u.IsActive,
			})
			return nil
		},
	}
}

func newUnitCreateCmd(a *app) *cobra.Command {
	var req api.CreatePerumahanRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if req.OrganizationID == "" {
				req.OrganizationID = a.orgs.SelectedID()
			}
			if req.OrganizationID == "" {
				return fmt.Errorf("no organization: pass --org or run 'sekolah org use'")
			}
			res, err := a.client.CreatePerumahan(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Unit %q created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.OrganizationID, "org", "", "Organization ID (defaults to the selection)")
	cmd.Flags().StringVar(&req.Name, "name", "", "Unit name (required)")
	cmd.Flags().StringVar(&req.Code, "code", "", "Short code (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Unit type")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Contact email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newUnitUpdateCmd(a *app) *cobra.Command {
	var (
		name    string
		address string
		phone   string
		email   string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdatePerumahanRequest{
				Name:    changedString(cmd, "name", name),
				Address: changedString(cmd, "address", address),
				Phone:   changedString(cmd, "phone", phone),
				Email:   changedString(cmd, "email", email),
			}
			res, err := a.client.UpdatePerumahan(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Unit %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Unit name")
	cmd.Flags().StringVar(&address, "address", "", "Address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")

	return cmd
}

func newUnitDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeletePerumahan(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Unit %s deleted\n", args[0])
			return nil
		},
	}
}

// newUnitOverviewCmd fetches the unit's headline numbers with one
// concurrent pass over the per-resource list endpoints.
func newUnitOverviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "overview <id>",
		Short: "Summarize a unit's members, RTs, rooms, and activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unitID := args[0]

			var (
				unit      *api.Response[api.Perumahan]
				members   *api.Response[[]api.UnitMember]
				rts       *api.Response[[]api.RT]
				rooms     *api.Response[[]api.Room]
				kegiatans *api.Response[[]api.Kegiatan]
				penguruss *api.Response[[]api.PengurusProfile]
				wargas    *api.Response[[]api.WargaProfile]
			)

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() (err error) {
				unit, err = a.client.GetPerumahan(ctx, unitID)
				return err
			})
			g.Go(func() (err error) {
				members, err = a.client.ListUnitMembers(ctx, unitID, api.UnitMemberListParams{})
				return err
			})
			g.Go(func() (err error) {
				rts, err = a.client.ListRTs(ctx, api.RTListParams{UnitID: unitID})
				return err
			})
			g.Go(func() (err error) {
				rooms, err = a.client.ListRooms(ctx, api.RoomListParams{UnitID: unitID})
				return err
			})
			g.Go(func() (err error) {
				kegiatans, err = a.client.ListKegiatans(ctx, api.KegiatanListParams{UnitID: unitID})
				return err
			})
			g.Go(func() (err error) {
				penguruss, err = a.client.ListPengurusProfiles(ctx, api.PengurusListParams{UnitID: unitID})
				return err
			})
			g.Go(func() (err error) {
				wargas, err = a.client.ListWargaProfiles(ctx, api.WargaListParams{UnitID: unitID})
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			fields := map[string]any{
				"name":      unit.Data.Name,
				"code":      unit.Data.Code,
				"type":      unit.Data.Type,
				"members":   len(members.Data),
				"rts":       len(rts.Data),
				"rooms":     len(rooms.Data),
				"kegiatans": len(kegiatans.Data),
				"penguruss": len(penguruss.Data),
				"wargas":    len(wargas.Data),
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, fields)
			}
			PrintDetail(os.Stdout, fields)
			return nil
		},
	}
}

func newUnitMemberCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage unit members",
	}

	cmd.AddCommand(newUnitMemberListCmd(a))
	cmd.AddCommand(newUnitMemberGetCmd(a))
	cmd.AddCommand(newUnitMemberAddCmd(a))
	cmd.AddCommand(newUnitMemberUpdateCmd(a))
	cmd.AddCommand(newUnitMemberRemoveCmd(a))
	return cmd
}

func newUnitMemberListCmd(a *app) *cobra.Command {
	var p api.UnitMemberListParams

	cmd := &cobra.Command{
		Use:   "list <unit-id>",
		Short: "List members of a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListUnitMembers(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, m := range res.Data {
				email := ""
				if m.User != nil {
					email = m.User.Email
				}
				rows = append(rows, []string{m.ID, m.UserID, email, m.Role, yesNo(m.IsActive)})
			}
			PrintTable(os.Stdout, []string{"id", "user", "email", "role", "active"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.Role, "role", "", "Filter by unit role")

	return cmd
}

func newUnitMemberGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <unit-id> <member-id>",
		Short: "Show one unit member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetUnitMember(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			m := res.Data
			fields := map[string]any{
				"id":     m.ID,
				"user":   m.UserID,
				"role":   m.Role,
				"active": m.IsActive,
			}
			if m.User != nil {
				fields["email"] = m.User.Email
				fields["name"] = m.User.FullName
			}
			PrintDetail(os.Stdout, fields)
			return nil
		},
	}
}

func newUnitMemberAddCmd(a *app) *cobra.Command {
	var req api.AddUnitMemberRequest

	cmd := &cobra.Command{
		Use:   "add <unit-id>",
		Short: "Add a user to a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.AddUnitMember(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "User %s added to unit %s as %s\n", req.UserID, args[0], req.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UserID, "user", "", "User ID (required)")
	cmd.Flags().StringVar(&req.Role, "role", "", "Unit role (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newUnitMemberUpdateCmd(a *app) *cobra.Command {
	var (
		role   string
		active bool
	)

	cmd := &cobra.Command{
		Use:   "update <unit-id> <member-id>",
		Short: "Change a unit member's role or state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateUnitMemberRequest{
				Role:     changedString(cmd, "role", role),
				IsActive: changedBool(cmd, "active", active),
			}
			res, err := a.client.UpdateUnitMember(cmd.Context(), args[0], args[1], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Member %s updated\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Unit role")
	cmd.Flags().BoolVar(&active, "active", true, "Active flag")

	return cmd
}

func newUnitMemberRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <unit-id> <member-id>",
		Short: "Remove a member from a unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.RemoveUnitMember(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Member %s removed from unit %s\n", args[1], args[0])
			return nil
		},
	}
}

func newUnitSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change a unit's calendar settings",
	}

	cmd.AddCommand(newUnitSettingsGetCmd(a))
	cmd.AddCommand(newUnitSettingsUpdateCmd(a))
	return cmd
}

func newUnitSettingsGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <unit-id>",
		Short: "Show a unit's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetUnitSettings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			s := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"academic_year":      s.AcademicYear,
				"current_semester":   s.CurrentSemester,
				"start_time":         s.StartTime,
				"period_duration":    s.PeriodDuration,
				"total_periods":      s.TotalPeriods,
				"break_after_period": s.BreakAfterPeriod,
				"break_duration":     s.BreakDuration,
			})
			return nil
		},
	}
}

func newUnitSettingsUpdateCmd(a *app) *cobra.Command {
	var (
		periodDuration   int
		startTime        string
		totalPeriods     int
		breakAfterPeriod int
		breakDuration    int
		academicYear     string
		currentSemester  int
	)

	cmd := &cobra.Command{
		Use:   "update <unit-id>",
		Short: "Change a unit's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateUnitSettingsRequest{
				PeriodDuration:   changedInt(cmd, "period-duration", periodDuration),
				StartTime:        changedString(cmd, "start-time", startTime),
				TotalPeriods:     changedInt(cmd, "total-periods", totalPeriods),
				BreakAfterPeriod: changedInt(cmd, "break-after-period", breakAfterPeriod),
				BreakDuration:    changedInt(cmd, "break-duration", breakDuration),
				AcademicYear:     changedString(cmd, "academic-year", academicYear),
				CurrentSemester:  changedInt(cmd, "semester", currentSemester),
			}
			res, err := a.client.UpdateUnitSettings(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Settings updated for unit %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&periodDuration, "period-duration", 0, "Minutes per period")
	cmd.Flags().StringVar(&startTime, "start-time", "", "Day start time (HH:MM)")
	cmd.Flags().IntVar(&totalPeriods, "total-periods", 0, "Periods per day")
	cmd.Flags().IntVar(&breakAfterPeriod, "break-after-period", 0, "Break position")
	cmd.Flags().IntVar(&breakDuration, "break-duration", 0, "Break length in minutes")
	cmd.Flags().StringVar(&academicYear, "academic-year", "", "Academic year (e.g. 2026/2027)")
	cmd.Flags().IntVar(&currentSemester, "semester", 0, "Current semester (1 or 2)")

	return cmd
}

func newUnitPeriodCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "period",
		Short: "Manage a unit's period grid",
	}

	cmd.AddCommand(newUnitPeriodListCmd(a))
	cmd.AddCommand(newUnitPeriodGenerateCmd(a))
	cmd.AddCommand(newUnitPeriodUpdateCmd(a))
	return cmd
}

func newUnitPeriodListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <unit-id>",
		Short: "List a unit's periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListPeriodDefinitions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, p := range res.Data {
				rows = append(rows, []string{p.ID, itoa(p.Period), p.StartTime, p.EndTime, yesNo(p.IsBreak)})
			}
			PrintTable(os.Stdout, []string{"id", "period", "start", "end", "break"}, rows)
			return nil
		},
	}
}

func newUnitPeriodGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <unit-id>",
		Short: "Regenerate the period grid from the unit's settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.GeneratePeriodDefinitions(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok"})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Periods regenerated for unit %s\n", args[0])
			return nil
		},
	}
}

func newUnitPeriodUpdateCmd(a *app) *cobra.Command {
	var (
		startTime string
		endTime   string
	)

	cmd := &cobra.Command{
		Use:   "update <unit-id> <period-id>",
		Short: "Adjust one period's time window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdatePeriodRequest{
				StartTime: changedString(cmd, "start-time", startTime),
				EndTime:   changedString(cmd, "end-time", endTime),
			}
			res, err := a.client.UpdatePeriodDefinition(cmd.Context(), args[0], args[1], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Period %s updated\n", args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&startTime, "start-time", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endTime, "end-time", "", "End time (HH:MM)")

	return cmd
}

func newUnitRegisterPengurusCmd(a *app) *cobra.Command {
	var req api.RegisterPengurusRequest

	cmd := &cobra.Command{
		Use:   "register-pengurus <unit-id>",
		Short: "Register a staff member in one step",
		Long:  "Create the account, unit membership, and staff profile in a single call. The server generates an initial password.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.RegisterPengurus(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			r := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"user_id":            r.UserID,
				"pengurus_id":        r.PengurusID,
				"unit_member_id":     r.UnitMemberID,
				"generated_password": r.GeneratedPassword,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.NIP, "nip", "", "Staff number (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("nip")

	return cmd
}

func newUnitRegisterWargaCmd(a *app) *cobra.Command {
	var req api.RegisterWargaRequest

	cmd := &cobra.Command{
		Use:   "register-warga <unit-id>",
		Short: "Register a resident in one step",
		Long:  "Create the account, unit membership, and resident profile in a single call. The server generates an initial password.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.RegisterWarga(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			r := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"user_id":            r.UserID,
				"warga_id":           r.WargaID,
				"unit_member_id":     r.UnitMemberID,
				"generated_password": r.GeneratedPassword,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (required)")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.NIK, "nik", "", "National ID number")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&req.Agama, "agama", "", "Religion")
	cmd.Flags().StringVar(&req.Pekerjaan, "pekerjaan", "", "Occupation")
	cmd.Flags().StringVar(&req.BlokRumah, "blok-rumah", "", "House block")
	cmd.Flags().StringVar(&req.NomorRumah, "nomor-rumah", "", "House number")
	cmd.Flags().StringVar(&req.StatusKepemilikan, "status-kepemilikan", "", "Ownership status")
	cmd.Flags().StringVar(&req.StatusHunian, "status-hunian", "", "Occupancy status")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
