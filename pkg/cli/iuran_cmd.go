package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newIuranCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iuran",
		Short: "Manage assessment records",
	}

	cmd.AddCommand(newIuranListCmd(a))
	cmd.AddCommand(newIuranGetCmd(a))
	cmd.AddCommand(newIuranCreateCmd(a))
	cmd.AddCommand(newIuranUpdateCmd(a))
	cmd.AddCommand(newIuranDeleteCmd(a))
	return cmd
}

func newIuranListCmd(a *app) *cobra.Command {
	var p api.IuranListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assessment records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListIurans(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, g := range res.Data {
				warga := g.WargaID
				if g.Warga != nil {
					warga = g.Warga.Name
				}
				kegiatan := g.KegiatanID
				if g.Kegiatan != nil {
					kegiatan = g.Kegiatan.Name
				}
				score := strconv.FormatFloat(g.Score, 'f', -1, 64)
				rows = append(rows, []string{g.ID, warga, kegiatan, g.Type, score, itoa(g.Semester)})
			}
			PrintTable(os.Stdout, []string{"id", "warga", "kegiatan", "type", "score", "semester"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.WargaID, "warga", "", "Filter by warga ID")
	cmd.Flags().StringVar(&p.RTID, "rt", "", "Filter by RT ID")
	cmd.Flags().StringVar(&p.KegiatanID, "kegiatan", "", "Filter by kegiatan ID")
	cmd.Flags().StringVar(&p.AcademicYear, "academic-year", "", "Filter by academic year")
	cmd.Flags().IntVar(&p.Semester, "semester", 0, "Filter by semester")
	cmd.Flags().StringVar(&p.Type, "type", "", "Filter by record type")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")

	return cmd
}

func newIuranGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one assessment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetIuran(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			g := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":            g.ID,
				"warga":         g.WargaID,
				"kegiatan":      g.KegiatanID,
				"rt":            g.RTID,
				"academic_year": g.AcademicYear,
				"semester":      g.Semester,
				"type":          g.Type,
				"score":         g.Score,
				"max_score":     g.MaxScore,
				"notes":         g.Notes,
			})
			return nil
		},
	}
}

func newIuranCreateCmd(a *app) *cobra.Command {
	var req api.CreateIuranRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record an assessment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateIuran(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Iuran recorded (%s)\n", res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitID, "unit", "", "Unit ID (required)")
	cmd.Flags().StringVar(&req.WargaID, "warga", "", "Warga ID (required)")
	cmd.Flags().StringVar(&req.KegiatanID, "kegiatan", "", "Kegiatan ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "RT ID")
	cmd.Flags().StringVar(&req.PengurusID, "pengurus", "", "Recording pengurus ID")
	cmd.Flags().StringVar(&req.AcademicYear, "academic-year", "", "Academic year (required)")
	cmd.Flags().IntVar(&req.Semester, "semester", 0, "Semester (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Record type (required)")
	cmd.Flags().Float64Var(&req.Score, "score", 0, "Score (required)")
	cmd.Flags().Float64Var(&req.MaxScore, "max-score", 0, "Maximum score")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("warga")
	_ = cmd.MarkFlagRequired("kegiatan")
	_ = cmd.MarkFlagRequired("academic-year")
	_ = cmd.MarkFlagRequired("semester")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newIuranUpdateCmd(a *app) *cobra.Command {
	var (
		recType  string
		score    float64
		maxScore float64
		semester int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an assessment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateIuranRequest{
				Type:     changedString(cmd, "type", recType),
				Score:    changedFloat(cmd, "score", score),
				MaxScore: changedFloat(cmd, "max-score", maxScore),
				Semester: changedInt(cmd, "semester", semester),
				Notes:    changedString(cmd, "notes", notes),
			}
			res, err := a.client.UpdateIuran(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Iuran %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&recType, "type", "", "Record type")
	cmd.Flags().Float64Var(&score, "score", 0, "Score")
	cmd.Flags().Float64Var(&maxScore, "max-score", 0, "Maximum score")
	cmd.Flags().IntVar(&semester, "semester", 0, "Semester")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newIuranDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an assessment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteIuran(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Iuran %s deleted\n", args[0])
			return nil
		},
	}
}
