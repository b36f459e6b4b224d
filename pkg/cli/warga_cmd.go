package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sekolah-cli/internal/api"
)

func newWargaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warga",
		Short: "Manage resident profiles",
	}

	cmd.AddCommand(newWargaListCmd(a))
	cmd.AddCommand(newWargaGetCmd(a))
	cmd.AddCommand(newWargaCreateCmd(a))
	cmd.AddCommand(newWargaUpdateCmd(a))
	cmd.AddCommand(newWargaDeleteCmd(a))
	cmd.AddCommand(newWargaHistoryCmd(a))
	cmd.AddCommand(newWargaRTsCmd(a))
	return cmd
}

func newWargaListCmd(a *app) *cobra.Command {
	var p api.WargaListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resident profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.ListWargaProfiles(cmd.Context(), p)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, w := range res.Data {
				rows = append(rows, []string{w.ID, w.Name, w.NIS, w.RTID, w.Status})
			}
			PrintTable(os.Stdout, []string{"id", "name", "nis", "rt", "status"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&p.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "Page size")
	cmd.Flags().StringVar(&p.UnitID, "unit", "", "Filter by unit ID")
	cmd.Flags().StringVar(&p.RTID, "rt", "", "Filter by RT ID")

	return cmd
}

func newWargaGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one resident profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.GetWargaProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			w := res.Data
			PrintDetail(os.Stdout, map[string]any{
				"id":           w.ID,
				"name":         w.Name,
				"nis":          w.NIS,
				"nisn":         w.NISN,
				"nik":          w.NIK,
				"gender":       w.Gender,
				"rt":           w.RTID,
				"address":      w.Address,
				"parent_name":  w.ParentName,
				"parent_phone": w.ParentPhone,
				"status":       w.Status,
			})
			return nil
		},
	}
}

func newWargaCreateCmd(a *app) *cobra.Command {
	var req api.CreateWargaRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a resident profile for an existing unit member",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.client.CreateWargaProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Resident profile created (%s)\n", res.Data.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.UnitMemberID, "member", "", "Unit member ID (required)")
	cmd.Flags().StringVar(&req.RTID, "rt", "", "RT ID")
	cmd.Flags().StringVar(&req.NIS, "nis", "", "Resident number (required)")
	cmd.Flags().StringVar(&req.NISN, "nisn", "", "National resident number")
	cmd.Flags().StringVar(&req.Gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&req.BirthPlace, "birth-place", "", "Birth place")
	cmd.Flags().StringVar(&req.Address, "address", "", "Address")
	cmd.Flags().StringVar(&req.ParentName, "parent-name", "", "Parent or guardian name")
	cmd.Flags().StringVar(&req.ParentPhone, "parent-phone", "", "Parent or guardian phone")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("nis")

	return cmd
}

func newWargaUpdateCmd(a *app) *cobra.Command {
	var (
		nik               string
		gender            string
		agama             string
		pekerjaan         string
		noWhatsapp        string
		blokRumah         string
		nomorRumah        string
		rtRW              string
		statusKepemilikan string
		statusHunian      string
		anggotaKeluarga   int
		kontakDaruratNama string
		kontakDaruratNo   string
		platMobil         string
		platMotor         string
		memilikiART       bool
		statusIuran       string
		metodePembayaran  string
		keterangan        string
		status            string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a resident profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.UpdateWargaRequest{
				NIK:                   changedString(cmd, "nik", nik),
				Gender:                changedString(cmd, "gender", gender),
				Agama:                 changedString(cmd, "agama", agama),
				Pekerjaan:             changedString(cmd, "pekerjaan", pekerjaan),
				NoWhatsapp:            changedString(cmd, "whatsapp", noWhatsapp),
				BlokRumah:             changedString(cmd, "blok-rumah", blokRumah),
				NomorRumah:            changedString(cmd, "nomor-rumah", nomorRumah),
				RTRW:                  changedString(cmd, "rt-rw", rtRW),
				StatusKepemilikan:     changedString(cmd, "status-kepemilikan", statusKepemilikan),
				StatusHunian:          changedString(cmd, "status-hunian", statusHunian),
				JumlahAnggotaKeluarga: changedInt(cmd, "anggota-keluarga", anggotaKeluarga),
				NamaKontakDarurat:     changedString(cmd, "kontak-darurat-nama", kontakDaruratNama),
				NoKontakDarurat:       changedString(cmd, "kontak-darurat-no", kontakDaruratNo),
				NoPlatMobil:           changedString(cmd, "plat-mobil", platMobil),
				NoPlatMotor:           changedString(cmd, "plat-motor", platMotor),
				MemilikiART:           changedBool(cmd, "memiliki-art", memilikiART),
				StatusIuran:           changedString(cmd, "status-iuran", statusIuran),
				MetodePembayaran:      changedString(cmd, "metode-pembayaran", metodePembayaran),
				KeteranganKhusus:      changedString(cmd, "keterangan", keterangan),
				Status:                changedString(cmd, "status", status),
			}
			res, err := a.client.UpdateWargaProfile(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			_, _ = fmt.Fprintf(os.Stdout, "Resident profile %s updated\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&nik, "nik", "", "National ID number")
	cmd.Flags().StringVar(&gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&agama, "agama", "", "Religion")
	cmd.Flags().StringVar(&pekerjaan, "pekerjaan", "", "Occupation")
	cmd.Flags().StringVar(&noWhatsapp, "whatsapp", "", "WhatsApp number")
	cmd.Flags().StringVar(&blokRumah, "blok-rumah", "", "House block")
	cmd.Flags().StringVar(&nomorRumah, "nomor-rumah", "", "House number")
	cmd.Flags().StringVar(&rtRW, "rt-rw", "", "RT/RW code")
	cmd.Flags().StringVar(&statusKepemilikan, "status-kepemilikan", "", "Ownership status")
	cmd.Flags().StringVar(&statusHunian, "status-hunian", "", "Occupancy status")
	cmd.Flags().IntVar(&anggotaKeluarga, "anggota-keluarga", 0, "Household size")
	cmd.Flags().StringVar(&kontakDaruratNama, "kontak-darurat-nama", "", "Emergency contact name")
	cmd.Flags().StringVar(&kontakDaruratNo, "kontak-darurat-no", "", "Emergency contact number")
	cmd.Flags().StringVar(&platMobil, "plat-mobil", "", "Car plate number")
	cmd.Flags().StringVar(&platMotor, "plat-motor", "", "Motorcycle plate number")
	cmd.Flags().BoolVar(&memilikiART, "memiliki-art", false, "Has household help")
	cmd.Flags().StringVar(&statusIuran, "status-iuran", "", "Dues status")
	cmd.Flags().StringVar(&metodePembayaran, "metode-pembayaran", "", "Payment method")
	cmd.Flags().StringVar(&keterangan, "keterangan", "", "Special notes")
	cmd.Flags().StringVar(&status, "status", "", "Profile status")

	return cmd
}

func newWargaDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a resident profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DeleteWargaProfile(cmd.Context(), args[0]); err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, map[string]string{"status": "ok", "id": args[0]})
			}
			_, _ = fmt.Fprintf(os.Stdout, "Resident profile %s deleted\n", args[0])
			return nil
		},
	}
}

func newWargaHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show a resident's RT placement history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.WargaRTHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, h := range res.Data {
				rows = append(rows, []string{h.RTName, h.AcademicYear, h.JoinedAt, h.LeftAt})
			}
			PrintTable(os.Stdout, []string{"rt", "year", "joined", "left"}, rows)
			return nil
		},
	}
}

func newWargaRTsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rts <id>",
		Short: "List the RTs a resident currently belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ListWargaRTs(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(os.Stdout, res)
			}
			rows := make([][]string, 0, len(res.Data))
			for _, rt := range res.Data {
				rows = append(rows, []string{rt.ID, rt.Name, rt.AcademicYear, rt.Type})
			}
			PrintTable(os.Stdout, []string{"id", "name", "year", "type"}, rows)
			return nil
		},
	}
}
