package api

import (
	"context"
	"net/url"
)

// PengurusListParams filter GET /pengurus-profiles.
type PengurusListParams struct {
	Page   int
	Limit  int
	UnitID string
}

func (p PengurusListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "unit_id", p.UnitID)
	return q
}

// CreatePengurusRequest creates a staff profile for an existing unit member.
type CreatePengurusRequest struct {
	UnitMemberID   string `json:"unit_member_id"`
	NIP            string `json:"nip,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Address        string `json:"address,omitempty"`
}

// UpdatePengurusRequest carries only the fields to change.
type UpdatePengurusRequest struct {
	NIP            *string `json:"nip,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Address        *string `json:"address,omitempty"`
	Status         *string `json:"status,omitempty"`
}

func (c *Client) ListPengurusProfiles(ctx context.Context, p PengurusListParams) (*Response[[]PengurusProfile], error) {
	var res Response[[]PengurusProfile]
	if err := c.Get(ctx, "/pengurus-profiles", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetPengurusProfile(ctx context.Context, id string) (*Response[PengurusProfile], error) {
	var res Response[PengurusProfile]
	if err := c.Get(ctx, "/pengurus-profiles/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreatePengurusProfile(ctx context.Context, req CreatePengurusRequest) (*Response[PengurusProfile], error) {
	var res Response[PengurusProfile]
	if err := c.Post(ctx, "/pengurus-profiles", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdatePengurusProfile(ctx context.Context, id string, req UpdatePengurusRequest) (*Response[PengurusProfile], error) {
	var res Response[PengurusProfile]
	if err := c.Put(ctx, "/pengurus-profiles/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeletePengurusProfile(ctx context.Context, id string) error {
	return c.Delete(ctx, "/pengurus-profiles/"+id, nil)
}

// AssignKegiatanRequest assigns a kegiatan to a pengurus for a year.
type AssignKegiatanRequest struct {
	KegiatanID   string `json:"kegiatan_id"`
	AcademicYear string `json:"academic_year,omitempty"`
	IsPrimary    bool   `json:"is_primary,omitempty"`
}

func (c *Client) ListPengurusKegiatans(ctx context.Context, pengurusID string, p PengurusListParams) (*Response[[]KegiatanAssignment], error) {
	var res Response[[]KegiatanAssignment]
	if err := c.Get(ctx, "/pengurus-profiles/"+pengurusID+"/kegiatans", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) AssignKegiatanToPengurus(ctx context.Context, pengurusID string, req AssignKegiatanRequest) (*Response[KegiatanAssignment], error) {
	var res Response[KegiatanAssignment]
	if err := c.Post(ctx, "/pengurus-profiles/"+pengurusID+"/kegiatans", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RemoveKegiatanFromPengurus(ctx context.Context, pengurusID, kegiatanID string) error {
	return c.Delete(ctx, "/pengurus-profiles/"+pengurusID+"/kegiatans/"+kegiatanID, nil)
}

// ListKegiatanPenguruss lists the penguruss assigned to one kegiatan.
func (c *Client) ListKegiatanPenguruss(ctx context.Context, kegiatanID string, p PengurusListParams) (*Response[[]KegiatanAssignment], error) {
	var res Response[[]KegiatanAssignment]
	if err := c.Get(ctx, "/kegiatans/"+kegiatanID+"/penguruss", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// WargaListParams filter GET /warga-profiles.
type WargaListParams struct {
	Page   int
	Limit  int
	UnitID string
	RTID   string
}

func (p WargaListParams) values() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "limit", p.Limit)
	setStr(q, "unit_id", p.UnitID)
	setStr(q, "rt_id", p.RTID)
	return q
}

// CreateWargaRequest creates a resident profile for an existing unit member.
type CreateWargaRequest struct {
	UnitMemberID string `json:"unit_member_id"`
	RTID         string `json:"rt_id,omitempty"`
	NIS          string `json:"nis"`
	NISN         string `json:"nisn,omitempty"`
	Gender       string `json:"gender,omitempty"`
	BirthPlace   string `json:"birth_place,omitempty"`
	Address      string `json:"address,omitempty"`
	ParentName   string `json:"parent_name,omitempty"`
	ParentPhone  string `json:"parent_phone,omitempty"`
}

// UpdateWargaRequest carries only the fields to change, grouped the way the
// registration form groups them (identity, residence, family, finance).
type UpdateWargaRequest struct {
	NIK        *string `json:"nik,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Agama      *string `json:"agama,omitempty"`
	Pekerjaan  *string `json:"pekerjaan,omitempty"`
	NoWhatsapp *string `json:"no_whatsapp,omitempty"`

	BlokRumah         *string `json:"blok_rumah,omitempty"`
	NomorRumah        *string `json:"nomor_rumah,omitempty"`
	RTRW              *string `json:"rt_rw,omitempty"`
	StatusKepemilikan *string `json:"status_kepemilikan,omitempty"`
	StatusHunian      *string `json:"status_hunian,omitempty"`

	JumlahAnggotaKeluarga *int    `json:"jumlah_anggota_keluarga,omitempty"`
	NamaKontakDarurat     *string `json:"nama_kontak_darurat,omitempty"`
	NoKontakDarurat       *string `json:"no_kontak_darurat,omitempty"`
	NoPlatMobil           *string `json:"no_plat_mobil,omitempty"`
	NoPlatMotor           *string `json:"no_plat_motor,omitempty"`
	MemilikiART           *bool   `json:"memiliki_art,omitempty"`

	StatusIuran       *string `json:"status_iuran,omitempty"`
	MetodePembayaran  *string `json:"metode_pembayaran,omitempty"`
	KeteranganKhusus  *string `json:"keterangan_khusus,omitempty"`

	Status *string `json:"status,omitempty"`
}

func (c *Client) ListWargaProfiles(ctx context.Context, p WargaListParams) (*Response[[]WargaProfile], error) {
	var res Response[[]WargaProfile]
	if err := c.Get(ctx, "/warga-profiles", p.values(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetWargaProfile(ctx context.Context, id string) (*Response[WargaProfile], error) {
	var res Response[WargaProfile]
	if err := c.Get(ctx, "/warga-profiles/"+id, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateWargaProfile(ctx context.Context, req CreateWargaRequest) (*Response[WargaProfile], error) {
	var res Response[WargaProfile]
	if err := c.Post(ctx, "/warga-profiles", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateWargaProfile(ctx context.Context, id string, req UpdateWargaRequest) (*Response[WargaProfile], error) {
	var res Response[WargaProfile]
	if err := c.Put(ctx, "/warga-profiles/"+id, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteWargaProfile(ctx context.Context, id string) error {
	return c.Delete(ctx, "/warga-profiles/"+id, nil)
}

// WargaRTHistory lists a warga's past and current RT placements.
func (c *Client) WargaRTHistory(ctx context.Context, wargaID string) (*Response[[]RTHistoryEntry], error) {
	var res Response[[]RTHistoryEntry]
	if err := c.Get(ctx, "/warga-profiles/"+wargaID+"/rt-history", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListWargaRTs lists the RTs a warga currently belongs to.
func (c *Client) ListWargaRTs(ctx context.Context, wargaID string) (*Response[[]RT], error) {
	var res Response[[]RT]
	if err := c.Get(ctx, "/warga-profiles/"+wargaID+"/rts", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
