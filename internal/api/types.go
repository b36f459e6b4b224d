package api

import (
	"net/url"
	"strconv"
)

// Response is the envelope every successful API response uses.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Pagination is returned alongside paginated list data.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// User is the platform identity record. The client only ever holds a
// read-only copy; the server owns it.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Phone        string `json:"phone,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	IsActive     bool   `json:"is_active"`
	LastLoginAt  string `json:"last_login_at,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Organization is the top-level tenant entity.
type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Settings    string `json:"settings,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// OrgMember links a user to an organization through a role.
type OrgMember struct {
	ID       string `json:"id"`
	OrgID    string `json:"org_id"`
	UserID   string `json:"user_id"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name,omitempty"`
	IsActive bool   `json:"is_active"`
	User     *User  `json:"user,omitempty"`
	JoinedAt string `json:"joined_at,omitempty"`
}

// Role groups permissions within an organization.
type Role struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	Name           string       `json:"name"`
	DisplayName    string       `json:"display_name"`
	Type           string       `json:"type"`
	Description    string       `json:"description,omitempty"`
	Level          int          `json:"level"`
	IsDefault      bool         `json:"is_default"`
	IsActive       bool         `json:"is_active"`
	Permissions    []Permission `json:"permissions,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`
	UpdatedAt      string       `json:"updated_at,omitempty"`
}

// Permission names a single resource/action capability.
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Perumahan is an operational unit (school or residential unit) owned by an
// organization. Most scoped resources hang off one of these.
type Perumahan struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id,omitempty"`
	OrgID     string `json:"organization_id,omitempty"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Type      string `json:"type,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Logo      string `json:"logo,omitempty"`
	Settings  string `json:"settings,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// UnitMember links a user to a unit under a unit-level role
// (admin, pengurus, warga, parent, staff).
type UnitMember struct {
	ID       string `json:"id"`
	UnitID   string `json:"unit_id"`
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	User     *User  `json:"user,omitempty"`
	JoinedAt string `json:"joined_at,omitempty"`
}

// PengurusProfile is a staff/administrator profile within a unit.
type PengurusProfile struct {
	ID             string `json:"id"`
	UnitMemberID   string `json:"unit_member_id"`
	UnitID         string `json:"unit_id,omitempty"`
	Name           string `json:"name,omitempty"`
	NIP            string `json:"nip,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Address        string `json:"address,omitempty"`
	Status         string `json:"status,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// WargaProfile is a resident/ward profile within a unit.
type WargaProfile struct {
	ID           string `json:"id"`
	UnitMemberID string `json:"unit_member_id"`
	UnitID       string `json:"unit_id,omitempty"`
	RTID         string `json:"rt_id,omitempty"`
	Name         string `json:"name,omitempty"`
	NIS          string `json:"nis,omitempty"`
	NISN         string `json:"nisn,omitempty"`
	NIK          string `json:"nik,omitempty"`
	Gender       string `json:"gender,omitempty"`
	BirthPlace   string `json:"birth_place,omitempty"`
	Address      string `json:"address,omitempty"`
	ParentName   string `json:"parent_name,omitempty"`
	ParentPhone  string `json:"parent_phone,omitempty"`
	Status       string `json:"status,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// RTHistoryEntry records a warga's past RT placements.
type RTHistoryEntry struct {
	ID           string `json:"id"`
	WargaID      string `json:"warga_id"`
	RTID         string `json:"rt_id"`
	RTName       string `json:"rt_name,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
	JoinedAt     string `json:"joined_at,omitempty"`
	LeftAt       string `json:"left_at,omitempty"`
}

// RT is a sub-grouping (class or block) within a unit, carrying the dues
// ("iuran") amount its wargas are assessed.
type RT struct {
	ID           string `json:"id"`
	UnitID       string `json:"unit_id"`
	Name         string `json:"name"`
	Iuran        int    `json:"iuran"`
	HomeroomID   string `json:"homeroom_id,omitempty"`
	AcademicYear string `json:"academic_year"`
	Type         string `json:"type,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Room is a physical location within a unit.
type Room struct {
	ID         string `json:"id"`
	UnitID     string `json:"unit_id"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Building   string `json:"building,omitempty"`
	Floor      int    `json:"floor,omitempty"`
	Capacity   int    `json:"capacity,omitempty"`
	Facilities string `json:"facilities,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// NameRef is an embedded reference the server expands on some list responses.
type NameRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	NIS  string `json:"nis,omitempty"`
}

// Schedule is a recurring weekly slot binding an RT, a kegiatan, and a
// pengurus. Day 1 is Monday.
type Schedule struct {
	ID             string   `json:"id"`
	UnitID         string   `json:"unit_id"`
	RTID           string   `json:"rt_id"`
	KegiatanID     string   `json:"kegiatan_id"`
	PengurusID     string   `json:"pengurus_id"`
	DayOfWeek      int      `json:"day_of_week"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Room           string   `json:"room,omitempty"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	RecurrenceType string   `json:"recurrence_type,omitempty"`
	IsActive       bool     `json:"is_active"`
	RT             *NameRef `json:"rt,omitempty"`
	Kegiatan       *NameRef `json:"kegiatan,omitempty"`
	Pengurus       *NameRef `json:"pengurus,omitempty"`
}

// ScheduleConflict describes one clash found by the server-side conflict check.
type ScheduleConflict struct {
	Type          string   `json:"type"`
	ConflictsWith Schedule `json:"conflicts_with"`
	Message       string   `json:"message"`
}

// ConflictCheckResult is the outcome of POST /schedules/check-conflicts.
type ConflictCheckResult struct {
	HasConflict bool               `json:"has_conflict"`
	Conflicts   []ScheduleConflict `json:"conflicts"`
}

// ScheduleTemplate is a saved weekly schedule that can be loaded onto an RT.
type ScheduleTemplate struct {
	ID           string     `json:"id"`
	UnitID       string     `json:"unit_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	AcademicYear string     `json:"academic_year,omitempty"`
	IsActive     bool       `json:"is_active"`
	Items        []Schedule `json:"items,omitempty"`
}

// Kegiatan is an activity/course schedulable within a unit.
type Kegiatan struct {
	ID          string `json:"id"`
	UnitID      string `json:"unit_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Credits     int    `json:"credits"`
	IsActive    bool   `json:"is_active"`
}

// KegiatanAssignment links a pengurus to a kegiatan for an academic year.
type KegiatanAssignment struct {
	ID           string   `json:"id"`
	PengurusID   string   `json:"pengurus_id"`
	KegiatanID   string   `json:"kegiatan_id"`
	AcademicYear string   `json:"academic_year,omitempty"`
	IsPrimary    bool     `json:"is_primary"`
	Kegiatan     *NameRef `json:"kegiatan,omitempty"`
	Pengurus     *NameRef `json:"pengurus,omitempty"`
}

// Iuran is a dues/assessment record linking a warga, an RT, and a kegiatan.
type Iuran struct {
	ID           string   `json:"id"`
	UnitID       string   `json:"unit_id"`
	WargaID      string   `json:"warga_id"`
	KegiatanID   string   `json:"kegiatan_id"`
	RTID         string   `json:"rt_id"`
	PengurusID   string   `json:"pengurus_id"`
	AcademicYear string   `json:"academic_year"`
	Semester     int      `json:"semester"`
	Type         string   `json:"type"`
	Score        float64  `json:"score"`
	MaxScore     float64  `json:"max_score"`
	Notes        string   `json:"notes,omitempty"`
	Warga        *NameRef `json:"warga,omitempty"`
	Kegiatan     *NameRef `json:"kegiatan,omitempty"`
	RT           *NameRef `json:"rt,omitempty"`
}

// Attendance records one warga's presence status for a date.
type Attendance struct {
	ID      string   `json:"id"`
	UnitID  string   `json:"unit_id"`
	WargaID string   `json:"warga_id"`
	RTID    string   `json:"rt_id"`
	Date    string   `json:"date"`
	Status  string   `json:"status"`
	Notes   string   `json:"notes,omitempty"`
	Warga   *NameRef `json:"warga,omitempty"`
	RT      *NameRef `json:"rt,omitempty"`
}

// UnitSettings carries the per-unit academic calendar configuration.
type UnitSettings struct {
	ID               string  `json:"id"`
	UnitID           string  `json:"unit_id"`
	PeriodDuration   int     `json:"period_duration"`
	StartTime        string  `json:"start_time"`
	TotalPeriods     int     `json:"total_periods"`
	BreakAfterPeriod int     `json:"break_after_period"`
	BreakDuration    int     `json:"break_duration"`
	AcademicYear     string  `json:"academic_year"`
	CurrentSemester  int     `json:"current_semester"`
	Semester1Start   *string `json:"semester_1_start"`
	Semester1End     *string `json:"semester_1_end"`
	Semester2Start   *string `json:"semester_2_start"`
	Semester2End     *string `json:"semester_2_end"`
}

// PeriodDefinition is one generated time slot of a unit's day.
type PeriodDefinition struct {
	ID        string `json:"id"`
	Period    int    `json:"period"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBreak   bool   `json:"is_break"`
}

// Event is a one-off or recurring calendar event within a unit.
type Event struct {
	ID             string `json:"id"`
	UnitID         string `json:"unit_id"`
	RTID           string `json:"rt_id,omitempty"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	EventType      string `json:"event_type"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date,omitempty"`
	StartTime      string `json:"start_time,omitempty"`
	EndTime        string `json:"end_time,omitempty"`
	RecurrenceType string `json:"recurrence_type"`
	DayOfWeek      int    `json:"day_of_week,omitempty"`
	IsAllDay       bool   `json:"is_all_day"`
	Location       string `json:"location,omitempty"`
	Color          string `json:"color,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// CalendarEntry is the unified view over schedules and events.
type CalendarEntry struct {
	ID             string `json:"id"`
	UnitID         string `json:"unit_id"`
	EntryType      string `json:"entry_type"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	DayOfWeek      int    `json:"day_of_week,omitempty"`
	Date           string `json:"date,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	IsAllDay       bool   `json:"is_all_day"`
	RecurrenceType string `json:"recurrence_type"`
	RTID           string `json:"rt_id,omitempty"`
	KegiatanID     string `json:"kegiatan_id,omitempty"`
	PengurusID     string `json:"pengurus_id,omitempty"`
	Room           string `json:"room,omitempty"`
	RTName         string `json:"rt_name,omitempty"`
	KegiatanName   string `json:"kegiatan_name,omitempty"`
	PengurusName   string `json:"pengurus_name,omitempty"`
	EventType      string `json:"event_type,omitempty"`
	Location       string `json:"location,omitempty"`
	Color          string `json:"color,omitempty"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// OrgMembership is one entry of a user's organization-level memberships.
type OrgMembership struct {
	OrgID    string `json:"org_id"`
	OrgName  string `json:"org_name"`
	RoleID   string `json:"role_id"`
	RoleName string `json:"role_name"`
}

// UnitMembership is one entry of a user's unit-level memberships.
type UnitMembership struct {
	UnitMemberID  string `json:"unit_member_id"`
	UnitID        string `json:"unit_id"`
	PerumahanName string `json:"perumahan_name"`
	OrgID         string `json:"org_id"`
	OrgName       string `json:"org_name"`
	Role          string `json:"role"`
	IsActive      bool   `json:"is_active"`
}

// Memberships is the full membership summary for the current user.
type Memberships struct {
	UserID                  string           `json:"user_id"`
	IsSuperAdmin            bool             `json:"is_super_admin"`
	OrganizationMemberships []OrgMembership  `json:"organization_memberships"`
	UnitMemberships         []UnitMembership `json:"unit_memberships"`
}

// QuickRegistration is the result of the one-shot pengurus/warga
// registration endpoints: a fresh user, profile, and generated password.
type QuickRegistration struct {
	UserID            string `json:"user_id"`
	PengurusID        string `json:"pengurus_id,omitempty"`
	WargaID           string `json:"warga_id,omitempty"`
	UnitMemberID      string `json:"unit_member_id"`
	GeneratedPassword string `json:"generated_password"`
}

// setStr adds key=v to q when v is non-empty.
func setStr(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

// setInt adds key=v to q when v is positive.
func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

// setBool adds key=true to q when v is set.
func setBool(q url.Values, key string, v bool) {
	if v {
		q.Set(key, "true")
	}
}
