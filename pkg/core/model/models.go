package model

// SourceType distinguishes admin-entered staff from public-form applicants.
type SourceType string

const (
	SourceInternal SourceType = "internal"
	SourceExternal SourceType = "external"
)

func (s SourceType) IsValid() bool {
	return s == SourceInternal || s == SourceExternal
}

// Event identifies one recruiting/staffing campaign.
type Event struct {
	ID        string
	Name      string
	CreatedAt int64
	UpdatedAt int64
}

// Schedule is a single time-slot instance under an event.
// Timestamps are epoch milliseconds, as stored in the database.
type Schedule struct {
	ID               string
	Label            string
	Location         string
	StartAt          int64
	EndAt            int64
	ParticipantCount int
	RecruitGL        bool
	CreatedAt        int64
	UpdatedAt        int64
}

// ScheduleSummary is the cached schedule digest kept inside the GL
// configuration document for display when schedules aren't otherwise loaded.
type ScheduleSummary struct {
	ID    string
	Label string
	Date  string
}

// ScheduleTeamOverride is one per-schedule entry of the config's
// scheduleTeams map. A nil TeamCount means no explicit count was set; an
// explicit zero means "no teams for this schedule".
type ScheduleTeamOverride struct {
	Teams     []string
	TeamCount *int
}

// GLConfig is the per-event GL recruiting configuration document.
type GLConfig struct {
	DefaultTeams  []string
	ScheduleTeams map[string]ScheduleTeamOverride
	Schedules     map[string]ScheduleSummary
	Faculties     any // academic-affiliation taxonomy, carried through untouched
	Slug          string
	Guidance      string
	CreatedAt     int64
	UpdatedAt     int64
}

// DefaultShiftKey is the shifts-map key holding an applicant's event-wide
// answer, used when no per-schedule answer exists.
const DefaultShiftKey = "__default__"

// Application is one GL candidate, either self-registered through the public
// form (external) or entered by staff (internal).
type Application struct {
	ID           string
	SourceType   SourceType
	Name         string
	Phonetic     string
	Email        string
	Grade        string
	Gender       string
	Faculty      string
	Department   string
	AcademicPath []string
	Club         string
	StudentID    string
	Note         string
	Shifts       map[string]any // schedule ID or DefaultShiftKey -> raw availability value
	Role         string         // internal applicants only, free text
	CreatedAt    int64
	UpdatedAt    int64
}

// Assignment statuses. Status and TeamID are redundant encodings of a single
// assignment value; see assignment.ResolveAssignmentValue.
const (
	StatusNone        = ""
	StatusTeam        = "team"
	StatusAbsent      = "absent"
	StatusStaff       = "staff"
	StatusUnavailable = "unavailable"
)

// Sentinel assignment values sharing the string slot that normally holds a
// team name.
const (
	ValueAbsent      = "__absent"
	ValueStaff       = "__staff"
	ValueUnavailable = "__unavailable"
)

// Assignment is the admin's explicit placement decision for one
// (applicant, schedule) pair, or the applicant-wide fallback.
type Assignment struct {
	Status        string
	TeamID        string
	UpdatedAt     int64
	UpdatedByUID  string
	UpdatedByName string
}

// ApplicantAssignments is one applicant's normalized assignment record:
// an optional event-wide fallback plus per-schedule entries.
type ApplicantAssignments struct {
	Fallback  *Assignment
	Schedules map[string]*Assignment
}

// AssignmentOption is one selectable entry of an assignment dropdown.
type AssignmentOption struct {
	Value string
	Label string
}
