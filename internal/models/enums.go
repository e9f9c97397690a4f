package models

// Role is a user's platform role. A user carries a set of roles plus one
// primary role used for UI routing.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleFan           Role = "FAN"
	RoleCoach         Role = "COACH"
	RoleRegionalCoach Role = "REGIONAL_COACH"
	RolePlayer        Role = "PLAYER"
	RoleParent        Role = "PARENT"
)

// AgeGroup is a team-level attribute; every player on a team shares it.
type AgeGroup string

const (
	AgeU8     AgeGroup = "U8"
	AgeU10    AgeGroup = "U10"
	AgeU12    AgeGroup = "U12"
	AgeU14    AgeGroup = "U14"
	AgeU16    AgeGroup = "U16"
	AgeU18    AgeGroup = "U18"
	AgeAlumni AgeGroup = "ALUMNI"
)

// AllAgeGroups lists every division, youngest first.
var AllAgeGroups = []AgeGroup{AgeU8, AgeU10, AgeU12, AgeU14, AgeU16, AgeU18, AgeAlumni}

// Youth reports whether players in this division are parent-managed:
// no login, no personal address, never trusted.
func (a AgeGroup) Youth() bool {
	return a == AgeU8 || a == AgeU10 || a == AgeU12
}

// Independent reports whether players in this division always hold their own
// account. U14 is neither: trust is decided per player.
func (a AgeGroup) Independent() bool {
	return a == AgeU16 || a == AgeU18 || a == AgeAlumni
}

// Valid reports whether a is one of the known divisions.
func (a AgeGroup) Valid() bool {
	for _, g := range AllAgeGroups {
		if g == a {
			return true
		}
	}
	return false
}

// Region is the organization's geographic enumeration.
type Region string

const (
	RegionNorthTexas  Region = "NORTH_TEXAS"
	RegionSouthTexas  Region = "SOUTH_TEXAS"
	RegionEastTexas   Region = "EAST_TEXAS"
	RegionWestTexas   Region = "WEST_TEXAS"
	RegionGulfCoast   Region = "GULF_COAST"
	RegionHillCountry Region = "HILL_COUNTRY"
	RegionOklahoma    Region = "OKLAHOMA"
	RegionLouisiana   Region = "LOUISIANA"
)

var AllRegions = []Region{
	RegionNorthTexas, RegionSouthTexas, RegionEastTexas, RegionWestTexas,
	RegionGulfCoast, RegionHillCountry, RegionOklahoma, RegionLouisiana,
}

// EventType distinguishes the three calendar entry kinds.
type EventType string

const (
	EventGlobal     EventType = "GLOBAL"
	EventPractice   EventType = "PRACTICE"
	EventTournament EventType = "TOURNAMENT"
)

// AttendanceStatus is a member's RSVP state for an event.
type AttendanceStatus string

const (
	AttendancePending   AttendanceStatus = "PENDING"
	AttendanceAttending AttendanceStatus = "ATTENDING"
	AttendanceMaybe     AttendanceStatus = "MAYBE"
	AttendanceDeclined  AttendanceStatus = "DECLINED"
)
