package seedgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
	"github.com/Ember-Development/bomber-app-sub001/utils"
)

// Generator produces single-entity field sets with domain-valid randomness.
// It has no relational awareness; wiring ids together is the orchestrator's
// job. All randomness flows through the injected rand source so a fixed seed
// reproduces the same structure.
type Generator struct {
	rand    *rand.Rand
	counter int
}

func NewGenerator(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Rand exposes the underlying source for callers that share it.
func (g *Generator) Rand() *rand.Rand { return g.rand }

// Pick draws a count from b using the generator's rand source.
func (g *Generator) Pick(b Bounds) int { return b.Pick(g.rand) }

// Bool flips an even coin.
func (g *Generator) Bool() bool { return g.rand.Intn(2) == 1 }

var (
	firstNames = []string{
		"Jackson", "Mason", "Hunter", "Wyatt", "Carter", "Austin", "Colt",
		"Brody", "Tucker", "Hayes", "Maddox", "Ryder", "Cash", "Briggs",
		"Emma", "Harper", "Brooklyn", "Paisley", "Kinsley", "Sadie",
	}
	lastNames = []string{
		"Walker", "Dawson", "Reyes", "Holt", "McAllister", "Vance", "Boone",
		"Crawford", "Sutton", "Pierce", "Lambert", "Townsend", "Whitfield",
		"Navarro", "Keller", "Barrett", "Doyle", "Hartman",
	}
	emailDomains = []string{"example.com", "mail.com", "inbox.dev", "fastmail.org"}

	streetNames = []string{
		"Pecan Hollow Dr", "Longhorn Trail", "Bluebonnet Ln", "Cedar Ridge Rd",
		"Mesquite Ave", "Live Oak Blvd", "Armadillo Way", "Brazos Bend Ct",
	}
	cities = []string{
		"Frisco", "Katy", "Round Rock", "Tyler", "Lubbock", "Waco",
		"New Braunfels", "Amarillo", "Corpus Christi", "Abilene",
	}
	states = []string{"TX", "TX", "TX", "OK", "LA"}

	teamAdjectives = []string{
		"Raging", "Iron", "Dusty", "Royal", "Crimson", "Golden", "Rolling",
		"Midnight", "Thundering", "Rowdy",
	}
	teamMascots = []string{
		"Bomber", "Mustang", "Rattler", "Gator", "Wrangler", "Outlaw",
		"Maverick", "Stampede", "Bandit", "Longhorn",
	}

	positions = []string{"P", "C", "1B", "2B", "3B", "SS", "LF", "CF", "RF", "UTIL"}
	sizes     = []string{"YS", "YM", "YL", "S", "M", "L", "XL", "XXL"}

	universities = []string{
		"Texas A&M University", "Baylor University", "Texas Tech University",
		"University of Houston", "TCU", "Oklahoma State University",
		"Rice University", "LSU",
	}

	trophyTitles = []string{
		"State Champions", "Regional Runner-Up", "Summer Slam Winners",
		"Fall Classic Champions", "Sportsmanship Award", "District Title",
	}
	tournamentTitles = []string{
		"Lone Star Showdown", "Gulf Coast Classic", "Red River Rumble",
		"Hill Country Invitational", "Dust Bowl Series", "Border Bash",
	}
	chatTitles = []string{
		"Game Day Plans", "Carpool Coordination", "Practice Updates",
		"Tournament Weekend", "Snack Schedule", "Coach Announcements",
	}
	messageSnippets = []string{
		"See everyone at the field at 8!",
		"Who's bringing the water cooler?",
		"Great win today, proud of these kids.",
		"Practice moved to the back diamond.",
		"Don't forget white jerseys tomorrow.",
		"Gate opens an hour before first pitch.",
		"Can someone grab the catcher's gear?",
	}
	notificationTitles = []string{
		"Schedule Change", "New Tournament Posted", "Roster Update",
		"Payment Reminder", "Field Conditions", "Photo Gallery Live",
	}
	notificationBodies = []string{
		"Check the app for the latest details.",
		"Your team's schedule has been updated.",
		"A new event was added to your calendar.",
		"Please review before this weekend.",
	}
)

func (g *Generator) pick(list []string) string {
	return list[g.rand.Intn(len(list))]
}

// User builds an identity record. Every identity must carry at least one
// role; a phone number is populated only for coach-type roles.
func (g *Generator) User(roles []models.Role, primary models.Role) (*models.User, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: user requires at least one role", ErrInvariant)
	}

	first := g.pick(firstNames)
	last := g.pick(lastNames)
	g.counter++
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first), strings.ToLower(last), g.counter, g.pick(emailDomains))

	hash, err := utils.HashPassword(fmt.Sprintf("seed-%d-%d", g.counter, g.rand.Intn(1_000_000)), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roleSet := make(models.StringSlice, 0, len(roles))
	var phone *string
	for _, r := range roles {
		roleSet = append(roleSet, string(r))
		if r == models.RoleCoach || r == models.RoleRegionalCoach {
			p := fmt.Sprintf("(%03d) %03d-%04d", 200+g.rand.Intn(700), g.rand.Intn(1000), g.rand.Intn(10000))
			phone = &p
		}
	}

	return &models.User{
		FirstName:   first,
		LastName:    last,
		Email:       email,
		Password:    hash,
		Phone:       phone,
		PrimaryRole: primary,
		Roles:       roleSet,
	}, nil
}

// Address populates every postal field; the secondary unit line is present
// about half the time.
func (g *Generator) Address() *models.Address {
	a := &models.Address{
		Address1: fmt.Sprintf("%d %s", 100+g.rand.Intn(9900), g.pick(streetNames)),
		City:     g.pick(cities),
		State:    g.pick(states),
		Zip:      fmt.Sprintf("%05d", 73000+g.rand.Intn(7000)),
	}
	if g.Bool() {
		unit := fmt.Sprintf("Apt %d", 1+g.rand.Intn(400))
		a.Address2 = &unit
	}
	return a
}

// SportAttributes is the non-relational sport field set of a player.
type SportAttributes struct {
	Position1         string
	Position2         string
	JerseyNumber      string
	GradYear          string
	JerseySize        string
	PantSize          string
	StirrupSize       string
	ShortSize         string
	PracticeShortSize string
}

// SportAttributes draws each attribute independently and uniformly from its
// enumerated domain.
func (g *Generator) SportAttributes() SportAttributes {
	gradYear := time.Now().AddDate(1+g.rand.Intn(8), 0, 0).Year()
	return SportAttributes{
		Position1:         g.pick(positions),
		Position2:         g.pick(positions),
		JerseyNumber:      fmt.Sprintf("%02d", g.rand.Intn(100)),
		GradYear:          fmt.Sprintf("%d", gradYear),
		JerseySize:        g.pick(sizes),
		PantSize:          g.pick(sizes),
		StirrupSize:       g.pick(sizes),
		ShortSize:         g.pick(sizes),
		PracticeShortSize: g.pick(sizes),
	}
}

// Team builds a roster row with a randomized two-word pluralized name.
func (g *Generator) Team(ageGroup models.AgeGroup, region models.Region) *models.Team {
	name := fmt.Sprintf("%s %ss", g.pick(teamAdjectives), g.pick(teamMascots))
	return &models.Team{
		Name:     name,
		Slug:     slug.Make(name),
		AgeGroup: ageGroup,
		Region:   region,
	}
}

// College returns a university commitment about half the time, nil otherwise.
func (g *Generator) College() *string {
	if g.Bool() {
		c := g.pick(universities)
		return &c
	}
	return nil
}

func (g *Generator) Trophy(teamID uint) *models.Trophy {
	return &models.Trophy{
		TeamID: teamID,
		Title:  g.pick(trophyTitles),
		Year:   fmt.Sprintf("%d", time.Now().Year()-g.rand.Intn(6)),
	}
}

func (g *Generator) Tournament() *models.Tournament {
	return &models.Tournament{
		Title: g.pick(tournamentTitles),
		Body:  "Bring both jerseys and arrive an hour before the first game.",
		Image: fmt.Sprintf("https://cdn.bomberapp.io/tournaments/%s.jpg", uuid.NewString()),
	}
}

// TournamentEvent spans 1-14 days and attaches to a tournament.
func (g *Generator) TournamentEvent(tournamentID uint) *models.Event {
	start := time.Now().AddDate(0, 0, 1+g.rand.Intn(60))
	end := start.AddDate(0, 0, 1+g.rand.Intn(14))
	return &models.Event{
		EventType:    models.EventTournament,
		Start:        start,
		End:          end,
		TournamentID: &tournamentID,
	}
}

// HourEvent spans 1-8 hours from a start that is either soon (future) or
// recent (past), with even odds.
func (g *Generator) HourEvent(kind models.EventType) *models.Event {
	offset := time.Duration(1+g.rand.Intn(14*24)) * time.Hour
	start := time.Now().Add(offset)
	if g.Bool() {
		start = time.Now().Add(-offset)
	}
	return &models.Event{
		EventType: kind,
		Start:     start,
		End:       start.Add(time.Duration(1+g.rand.Intn(8)) * time.Hour),
	}
}

// Chat builds a chat whose creation timestamp sits up to 90 days in the
// past, so member messages have a window to land in.
func (g *Generator) Chat() *models.Chat {
	c := &models.Chat{Title: g.pick(chatTitles)}
	c.CreatedAt = time.Now().Add(-time.Duration(1+g.rand.Intn(90*24)) * time.Hour)
	return c
}

// Message timestamps content between the chat's creation and now.
func (g *Generator) Message(chatID, userID uint, chatCreated time.Time) *models.Message {
	window := time.Since(chatCreated)
	if window <= 0 {
		window = time.Minute
	}
	return &models.Message{
		ChatID:  chatID,
		UserID:  userID,
		Content: g.pick(messageSnippets),
		SentAt:  chatCreated.Add(time.Duration(g.rand.Int63n(int64(window)))),
	}
}

func (g *Generator) Notification() *models.Notification {
	return &models.Notification{
		Title: g.pick(notificationTitles),
		Body:  g.pick(notificationBodies),
		Image: fmt.Sprintf("https://cdn.bomberapp.io/notifications/%s.png", uuid.NewString()),
	}
}

// AgeGroup picks a division uniformly from the allowed list.
func (g *Generator) AgeGroup(allowed []models.AgeGroup) models.AgeGroup {
	return allowed[g.rand.Intn(len(allowed))]
}

// Region picks a region uniformly.
func (g *Generator) Region() models.Region {
	return models.AllRegions[g.rand.Intn(len(models.AllRegions))]
}
