package seedgen

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestGenerateUserRequiresRole(t *testing.T) {
	g := newTestGenerator(1)

	_, err := g.User(nil, models.RolePlayer)
	if err == nil {
		t.Fatal("Expected empty role set to fail")
	}
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected ErrInvariant, got %v", err)
	}
}

func TestGenerateUserPhoneOnlyForCoaches(t *testing.T) {
	g := newTestGenerator(2)

	for i := 0; i < 20; i++ {
		u, err := g.User([]models.Role{models.RolePlayer}, models.RolePlayer)
		if err != nil {
			t.Fatalf("User failed: %v", err)
		}
		if u.Phone != nil {
			t.Errorf("Expected no phone for player, got %q", *u.Phone)
		}

		c, err := g.User([]models.Role{models.RoleCoach}, models.RoleCoach)
		if err != nil {
			t.Fatalf("User failed: %v", err)
		}
		if c.Phone == nil {
			t.Error("Expected coach to carry a phone")
		}

		rc, err := g.User([]models.Role{models.RoleRegionalCoach}, models.RoleRegionalCoach)
		if err != nil {
			t.Fatalf("User failed: %v", err)
		}
		if rc.Phone == nil {
			t.Error("Expected regional coach to carry a phone")
		}
	}
}

func TestGenerateUserUniqueEmails(t *testing.T) {
	g := newTestGenerator(3)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		u, err := g.User([]models.Role{models.RoleFan}, models.RoleFan)
		if err != nil {
			t.Fatalf("User failed: %v", err)
		}
		if seen[u.Email] {
			t.Fatalf("Duplicate email %q", u.Email)
		}
		seen[u.Email] = true
		if u.Password == "" {
			t.Error("Expected a password hash")
		}
	}
}

func TestGenerateAddressSecondaryLine(t *testing.T) {
	g := newTestGenerator(4)

	withUnit, withoutUnit := 0, 0
	for i := 0; i < 200; i++ {
		a := g.Address()
		if a.Address1 == "" || a.City == "" || a.State == "" || a.Zip == "" {
			t.Fatalf("Expected all primary postal fields populated, got %+v", a)
		}
		if a.Address2 != nil {
			withUnit++
		} else {
			withoutUnit++
		}
	}
	if withUnit == 0 || withoutUnit == 0 {
		t.Errorf("Expected address line 2 to branch both ways, got %d with / %d without", withUnit, withoutUnit)
	}
}

func TestSportAttributesDomains(t *testing.T) {
	g := newTestGenerator(5)

	for i := 0; i < 50; i++ {
		attrs := g.SportAttributes()

		if len(attrs.JerseyNumber) != 2 {
			t.Errorf("Expected two-digit jersey number, got %q", attrs.JerseyNumber)
		}
		year, err := strconv.Atoi(attrs.GradYear)
		if err != nil {
			t.Fatalf("GradYear %q is not numeric", attrs.GradYear)
		}
		if year <= time.Now().Year() {
			t.Errorf("Expected future grad year, got %d", year)
		}
	}
}

func TestGenerateTeamNameAndSlug(t *testing.T) {
	g := newTestGenerator(6)

	team := g.Team(models.AgeU12, models.RegionGulfCoast)
	if team.Name == "" || team.Slug == "" {
		t.Fatalf("Expected name and slug, got %+v", team)
	}
	if team.AgeGroup != models.AgeU12 || team.Region != models.RegionGulfCoast {
		t.Errorf("Expected inputs echoed on team, got %+v", team)
	}
}

func TestTournamentEventSpansDays(t *testing.T) {
	g := newTestGenerator(7)

	for i := 0; i < 50; i++ {
		e := g.TournamentEvent(9)
		span := e.End.Sub(e.Start)
		if span < 24*time.Hour || span > 14*24*time.Hour {
			t.Errorf("Expected day-scale span, got %v", span)
		}
		if e.TournamentID == nil || *e.TournamentID != 9 {
			t.Errorf("Expected tournament id wired, got %v", e.TournamentID)
		}
		if e.EventType != models.EventTournament {
			t.Errorf("Expected TOURNAMENT type, got %s", e.EventType)
		}
	}
}

func TestHourEventSpansHours(t *testing.T) {
	g := newTestGenerator(8)

	future, past := 0, 0
	for i := 0; i < 200; i++ {
		e := g.HourEvent(models.EventPractice)
		span := e.End.Sub(e.Start)
		if span < time.Hour || span > 8*time.Hour {
			t.Errorf("Expected hour-scale span, got %v", span)
		}
		if e.TournamentID != nil {
			t.Error("Expected practice event to stay unattached")
		}
		if e.Start.After(time.Now()) {
			future++
		} else {
			past++
		}
	}
	if future == 0 || past == 0 {
		t.Errorf("Expected start to branch soon/recent, got %d future / %d past", future, past)
	}
}

func TestCollegeRoughlyHalf(t *testing.T) {
	g := newTestGenerator(9)

	set, unset := 0, 0
	for i := 0; i < 200; i++ {
		if g.College() != nil {
			set++
		} else {
			unset++
		}
	}
	if set == 0 || unset == 0 {
		t.Errorf("Expected college commitment to branch both ways, got %d set / %d unset", set, unset)
	}
}

func TestMessageTimestampWithinWindow(t *testing.T) {
	g := newTestGenerator(10)

	created := time.Now().Add(-48 * time.Hour)
	for i := 0; i < 50; i++ {
		m := g.Message(1, 2, created)
		if m.SentAt.Before(created) || m.SentAt.After(time.Now()) {
			t.Errorf("Expected SentAt between chat creation and now, got %v", m.SentAt)
		}
	}
}
