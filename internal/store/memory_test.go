package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

func TestMemoryStoreAssignsIDs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	u := &models.User{Email: "a@example.com", PrimaryRole: models.RoleFan}
	if err := s.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.ID == 0 {
		t.Error("Expected id assigned on create")
	}

	team := &models.Team{Name: "Rowdy Gators", AgeGroup: models.AgeU10, Region: models.RegionEastTexas}
	if err := s.Create(ctx, team); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if team.ID == u.ID {
		t.Error("Expected distinct ids across rows")
	}
}

func TestMemoryStoreDuplicateEmail(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, &models.User{Email: "dup@example.com"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := s.Create(ctx, &models.User{Email: "dup@example.com"})
	if err == nil {
		t.Fatal("Expected unique-email violation")
	}
	var oe *OpError
	if !errors.As(err, &oe) {
		t.Errorf("Expected *OpError, got %T", err)
	}
}

func TestMemoryStoreTransactionRollback(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithTransaction(ctx, func(tx Store) error {
		if err := tx.Create(ctx, &models.User{Email: "gone@example.com"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected fn error surfaced, got %v", err)
	}
	if len(s.Users()) != 0 {
		t.Error("Expected rollback to discard the created user")
	}

	err = s.WithTransaction(ctx, func(tx Store) error {
		return tx.Create(ctx, &models.User{Email: "kept@example.com"})
	})
	if err != nil {
		t.Fatalf("WithTransaction failed: %v", err)
	}
	if len(s.Users()) != 1 {
		t.Error("Expected committed user to persist")
	}
}

// TeamChatUsers must exclude the parents of trusted players even if such a
// link exists in the data.
func TestMemoryStoreTeamChatUsersExcludesTrustedParents(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	team := &models.Team{Name: "Iron Rattlers", AgeGroup: models.AgeU14, Region: models.RegionOklahoma}
	if err := s.Create(ctx, team); err != nil {
		t.Fatal(err)
	}

	// Trusted player with an account and, unusually, a linked parent.
	trustedUser := &models.User{Email: "player@example.com", PrimaryRole: models.RolePlayer}
	s.Create(ctx, trustedUser)
	trustedParentUser := &models.User{Email: "tparent@example.com", PrimaryRole: models.RoleParent}
	s.Create(ctx, trustedParentUser)
	addr := &models.Address{Address1: "1 Main", City: "Tulsa", State: "OK", Zip: "74101"}
	s.Create(ctx, addr)

	trusted := &models.Player{AgeGroup: models.AgeU14, IsTrusted: true, UserID: &trustedUser.ID, AddressID: &addr.ID, TeamID: team.ID}
	s.Create(ctx, trusted)
	trustedParent := &models.Parent{UserID: trustedParentUser.ID, AddressID: addr.ID}
	s.Create(ctx, trustedParent)
	s.Create(ctx, &models.PlayerParent{PlayerID: trusted.ID, ParentID: trustedParent.ID})

	// Untrusted player reached through a parent.
	untrustedParentUser := &models.User{Email: "uparent@example.com", PrimaryRole: models.RoleParent}
	s.Create(ctx, untrustedParentUser)
	untrusted := &models.Player{AgeGroup: models.AgeU14, TeamID: team.ID}
	s.Create(ctx, untrusted)
	untrustedParent := &models.Parent{UserID: untrustedParentUser.ID, AddressID: addr.ID}
	s.Create(ctx, untrustedParent)
	s.Create(ctx, &models.PlayerParent{PlayerID: untrusted.ID, ParentID: untrustedParent.ID})

	// Coach on the team, plus a coach on no team.
	coachUser := &models.User{Email: "coach@example.com", PrimaryRole: models.RoleCoach}
	s.Create(ctx, coachUser)
	coach := &models.Coach{UserID: coachUser.ID}
	s.Create(ctx, coach)
	s.Create(ctx, &models.TeamCoach{TeamID: team.ID, CoachID: coach.ID})

	strayUser := &models.User{Email: "stray@example.com", PrimaryRole: models.RoleCoach}
	s.Create(ctx, strayUser)
	s.Create(ctx, &models.Coach{UserID: strayUser.ID})

	users, err := s.TeamChatUsers(ctx, team.ID)
	if err != nil {
		t.Fatalf("TeamChatUsers failed: %v", err)
	}

	got := map[uint]bool{}
	for _, u := range users {
		got[u.ID] = true
	}
	want := map[uint]bool{trustedUser.ID: true, untrustedParentUser.ID: true, coachUser.ID: true}

	for id := range want {
		if !got[id] {
			t.Errorf("Expected user %d in chat pool", id)
		}
	}
	if got[trustedParentUser.ID] {
		t.Error("Trusted player's parent must be excluded from the chat pool")
	}
	if got[strayUser.ID] {
		t.Error("Coach with no team join must be excluded")
	}
	if len(got) != len(want) {
		t.Errorf("Expected %d eligible users, got %d", len(want), len(got))
	}
}

func TestMemoryStoreSampleUsersLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		s.Create(ctx, &models.User{Email: string(rune('a'+i)) + "@example.com"})
	}

	users, err := s.SampleUsers(ctx, 2)
	if err != nil {
		t.Fatalf("SampleUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("Expected 2 users, got %d", len(users))
	}

	users, err = s.SampleUsers(ctx, 99)
	if err != nil {
		t.Fatalf("SampleUsers failed: %v", err)
	}
	if len(users) != 4 {
		t.Errorf("Expected the whole table for an oversized limit, got %d", len(users))
	}
}

func TestMemoryStoreCreateMany(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	pid := uint(1)
	rows := []models.EventAttendance{
		{EventID: 10, PlayerID: &pid, Status: models.AttendancePending},
		{EventID: 10, CoachID: &pid, Status: models.AttendancePending},
	}
	if err := s.CreateMany(ctx, rows); err != nil {
		t.Fatalf("CreateMany failed: %v", err)
	}
	got := s.Attendance()
	if len(got) != 2 {
		t.Fatalf("Expected 2 attendance rows, got %d", len(got))
	}
	if got[0].ID == 0 || got[1].ID == 0 || got[0].ID == got[1].ID {
		t.Error("Expected distinct ids assigned in bulk insert")
	}
}
