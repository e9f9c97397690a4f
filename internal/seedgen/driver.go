package seedgen

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
	"github.com/Ember-Development/bomber-app-sub001/internal/store"
)

// Config carries every population knob as an inclusive [min,max] range.
// Zero-config callers should start from DefaultConfig.
type Config struct {
	Teams                  Bounds `json:"teams" mapstructure:"teams"`
	CoachesPerTeam         Bounds `json:"coaches_per_team" mapstructure:"coaches_per_team"`
	RegionalCoachesPerTeam Bounds `json:"regional_coaches_per_team" mapstructure:"regional_coaches_per_team"`
	PlayersPerTeam         Bounds `json:"players_per_team" mapstructure:"players_per_team"`
	ParentsPerPlayer       Bounds `json:"parents_per_player" mapstructure:"parents_per_player"`
	TrophiesPerTeam        Bounds `json:"trophies_per_team" mapstructure:"trophies_per_team"`
	PracticeEventsPerTeam  Bounds `json:"practice_events_per_team" mapstructure:"practice_events_per_team"`
	TournamentsPerTeam     Bounds `json:"tournaments_per_team" mapstructure:"tournaments_per_team"`
	EventsPerTournament    Bounds `json:"events_per_tournament" mapstructure:"events_per_tournament"`
	TeamChatsPerTeam       Bounds `json:"team_chats_per_team" mapstructure:"team_chats_per_team"`
	MessagesPerMember      Bounds `json:"messages_per_member" mapstructure:"messages_per_member"`
	GlobalEvents           Bounds `json:"global_events" mapstructure:"global_events"`
	RandomChats            Bounds `json:"random_chats" mapstructure:"random_chats"`
	RandomChatMembers      Bounds `json:"random_chat_members" mapstructure:"random_chat_members"`
	NotificationUsers      Bounds `json:"notification_users" mapstructure:"notification_users"`
	NotificationsPerUser   Bounds `json:"notifications_per_user" mapstructure:"notifications_per_user"`

	// AgeGroups restricts which divisions teams may draw. Defaults to all.
	AgeGroups []models.AgeGroup `json:"age_groups" mapstructure:"age_groups"`

	// Seed fixes the random source for reproducible structure. Nil seeds
	// from the wall clock.
	Seed *int64 `json:"seed" mapstructure:"seed"`
}

// DefaultConfig returns the baked-in ranges for a development dataset.
func DefaultConfig() Config {
	return Config{
		Teams:                  B(3, 6),
		CoachesPerTeam:         B(1, 3),
		RegionalCoachesPerTeam: B(1, 2),
		PlayersPerTeam:         B(8, 14),
		ParentsPerPlayer:       B(1, 2),
		TrophiesPerTeam:        B(0, 3),
		PracticeEventsPerTeam:  B(1, 4),
		TournamentsPerTeam:     B(1, 3),
		EventsPerTournament:    B(1, 2),
		TeamChatsPerTeam:       B(1, 3),
		MessagesPerMember:      B(0, 5),
		GlobalEvents:           B(1, 3),
		RandomChats:            B(1, 3),
		RandomChatMembers:      B(2, 8),
		NotificationUsers:      B(3, 10),
		NotificationsPerUser:   B(1, 3),
		AgeGroups:              models.AllAgeGroups,
	}
}

// Validate rejects inverted ranges and empty age-group lists before any
// persistence happens.
func (c Config) Validate() error {
	checks := []struct {
		name string
		b    Bounds
	}{
		{"teams", c.Teams},
		{"coaches_per_team", c.CoachesPerTeam},
		{"regional_coaches_per_team", c.RegionalCoachesPerTeam},
		{"players_per_team", c.PlayersPerTeam},
		{"parents_per_player", c.ParentsPerPlayer},
		{"trophies_per_team", c.TrophiesPerTeam},
		{"practice_events_per_team", c.PracticeEventsPerTeam},
		{"tournaments_per_team", c.TournamentsPerTeam},
		{"events_per_tournament", c.EventsPerTournament},
		{"team_chats_per_team", c.TeamChatsPerTeam},
		{"messages_per_member", c.MessagesPerMember},
		{"global_events", c.GlobalEvents},
		{"random_chats", c.RandomChats},
		{"random_chat_members", c.RandomChatMembers},
		{"notification_users", c.NotificationUsers},
		{"notifications_per_user", c.NotificationsPerUser},
	}
	for _, ch := range checks {
		if err := ch.b.Validate(ch.name); err != nil {
			return err
		}
	}
	if c.ParentsPerPlayer.Min < 1 {
		return fmt.Errorf("%w: parents_per_player: every untrusted player needs at least one parent", ErrConfig)
	}
	if len(c.AgeGroups) == 0 {
		return fmt.Errorf("%w: age_groups must not be empty", ErrConfig)
	}
	for _, a := range c.AgeGroups {
		if !a.Valid() {
			return fmt.Errorf("%w: unknown age group %q", ErrConfig, a)
		}
	}
	return nil
}

// Summary counts what one population run created, per entity kind.
type Summary struct {
	Teams             int
	Users             int
	Addresses         int
	Players           int
	TrustedPlayers    int
	Parents           int
	Coaches           int
	RegionalCoaches   int
	Trophies          int
	Tournaments       int
	Events            int
	Attendance        int
	Chats             int
	ChatMembers       int
	Messages          int
	Notifications     int
	UserNotifications int
}

// Driver is the engine's entry point. One Run populates a full synthetic
// dataset inside a single transaction: either everything commits or nothing
// does.
type Driver struct {
	store store.Store
}

func NewDriver(s store.Store) *Driver {
	return &Driver{store: s}
}

// Run validates cfg, then generates and persists the whole graph. The
// context is honored between per-entity iterations; cancellation rolls the
// transaction back with no partial state.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	gen := NewGenerator(rand.New(rand.NewSource(seed)))

	sum := &Summary{}
	err := d.store.WithTransaction(ctx, func(tx store.Store) error {
		o := &orchestrator{store: tx, gen: gen, cfg: cfg, sum: sum}

		teamCount := gen.Pick(cfg.Teams)
		for i := 0; i < teamCount; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := o.seedTeam(ctx); err != nil {
				return fmt.Errorf("seed team %d/%d: %w", i+1, teamCount, err)
			}
		}

		if err := o.seedGlobalEvents(ctx); err != nil {
			return fmt.Errorf("seed global events: %w", err)
		}
		if err := o.seedRandomChats(ctx); err != nil {
			return fmt.Errorf("seed random chats: %w", err)
		}
		if err := o.seedNotifications(ctx); err != nil {
			return fmt.Errorf("seed notifications: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// CreateAdmin seeds exactly one admin account outside the bulk graph, for
// fixtures that need a known login.
func (d *Driver) CreateAdmin(ctx context.Context) (*models.User, error) {
	return d.createAccount(ctx, models.RoleAdmin)
}

// CreateFan seeds exactly one fan account outside the bulk graph.
func (d *Driver) CreateFan(ctx context.Context) (*models.User, error) {
	return d.createAccount(ctx, models.RoleFan)
}

func (d *Driver) createAccount(ctx context.Context, role models.Role) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleFan {
		return nil, fmt.Errorf("%w: standalone creator supports ADMIN and FAN, got %s", ErrInvariant, role)
	}
	gen := NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))

	user, err := gen.User([]models.Role{role}, role)
	if err != nil {
		return nil, err
	}

	err = d.store.WithTransaction(ctx, func(tx store.Store) error {
		if err := tx.Create(ctx, user); err != nil {
			return err
		}
		if role == models.RoleAdmin {
			return tx.Create(ctx, &models.Admin{UserID: user.ID})
		}
		return tx.Create(ctx, &models.Fan{UserID: user.ID})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
