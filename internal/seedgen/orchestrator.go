package seedgen

import (
	"context"
	"fmt"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
	"github.com/Ember-Development/bomber-app-sub001/internal/store"
)

// orchestrator walks the entity graph in dependency order for one run,
// persisting each entity before wiring relations that need its id.
type orchestrator struct {
	store store.Store
	gen   *Generator
	cfg   Config
	sum   *Summary
}

// roster gathers the ids minted while seeding one team, for the attendance
// fan-out and the second wiring pass.
type roster struct {
	team            *models.Team
	players         []*models.Player
	coaches         []*models.Coach
	regionalCoaches []*models.Coach
}

func (o *orchestrator) seedTeam(ctx context.Context) error {
	// Age group and region are team-level attributes; every player on the
	// team inherits the division.
	age := o.gen.AgeGroup(o.cfg.AgeGroups)
	region := o.gen.Region()

	team := o.gen.Team(age, region)
	if err := o.store.Create(ctx, team); err != nil {
		return err
	}
	o.sum.Teams++

	r := &roster{team: team}

	if err := o.seedCoaches(ctx, r); err != nil {
		return fmt.Errorf("coaches: %w", err)
	}
	if err := o.seedPlayers(ctx, r); err != nil {
		return fmt.Errorf("players: %w", err)
	}
	if err := o.seedTrophies(ctx, r); err != nil {
		return fmt.Errorf("trophies: %w", err)
	}
	if err := o.seedTeamEvents(ctx, r); err != nil {
		return fmt.Errorf("events: %w", err)
	}
	if err := o.wireTeam(ctx, r); err != nil {
		return fmt.Errorf("wire team: %w", err)
	}
	if err := o.seedTeamChats(ctx, r); err != nil {
		return fmt.Errorf("chats: %w", err)
	}
	return nil
}

func (o *orchestrator) seedCoaches(ctx context.Context, r *roster) error {
	plain := o.gen.Pick(o.cfg.CoachesPerTeam)
	regional := o.gen.Pick(o.cfg.RegionalCoachesPerTeam)

	for i := 0; i < plain+regional; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		role := models.RoleCoach
		if i >= plain {
			role = models.RoleRegionalCoach
		}

		user, err := o.gen.User([]models.Role{role}, role)
		if err != nil {
			return err
		}
		if err := o.store.Create(ctx, user); err != nil {
			return err
		}
		o.sum.Users++

		coach := &models.Coach{UserID: user.ID}
		if role == models.RoleRegionalCoach {
			// Regional coaches are tagged with the team's region.
			region := r.team.Region
			coach.Region = &region
		}
		if err := o.store.Create(ctx, coach); err != nil {
			return err
		}

		if role == models.RoleRegionalCoach {
			r.regionalCoaches = append(r.regionalCoaches, coach)
			o.sum.RegionalCoaches++
		} else {
			r.coaches = append(r.coaches, coach)
			o.sum.Coaches++
		}
	}
	return nil
}

func (o *orchestrator) seedPlayers(ctx context.Context, r *roster) error {
	count := o.gen.Pick(o.cfg.PlayersPerTeam)
	age := r.team.AgeGroup

	// Household bias: a new parent reuses the previous family's address
	// about a third of the time.
	var lastHouseholdAddr uint

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		trusted := age.Independent()
		if age == models.AgeU14 {
			trusted = o.gen.Bool()
		}

		var player *models.Player
		var err error
		if trusted {
			player, err = o.seedTrustedPlayer(ctx, age, r.team.ID)
		} else {
			player, lastHouseholdAddr, err = o.seedYouthPlayer(ctx, age, r.team.ID, lastHouseholdAddr)
		}
		if err != nil {
			return err
		}
		r.players = append(r.players, player)
		o.sum.Players++
		if trusted {
			o.sum.TrustedPlayers++
		}
	}
	return nil
}

// seedTrustedPlayer creates the self-managed branch: user and address first,
// then the player wired to both.
func (o *orchestrator) seedTrustedPlayer(ctx context.Context, age models.AgeGroup, teamID uint) (*models.Player, error) {
	user, err := o.gen.User([]models.Role{models.RolePlayer}, models.RolePlayer)
	if err != nil {
		return nil, err
	}
	if err := o.store.Create(ctx, user); err != nil {
		return nil, err
	}
	o.sum.Users++

	addr := o.gen.Address()
	if err := o.store.Create(ctx, addr); err != nil {
		return nil, err
	}
	o.sum.Addresses++

	player, err := BuildPlayer(age, teamID, &user.ID, &addr.ID, true, o.gen.College(), o.gen.SportAttributes())
	if err != nil {
		return nil, err
	}
	if err := o.store.Create(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// seedYouthPlayer creates the parent-mediated branch: a player with no
// identity of their own, plus one or more parents connected afterwards.
func (o *orchestrator) seedYouthPlayer(ctx context.Context, age models.AgeGroup, teamID uint, lastAddr uint) (*models.Player, uint, error) {
	player, err := BuildPlayer(age, teamID, nil, nil, false, nil, o.gen.SportAttributes())
	if err != nil {
		return nil, lastAddr, err
	}
	if err := o.store.Create(ctx, player); err != nil {
		return nil, lastAddr, err
	}

	parents := o.gen.Pick(o.cfg.ParentsPerPlayer)
	for j := 0; j < parents; j++ {
		user, err := o.gen.User([]models.Role{models.RoleParent}, models.RoleParent)
		if err != nil {
			return nil, lastAddr, err
		}
		if err := o.store.Create(ctx, user); err != nil {
			return nil, lastAddr, err
		}
		o.sum.Users++

		addrID := lastAddr
		if addrID == 0 || o.gen.rand.Intn(3) != 0 {
			addr := o.gen.Address()
			if err := o.store.Create(ctx, addr); err != nil {
				return nil, lastAddr, err
			}
			o.sum.Addresses++
			addrID = addr.ID
		}
		lastAddr = addrID

		parent, err := BuildParent(user.ID, addrID)
		if err != nil {
			return nil, lastAddr, err
		}
		if err := o.store.Create(ctx, parent); err != nil {
			return nil, lastAddr, err
		}
		o.sum.Parents++

		if err := o.store.Create(ctx, &models.PlayerParent{PlayerID: player.ID, ParentID: parent.ID}); err != nil {
			return nil, lastAddr, err
		}
	}
	return player, lastAddr, nil
}

func (o *orchestrator) seedTrophies(ctx context.Context, r *roster) error {
	count := o.gen.Pick(o.cfg.TrophiesPerTeam)
	for i := 0; i < count; i++ {
		if err := o.store.Create(ctx, o.gen.Trophy(r.team.ID)); err != nil {
			return err
		}
		o.sum.Trophies++
	}
	return nil
}

// seedTeamEvents creates the team's practice events (unattached, no
// attendance) and its tournaments; every tournament event fans out PENDING
// attendance for the whole roster.
func (o *orchestrator) seedTeamEvents(ctx context.Context, r *roster) error {
	practices := o.gen.Pick(o.cfg.PracticeEventsPerTeam)
	for i := 0; i < practices; i++ {
		if err := o.store.Create(ctx, o.gen.HourEvent(models.EventPractice)); err != nil {
			return err
		}
		o.sum.Events++
	}

	tournaments := o.gen.Pick(o.cfg.TournamentsPerTeam)
	for i := 0; i < tournaments; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		tournament := o.gen.Tournament()
		if err := o.store.Create(ctx, tournament); err != nil {
			return err
		}
		o.sum.Tournaments++

		events := o.gen.Pick(o.cfg.EventsPerTournament)
		for j := 0; j < events; j++ {
			event := o.gen.TournamentEvent(tournament.ID)
			if err := o.store.Create(ctx, event); err != nil {
				return err
			}
			o.sum.Events++

			if err := o.seedAttendance(ctx, event.ID, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAttendance bulk-creates one PENDING row per roster member: every
// player, plain coach, and regional coach, no duplicates.
func (o *orchestrator) seedAttendance(ctx context.Context, eventID uint, r *roster) error {
	rows := make([]models.EventAttendance, 0, len(r.players)+len(r.coaches)+len(r.regionalCoaches))

	for _, p := range r.players {
		pid := p.ID
		rows = append(rows, models.EventAttendance{
			EventID:  eventID,
			PlayerID: &pid,
			UserID:   p.UserID,
			Status:   models.AttendancePending,
		})
	}
	for _, c := range append(append([]*models.Coach{}, r.coaches...), r.regionalCoaches...) {
		cid := c.ID
		uid := c.UserID
		rows = append(rows, models.EventAttendance{
			EventID: eventID,
			CoachID: &cid,
			UserID:  &uid,
			Status:  models.AttendancePending,
		})
	}

	if len(rows) == 0 {
		return nil
	}
	if err := o.store.CreateMany(ctx, rows); err != nil {
		return err
	}
	o.sum.Attendance += len(rows)
	return nil
}

// wireTeam is the second pass: the coach joins and the head-coach reference
// need ids that only exist once the roster rows are persisted.
func (o *orchestrator) wireTeam(ctx context.Context, r *roster) error {
	for _, c := range append(append([]*models.Coach{}, r.coaches...), r.regionalCoaches...) {
		if err := o.store.Create(ctx, &models.TeamCoach{TeamID: r.team.ID, CoachID: c.ID}); err != nil {
			return err
		}
	}

	if len(r.coaches) > 0 {
		id := r.coaches[0].ID
		r.team.HeadCoachID = &id
		if err := o.store.Save(ctx, r.team); err != nil {
			return err
		}
	}
	return nil
}

// seedTeamChats queries the eligibility predicate against the team as
// persisted, then gives every member a seat and a random number of messages.
func (o *orchestrator) seedTeamChats(ctx context.Context, r *roster) error {
	count := o.gen.Pick(o.cfg.TeamChatsPerTeam)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		members, err := o.store.TeamChatUsers(ctx, r.team.ID)
		if err != nil {
			return err
		}
		if err := o.seedChat(ctx, members); err != nil {
			return err
		}
	}
	return nil
}

func (o *orchestrator) seedChat(ctx context.Context, members []models.User) error {
	chat := o.gen.Chat()
	if err := o.store.Create(ctx, chat); err != nil {
		return err
	}
	o.sum.Chats++

	for _, m := range members {
		if err := o.store.Create(ctx, &models.UserChat{ChatID: chat.ID, UserID: m.ID}); err != nil {
			return err
		}
		o.sum.ChatMembers++

		msgs := o.gen.Pick(o.cfg.MessagesPerMember)
		for j := 0; j < msgs; j++ {
			if err := o.store.Create(ctx, o.gen.Message(chat.ID, m.ID, chat.CreatedAt)); err != nil {
				return err
			}
			o.sum.Messages++
		}
	}
	return nil
}

// seedGlobalEvents creates org-wide calendar entries with no attendee wiring.
func (o *orchestrator) seedGlobalEvents(ctx context.Context) error {
	count := o.gen.Pick(o.cfg.GlobalEvents)
	for i := 0; i < count; i++ {
		if err := o.store.Create(ctx, o.gen.HourEvent(models.EventGlobal)); err != nil {
			return err
		}
		o.sum.Events++
	}
	return nil
}

// seedRandomChats samples uniformly across all users, ignoring team
// structure.
func (o *orchestrator) seedRandomChats(ctx context.Context) error {
	count := o.gen.Pick(o.cfg.RandomChats)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		members, err := o.store.SampleUsers(ctx, o.gen.Pick(o.cfg.RandomChatMembers))
		if err != nil {
			return err
		}
		if err := o.seedChat(ctx, members); err != nil {
			return err
		}
	}
	return nil
}

// seedNotifications targets a random subset of all users; each target gets a
// random number of notifications paired with a read flag.
func (o *orchestrator) seedNotifications(ctx context.Context) error {
	targets, err := o.store.SampleUsers(ctx, o.gen.Pick(o.cfg.NotificationUsers))
	if err != nil {
		return err
	}

	for _, u := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		count := o.gen.Pick(o.cfg.NotificationsPerUser)
		for i := 0; i < count; i++ {
			n := o.gen.Notification()
			if err := o.store.Create(ctx, n); err != nil {
				return err
			}
			o.sum.Notifications++

			un := &models.UserNotification{NotificationID: n.ID, UserID: u.ID, Read: o.gen.Bool()}
			if err := o.store.Create(ctx, un); err != nil {
				return err
			}
			o.sum.UserNotifications++
		}
	}
	return nil
}
