package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

// MemoryStore is an in-memory Store used by the engine's tests. It assigns
// monotonic ids the way the relational store would and implements the same
// eligibility query over its tables. SampleUsers returns users in insertion
// order so tests stay reproducible; randomness of the sample is the SQL
// store's concern.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	ops    int
	t      tables
}

type tables struct {
	Users             []models.User
	Admins            []models.Admin
	Fans              []models.Fan
	Addresses         []models.Address
	Teams             []models.Team
	Coaches           []models.Coach
	TeamCoaches       []models.TeamCoach
	Trophies          []models.Trophy
	Players           []models.Player
	Parents           []models.Parent
	PlayerParents     []models.PlayerParent
	Tournaments       []models.Tournament
	Events            []models.Event
	Attendance        []models.EventAttendance
	Chats             []models.Chat
	UserChats         []models.UserChat
	Messages          []models.Message
	Notifications     []models.Notification
	UserNotifications []models.UserNotification
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Ops returns how many store operations have been issued, for spy-style
// assertions (e.g. config validation must happen before any call).
func (s *MemoryStore) Ops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops
}

func (s *MemoryStore) id() uint {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemoryStore) Create(ctx context.Context, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	if err := ctx.Err(); err != nil {
		return opErr("create", value, err)
	}

	switch v := value.(type) {
	case *models.User:
		for _, u := range s.t.Users {
			if u.Email == v.Email {
				return opErr("create", value, fmt.Errorf("duplicate email %q", v.Email))
			}
		}
		v.ID = s.id()
		s.t.Users = append(s.t.Users, *v)
	case *models.Admin:
		v.ID = s.id()
		s.t.Admins = append(s.t.Admins, *v)
	case *models.Fan:
		v.ID = s.id()
		s.t.Fans = append(s.t.Fans, *v)
	case *models.Address:
		v.ID = s.id()
		s.t.Addresses = append(s.t.Addresses, *v)
	case *models.Team:
		v.ID = s.id()
		s.t.Teams = append(s.t.Teams, *v)
	case *models.Coach:
		v.ID = s.id()
		s.t.Coaches = append(s.t.Coaches, *v)
	case *models.TeamCoach:
		v.ID = s.id()
		s.t.TeamCoaches = append(s.t.TeamCoaches, *v)
	case *models.Trophy:
		v.ID = s.id()
		s.t.Trophies = append(s.t.Trophies, *v)
	case *models.Player:
		v.ID = s.id()
		s.t.Players = append(s.t.Players, *v)
	case *models.Parent:
		v.ID = s.id()
		s.t.Parents = append(s.t.Parents, *v)
	case *models.PlayerParent:
		v.ID = s.id()
		s.t.PlayerParents = append(s.t.PlayerParents, *v)
	case *models.Tournament:
		v.ID = s.id()
		s.t.Tournaments = append(s.t.Tournaments, *v)
	case *models.Event:
		v.ID = s.id()
		s.t.Events = append(s.t.Events, *v)
	case *models.EventAttendance:
		v.ID = s.id()
		s.t.Attendance = append(s.t.Attendance, *v)
	case *models.Chat:
		v.ID = s.id()
		s.t.Chats = append(s.t.Chats, *v)
	case *models.UserChat:
		v.ID = s.id()
		s.t.UserChats = append(s.t.UserChats, *v)
	case *models.Message:
		v.ID = s.id()
		s.t.Messages = append(s.t.Messages, *v)
	case *models.Notification:
		v.ID = s.id()
		s.t.Notifications = append(s.t.Notifications, *v)
	case *models.UserNotification:
		v.ID = s.id()
		s.t.UserNotifications = append(s.t.UserNotifications, *v)
	default:
		return opErr("create", value, fmt.Errorf("unsupported type"))
	}
	return nil
}

func (s *MemoryStore) CreateMany(ctx context.Context, values interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	if err := ctx.Err(); err != nil {
		return opErr("createMany", values, err)
	}

	switch vs := values.(type) {
	case []models.EventAttendance:
		for i := range vs {
			vs[i].ID = s.id()
			s.t.Attendance = append(s.t.Attendance, vs[i])
		}
	case []models.UserChat:
		for i := range vs {
			vs[i].ID = s.id()
			s.t.UserChats = append(s.t.UserChats, vs[i])
		}
	case []models.Message:
		for i := range vs {
			vs[i].ID = s.id()
			s.t.Messages = append(s.t.Messages, vs[i])
		}
	default:
		return opErr("createMany", values, fmt.Errorf("unsupported type"))
	}
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	if err := ctx.Err(); err != nil {
		return opErr("save", value, err)
	}

	switch v := value.(type) {
	case *models.Team:
		for i := range s.t.Teams {
			if s.t.Teams[i].ID == v.ID {
				s.t.Teams[i] = *v
				return nil
			}
		}
	case *models.Player:
		for i := range s.t.Players {
			if s.t.Players[i].ID == v.ID {
				s.t.Players[i] = *v
				return nil
			}
		}
	case *models.User:
		for i := range s.t.Users {
			if s.t.Users[i].ID == v.ID {
				s.t.Users[i] = *v
				return nil
			}
		}
	}
	return opErr("save", value, fmt.Errorf("no existing row"))
}

func (s *MemoryStore) TeamChatUsers(ctx context.Context, teamID uint) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	if err := ctx.Err(); err != nil {
		return nil, opErr("findMany", &models.User{}, err)
	}

	eligible := map[uint]bool{}

	for _, p := range s.t.Players {
		if p.TeamID != teamID {
			continue
		}
		if p.UserID != nil {
			eligible[*p.UserID] = true
		}
		if p.IsTrusted {
			continue
		}
		for _, pp := range s.t.PlayerParents {
			if pp.PlayerID != p.ID {
				continue
			}
			for _, par := range s.t.Parents {
				if par.ID == pp.ParentID {
					eligible[par.UserID] = true
				}
			}
		}
	}

	for _, tc := range s.t.TeamCoaches {
		if tc.TeamID != teamID {
			continue
		}
		for _, c := range s.t.Coaches {
			if c.ID == tc.CoachID {
				eligible[c.UserID] = true
			}
		}
	}

	var users []models.User
	for _, u := range s.t.Users {
		if eligible[u.ID] {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *MemoryStore) SampleUsers(ctx context.Context, limit int) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++
	if err := ctx.Err(); err != nil {
		return nil, opErr("findMany", &models.User{}, err)
	}

	if limit > len(s.t.Users) {
		limit = len(s.t.Users)
	}
	users := make([]models.User, limit)
	copy(users, s.t.Users[:limit])
	return users, nil
}

// WithTransaction snapshots the tables and restores them if fn fails,
// mirroring the all-or-nothing contract of the SQL store.
func (s *MemoryStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	snapshot := s.t.clone()
	snapID := s.nextID
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.t = snapshot
		s.nextID = snapID
		s.mu.Unlock()
		return err
	}
	return nil
}

func (t tables) clone() tables {
	c := tables{}
	c.Users = append(c.Users, t.Users...)
	c.Admins = append(c.Admins, t.Admins...)
	c.Fans = append(c.Fans, t.Fans...)
	c.Addresses = append(c.Addresses, t.Addresses...)
	c.Teams = append(c.Teams, t.Teams...)
	c.Coaches = append(c.Coaches, t.Coaches...)
	c.TeamCoaches = append(c.TeamCoaches, t.TeamCoaches...)
	c.Trophies = append(c.Trophies, t.Trophies...)
	c.Players = append(c.Players, t.Players...)
	c.Parents = append(c.Parents, t.Parents...)
	c.PlayerParents = append(c.PlayerParents, t.PlayerParents...)
	c.Tournaments = append(c.Tournaments, t.Tournaments...)
	c.Events = append(c.Events, t.Events...)
	c.Attendance = append(c.Attendance, t.Attendance...)
	c.Chats = append(c.Chats, t.Chats...)
	c.UserChats = append(c.UserChats, t.UserChats...)
	c.Messages = append(c.Messages, t.Messages...)
	c.Notifications = append(c.Notifications, t.Notifications...)
	c.UserNotifications = append(c.UserNotifications, t.UserNotifications...)
	return c
}

// Accessors used by tests.

func (s *MemoryStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.t.Users...)
}

func (s *MemoryStore) Teams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Team(nil), s.t.Teams...)
}

func (s *MemoryStore) Players() []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Player(nil), s.t.Players...)
}

func (s *MemoryStore) Parents() []models.Parent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Parent(nil), s.t.Parents...)
}

func (s *MemoryStore) PlayerParents() []models.PlayerParent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PlayerParent(nil), s.t.PlayerParents...)
}

func (s *MemoryStore) Coaches() []models.Coach {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Coach(nil), s.t.Coaches...)
}

func (s *MemoryStore) TeamCoaches() []models.TeamCoach {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TeamCoach(nil), s.t.TeamCoaches...)
}

func (s *MemoryStore) Trophies() []models.Trophy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Trophy(nil), s.t.Trophies...)
}

func (s *MemoryStore) Tournaments() []models.Tournament {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Tournament(nil), s.t.Tournaments...)
}

func (s *MemoryStore) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Event(nil), s.t.Events...)
}

func (s *MemoryStore) Attendance() []models.EventAttendance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.EventAttendance(nil), s.t.Attendance...)
}

func (s *MemoryStore) Chats() []models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Chat(nil), s.t.Chats...)
}

func (s *MemoryStore) UserChats() []models.UserChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.UserChat(nil), s.t.UserChats...)
}

func (s *MemoryStore) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.t.Messages...)
}

func (s *MemoryStore) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.t.Notifications...)
}

func (s *MemoryStore) UserNotifications() []models.UserNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.UserNotification(nil), s.t.UserNotifications...)
}

func (s *MemoryStore) Admins() []models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Admin(nil), s.t.Admins...)
}

func (s *MemoryStore) Fans() []models.Fan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Fan(nil), s.t.Fans...)
}
