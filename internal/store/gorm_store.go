package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

const createBatchSize = 200

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm connection as the engine's storage collaborator.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, value interface{}) error {
	return opErr("create", value, s.db.WithContext(ctx).Create(value).Error)
}

func (s *gormStore) CreateMany(ctx context.Context, values interface{}) error {
	return opErr("createMany", values, s.db.WithContext(ctx).CreateInBatches(values, createBatchSize).Error)
}

func (s *gormStore) Save(ctx context.Context, value interface{}) error {
	return opErr("save", value, s.db.WithContext(ctx).Save(value).Error)
}

func (s *gormStore) TeamChatUsers(ctx context.Context, teamID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Where(`id IN (SELECT user_id FROM players WHERE team_id = ? AND user_id IS NOT NULL)
		    OR id IN (SELECT user_id FROM coaches WHERE id IN (SELECT coach_id FROM team_coaches WHERE team_id = ?))
		    OR id IN (SELECT user_id FROM parents WHERE id IN (
		           SELECT parent_id FROM player_parents WHERE player_id IN (
		               SELECT id FROM players WHERE team_id = ? AND is_trusted = false)))`,
			teamID, teamID, teamID).
		Find(&users).Error
	if err != nil {
		return nil, opErr("findMany", &models.User{}, err)
	}
	return users, nil
}

func (s *gormStore) SampleUsers(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).Order("RANDOM()").Limit(limit).Find(&users).Error
	if err != nil {
		return nil, opErr("findMany", &models.User{}, err)
	}
	return users, nil
}

func (s *gormStore) WithTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
