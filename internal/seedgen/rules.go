package seedgen

import (
	"fmt"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

// BuildPlayer couples the identity, trust, and relational fields of a player
// record and rejects malformed combinations instead of silently coercing
// them. The branch is strict per age bracket:
//
//   - U8/U10/U12: parent-managed; user, address, college must all be absent
//     and the player is never trusted.
//   - U14: either branch, but trust and user presence must agree.
//   - U16/U18/ALUMNI: always trusted; user and address are required.
//
// A violation is a bug in the caller's branching, reported as ErrInvariant.
func BuildPlayer(age models.AgeGroup, teamID uint, userID, addressID *uint, trusted bool, college *string, attrs SportAttributes) (*models.Player, error) {
	if !age.Valid() {
		return nil, fmt.Errorf("%w: unknown age group %q", ErrInvariant, age)
	}

	switch {
	case age.Youth():
		if userID != nil || addressID != nil {
			return nil, fmt.Errorf("%w: %s player cannot carry a user or address", ErrInvariant, age)
		}
		if trusted {
			return nil, fmt.Errorf("%w: %s player cannot be trusted", ErrInvariant, age)
		}
		if college != nil {
			return nil, fmt.Errorf("%w: %s player cannot have a college commitment", ErrInvariant, age)
		}
	case age == models.AgeU14:
		if trusted != (userID != nil) {
			return nil, fmt.Errorf("%w: U14 trust flag and user presence disagree (trusted=%v, user=%v)",
				ErrInvariant, trusted, userID != nil)
		}
		if trusted && addressID == nil {
			return nil, fmt.Errorf("%w: trusted U14 player requires an address", ErrInvariant)
		}
		if !trusted && (addressID != nil || college != nil) {
			return nil, fmt.Errorf("%w: untrusted U14 player cannot carry an address or college", ErrInvariant)
		}
	default: // U16, U18, ALUMNI
		if !trusted {
			return nil, fmt.Errorf("%w: %s player must be trusted", ErrInvariant, age)
		}
		if userID == nil || addressID == nil {
			return nil, fmt.Errorf("%w: %s player requires a user and address", ErrInvariant, age)
		}
	}

	return &models.Player{
		Position1:         attrs.Position1,
		Position2:         attrs.Position2,
		JerseyNumber:      attrs.JerseyNumber,
		GradYear:          attrs.GradYear,
		JerseySize:        attrs.JerseySize,
		PantSize:          attrs.PantSize,
		StirrupSize:       attrs.StirrupSize,
		ShortSize:         attrs.ShortSize,
		PracticeShortSize: attrs.PracticeShortSize,
		AgeGroup:          age,
		IsTrusted:         trusted,
		College:           college,
		UserID:            userID,
		AddressID:         addressID,
		TeamID:            teamID,
	}, nil
}

// BuildParent requires both ids; attaching the parent to players is the
// orchestrator's job.
func BuildParent(userID, addressID uint) (*models.Parent, error) {
	if userID == 0 || addressID == 0 {
		return nil, fmt.Errorf("%w: parent requires user and address ids", ErrInvariant)
	}
	return &models.Parent{UserID: userID, AddressID: addressID}, nil
}
