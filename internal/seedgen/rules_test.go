package seedgen

import (
	"errors"
	"testing"

	"github.com/Ember-Development/bomber-app-sub001/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestBuildPlayerYouthForbidsIdentity(t *testing.T) {
	attrs := newTestGenerator(1).SportAttributes()

	for _, age := range []models.AgeGroup{models.AgeU8, models.AgeU10, models.AgeU12} {
		p, err := BuildPlayer(age, 1, nil, nil, false, nil, attrs)
		if err != nil {
			t.Fatalf("%s: expected valid youth player, got %v", age, err)
		}
		if p.UserID != nil || p.AddressID != nil || p.IsTrusted || p.College != nil {
			t.Errorf("%s: expected nil identity fields, got %+v", age, p)
		}

		if _, err := BuildPlayer(age, 1, uintPtr(5), nil, false, nil, attrs); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant for user on youth player, got %v", age, err)
		}
		if _, err := BuildPlayer(age, 1, nil, nil, true, nil, attrs); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant for trusted youth player, got %v", age, err)
		}
		college := "Baylor University"
		if _, err := BuildPlayer(age, 1, nil, nil, false, &college, attrs); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant for youth college commitment, got %v", age, err)
		}
	}
}

func TestBuildPlayerU14TrustMustAgree(t *testing.T) {
	attrs := newTestGenerator(2).SportAttributes()

	// Both branches are legal.
	trusted, err := BuildPlayer(models.AgeU14, 1, uintPtr(3), uintPtr(4), true, nil, attrs)
	if err != nil {
		t.Fatalf("Expected trusted U14 branch to build, got %v", err)
	}
	if !trusted.IsTrusted || trusted.UserID == nil {
		t.Errorf("Expected trusted player with user, got %+v", trusted)
	}

	untrusted, err := BuildPlayer(models.AgeU14, 1, nil, nil, false, nil, attrs)
	if err != nil {
		t.Fatalf("Expected untrusted U14 branch to build, got %v", err)
	}
	if untrusted.IsTrusted || untrusted.UserID != nil {
		t.Errorf("Expected untrusted player without user, got %+v", untrusted)
	}

	// Disagreement is an error, never silently corrected.
	if _, err := BuildPlayer(models.AgeU14, 1, uintPtr(3), uintPtr(4), false, nil, attrs); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected ErrInvariant for user without trust, got %v", err)
	}
	if _, err := BuildPlayer(models.AgeU14, 1, nil, uintPtr(4), true, nil, attrs); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected ErrInvariant for trust without user, got %v", err)
	}
}

func TestBuildPlayerIndependentRequiresIdentity(t *testing.T) {
	attrs := newTestGenerator(3).SportAttributes()

	for _, age := range []models.AgeGroup{models.AgeU16, models.AgeU18, models.AgeAlumni} {
		p, err := BuildPlayer(age, 1, uintPtr(7), uintPtr(8), true, nil, attrs)
		if err != nil {
			t.Fatalf("%s: expected valid independent player, got %v", age, err)
		}
		if !p.IsTrusted {
			t.Errorf("%s: expected trusted player", age)
		}

		if _, err := BuildPlayer(age, 1, nil, uintPtr(8), true, nil, attrs); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant for missing user, got %v", age, err)
		}
		if _, err := BuildPlayer(age, 1, uintPtr(7), nil, true, nil, attrs); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant for missing address, got %v", age, err)
		}
		if _, err := BuildPlayer(age, 1, uintPtr(7), uintPtr(8), false, nil, attrs); !errors.Is(err, ErrInvariant) {
			t.Errorf("%s: expected ErrInvariant for untrusted %s player, got %v", age, age, err)
		}
	}
}

func TestBuildPlayerUnknownAgeGroup(t *testing.T) {
	attrs := newTestGenerator(4).SportAttributes()

	if _, err := BuildPlayer(models.AgeGroup("U99"), 1, nil, nil, false, nil, attrs); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected ErrInvariant for unknown age group, got %v", err)
	}
}

func TestBuildParentRequiresIDs(t *testing.T) {
	if _, err := BuildParent(0, 4); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected ErrInvariant for missing user id, got %v", err)
	}
	if _, err := BuildParent(3, 0); !errors.Is(err, ErrInvariant) {
		t.Errorf("Expected ErrInvariant for missing address id, got %v", err)
	}

	p, err := BuildParent(3, 4)
	if err != nil {
		t.Fatalf("BuildParent failed: %v", err)
	}
	if p.UserID != 3 || p.AddressID != 4 {
		t.Errorf("Expected ids echoed, got %+v", p)
	}
}
