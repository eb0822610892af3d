package engine

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/srujankaleru2007/StudyHub/internal/storage"
)

// Service owns the task collections and the character profile. Every mutating
// operation persists its target document write-through; the profile and task
// keys are written independently (best-effort local cache, no cross-key
// transaction).
type Service struct {
	store *storage.Store
	now   func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		store: storage.NewStore(db),
		now:   time.Now,
	}
}

func (s *Service) Store() *storage.Store { return s.store }

func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	return s.store.Profile(ctx)
}

func (s *Service) Tasks(ctx context.Context) (*storage.Collections, error) {
	return s.store.Tasks(ctx)
}

// GrantXP awards XP and gold through the reward rules and persists the
// profile.
func (s *Service) GrantXP(ctx context.Context, xp, gold int) (*storage.Profile, error) {
	p, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	AddXP(p, xp)
	AddGold(p, gold)
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Damage applies HP damage and persists the profile.
func (s *Service) Damage(ctx context.Context, amount int) (*storage.Profile, error) {
	p, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	TakeDamage(p, amount)
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AvatarUpdate carries the fields to merge into the avatar. Nil means keep.
type AvatarUpdate struct {
	Name  *string
	Class *string
	Color *string
}

// UpdateAvatar merges avatar customization into the profile. Names are
// truncated to the display limit; an unknown class is rejected.
func (s *Service) UpdateAvatar(ctx context.Context, in AvatarUpdate) (*storage.Profile, error) {
	p, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := *in.Name
		if r := []rune(name); len(r) > MaxAvatarNameLen {
			name = string(r[:MaxAvatarNameLen])
		}
		if name != "" {
			p.Avatar.Name = name
		}
	}
	if in.Class != nil {
		if !ValidAvatarClass(*in.Class) {
			return nil, fmt.Errorf("invalid avatar class: %q", *in.Class)
		}
		p.Avatar.Class = *in.Class
	}
	if in.Color != nil && *in.Color != "" {
		p.Avatar.Color = *in.Color
	}
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Login records the account handed over by the authentication collaborator.
// Credentials are never validated here.
func (s *Service) Login(ctx context.Context, a storage.Account) error {
	return s.store.SaveAccount(ctx, &a)
}

func (s *Service) Logout(ctx context.Context) error {
	return s.store.ClearAccount(ctx)
}
