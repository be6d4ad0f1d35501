package service

import (
	"context"
	"time"

	"github.com/stemsi/heritage-admin/internal/model"
)

// The services depend on these narrow store contracts. The Postgres and Redis
// implementations live in the repository package.

// UserStore reads and creates user accounts.
type UserStore interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// SessionStore tracks the active token ID per user.
type SessionStore interface {
	Save(ctx context.Context, userID int, tokenID string, ttl time.Duration) error
	Get(ctx context.Context, userID int) (string, error)
	Delete(ctx context.Context, userID int) error
}

// FlashStore holds at most one pending flash per session.
type FlashStore interface {
	Put(ctx context.Context, sessionID string, f model.Flash) error
	Pop(ctx context.Context, sessionID string) (*model.Flash, error)
}

// SubDistrictStore persists sub-districts.
type SubDistrictStore interface {
	GetByID(ctx context.Context, id int) (*model.SubDistrict, error)
	Exists(ctx context.Context, id int) (bool, error)
	List(ctx context.Context) ([]model.SubDistrict, error)
	Create(ctx context.Context, s *model.SubDistrict) error
	Update(ctx context.Context, s *model.SubDistrict) error
	Delete(ctx context.Context, id int) error
}

// CulturalHeritageStore persists cultural heritage records.
type CulturalHeritageStore interface {
	GetByID(ctx context.Context, id int) (*model.CulturalHeritage, error)
	List(ctx context.Context, f model.ListFilter) ([]model.CulturalHeritage, int, error)
	Create(ctx context.Context, h *model.CulturalHeritage) error
	Update(ctx context.Context, h *model.CulturalHeritage) error
	Delete(ctx context.Context, id int) error
}

// ArtStudioStore persists art studios.
type ArtStudioStore interface {
	GetByID(ctx context.Context, id int) (*model.ArtStudio, error)
	List(ctx context.Context, f model.ListFilter) ([]model.ArtStudio, int, error)
	Create(ctx context.Context, a *model.ArtStudio) error
	Update(ctx context.Context, a *model.ArtStudio) error
	Delete(ctx context.Context, id int) error
}
