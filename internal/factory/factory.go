// Package factory builds persisted records with generated default values.
// Tests use it to arrange state; cmd/seed uses it for demo data.
package factory

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/stemsi/heritage-admin/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext password of every generated user.
const DefaultPassword = "secret123"

// Stores is the write side of the record store the factory persists through.
type Stores struct {
	Users interface {
		Create(ctx context.Context, u *model.User) error
	}
	SubDistricts interface {
		Create(ctx context.Context, s *model.SubDistrict) error
	}
	CulturalHeritages interface {
		Create(ctx context.Context, h *model.CulturalHeritage) error
	}
	ArtStudios interface {
		Create(ctx context.Context, a *model.ArtStudio) error
	}
}

// Factory creates records. Overrides run after defaults are filled in, so any
// field can be pinned by the caller.
type Factory struct {
	stores Stores
	rnd    *rand.Rand
}

// New creates a Factory writing through stores.
func New(stores Stores) *Factory {
	return &Factory{
		stores: stores,
		rnd:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

var words = []string{
	"betang", "sandung", "pasah", "keramat", "batu", "tiang", "huma", "kuta",
	"danum", "lewu", "tambun", "bungai", "tingang", "garantung", "tatau", "mandau",
	"talawang", "sapundu", "pantar", "balai", "karungut", "kecapi", "tandak", "manasai",
}

// Word returns one random word.
func (f *Factory) Word() string {
	return words[f.rnd.IntN(len(words))]
}

// Sentence returns a capitalised sentence of random words ending with a period.
func (f *Factory) Sentence() string {
	n := 4 + f.rnd.IntN(5)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = f.Word()
	}
	return title(strings.Join(parts, " ")) + "."
}

// title upper-cases the first letter; the word list is ASCII.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// User creates a user whose password is DefaultPassword.
func (f *Factory) User(ctx context.Context, overrides ...func(*model.User)) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Name:         title(f.Word()) + " " + title(f.Word()),
		Email:        fmt.Sprintf("user-%s@example.test", uuid.NewString()[:8]),
		PasswordHash: string(hash),
	}
	for _, o := range overrides {
		o(u)
	}
	if err := f.stores.Users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// SubDistrict creates a sub-district with a unique name.
func (f *Factory) SubDistrict(ctx context.Context, overrides ...func(*model.SubDistrict)) (*model.SubDistrict, error) {
	sd := &model.SubDistrict{
		Name:        "Kecamatan " + title(f.Word()) + " " + uuid.NewString()[:4],
		Description: f.Sentence(),
	}
	for _, o := range overrides {
		o(sd)
	}
	if err := f.stores.SubDistricts.Create(ctx, sd); err != nil {
		return nil, fmt.Errorf("create sub-district: %w", err)
	}
	return sd, nil
}

// CulturalHeritage creates a record. Unless overridden, a new creator and a new
// sub-district are created for it.
func (f *Factory) CulturalHeritage(ctx context.Context, overrides ...func(*model.CulturalHeritage)) (*model.CulturalHeritage, error) {
	h := &model.CulturalHeritage{
		Name:        f.Word(),
		Type:        "Situs",
		Village:     "Desa " + title(f.Word()),
		Description: f.Sentence(),
	}
	for _, o := range overrides {
		o(h)
	}

	if h.CreatorID == 0 {
		u, err := f.User(ctx)
		if err != nil {
			return nil, err
		}
		h.CreatorID = u.ID
	}
	if h.SubDistrictID == 0 {
		sd, err := f.SubDistrict(ctx)
		if err != nil {
			return nil, err
		}
		h.SubDistrictID = sd.ID
	}

	if err := f.stores.CulturalHeritages.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create cultural heritage: %w", err)
	}
	return h, nil
}

// ArtStudio creates an art studio. Unless overridden, a new creator is created for it.
func (f *Factory) ArtStudio(ctx context.Context, overrides ...func(*model.ArtStudio)) (*model.ArtStudio, error) {
	a := &model.ArtStudio{
		Name:        "Sanggar " + title(f.Word()),
		SubDistrict: "Kecamatan " + title(f.Word()),
		Village:     "Desa " + title(f.Word()),
		Leader:      title(f.Word()),
		ArtType:     "Tari",
		Building:    "Balai " + title(f.Word()),
		Description: f.Sentence(),
	}
	for _, o := range overrides {
		o(a)
	}

	if a.CreatorID == 0 {
		u, err := f.User(ctx)
		if err != nil {
			return nil, err
		}
		a.CreatorID = u.ID
	}

	if err := f.stores.ArtStudios.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create art studio: %w", err)
	}
	return a, nil
}
