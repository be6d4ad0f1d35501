// Package testutil provides in-memory implementations of the service store
// contracts for handler and service tests.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/repository"
)

// Stores bundles one in-memory store per entity, wired to each other the way
// the Postgres tables are (joins and foreign keys).
type Stores struct {
	Users             *UserStore
	Sessions          *SessionStore
	Flashes           *FlashStore
	SubDistricts      *SubDistrictStore
	CulturalHeritages *CulturalHeritageStore
	ArtStudios        *ArtStudioStore
}

// NewStores returns empty, linked stores.
func NewStores() *Stores {
	users := &UserStore{rows: map[int]model.User{}}
	heritages := &CulturalHeritageStore{rows: map[int]model.CulturalHeritage{}, users: users}
	subDistricts := &SubDistrictStore{rows: map[int]model.SubDistrict{}, heritages: heritages}
	heritages.subDistricts = subDistricts

	return &Stores{
		Users:             users,
		Sessions:          &SessionStore{tokens: map[int]string{}},
		Flashes:           &FlashStore{flashes: map[string]model.Flash{}},
		SubDistricts:      subDistricts,
		CulturalHeritages: heritages,
		ArtStudios:        &ArtStudioStore{rows: map[int]model.ArtStudio{}, users: users},
	}
}

// ─── Users ─────────────────────────────────────────────────────────────

type UserStore struct {
	mu     sync.Mutex
	rows   map[int]model.User
	nextID int
}

func (s *UserStore) GetByID(_ context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.rows {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *UserStore) Create(_ context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.rows {
		if strings.EqualFold(existing.Email, u.Email) {
			return repository.ErrDuplicate
		}
	}
	s.nextID++
	u.ID = s.nextID
	u.CreatedAt, u.UpdatedAt = time.Now(), time.Now()
	s.rows[u.ID] = *u
	return nil
}

func (s *UserStore) name(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[id].Name
}

// ─── Sessions & flashes ────────────────────────────────────────────────

type SessionStore struct {
	mu     sync.Mutex
	tokens map[int]string
}

func (s *SessionStore) Save(_ context.Context, userID int, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = tokenID
	return nil
}

func (s *SessionStore) Get(_ context.Context, userID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[userID], nil
}

func (s *SessionStore) Delete(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}

type FlashStore struct {
	mu      sync.Mutex
	flashes map[string]model.Flash
}

func (s *FlashStore) Put(_ context.Context, sessionID string, f model.Flash) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[sessionID] = f
	return nil
}

func (s *FlashStore) Pop(_ context.Context, sessionID string) (*model.Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flashes[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.flashes, sessionID)
	return &f, nil
}

// ─── Sub-districts ─────────────────────────────────────────────────────

type SubDistrictStore struct {
	mu        sync.Mutex
	rows      map[int]model.SubDistrict
	nextID    int
	heritages *CulturalHeritageStore
}

func (s *SubDistrictStore) GetByID(_ context.Context, id int) (*model.SubDistrict, error) {
	if err := checkKey(id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sd, nil
}

func (s *SubDistrictStore) Exists(_ context.Context, id int) (bool, error) {
	if err := checkKey(id); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.rows[id]
	return ok, nil
}

func (s *SubDistrictStore) List(_ context.Context) ([]model.SubDistrict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.SubDistrict, 0, len(s.rows))
	for _, sd := range s.rows {
		out = append(out, sd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *SubDistrictStore) Create(_ context.Context, sd *model.SubDistrict) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.nameTaken(sd.Name, 0) {
		return repository.ErrDuplicate
	}
	s.nextID++
	sd.ID = s.nextID
	sd.CreatedAt, sd.UpdatedAt = time.Now(), time.Now()
	s.rows[sd.ID] = *sd
	return nil
}

func (s *SubDistrictStore) Update(_ context.Context, sd *model.SubDistrict) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[sd.ID]; !ok {
		return repository.ErrNotFound
	}
	if s.nameTaken(sd.Name, sd.ID) {
		return repository.ErrDuplicate
	}
	sd.UpdatedAt = time.Now()
	s.rows[sd.ID] = *sd
	return nil
}

func (s *SubDistrictStore) Delete(_ context.Context, id int) error {
	if s.heritages.references(id) {
		return repository.ErrInUse
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *SubDistrictStore) nameTaken(name string, exceptID int) bool {
	for id, sd := range s.rows {
		if id != exceptID && strings.EqualFold(sd.Name, name) {
			return true
		}
	}
	return false
}

func (s *SubDistrictStore) name(id int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[id].Name
}

// ─── Cultural heritages ────────────────────────────────────────────────

type CulturalHeritageStore struct {
	mu           sync.Mutex
	rows         map[int]model.CulturalHeritage
	nextID       int
	users        *UserStore
	subDistricts *SubDistrictStore
}

func (s *CulturalHeritageStore) GetByID(_ context.Context, id int) (*model.CulturalHeritage, error) {
	if err := checkKey(id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	h, ok := s.rows[id]
	s.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	s.join(&h)
	return &h, nil
}

func (s *CulturalHeritageStore) List(_ context.Context, f model.ListFilter) ([]model.CulturalHeritage, int, error) {
	s.mu.Lock()
	var matched []model.CulturalHeritage
	for _, h := range s.rows {
		if f.Query == "" || strings.Contains(strings.ToLower(h.Name), strings.ToLower(f.Query)) {
			matched = append(matched, h)
		}
	}
	s.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name == matched[j].Name {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].Name < matched[j].Name
	})
	for i := range matched {
		s.join(&matched[i])
	}
	return page(matched, f), len(matched), nil
}

func (s *CulturalHeritageStore) Create(_ context.Context, h *model.CulturalHeritage) error {
	if ok, _ := s.subDistricts.Exists(context.Background(), h.SubDistrictID); !ok {
		return repository.ErrInUse
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	h.ID = s.nextID
	h.CreatedAt, h.UpdatedAt = time.Now(), time.Now()
	s.rows[h.ID] = *h
	return nil
}

func (s *CulturalHeritageStore) Update(_ context.Context, h *model.CulturalHeritage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.rows[h.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = h.Name
	stored.Type = h.Type
	stored.Village = h.Village
	stored.Description = h.Description
	stored.SubDistrictID = h.SubDistrictID
	stored.UpdatedAt = time.Now()
	s.rows[h.ID] = stored
	return nil
}

func (s *CulturalHeritageStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Count returns the number of stored records.
func (s *CulturalHeritageStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// First returns the record with the lowest ID, or nil.
func (s *CulturalHeritageStore) First() *model.CulturalHeritage {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first *model.CulturalHeritage
	for _, h := range s.rows {
		if first == nil || h.ID < first.ID {
			h := h
			first = &h
		}
	}
	return first
}

func (s *CulturalHeritageStore) references(subDistrictID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.rows {
		if h.SubDistrictID == subDistrictID {
			return true
		}
	}
	return false
}

func (s *CulturalHeritageStore) join(h *model.CulturalHeritage) {
	h.SubDistrictName = s.subDistricts.name(h.SubDistrictID)
	h.CreatorName = s.users.name(h.CreatorID)
}

// ─── Art studios ───────────────────────────────────────────────────────

type ArtStudioStore struct {
	mu     sync.Mutex
	rows   map[int]model.ArtStudio
	nextID int
	users  *UserStore
}

func (s *ArtStudioStore) GetByID(_ context.Context, id int) (*model.ArtStudio, error) {
	if err := checkKey(id); err != nil {
		return nil, err
	}
	s.mu.Lock()
	a, ok := s.rows[id]
	s.mu.Unlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.CreatorName = s.users.name(a.CreatorID)
	return &a, nil
}

func (s *ArtStudioStore) List(_ context.Context, f model.ListFilter) ([]model.ArtStudio, int, error) {
	s.mu.Lock()
	var matched []model.ArtStudio
	for _, a := range s.rows {
		if f.Query == "" || strings.Contains(strings.ToLower(a.Name), strings.ToLower(f.Query)) {
			matched = append(matched, a)
		}
	}
	s.mu.Unlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return page(matched, f), len(matched), nil
}

func (s *ArtStudioStore) Create(_ context.Context, a *model.ArtStudio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	a.ID = s.nextID
	a.CreatedAt, a.UpdatedAt = time.Now(), time.Now()
	s.rows[a.ID] = *a
	return nil
}

func (s *ArtStudioStore) Update(_ context.Context, a *model.ArtStudio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.rows[a.ID]
	if !ok {
		return repository.ErrNotFound
	}
	a.CreatorID = stored.CreatorID
	a.UpdatedAt = time.Now()
	s.rows[a.ID] = *a
	return nil
}

func (s *ArtStudioStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

// Count returns the number of stored art studios.
func (s *ArtStudioStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func page[T any](items []T, f model.ListFilter) []T {
	if f.PerPage <= 0 {
		return items
	}
	start := f.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + f.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// checkKey fails like the driver does when a key does not fit an int4 column.
func checkKey(id int) error {
	if id > model.MaxID {
		return fmt.Errorf("%d is greater than maximum value for int4", id)
	}
	return nil
}
