package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/model"
)

// FlashService queues and consumes one-time status messages.
// Failures are logged and swallowed: a lost flash must never fail the request.
type FlashService struct {
	store FlashStore
	log   zerolog.Logger
}

func NewFlashService(store FlashStore, log zerolog.Logger) *FlashService {
	return &FlashService{
		store: store,
		log:   log.With().Str("component", "flash_service").Logger(),
	}
}

// Success queues a success message shown on the next rendered page.
func (s *FlashService) Success(ctx context.Context, sessionID, key string) {
	s.put(ctx, sessionID, model.Flash{Kind: model.FlashSuccess, Key: key})
}

// Error queues an error message shown on the next rendered page.
func (s *FlashService) Error(ctx context.Context, sessionID, key string) {
	s.put(ctx, sessionID, model.Flash{Kind: model.FlashError, Key: key})
}

// Pop returns the pending flash for the session, or nil.
func (s *FlashService) Pop(ctx context.Context, sessionID string) *model.Flash {
	if sessionID == "" {
		return nil
	}
	f, err := s.store.Pop(ctx, sessionID)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to read flash")
		return nil
	}
	return f
}

func (s *FlashService) put(ctx context.Context, sessionID string, f model.Flash) {
	if sessionID == "" {
		return
	}
	if err := s.store.Put(ctx, sessionID, f); err != nil {
		s.log.Error().Err(err).Str("key", f.Key).Msg("failed to store flash")
	}
}
