package service

import "github.com/stemsi/heritage-admin/internal/repository"

// Re-exported so handlers only need to know about the service layer.
var (
	ErrNotFound  = repository.ErrNotFound
	ErrInUse     = repository.ErrInUse
	ErrDuplicate = repository.ErrDuplicate
)
