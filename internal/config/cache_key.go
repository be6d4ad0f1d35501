package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key holding the active token ID of a user.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("user:%d:session", userID)
}

// FlashKey returns the cache key for the one-time flash of a login session.
func (r *CacheKeyStruct) FlashKey(sessionID string) string {
	return fmt.Sprintf("session:%s:flash", sessionID)
}

var CacheKey = NewCacheKeyStruct()
