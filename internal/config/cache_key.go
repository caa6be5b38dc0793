package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AdminSessionKey returns the cache key for an admin's console session.
func (r *CacheKeyStruct) AdminSessionKey(adminID int) string {
	return fmt.Sprintf("console:%d:session", adminID)
}

// DarkModeKey returns the durable storage key for an admin's dark mode
// preference. The stored value is always the literal "true" or "false".
func (r *CacheKeyStruct) DarkModeKey(adminID int) string {
	return fmt.Sprintf("console:%d:dark_mode", adminID)
}

var CacheKey = NewCacheKeyStruct()
