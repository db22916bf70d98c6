package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RateLimitKey returns the Redis counter key for a client within a fixed window.
func (r *CacheKeyStruct) RateLimitKey(clientIP string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%d", clientIP, window)
}

var CacheKey = NewCacheKeyStruct()
