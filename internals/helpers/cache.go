// file: internals/helpers/cache.go
package helper

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Short-lived cache for public reads. Writes must invalidate their keys so
// admin edits show up immediately on the public side.
var publicCache = gocache.New(60*time.Second, 5*time.Minute)

// GetCached returns the cached value for key, or runs fetch and stores the
// result under the default TTL.
func GetCached(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if v, found := publicCache.Get(key); found {
		return v, nil
	}
	v, err := fetch()
	if err != nil {
		return nil, err
	}
	publicCache.Set(key, v, gocache.DefaultExpiration)
	return v, nil
}

// InvalidateCache drops the named keys.
func InvalidateCache(keys ...string) {
	for _, k := range keys {
		publicCache.Delete(k)
	}
}

// FlushCache drops everything (used on bulk admin changes and in tests).
func FlushCache() {
	publicCache.Flush()
}
