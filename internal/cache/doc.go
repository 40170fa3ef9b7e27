// Package cache provides a small generic LRU cache.
//
// The overlay session keeps the remapped version of every mask the user has
// toggled, so switching an overlay off and on again does not decode and
// re-encode the PNG a second time.
//
//	c := cache.New[uint64, string](32)
//	c.Set(key, uri)
//	uri, ok := c.Get(key)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
