package cache

// Replacer is a bounded key/value store that chooses what to evict.
type Replacer interface {
	Get(key string) interface{}
	Put(key string, value interface{})
	Remove(key string) bool
	Len() int
}
