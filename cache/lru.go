package cache

import (
	"SimpleList/hash"
	"SimpleList/list"
	"SimpleList/utils"
	"SimpleList/utils/errs"

	"github.com/sirupsen/logrus"
)

type entry struct {
	key   string
	value interface{}
}

// LRU evicts the least recently used entry. The map holds iterators into the
// recency list, which stay valid while other entries come and go.
type LRU struct {
	m        *hash.Map[string, list.Iterator[entry]]
	list     *list.List[entry]
	capacity int
}

func NewLRUReplacer(capacity int) Replacer {
	opt := utils.DefaultOptions()
	opt.CacheCapacity = capacity
	lru, err := NewLRU(opt)
	errs.Panic(err)
	return lru
}

func NewLRU(opt *utils.Options) (*LRU, error) {
	m, err := hash.New[string, list.Iterator[entry]](opt)
	if err != nil {
		return nil, err
	}
	return &LRU{
		m:        m,
		list:     list.NewWithAllocator[entry](list.NewArenaWithOptions[entry](opt)),
		capacity: opt.CacheCapacity,
	}, nil
}

func (lru *LRU) Get(key string) interface{} {
	it, err := lru.m.Get(key)
	if err != nil {
		return nil
	}
	lru.list.Splice(lru.list.Begin(), lru.list, it)
	return it.Ref().value
}

func (lru *LRU) Put(key string, value interface{}) {
	if it, err := lru.m.Get(key); err == nil {
		it.Ref().value = value
		lru.list.Splice(lru.list.Begin(), lru.list, it)
		return
	}
	if lru.list.Len() == lru.capacity {
		victim := lru.list.Back().key
		lru.list.PopBack()
		lru.m.Erase(victim)
		logrus.WithField("key", victim).Debug("lru evict")
	}
	lru.list.PushFront(entry{key: key, value: value})
	lru.m.Put(key, lru.list.Begin())
}

func (lru *LRU) Remove(key string) bool {
	it, err := lru.m.Get(key)
	if err != nil {
		return false
	}
	lru.list.Erase(it)
	lru.m.Erase(key)
	return true
}

func (lru *LRU) Len() int {
	return lru.list.Len()
}

// Keys returns the keys from most to least recently used.
func (lru *LRU) Keys() []string {
	keys := make([]string, 0, lru.list.Len())
	lru.list.Each(func(e *entry) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}
