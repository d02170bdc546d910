package utils

import (
	"SimpleList/utils/errs"

	"github.com/pkg/errors"
)

// Options to control the behavior of the containers built on list.
type Options struct {
	BucketCount   int     // initial number of buckets of a hash.Map
	MaxLoadFactor float64 // the load factor that triggers a rehash

	ArenaBlockSize int // the number of nodes an Arena carves per block
	ArenaMaxNodes  int // upper bound of live nodes of an Arena, 0 means unbounded

	CacheCapacity int // the number of entries an LRU keeps
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		BucketCount:    8,
		MaxLoadFactor:  1.0,
		ArenaBlockSize: 64,
		ArenaMaxNodes:  0,
		CacheCapacity:  128,
	}
}

// Validate reports the first option outside of its domain.
func (opt *Options) Validate() error {
	switch {
	case opt.BucketCount < 1:
		return errors.Wrapf(errs.ErrInvalidOptions, "bucket count %d", opt.BucketCount)
	case opt.MaxLoadFactor <= 0:
		return errors.Wrapf(errs.ErrInvalidOptions, "max load factor %v", opt.MaxLoadFactor)
	case opt.ArenaBlockSize < 1:
		return errors.Wrapf(errs.ErrInvalidOptions, "arena block size %d", opt.ArenaBlockSize)
	case opt.ArenaMaxNodes < 0:
		return errors.Wrapf(errs.ErrInvalidOptions, "arena max nodes %d", opt.ArenaMaxNodes)
	case opt.CacheCapacity < 1:
		return errors.Wrapf(errs.ErrInvalidOptions, "cache capacity %d", opt.CacheCapacity)
	}
	return nil
}
