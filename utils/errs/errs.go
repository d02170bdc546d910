package errs

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEmptyList is raised by Front/Back on a list without elements.
	ErrEmptyList = errors.New("list is empty")
	// ErrIteratorEnd is raised when the past-the-end iterator is dereferenced or stepped.
	ErrIteratorEnd = errors.New("iterator is past the end")
	// ErrInvalidIterator is raised when an iterator refers to a node that was erased.
	ErrInvalidIterator = errors.New("iterator has been invalidated")
	// ErrForeignIterator is raised when an iterator of one list is handed to another.
	ErrForeignIterator = errors.New("iterator does not belong to this list")
	// ErrAllocatorMismatch is raised when a node is spliced between lists using different allocators.
	ErrAllocatorMismatch = errors.New("lists use different allocators")
	// ErrNoSpace is returned by a bounded allocator that has no node left.
	ErrNoSpace = errors.New("allocator has no space left")
	// ErrKeyNotFound is returned by lookups of absent keys.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidOptions is returned by Options.Validate.
	ErrInvalidOptions = errors.New("invalid options")
)

// Panic panics if err is not nil.
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

// CondPanic panics with err when condition holds.
func CondPanic(condition bool, err error) {
	if condition {
		Panic(err)
	}
}

// Err logs err with the caller's location and returns it unchanged.
func Err(err error) error {
	if err != nil {
		logrus.WithField("at", location(2)).Error(err)
	}
	return err
}

func location(deep int) string {
	_, file, line, ok := runtime.Caller(deep)
	if !ok {
		file = "???"
		line = 0
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
