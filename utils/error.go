package utils

import (
	"log"

	"github.com/pkg/errors"
)

// AssertTrue aborts the process when b is false. It guards internal
// invariants that no caller input can break.
func AssertTrue(b bool) {
	if !b {
		log.Fatalf("%+v", errors.Errorf("Assert failed"))
	}
}
