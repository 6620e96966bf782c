// Package host holds the greeting entry point exposed to an embedding environment.
// The environment supplies the announce hook; nothing here talks to it directly.
package host

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrHost wraps failures raised at the host boundary
var ErrHost = errors.New("host error")

// AnnounceFunc is the host-provided notification callback
type AnnounceFunc func(message string)

// Greet announces a greeting for name through the host hook
func Greet(name string, announce AnnounceFunc) (err error) {
	if announce == nil {
		return errors.Wrap(ErrHost, "[Greet] no announce hook registered")
	}

	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrHost, "[Greet] announce hook panicked: %v", r)
		}
	}()

	announce(fmt.Sprintf("hello %s", name))
	return nil
}
