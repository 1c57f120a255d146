// Package metrics provides clock backends for ubench.
//
// Every backend documents what it measures and when its counter can
// overflow. Backends that depend on the platform return ErrUnsupported
// from their constructor when the facility is missing.
package metrics

import "errors"

// ErrUnsupported is returned when a backend cannot be used on this host.
var ErrUnsupported = errors.New("metrics: unsupported on this platform")
