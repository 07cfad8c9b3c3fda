// Released under an MIT license. See LICENSE.

// Package datum defines the interface for all cask values.
package datum

// I (datum) is the basic unit of storage in cask.
type I interface {
	Equal(d I) bool
	Name() string
}
