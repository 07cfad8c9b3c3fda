// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/cask-lang/cask/internal/common/interface/datum"
)

type Stringer = fmt.Stringer

// String returns the string value for a datum, if possible.
func String(d datum.I) string {
	b, ok := d.(Stringer)
	if !ok {
		panic(d.Name() + " cannot be used in a string context")
	}

	return b.String()
}
