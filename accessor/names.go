package accessor

import (
	"strconv"
	"sync/atomic"
)

const (
	DefaultOwner = "accessor"
	nameInfix    = "$VariableAccessor$$"
)

// ids is shared by every Stem in the process, so names never repeat
// even across synthesizers generating concurrently.
var ids atomic.Uint64

// Stem hands out accessor names of the form "<owner>$VariableAccessor$$<id>".
type Stem struct {
	stem string
}

// NewStem creates a Stem for the owner, DefaultOwner when empty.
func NewStem(owner string) Stem {
	if owner == "" {
		owner = DefaultOwner
	}

	return Stem{stem: owner + nameInfix}
}

// Next returns a fresh name and the id it carries.
func (s Stem) Next() (string, uint64) {
	id := ids.Add(1) - 1
	return s.stem + strconv.FormatUint(id, 10), id
}
