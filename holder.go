package funcbox

import (
	"fmt"

	"github.com/cloudcmds/funcbox/internal/ring"
)

// Kind identifies the category of a subsystem that pinned a function. The
// set is open: hosts may register their own kinds with RegisterKind. Kinds
// exist to make "blocked by X" diagnostics meaningful; the cache itself only
// compares them for reporting.
type Kind int

// KindConstraint marks a holder owned by a constraint that references the
// pinned function.
var KindConstraint = RegisterKind("constraint")

var kindLabels []string

// RegisterKind adds a new holder kind with the given human-readable label
// and returns its tag. Not safe for concurrent use; register kinds during
// host initialization.
func RegisterKind(label string) Kind {
	kindLabels = append(kindLabels, label)
	return Kind(len(kindLabels) - 1)
}

// String returns the label the kind was registered with.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindLabels) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindLabels[k]
}

// Holder records that some subsystem depends on a function staying cached.
// The record is owned by the dependent subsystem; the cache only links and
// unlinks it. A Holder may be attached to at most one entry at a time, and a
// zero-value Holder is ready to be passed to Cache.Pin.
type Holder struct {
	kind Kind
	link ring.Link[*Holder]
}

// Kind returns the kind the holder was pinned with.
func (h *Holder) Kind() Kind {
	return h.kind
}

// Attached returns true if the holder is currently pinning an entry.
func (h *Holder) Attached() bool {
	return !h.link.Detached()
}
