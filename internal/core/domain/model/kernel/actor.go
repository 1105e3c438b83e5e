package kernel

import "procurement/internal/pkg/errs"

// Actor identifies who performs an operation: an internal user, a vendor
// account, or the service itself.
type Actor string

// SystemActor performs cascades triggered by the service itself, such as
// delivering a purchase order whose receipts completed it. It passes every
// ownership check.
const SystemActor Actor = "@system"

// NewActor validates that id is not empty.
func NewActor(id string) (Actor, error) {
	if id == "" {
		return "", errs.NewValueIsRequiredError("actor")
	}
	return Actor(id), nil
}

// IsSystem reports whether a is the service itself.
func (a Actor) IsSystem() bool {
	return a == SystemActor
}

// May reports whether a can change a document owned by owner.
func (a Actor) May(owner string) bool {
	return a.IsSystem() || string(a) == owner
}

// String returns the user identifier.
func (a Actor) String() string {
	return string(a)
}
