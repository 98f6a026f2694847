package rules

import (
	"time"

	"github.com/CePseudoBE/taxcalc/internal/domain/model"
)

// Requirement is the access level a route declares. Routes pick exactly one;
// the policy consumes it uniformly so no privileged route is left unchecked.
type Requirement int

const (
	Public Requirement = iota
	Authenticated
	Privileged
)

type DenyKind int

const (
	DenyNone DenyKind = iota
	DenyUnauthenticated
	DenyForbidden
)

// Check evaluates a route requirement against the current session.
//
// Privileged behaves like Authenticated at this edge: the role flag is only
// asserted by the backend in the current response, never cached or inferred
// locally, so the role half of a privileged check is enforced by the backend's
// own 403 on the proxied call.
func Check(requirement Requirement, s model.Session, now time.Time) DenyKind {
	switch requirement {
	case Public:
		return DenyNone
	case Authenticated, Privileged:
		if s.Anonymous() || s.Expired(now) {
			return DenyUnauthenticated
		}
		return DenyNone
	default:
		// Unknown requirements fail closed.
		return DenyUnauthenticated
	}
}

// RoleSatisfies reports whether a backend-asserted identity carries a role
// sufficient for the requirement.
func RoleSatisfies(requirement Requirement, id model.Identity) bool {
	if requirement != Privileged {
		return true
	}
	return id.IsModerator || id.IsAdmin
}
