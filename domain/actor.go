package domain

// Actor identifies who performs a mutating operation. It is supplied by
// the identity middleware for every authenticated request; the one place
// an actor may be absent (comment deletion triggered by internal cleanup)
// falls back to SystemActor instead of a nil check at each call site.
type Actor struct {
	ID    int64
	Email string
	Role  string
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// SystemActor is the well-known identity recorded when no acting user is
// available. Its ID is 0 on purpose: it can never collide with a real user.
var SystemActor = Actor{
	ID:    0,
	Email: "system@tastebook.internal",
	Role:  "system",
}

// IsSystem reports whether the actor is the system fallback identity.
func (a Actor) IsSystem() bool {
	return a.ID == SystemActor.ID && a.Role == SystemActor.Role
}

// OrSystem returns the actor pointed to by a, or SystemActor when a is nil.
func OrSystem(a *Actor) Actor {
	if a == nil {
		return SystemActor
	}
	return *a
}
