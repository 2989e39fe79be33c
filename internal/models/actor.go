package models

// Actor is the authenticated identity attached to every request by the auth
// middleware. Services use it for ownership and role checks; admins bypass
// ownership everywhere.
type Actor struct {
	ID          int64
	IsAdmin     bool
	IsRecruiter bool
}

// CanMutate reports whether the actor may update or delete a row owned by ownerID.
func (a Actor) CanMutate(ownerID int64) bool {
	return a.IsAdmin || a.ID == ownerID
}
