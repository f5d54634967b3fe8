package store

// Scope narrows deck and card statements to decks that live in folders
// owned by UserID. The zero Scope places no ownership restriction.
type Scope struct {
	UserID int64
}

// OwnedBy returns a Scope restricted to userID.
func OwnedBy(userID int64) Scope {
	return Scope{UserID: userID}
}

// Restricted reports whether the scope filters by owner.
func (s Scope) Restricted() bool {
	return s.UserID != 0
}
