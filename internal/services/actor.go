package services

import "github.com/vijaydevops-git/AugConsultant-sub000/internal/models"

// Actor is the already-authenticated caller: admins see every record,
// recruiters only the ones they created.
type Actor struct {
	UserID string
	Role   models.UserRole
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// ScopeOwner is the created_by filter value for this actor, empty for
// admins (no filter).
func (a Actor) ScopeOwner() string {
	if a.IsAdmin() {
		return ""
	}
	return a.UserID
}

// CanTouch reports whether the actor may read or mutate a record owned by
// createdBy.
func (a Actor) CanTouch(createdBy string) bool {
	return a.IsAdmin() || a.UserID == createdBy
}
