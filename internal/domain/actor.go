package domain

import "github.com/google/uuid"

// Role distinguishes the two kinds of marketplace users.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleTourCompany Role = "tourCompany"
)

// Actor identifies the user a request is performed on behalf of.
// It is built at the HTTP boundary and passed explicitly into services —
// there is no ambient current-user state anywhere in the codebase.
// CompanyID is the zero UUID for customers.
type Actor struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
	Role      Role
}

// IsCompany reports whether the actor acts for a tour company.
func (a Actor) IsCompany() bool {
	return a.Role == RoleTourCompany && a.CompanyID != uuid.Nil
}

// Owns reports whether the actor's company published the given tour.
func (a Actor) Owns(t Tour) bool {
	return a.IsCompany() && a.CompanyID == t.CompanyID
}
