package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tourmarket/backend/internal/domain"
)

// Identity headers set by the API gateway after it authenticates the
// session. Authentication itself lives outside this service — handlers
// only translate the headers into an explicit domain.Actor.
const (
	headerUserID    = "X-User-Id"
	headerCompanyID = "X-Company-Id"
	headerUserRole  = "X-User-Role"
)

// actorFrom builds the acting user from the identity headers.
// Absent or malformed headers yield zero-valued fields; services decide
// what each operation requires of the actor.
func actorFrom(r *http.Request) domain.Actor {
	a := domain.Actor{Role: domain.Role(r.Header.Get(headerUserRole))}
	if id, err := uuid.Parse(r.Header.Get(headerUserID)); err == nil {
		a.UserID = id
	}
	if id, err := uuid.Parse(r.Header.Get(headerCompanyID)); err == nil {
		a.CompanyID = id
	}
	return a
}
