package usecase

import (
	"boxmarket/pkg/apperr"
	"boxmarket/services/notification/internal/entity"
)

// requireRole is the authorization guard every restricted operation goes
// through. Role checks never live inline in handlers.
func requireRole(p entity.Principal, message string, allowed ...entity.Role) error {
	if p.Is(allowed...) {
		return nil
	}
	return apperr.Forbidden(message)
}
