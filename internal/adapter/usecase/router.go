package usecase

import (
	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// ViewFor selects the screen for a resolved state. It is a pure function:
// any role outside the three privileged ones falls through to the
// unassigned notice, never to a dashboard.
func ViewFor(loading bool, user *port.ResolvedUser, role domain.Role) port.View {
	if loading {
		return port.ViewLoading
	}
	if user == nil {
		return port.ViewAuth
	}
	switch role {
	case domain.RolePersonal:
		return port.ViewPersonal
	case domain.RoleCompany:
		return port.ViewCompany
	case domain.RoleAdmin:
		return port.ViewAdmin
	default:
		return port.ViewUnassigned
	}
}
