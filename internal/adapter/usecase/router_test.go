package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

func TestViewFor(t *testing.T) {
	user := &port.ResolvedUser{}

	tests := []struct {
		name    string
		loading bool
		user    *port.ResolvedUser
		role    domain.Role
		want    port.View
	}{
		{"loading wins", true, user, domain.RoleAdmin, port.ViewLoading},
		{"no user", false, nil, domain.RoleUnassigned, port.ViewAuth},
		{"personal", false, user, domain.RolePersonal, port.ViewPersonal},
		{"company", false, user, domain.RoleCompany, port.ViewCompany},
		{"admin", false, user, domain.RoleAdmin, port.ViewAdmin},
		{"unassigned", false, user, domain.RoleUnassigned, port.ViewUnassigned},
		{"unknown role never privileged", false, user, domain.Role("root"), port.ViewUnassigned},
		{"empty role never privileged", false, user, domain.Role(""), port.ViewUnassigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ViewFor(tt.loading, tt.user, tt.role))
		})
	}
}
