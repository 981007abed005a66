package domain_test

import (
	"testing"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanAllocate(t *testing.T) {
	admin := domain.Actor{UserID: "admin", Roles: []domain.Role{domain.RoleAdmin}}
	responsible := domain.Actor{UserID: "user_resp", Roles: []domain.Role{domain.RoleOperator}}
	customs := domain.Actor{UserID: "douane", Roles: []domain.Role{domain.RoleCustoms}}
	anonymous := domain.Actor{}

	trip := newTrip(domain.StatusDischarged)
	assert.True(t, domain.CanAllocate(admin, trip).Allowed)
	assert.True(t, domain.CanAllocate(responsible, trip).Allowed, "unlike advancing, clearance does not matter")
	assert.False(t, domain.CanAllocate(customs, trip).Allowed)

	trip.ResponsibleID = ""
	assert.False(t, domain.CanAllocate(anonymous, trip).Allowed, "empty ids never match")
}

func TestCanMoveFunds(t *testing.T) {
	tests := []struct {
		name  string
		roles []domain.Role
		want  bool
	}{
		{"admin", []domain.Role{domain.RoleAdmin}, true},
		{"treasury", []domain.Role{domain.RoleTreasury}, true},
		{"operator", []domain.Role{domain.RoleOperator}, false},
		{"customs", []domain.Role{domain.RoleCustoms}, false},
		{"no role", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := domain.CanMoveFunds(domain.Actor{UserID: "u1", Roles: tt.roles})
			assert.Equal(t, tt.want, d.Allowed, d.Reason)
		})
	}
}

func TestCanClosePayment(t *testing.T) {
	creator := domain.Actor{UserID: "usr_op", Roles: []domain.Role{domain.RoleOperator}}
	other := domain.Actor{UserID: "usr_other", Roles: []domain.Role{domain.RoleOperator}}
	treasury := domain.Actor{UserID: "usr_tr", Roles: []domain.Role{domain.RoleTreasury}}
	p := &domain.Payment{Status: domain.PaymentPending, AuditFields: domain.AuditFields{CreatedBy: creator.UserID}}

	assert.True(t, domain.CanClosePayment(creator, p, domain.PaymentCancelled).Allowed)
	assert.False(t, domain.CanClosePayment(creator, p, domain.PaymentRejected).Allowed)
	assert.False(t, domain.CanClosePayment(other, p, domain.PaymentCancelled).Allowed)
	assert.True(t, domain.CanClosePayment(treasury, p, domain.PaymentRejected).Allowed)
	assert.True(t, domain.CanClosePayment(treasury, p, domain.PaymentCancelled).Allowed)
}
