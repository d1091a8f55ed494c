package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	admin := User{UserRole: RoleAdmin}
	user := User{UserRole: RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}

func TestPayoutIsPending(t *testing.T) {
	assert.True(t, (&PayoutRequest{Status: PayoutStatusPending}).IsPending())
	assert.False(t, (&PayoutRequest{Status: PayoutStatusPaid}).IsPending())
	assert.False(t, (&PayoutRequest{Status: PayoutStatusRejected}).IsPending())
}

func TestValidPayoutMethod(t *testing.T) {
	for _, m := range PayoutMethods {
		assert.True(t, ValidPayoutMethod(m), m)
	}

	assert.False(t, ValidPayoutMethod("Venmo"))
	assert.False(t, ValidPayoutMethod("bkash")) // 渠道名大小写敏感
	assert.False(t, ValidPayoutMethod(""))
}
