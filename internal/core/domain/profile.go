package domain

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Role gates which dashboard a principal may view.
type Role string

const (
	RolePersonal   Role = "user"
	RoleCompany    Role = "company"
	RoleAdmin      Role = "admin"
	RoleUnassigned Role = "none"
)

// RoleFromString maps a stored role value onto a Role. Unknown values map
// to RoleUnassigned rather than failing: an unrecognized role is a state,
// not an error.
func RoleFromString(s string) Role {
	switch Role(s) {
	case RolePersonal, RoleCompany, RoleAdmin:
		return Role(s)
	default:
		return RoleUnassigned
	}
}

// Account is a credential record as tracked by the auth layer. It carries
// no application data beyond identity.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

const referralAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewReferralCode generates the 8-character lowercase base36 code every
// profile carries from sign-up on.
func NewReferralCode() string {
	code := make([]byte, 8)
	for i := range code {
		code[i] = referralAlphabet[rand.Intn(len(referralAlphabet))]
	}
	return string(code)
}

// Profile extends an account with role and financial fields.
// Monetary amounts are stored in integer cents.
type Profile struct {
	ID                 uuid.UUID
	Email              string
	Role               Role
	Name               string
	Balance            int64
	CampaignBudget     int64
	ReferralCode       string
	ReferredUsersCount int
	CreatedAt          time.Time
}
