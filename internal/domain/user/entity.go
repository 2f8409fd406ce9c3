package user

import (
	"time"

	"marketplace-core/internal/domain/reputation"

	"github.com/google/uuid"
)

// User mirrors the identity owned by the external auth service plus the visible trust score.
type User struct {
	id          uuid.UUID
	email       Email
	displayName DisplayName
	role        Role
	trustScore  *float64
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser returns the user together with its empty reputation aggregate; both must be persisted
// in the same transaction.
func NewUser(id uuid.UUID, email Email, displayName DisplayName, role Role, now time.Time) (*User, *reputation.Stats) {
	if id == uuid.Nil {
		id = uuid.New()
	}
	u := &User{
		id:          id,
		email:       email,
		displayName: displayName,
		role:        role,
		createdAt:   now,
		updatedAt:   now,
	}
	return u, reputation.NewStats(id, now)
}

func ReconstructUser(id uuid.UUID, email Email, displayName DisplayName, role Role, trustScore *float64, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		role:        role,
		trustScore:  trustScore,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) Role() Role               { return u.role }
func (u *User) TrustScore() *float64     { return u.trustScore }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
