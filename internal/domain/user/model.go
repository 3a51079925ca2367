package user

import "time"

// Role grants access levels to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Roles lists every valid role.
var Roles = []Role{RoleUser, RoleAdmin}

// User is an externally authenticated account that owns all business data.
type User struct {
	ID           int64     `json:"id"`
	OpenID       string    `json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	LoginMethod  *string   `json:"loginMethod"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}

// Upsert is the resolved write applied by the repository. Nil profile
// fields are left untouched on update; Role is only written on update when
// OverwriteRole is set.
type Upsert struct {
	OpenID        string
	Name          *string
	Email         *string
	LoginMethod   *string
	Role          Role
	OverwriteRole bool
	SignedInAt    time.Time
}
