package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePlayer    Role = "PLAYER"
	RoleParent    Role = "PARENT"
	RoleTrainer   Role = "TRAINER"
	RolePro       Role = "PRO"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

var allRoles = []Role{RolePlayer, RoleParent, RoleTrainer, RolePro, RoleModerator, RoleAdmin}

// ElevatedRoles are the roles that are only effective once an application has been approved.
var ElevatedRoles = []Role{RoleTrainer, RolePro}

func ParseRole(s string) (Role, error) {
	for _, r := range allRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsElevated reports whether the role goes through the application workflow.
func (r Role) IsElevated() bool {
	return r == RoleTrainer || r == RolePro
}

func (r Role) String() string {
	return string(r)
}

// ApplicationRecord tracks a single user's request for an elevated role.
// The role kind is not stored on the document, it is implied by the collection.
type ApplicationRecord struct {
	UserId          uuid.UUID `bson:"_id" json:"userId"`
	Role            Role      `bson:"-" json:"role"`
	Approved        bool      `bson:"approved" json:"approved"`
	RejectionReason *string   `bson:"rejectionReason" json:"rejectionReason"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsPending is true for records that have neither been approved nor rejected.
func (a *ApplicationRecord) IsPending() bool {
	return !a.Approved && a.RejectionReason == nil
}

// Player holds every role granted to a user.
// A role appears at most once in Roles.
type Player struct {
	Id    uuid.UUID `bson:"_id" json:"id"`
	Roles []Role    `bson:"roles" json:"roles"`
}

func (p *Player) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
