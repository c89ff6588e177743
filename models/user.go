package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the single elevated role recognized by the portal.
const RoleAdmin = "Admin"

// User is created on first sign-in; role is set by the admin-promotion path.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the elevated role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
