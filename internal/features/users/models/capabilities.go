package users_models

import (
	users_enums "lessonbook/internal/features/users/enums"
)

// Capabilities carries the process-wide override rights of the acting user.
// It is derived once per request from the user row and passed explicitly
// through every permission check, so policy code never reads an ambient
// role attribute.
type Capabilities struct {
	Elevated bool
}

func (u *User) Capabilities() Capabilities {
	return Capabilities{
		Elevated: u.Role == users_enums.UserRoleAdmin,
	}
}
