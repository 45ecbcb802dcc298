package domain

import "slices"

type UserInfo struct {
	sub   string
	email string
	roles []Role
}

func NewUserInfo(sub, email string, roles []Role) (*UserInfo, error) {
	if sub == "" {
		return nil, ErrEmptySub
	}
	return &UserInfo{
		sub:   sub,
		email: email,
		roles: slices.Clone(roles),
	}, nil
}

func (u *UserInfo) Sub() string {
	return u.sub
}

func (u *UserInfo) Email() string {
	return u.email
}

func (u *UserInfo) Roles() []Role {
	return slices.Clone(u.roles)
}

func (u *UserInfo) HasRole(role Role) bool {
	return slices.Contains(u.roles, role)
}

func (u *UserInfo) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
