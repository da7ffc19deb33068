package mapper

import userdomain "github.com/Apurer/user-order-services/internal/domains/users/domain"

// User is the JSON payload exchanged on /api/users.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ToDomainUser converts a transport user to its domain counterpart.
func ToDomainUser(model User) *userdomain.User {
	return userdomain.NewUser(model.ID, model.Username, model.Email, model.FullName)
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

// FromDomainUsers converts a slice of domain users to transport representation.
func FromDomainUsers(users []*userdomain.User) []User {
	result := make([]User, 0, len(users))
	for _, user := range users {
		result = append(result, FromDomainUser(user))
	}
	return result
}
