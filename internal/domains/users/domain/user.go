package domain

// User is a registered account in the user registry.
type User struct {
	ID       int64
	Username string
	Email    string
	FullName string
}

// NewUser builds a user with the given profile fields.
func NewUser(id int64, username, email, fullName string) *User {
	user := &User{ID: id}
	user.UpdateProfile(username, email, fullName)
	return user
}

// UpdateProfile overwrites every profile field verbatim, including with empty values.
func (u *User) UpdateProfile(username, email, fullName string) {
	u.Username = username
	u.Email = email
	u.FullName = fullName
}

// SampleUsers returns the rows every fresh user store starts with.
func SampleUsers() []*User {
	return []*User{
		NewUser(1, "john_doe", "john@example.com", "John Doe"),
		NewUser(2, "jane_smith", "jane@example.com", "Jane Smith"),
		NewUser(3, "bob_wilson", "bob@example.com", "Bob Wilson"),
	}
}
