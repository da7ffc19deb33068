package domain

import "github.com/Apurer/user-order-services/internal/shared/option"

// UserSnapshot is the read-only view of a user fetched from the user registry.
type UserSnapshot struct {
	ID       int64
	Username string
	Email    string
	FullName string
}

// OrderWithUser pairs an order with the user it references, when that user could be fetched.
type OrderWithUser struct {
	Order *Order
	User  option.Option[UserSnapshot]
}
