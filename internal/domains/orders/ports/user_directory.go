package ports

import (
	"context"

	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

//go:generate mockgen -destination=portsmock/user_directory_mock.go -package=portsmock . UserDirectory

// UserDirectory looks users up in the user registry. Any failure, including
// an unreachable registry, is reported as absence.
type UserDirectory interface {
	FetchUser(ctx context.Context, userID int64) option.Option[domain.UserSnapshot]
}
