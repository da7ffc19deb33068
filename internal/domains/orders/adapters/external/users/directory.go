package users

import (
	"context"

	userclient "github.com/Apurer/user-order-services/internal/clients/http/users"
	"github.com/Apurer/user-order-services/internal/domains/orders/domain"
	"github.com/Apurer/user-order-services/internal/domains/orders/ports"
	"github.com/Apurer/user-order-services/internal/shared/option"
)

// Fetcher is the subset of the user registry client the directory relies on.
type Fetcher interface {
	FetchUser(ctx context.Context, userID int64) option.Option[userclient.User]
}

// Directory adapts the user registry client to the order domain.
type Directory struct {
	client Fetcher
}

func NewDirectory(client Fetcher) *Directory {
	return &Directory{client: client}
}

func (d *Directory) FetchUser(ctx context.Context, userID int64) option.Option[domain.UserSnapshot] {
	return option.Map(d.client.FetchUser(ctx, userID), func(u userclient.User) domain.UserSnapshot {
		return domain.UserSnapshot{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			FullName: u.FullName,
		}
	})
}

var _ ports.UserDirectory = (*Directory)(nil)
