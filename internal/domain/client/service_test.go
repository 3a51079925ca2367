package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/domain/client"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/rpggio/tradeledger/internal/repository/mocks"
)

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ClientRepository{}

	email := "ops@acme.test"
	repo.On("Create", ctx, mock.MatchedBy(func(c *client.Client) bool {
		return c.UserID == 1 && c.Name == "Acme" && *c.Email == email && !c.CreatedAt.IsZero()
	})).Return(nil)

	svc := client.NewService(repo, nil)
	c, err := svc.Create(ctx, 1, client.CreateRequest{Name: "Acme", Email: &email})
	require.NoError(t, err)
	require.Equal(t, "Acme", c.Name)
	repo.AssertExpectations(t)
}

func TestClientService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ClientRepository{}
	svc := client.NewService(repo, nil)

	_, err := svc.Create(ctx, 1, client.CreateRequest{Name: " "})
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	bad := "acme"
	_, err = svc.Create(ctx, 1, client.CreateRequest{Name: "Acme", Email: &bad})
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClientService_UpdateReloads(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ClientRepository{}

	city := "Austin"
	repo.On("Update", ctx, int64(1), int64(5), mock.MatchedBy(func(p client.Patch) bool {
		return p.City != nil && *p.City == city && p.Name == nil
	})).Return(nil)
	repo.On("Get", ctx, int64(1), int64(5)).Return(&client.Client{ID: 5, Name: "Acme", City: &city}, nil)

	svc := client.NewService(repo, nil)
	c, err := svc.Update(ctx, 1, client.UpdateRequest{ID: 5, City: &city})
	require.NoError(t, err)
	require.Equal(t, "Austin", *c.City)
}

func TestClientService_ForeignRowsAreNotFound(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ClientRepository{}

	repo.On("Get", ctx, int64(2), int64(5)).Return(nil, repository.ErrNotFound)
	repo.On("Delete", ctx, int64(2), int64(5)).Return(repository.ErrNotFound)

	svc := client.NewService(repo, nil)
	_, err := svc.Get(ctx, 2, 5)
	require.ErrorIs(t, err, client.ErrClientNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 2, 5), client.ErrClientNotFound)
}

func TestClientService_ListUnavailable(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.ClientRepository{}
	repo.On("List", ctx, int64(1)).Return(nil, repository.ErrUnavailable)

	svc := client.NewService(repo, nil)
	_, err := svc.List(ctx, 1)
	require.ErrorIs(t, err, repository.ErrUnavailable)
	require.Equal(t, apperr.CodeUnavailable, apperr.CodeOf(err))
}
