package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/rpggio/tradeledger/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	notFound := apperr.New(apperr.CodeNotFound, "client not found")

	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(fmt.Errorf("getting client: %w", notFound)))
	require.Equal(t, apperr.CodeUnavailable, apperr.CodeOf(fmt.Errorf("list: %w", repository.ErrUnavailable)))
	require.Equal(t, apperr.CodeConflict, apperr.CodeOf(repository.ErrConflict))
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(repository.ErrForeignKeyViolation))
	require.Equal(t, apperr.CodeUnknown, apperr.CodeOf(errors.New("boom")))
	require.Equal(t, apperr.Code(""), apperr.CodeOf(nil))
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := apperr.Wrap(apperr.CodeUnavailable, "listing clients", repository.ErrUnavailable)

	require.ErrorIs(t, err, apperr.New(apperr.CodeUnavailable, "other"))
	require.ErrorIs(t, err, repository.ErrUnavailable)
	require.NotErrorIs(t, err, apperr.New(apperr.CodeNotFound, "x"))
	require.Equal(t, "listing clients: database not available", err.Error())
}

func TestInvalid(t *testing.T) {
	err := apperr.Invalid("email", "must be a valid address")
	require.Equal(t, "invalid email: must be a valid address", err.Error())
	require.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(err))
}
