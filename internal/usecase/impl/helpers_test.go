package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"musiclib/internal/domain/repository"
	mockRepo "musiclib/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newTxFactory returns a factory mock handing out the given repositories.
func newTxFactory(
	t *testing.T,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	linkRepo repository.ExternalAccountRepository,
) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	if userRepo != nil {
		factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	}
	if authRepo != nil {
		factory.EXPECT().NewAuthRepository().Return(authRepo).Maybe()
	}
	if linkRepo != nil {
		factory.EXPECT().NewExternalAccountRepository().Return(linkRepo).Maybe()
	}

	return factory
}
