package repository

import "context"

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewChildRepository() ChildRepository
	NewInvitationRepository() InvitationRepository
}

// TransactionManager runs multi-step persistence work atomically.
type TransactionManager interface {
	// Execute runs fn inside a single database transaction. Repositories
	// obtained from the factory see and mutate uncommitted state; any error
	// from fn rolls the whole transaction back.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
