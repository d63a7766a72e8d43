package remote

import "context"

// Gateway is the request/response collaborator that owns persistence.
type Gateway interface {
	// Perform sends one write. A transport failure is returned as error; an
	// answered-but-unsuccessful write is reported through Result.Success.
	Perform(ctx context.Context, op Operation, entityID string, payload any) (Result, error)

	// Fetch returns the raw body for a collection (entityID empty) or a single entity.
	// Bodies are not normalized here; response shapes differ per endpoint.
	Fetch(ctx context.Context, resource Resource, entityID string) ([]byte, error)
}
