package habit

import (
	"context"
	"time"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (MutationOutput, error)
	Detail(ctx context.Context, id string) (View, error)
	List(ctx context.Context) (ListOutput, error)
	Refresh(ctx context.Context) (ListOutput, error)
	UpdatePolicy(ctx context.Context, input UpdatePolicyInput) (MutationOutput, error)
	Delete(ctx context.Context, id string) error

	ToggleCompletion(ctx context.Context, id string) (MutationOutput, error)

	// ResetDue clears every habit whose reset boundary is now. The clear is
	// local only and returns how many habits were cleared.
	ResetDue(ctx context.Context, now time.Time) int
}
