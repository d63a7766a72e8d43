package goal

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Goal CRUD
	Create(ctx context.Context, input CreateInput) (MutationOutput, error)
	Detail(ctx context.Context, id string) (View, error)
	List(ctx context.Context) (ListOutput, error)
	Refresh(ctx context.Context) (ListOutput, error)
	Update(ctx context.Context, input UpdateInput) (MutationOutput, error)
	Delete(ctx context.Context, id string) error

	// Subtasks
	AddSubtask(ctx context.Context, input AddSubtaskInput) (MutationOutput, error)
	ToggleSubtask(ctx context.Context, input ToggleSubtaskInput) (MutationOutput, error)
	DeleteSubtask(ctx context.Context, input DeleteSubtaskInput) (MutationOutput, error)

	// Progress
	SetManualProgress(ctx context.Context, input SetProgressInput) (MutationOutput, error)
	ToggleMode(ctx context.Context, id string) (MutationOutput, error)
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)

	// ReconcileProgress re-derives AUTOMATIC goals whose progress drifted from
	// their subtasks and returns how many were corrected.
	ReconcileProgress(ctx context.Context) (int, error)
}
