package notify

import "context"

// UseCase is the user-visible notification feed.
type UseCase interface {
	Push(ctx context.Context, input PushInput) Notification
	ReportRollback(ctx context.Context, entity, kind string, reason error)
	List(ctx context.Context) ListOutput
	Dismiss(ctx context.Context, id string) error
}
