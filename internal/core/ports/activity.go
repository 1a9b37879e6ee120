package ports

import "context"

// ActivityLogger records entity mutations for the audit trail. Calls are
// fire-and-forget from the caller's perspective: implementations must never
// block the business operation or surface delivery failures to it.
type ActivityLogger interface {
	LogCreate(ctx context.Context, entityType, id string, after any)
	LogUpdate(ctx context.Context, entityType, id string, before, after any)
	LogDelete(ctx context.Context, entityType, id string, before any)
}
