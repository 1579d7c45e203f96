package domain

import "context"

// ServicePort is consumed by handlers, the reconcile worker, and other modules
type ServicePort interface {
	Evaluate(ctx context.Context, userID string) (Evaluation, error)
	Reconcile(ctx context.Context, userID string) (ReconcileResult, error)
	History(ctx context.Context, userID string) ([]HistoryEntry, error)
	Series(ctx context.Context, userID string) (Series, error)
}
