package module

import (
	"context"

	"devgate/internal/services/progression/domain"
	progressionsvc "devgate/internal/services/progression/service"
)

// OutPorts exposes the progression service to other modules and workers
type OutPorts struct {
	Progression domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptProgressionPort struct{ svc progressionsvc.Service }

// Evaluate computes the level live metrics earn
func (a adaptProgressionPort) Evaluate(ctx context.Context, userID string) (domain.Evaluation, error) {
	return a.svc.Evaluate(ctx, userID)
}

// Reconcile pushes the stored level up to the computed one
func (a adaptProgressionPort) Reconcile(ctx context.Context, userID string) (domain.ReconcileResult, error) {
	return a.svc.Reconcile(ctx, userID)
}

// History returns the ordered level history
func (a adaptProgressionPort) History(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	return a.svc.History(ctx, userID)
}

// Series projects history into chart labels and data
func (a adaptProgressionPort) Series(ctx context.Context, userID string) (domain.Series, error) {
	return a.svc.Series(ctx, userID)
}
