// Package domain contains application usecases orchestrating the core
// collaboration logic.
package domain

import (
	"context"
	"time"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/identity"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/repository"

	"go.uber.org/zap"
)

// Dispatcher enqueues a notification without blocking the caller.
type Dispatcher interface {
	Dispatch(address, subject, body string)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx        context.Context
	log        *zap.SugaredLogger
	repo       repository.Repository
	ident      identity.Lookup
	dispatcher Dispatcher
	timeout    time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	ident identity.Lookup,
	dispatcher Dispatcher,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:        ctx,
		log:        log,
		repo:       repo,
		ident:      ident,
		dispatcher: dispatcher,
		timeout:    timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
