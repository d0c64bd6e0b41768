package usecase

import (
	"context"
	"time"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/identity"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/repository"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	RequirementUsecaseInterface
	MessageUsecaseInterface
	CommentUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, ident identity.Lookup, dispatcher domain.Dispatcher, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, ident, dispatcher, timeout)
}
