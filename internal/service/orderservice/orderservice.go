package orderservice

import (
	"context"
	"errors"
	"time"

	"github.com/daikoshop/adminapi/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, order *domain.Order) error
	Scrub(ctx context.Context, id int, transferCode, authPassword string) error
}

// Dispatcher delivers a message to the customer's chat. Best effort: the
// lifecycle never blocks on it and never retries.
type Dispatcher interface {
	Notify(ctx context.Context, customerID, message string) error
}

const (
	// PendingStatus accepted, waiting to be worked on;
	PendingStatus string = "pending"
	// InProgressStatus a fulfiller is working the order;
	InProgressStatus string = "in_progress"
	// CompletedStatus handoff finished, terminal.
	CompletedStatus string = "completed"
)

const completedMessage = "ご注文の対応が完了しました。ご利用ありがとうございました。"

var statusRank = map[string]int{
	PendingStatus:    0,
	InProgressStatus: 1,
	CompletedStatus:  2,
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service struct {
	repo       Repo
	dispatcher Dispatcher
	strict     bool
}

// New builds the lifecycle service. dispatcher may be nil; strict enables
// rejection of backward status transitions.
func New(repo Repo, dispatcher Dispatcher, strict bool) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		strict:     strict,
	}
}

// Advance moves the order to target. Entering completed also stamps
// CompletedAt; any other target leaves a previously set CompletedAt as is.
func (s *Service) Advance(ctx context.Context, id int, target string) (*domain.Order, error) {
	targetRank, ok := statusRank[target]
	if !ok {
		return nil, ErrInvalidStatus
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		zap.L().Info("order not found", zap.Int("id", id))
		return nil, ErrOrderNotFound
	}

	if s.strict && targetRank < statusRank[order.Status] {
		zap.L().Info("backward transition rejected",
			zap.Int("id", id), zap.String("from", order.Status), zap.String("to", target))
		return nil, ErrInvalidTransition
	}

	order.Status = target
	if target == CompletedStatus {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, order); err != nil {
		zap.L().Error("can't update order status", zap.Error(err))
		return nil, err
	}

	if target == CompletedStatus && s.dispatcher != nil {
		if err := s.dispatcher.Notify(ctx, order.CustomerID, completedMessage); err != nil {
			zap.L().Warn("completion notification failed",
				zap.Int("id", id), zap.Error(err))
		}
	}

	return order, nil
}

// ScrubOrder irreversibly overwrites the handoff fields with the redaction
// sentinels. Already scrubbed orders are a no-op.
func (s *Service) ScrubOrder(ctx context.Context, id int) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		zap.L().Info("order not found", zap.Int("id", id))
		return ErrOrderNotFound
	}
	if order.Scrubbed() {
		return nil
	}

	err = s.repo.Scrub(ctx, id, domain.ScrubbedTransferCode, domain.ScrubbedAuthPassword)
	if err != nil {
		zap.L().Error("can't scrub order", zap.Error(err))
		return err
	}
	return nil
}
