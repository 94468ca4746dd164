package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/freshdairy-checkout/internal/core/domain"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/ports"
	"github.com/DanielPopoola/freshdairy-checkout/internal/core/signature"
)

type VerificationService struct {
	secret string
	ledger ports.OrderLedger
	logger *slog.Logger
	now    func() time.Time
}

func NewVerificationService(secret string, ledger ports.OrderLedger, logger *slog.Logger) *VerificationService {
	return &VerificationService{
		secret: secret,
		ledger: ledger,
		logger: logger,
		now:    time.Now,
	}
}

// Verify checks the signature returned by the checkout widget. A mismatch is
// not an error: it yields a result with Success false.
func (s *VerificationService) Verify(ctx context.Context, req domain.VerificationRequest) (*domain.VerificationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ok := signature.Verify(req.OrderID, req.PaymentID, req.Signature, s.secret)

	if err := s.ledger.RecordVerification(ctx, domain.NewVerificationRecord(&req, ok, s.now())); err != nil {
		s.logger.Warn("failed to record verification",
			"order_id", req.OrderID,
			"error", err)
	}

	if !ok {
		s.logger.Warn("payment signature mismatch",
			"order_id", req.OrderID,
			"payment_id", req.PaymentID)
		return &domain.VerificationResult{Success: false}, nil
	}

	s.logger.Info("payment verified",
		"order_id", req.OrderID,
		"payment_id", req.PaymentID)

	return &domain.VerificationResult{Success: true}, nil
}
