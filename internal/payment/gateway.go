package payment

import (
	"context"

	"github.com/google/uuid"

	"server/internal/money"
)

// CaptureRequest describes the funds to capture for one donation.
type CaptureRequest struct {
	CampaignID string
	DonorID    string
	Amount     money.Amount
}

// CaptureResult is the processor's acknowledgement. Reference is the
// external payment id the ledger uses as its idempotency key.
type CaptureResult struct {
	Reference string
}

// Gateway captures funds for a donation. Real capture is delegated to an
// external processor; this service only records outcomes.
type Gateway interface {
	Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error)
}

// StubGateway always succeeds with a generated reference. It stands in for
// the external processor in development and tests.
type StubGateway struct{}

func (StubGateway) Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error) {
	return CaptureResult{Reference: "demo_" + uuid.NewString()}, nil
}

var _ Gateway = StubGateway{}
