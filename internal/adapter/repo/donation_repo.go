package repo

import (
	"context"
	"fmt"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/money"
	"server/internal/sqlinline"
)

// DonationLedgerPG implements the append-only DonationLedger using
// PostgreSQL. The unique index on payment_ref makes Record idempotent: a
// replayed capture reports ErrDuplicatePaymentRef instead of counting twice.
type DonationLedgerPG struct {
	sql infra.SQLExecutor
}

// NewDonationLedger creates a new donation ledger over PostgreSQL.
func NewDonationLedger(sql infra.SQLExecutor) *DonationLedgerPG {
	return &DonationLedgerPG{sql: sql}
}

// Record appends a donation atomically.
func (r *DonationLedgerPG) Record(ctx context.Context, donation *domain.Donation) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertDonation,
		donation.ID,
		donation.CampaignID,
		donation.DonorID,
		int64(donation.Amount),
		donation.Message,
		donation.Anonymous,
		string(donation.Status),
		donation.PaymentRef,
		donation.CreatedAt,
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return domain.ErrDuplicatePaymentRef
		}
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

// ListByCampaign returns the campaign's donations oldest first.
func (r *DonationLedgerPG) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByCampaign, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		var amountMinor int64
		var status string
		if err := rows.Scan(
			&d.ID,
			&d.CampaignID,
			&d.DonorID,
			&amountMinor,
			&d.Message,
			&d.Anonymous,
			&status,
			&d.PaymentRef,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		d.Amount = money.Amount(amountMinor)
		d.Status = domain.DonationStatus(status)
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.DonationLedger = (*DonationLedgerPG)(nil)
