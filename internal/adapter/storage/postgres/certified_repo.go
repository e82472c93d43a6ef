package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"receipt-certifier/internal/core/domain"
	"receipt-certifier/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// CertifiedRepo implements ports.CertifiedReceiptSource over the
// certified_receipts table.
type CertifiedRepo struct {
	pool Pool
}

// NewCertifiedRepo creates a new CertifiedRepo.
func NewCertifiedRepo(pool Pool) *CertifiedRepo {
	return &CertifiedRepo{pool: pool}
}

const selectCertified = `SELECT receipt_id, merchant, receipt_date, receipt_time, currency,
		subtotal::text, tax::text, total::text, line_items
		FROM certified_receipts ORDER BY receipt_id`

// LoadCertified reads every certified receipt keyed by receipt id.
func (r *CertifiedRepo) LoadCertified(ctx context.Context) (map[string]domain.ReceiptRecord, error) {
	rows, err := r.pool.Query(ctx, selectCertified)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("query certified receipts: %w", err))
	}
	defer rows.Close()

	out := make(map[string]domain.ReceiptRecord)
	for rows.Next() {
		var (
			id                   string
			rec                  domain.ReceiptRecord
			receiptTime          *string
			subtotal, tax, total *string
			lineItems            []byte
		)
		if err := rows.Scan(
			&id, &rec.Merchant, &rec.Date, &receiptTime, &rec.Currency,
			&subtotal, &tax, &total, &lineItems,
		); err != nil {
			return nil, fmt.Errorf("scan certified receipt: %w", err)
		}

		if receiptTime != nil {
			rec.Time = *receiptTime
		}
		rec.Subtotal = amountFromColumn(subtotal)
		rec.Tax = amountFromColumn(tax)
		rec.Total = amountFromColumn(total)

		if len(lineItems) > 0 {
			if err := json.Unmarshal(lineItems, &rec.LineItems); err != nil {
				return nil, fmt.Errorf("decode line items of %s: %w", id, err)
			}
			if len(rec.LineItems) == 0 {
				rec.LineItems = nil
			}
		}
		out[id] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("iterate certified receipts: %w", err))
	}
	return out, nil
}

const upsertCertified = `INSERT INTO certified_receipts
		(receipt_id, merchant, receipt_date, receipt_time, currency, subtotal, tax, total, line_items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (receipt_id) DO UPDATE SET
		merchant = EXCLUDED.merchant, receipt_date = EXCLUDED.receipt_date,
		receipt_time = EXCLUDED.receipt_time, currency = EXCLUDED.currency,
		subtotal = EXCLUDED.subtotal, tax = EXCLUDED.tax, total = EXCLUDED.total,
		line_items = EXCLUDED.line_items`

// SaveAll upserts receipts in one transaction, in receipt id order.
func (r *CertifiedRepo) SaveAll(ctx context.Context, receipts map[string]domain.ReceiptRecord) error {
	ids := make([]string, 0, len(receipts))
	for id := range receipts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin certified upsert: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, id := range ids {
		if err := upsertOne(ctx, tx, id, receipts[id]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit certified upsert: %w", err)
	}
	return nil
}

func upsertOne(ctx context.Context, tx pgx.Tx, id string, rec domain.ReceiptRecord) error {
	items := rec.LineItems
	if items == nil {
		items = []domain.LineItem{}
	}
	lineItems, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode line items of %s: %w", id, err)
	}

	_, err = tx.Exec(ctx, upsertCertified,
		id, rec.Merchant, rec.Date, nullableText(rec.Time), rec.Currency,
		amountToColumn(rec.Subtotal), amountToColumn(rec.Tax), amountToColumn(rec.Total),
		lineItems,
	)
	if err != nil {
		return fmt.Errorf("upsert certified receipt %s: %w", id, err)
	}
	return nil
}

func amountFromColumn(v *string) domain.Amount {
	if v == nil {
		return domain.Amount{}
	}
	return domain.AmountOf(*v)
}

func amountToColumn(a domain.Amount) *string {
	if !a.Present() {
		return nil
	}
	raw := a.Raw()
	return &raw
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
