package payment

import (
	"context"
	"database/sql"

	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL payment repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Payment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments
		  (id, customer_id, merchant_name, account_number, expiration_date,
		   created_date, zip_code, security_code)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.CustomerID, p.MerchantName, p.AccountNumber, p.ExpirationDate,
		p.CreatedDate, p.ZipCode, p.SecurityCode)
	return errs.FromDB(err)
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx, selectSQL+" WHERE id=$1", id))
	if err != nil {
		return nil, errs.FromDB(err)
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	query, args := selectSQL, []interface{}{}
	if filter.CustomerID != nil {
		query += " WHERE customer_id=$1"
		args = append(args, *filter.CustomerID)
	}
	rows, err := r.db.QueryContext(ctx, query+" ORDER BY created_at", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Payment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE payments
		SET merchant_name=$1, account_number=$2, expiration_date=$3, zip_code=$4, security_code=$5
		WHERE id=$6`,
		p.MerchantName, p.AccountNumber, p.ExpirationDate, p.ZipCode, p.SecurityCode, p.ID)
	if err != nil {
		return errs.FromDB(err)
	}
	return errs.CheckAffected(res)
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return errs.FromDelete(err)
	}
	return errs.CheckAffected(res)
}

const selectSQL = `
	SELECT id, customer_id, merchant_name, account_number, expiration_date,
	       created_date, zip_code, security_code
	FROM payments`

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanPayment(row rowScanner) (*Payment, error) {
	p := &Payment{}
	err := row.Scan(&p.ID, &p.CustomerID, &p.MerchantName, &p.AccountNumber,
		&p.ExpirationDate, &p.CreatedDate, &p.ZipCode, &p.SecurityCode)
	if err != nil {
		return nil, err
	}
	return p, nil
}
