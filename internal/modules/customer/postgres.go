package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/emt-api/internal/platform/errs"
	"github.com/google/uuid"
)

var errOwnsStores = fmt.Errorf("%w: customer still owns stores and must stay a merchant", errs.ErrConflict)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL customer repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, user_id, phone_number, address, is_merchant)
		VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.UserID, c.PhoneNumber, c.Address, c.IsMerchant)
	return errs.FromDB(err)
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx, selectSQL+" WHERE c.id=$1", id))
	if err != nil {
		return nil, errs.FromDB(err)
	}
	return c, nil
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]*Customer, error) {
	query, args := selectSQL, []interface{}{}
	if filter.UserID != nil {
		query += " WHERE c.user_id=$1"
		args = append(args, *filter.UserID)
	}
	rows, err := r.db.QueryContext(ctx, query+" ORDER BY c.created_at", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []*Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update overwrites the mutable fields. A customer that still owns stores
// cannot drop its merchant flag.
func (r *postgresRepo) Update(ctx context.Context, c *Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers SET phone_number=$1, address=$2, is_merchant=$3
		WHERE id=$4 AND ($3 OR NOT EXISTS (SELECT 1 FROM stores WHERE customer_id=$4))`,
		c.PhoneNumber, c.Address, c.IsMerchant, c.ID)
	if err != nil {
		return errs.FromDB(err)
	}
	if err := errs.CheckAffected(res); !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id=$1)`, c.ID).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return errOwnsStores
	}
	return errs.ErrNotFound
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return errs.FromDelete(err)
	}
	return errs.CheckAffected(res)
}

const selectSQL = `
	SELECT c.id, c.user_id, c.phone_number, c.address, c.is_merchant, u.first_name, u.last_name
	FROM customers c
	JOIN users u ON u.id = c.user_id`

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanCustomer(row rowScanner) (*Customer, error) {
	c := &Customer{}
	err := row.Scan(&c.ID, &c.UserID, &c.PhoneNumber, &c.Address, &c.IsMerchant, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, err
	}
	return c, nil
}
