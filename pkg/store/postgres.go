package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hadesxkore/bhss-distribution/pkg/distribution/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS distribution_batches (
	id uuid PRIMARY KEY,
	commodity text NOT NULL,
	bhss_kitchen_name text NOT NULL,
	sheet_name text NOT NULL DEFAULT '',
	source_file_name text NOT NULL DEFAULT '',
	header_total double precision,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS distribution_batches_commodity_idx
	ON distribution_batches (commodity, created_at DESC);

CREATE TABLE IF NOT EXISTS distribution_rows (
	batch_id uuid NOT NULL REFERENCES distribution_batches (id) ON DELETE CASCADE,
	row_id text NOT NULL,
	pos integer NOT NULL,
	municipality text NOT NULL,
	school text NOT NULL,
	quantities jsonb NOT NULL,
	PRIMARY KEY (batch_id, row_id)
);
`

// Postgres is a Store backed by PostgreSQL. Batch replacement happens in
// one transaction, so LatestBatch always observes a complete save.
type Postgres struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// OpenPostgres connects to the database at dsn and verifies the
// connection.
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}, nil
}

// Migrate creates the schema when it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SaveBatch replaces the commodity's batch in one transaction: prior
// batches for the commodity are dropped, then the new batch and its rows
// are inserted.
func (p *Postgres) SaveBatch(ctx context.Context, b *models.Batch) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	del := p.sb.Delete("distribution_batches").Where(sq.Eq{"commodity": b.Commodity})
	if err := p.exec(ctx, tx, del); err != nil {
		return fmt.Errorf("drop previous batch: %w", err)
	}

	ins := p.sb.Insert("distribution_batches").
		Columns("id", "commodity", "bhss_kitchen_name", "sheet_name", "source_file_name", "header_total", "created_at").
		Values(b.ID, b.Commodity, b.BHSSKitchenName, b.SheetName, b.SourceFileName, b.HeaderTotal, b.CreatedAt)
	if err := p.exec(ctx, tx, ins); err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	if len(b.Items) > 0 {
		rows := p.sb.Insert("distribution_rows").
			Columns("batch_id", "row_id", "pos", "municipality", "school", "quantities")
		for i, r := range b.Items {
			quantities, err := json.Marshal(r.Quantities)
			if err != nil {
				return fmt.Errorf("encode quantities: %w", err)
			}
			rows = rows.Values(b.ID, r.ID, i, r.Municipality, r.School, string(quantities))
		}
		if err := p.exec(ctx, tx, rows); err != nil {
			return fmt.Errorf("insert rows: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// LatestBatch returns the commodity's most recently saved batch with its
// rows in sheet order.
func (p *Postgres) LatestBatch(ctx context.Context, commodity string) (*models.Batch, error) {
	q, args, err := p.sb.Select("id", "commodity", "bhss_kitchen_name", "sheet_name", "source_file_name", "header_total", "created_at").
		From("distribution_batches").
		Where(sq.Eq{"commodity": commodity}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var b models.Batch
	row := p.pool.QueryRow(ctx, q, args...)
	if err := row.Scan(&b.ID, &b.Commodity, &b.BHSSKitchenName, &b.SheetName, &b.SourceFileName, &b.HeaderTotal, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBatchNotFound
		}
		return nil, err
	}

	items, err := p.batchRows(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	b.Items = items
	return &b, nil
}

func (p *Postgres) batchRows(ctx context.Context, batchID string) ([]models.Row, error) {
	q, args, err := p.sb.Select("row_id", "municipality", "school", "quantities").
		From("distribution_rows").
		Where(sq.Eq{"batch_id": batchID}).
		OrderBy("pos").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Row
	for rows.Next() {
		var r models.Row
		var quantities []byte
		if err := rows.Scan(&r.ID, &r.Municipality, &r.School, &quantities); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(quantities, &r.Quantities); err != nil {
			return nil, fmt.Errorf("decode quantities: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// UpdateRow sets one quantity field of one row in the commodity's latest
// batch.
func (p *Postgres) UpdateRow(ctx context.Context, commodity, rowID, field string, value float64) error {
	batchID, err := p.latestBatchID(ctx, commodity)
	if err != nil {
		return err
	}

	q, args, err := p.sb.Update("distribution_rows").
		Set("quantities", sq.Expr("jsonb_set(quantities, ARRAY[?], to_jsonb(?::double precision), true)", field, value)).
		Where(sq.Eq{"batch_id": batchID, "row_id": rowID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := p.pool.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRowNotFound
	}
	return nil
}

func (p *Postgres) latestBatchID(ctx context.Context, commodity string) (string, error) {
	q, args, err := p.sb.Select("id").
		From("distribution_batches").
		Where(sq.Eq{"commodity": commodity}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}

	var id string
	if err := p.pool.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrBatchNotFound
		}
		return "", err
	}
	return id, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) exec(ctx context.Context, tx pgx.Tx, b sq.Sqlizer) error {
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, q, args...)
	return err
}
