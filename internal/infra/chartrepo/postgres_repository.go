package chartrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/soulmatch/internal/domain/astrology"
)

const schema = `
CREATE TABLE IF NOT EXISTS charts (
	id             TEXT PRIMARY KEY,
	owner_id       BIGINT NOT NULL,
	label          TEXT NOT NULL DEFAULT '',
	birth          JSONB NOT NULL,
	horoscope      JSONB NOT NULL,
	engine_version TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS charts_owner_created_idx ON charts (owner_id, created_at DESC);
`

const chartColumns = `id, owner_id, label, birth, horoscope, engine_version, created_at, updated_at`

// PostgresRepository persists charts in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the charts table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure charts schema: %w", err)
	}
	return nil
}

// Create inserts a new chart row.
func (r *PostgresRepository) Create(ctx context.Context, record astrology.ChartRecord) (astrology.ChartRecord, error) {
	birth, horoscope, err := encodeChart(record)
	if err != nil {
		return astrology.ChartRecord{}, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO charts (id, owner_id, label, birth, horoscope, engine_version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+chartColumns,
		record.ID, record.OwnerID, record.Label, birth, horoscope, record.EngineVersion, record.CreatedAt, record.UpdatedAt)
	return scanChart(row)
}

// Get fetches a chart by id, scoped to its owner.
func (r *PostgresRepository) Get(ctx context.Context, ownerID int64, id string) (astrology.ChartRecord, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+chartColumns+`
		FROM charts
		WHERE owner_id = $1 AND id = $2
		LIMIT 1
	`, ownerID, id)
	if err != nil {
		return astrology.ChartRecord{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return astrology.ChartRecord{}, false, rows.Err()
	}
	record, err := scanChart(rows)
	if err != nil {
		return astrology.ChartRecord{}, false, err
	}
	return record, true, rows.Err()
}

// ListByOwner returns the owner's charts, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]astrology.ChartRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+chartColumns+`
		FROM charts
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]astrology.ChartRecord, 0)
	for rows.Next() {
		record, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

// Update rewrites the stored horoscope of a chart.
func (r *PostgresRepository) Update(ctx context.Context, record astrology.ChartRecord) (astrology.ChartRecord, error) {
	_, horoscope, err := encodeChart(record)
	if err != nil {
		return astrology.ChartRecord{}, err
	}
	rows, err := r.pool.Query(ctx, `
		UPDATE charts
		SET label = $3, horoscope = $4, engine_version = $5, updated_at = $6
		WHERE owner_id = $1 AND id = $2
		RETURNING `+chartColumns,
		record.OwnerID, record.ID, record.Label, horoscope, record.EngineVersion, record.UpdatedAt)
	if err != nil {
		return astrology.ChartRecord{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return astrology.ChartRecord{}, err
		}
		return astrology.ChartRecord{}, astrology.ErrChartNotFound
	}
	updated, err := scanChart(rows)
	if err != nil {
		return astrology.ChartRecord{}, err
	}
	return updated, rows.Err()
}

// Delete removes a chart owned by ownerID.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID int64, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM charts WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return astrology.ErrChartNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChart(row rowScanner) (astrology.ChartRecord, error) {
	var (
		record           astrology.ChartRecord
		birth, horoscope []byte
		created, updated time.Time
	)
	if err := row.Scan(&record.ID, &record.OwnerID, &record.Label, &birth, &horoscope, &record.EngineVersion, &created, &updated); err != nil {
		return astrology.ChartRecord{}, err
	}
	if err := json.Unmarshal(birth, &record.Birth); err != nil {
		return astrology.ChartRecord{}, fmt.Errorf("decode birth: %w", err)
	}
	if err := json.Unmarshal(horoscope, &record.Horoscope); err != nil {
		return astrology.ChartRecord{}, fmt.Errorf("decode horoscope: %w", err)
	}
	record.CreatedAt = created.UTC()
	record.UpdatedAt = updated.UTC()
	return record, nil
}

func encodeChart(record astrology.ChartRecord) ([]byte, []byte, error) {
	birth, err := json.Marshal(record.Birth)
	if err != nil {
		return nil, nil, fmt.Errorf("encode birth: %w", err)
	}
	horoscope, err := json.Marshal(record.Horoscope)
	if err != nil {
		return nil, nil, fmt.Errorf("encode horoscope: %w", err)
	}
	return birth, horoscope, nil
}

var _ astrology.ChartRepository = (*PostgresRepository)(nil)
