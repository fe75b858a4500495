package species

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles data access for species records.
type Repository interface {
	List(ctx context.Context, filters Filters) ([]Record, int, error)
	Create(ctx context.Context, rec Record) (Record, error)
}

// PGRepository implements Repository backed by PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const recordColumns = `id, scientific_name, common_name, genus, family, marine_zone, conservation_status, description, last_updated`

// buildWhere compiles the filter descriptor into a WHERE clause with
// positional args. The page query and the count query both use this exact
// clause so the two cannot drift. A non-empty search is the entire
// predicate: it ORs across the four name fields and is not combined with
// the per-field filters.
func buildWhere(filters Filters) (string, []any) {
	if filters.Search != "" {
		clause := " WHERE (scientific_name ILIKE $1 OR common_name ILIKE $1 OR genus ILIKE $1 OR family ILIKE $1)"
		return clause, []any{"%" + filters.Search + "%"}
	}

	where := []string{"1=1"}
	args := []any{}

	if filters.Genus != "" {
		where = append(where, fmt.Sprintf("genus ILIKE $%d", len(args)+1))
		args = append(args, "%"+filters.Genus+"%")
	}
	if filters.Family != "" {
		where = append(where, fmt.Sprintf("family ILIKE $%d", len(args)+1))
		args = append(args, "%"+filters.Family+"%")
	}
	if filters.MarineZone != "" {
		where = append(where, fmt.Sprintf("marine_zone=$%d", len(args)+1))
		args = append(args, filters.MarineZone)
	}
	if filters.ConservationStatus != "" {
		where = append(where, fmt.Sprintf("conservation_status=$%d", len(args)+1))
		args = append(args, filters.ConservationStatus)
	}

	return " WHERE " + strings.Join(where, " AND "), args
}

// List returns a page of species matching the filters plus the total match
// count, most recently updated first.
func (r *PGRepository) List(ctx context.Context, filters Filters) ([]Record, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}

	whereClause, args := buildWhere(filters)

	offset := (filters.Page - 1) * filters.Limit
	query := fmt.Sprintf(`SELECT %s FROM species%s ORDER BY last_updated DESC LIMIT %d OFFSET %d`,
		recordColumns, whereClause, filters.Limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("species: query list: %w", err)
	}
	defer rows.Close()

	list := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("species: scan record: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("species: iterate records: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM species%s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("species: count list: %w", err)
	}

	return list, total, nil
}

// Create inserts a new species record.
func (r *PGRepository) Create(ctx context.Context, rec Record) (Record, error) {
	const query = `
		INSERT INTO species (id, scientific_name, common_name, genus, family, marine_zone, conservation_status, description, last_updated)
		VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + recordColumns

	row := r.pool.QueryRow(ctx, query,
		rec.ID,
		rec.ScientificName,
		rec.CommonName,
		rec.Genus,
		rec.Family,
		rec.MarineZone,
		rec.ConservationStatus,
		rec.Description,
		rec.LastUpdated,
	)

	created, err := scanRecord(row)
	if err != nil {
		return Record{}, fmt.Errorf("species: create: %w", err)
	}
	return created, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var (
		rec         Record
		lastUpdated time.Time
	)
	err := row.Scan(
		&rec.ID,
		&rec.ScientificName,
		&rec.CommonName,
		&rec.Genus,
		&rec.Family,
		&rec.MarineZone,
		&rec.ConservationStatus,
		&rec.Description,
		&lastUpdated,
	)
	if err != nil {
		return Record{}, err
	}
	rec.LastUpdated = lastUpdated
	return rec, nil
}
