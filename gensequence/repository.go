package gensequence

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles data access for genetic sequence records.
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

// listColumns deliberately excludes the sequence blob; list responses must
// never carry it regardless of filters.
const listColumns = `id, organism, gene, sequence_type, description, submission_date`

func buildWhere(filters Filters) (string, []any) {
	where := []string{"1=1"}
	args := []any{}

	if filters.Organism != "" {
		where = append(where, fmt.Sprintf("organism ILIKE $%d", len(args)+1))
		args = append(args, "%"+filters.Organism+"%")
	}
	if filters.Gene != "" {
		where = append(where, fmt.Sprintf("gene ILIKE $%d", len(args)+1))
		args = append(args, "%"+filters.Gene+"%")
	}
	if filters.SequenceType != "" {
		where = append(where, fmt.Sprintf("sequence_type=$%d", len(args)+1))
		args = append(args, filters.SequenceType)
	}

	return " WHERE " + strings.Join(where, " AND "), args
}

// List returns a page of sequence records matching the filters plus the total
// match count, most recently submitted first. The count query reuses the
// identical WHERE clause.
func (r *PGRepository) List(ctx context.Context, filters Filters) ([]Record, int, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}

	whereClause, args := buildWhere(filters)

	offset := (filters.Page - 1) * filters.Limit
	query := fmt.Sprintf(`SELECT %s FROM genetic_sequences%s ORDER BY submission_date DESC LIMIT %d OFFSET %d`,
		listColumns, whereClause, filters.Limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("gensequence: query list: %w", err)
	}
	defer rows.Close()

	list := []Record{}
	for rows.Next() {
		rec, err := scanListRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("gensequence: scan record: %w", err)
		}
		list = append(list, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("gensequence: iterate records: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM genetic_sequences%s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("gensequence: count list: %w", err)
	}

	return list, total, nil
}

// Create inserts a new sequence record, blob included.
func (r *PGRepository) Create(ctx context.Context, rec Record) (Record, error) {
	const query = `
		INSERT INTO genetic_sequences (id, organism, gene, sequence_type, sequence, description, submission_date)
		VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7)
		RETURNING id, organism, gene, sequence_type, sequence, description, submission_date
	`

	row := r.pool.QueryRow(ctx, query,
		rec.ID,
		rec.Organism,
		rec.Gene,
		rec.SequenceType,
		rec.Sequence,
		rec.Description,
		rec.SubmissionDate,
	)

	var created Record
	err := row.Scan(
		&created.ID,
		&created.Organism,
		&created.Gene,
		&created.SequenceType,
		&created.Sequence,
		&created.Description,
		&created.SubmissionDate,
	)
	if err != nil {
		return Record{}, fmt.Errorf("gensequence: create: %w", err)
	}
	return created, nil
}

func scanListRecord(row pgx.Row) (Record, error) {
	var rec Record
	err := row.Scan(
		&rec.ID,
		&rec.Organism,
		&rec.Gene,
		&rec.SequenceType,
		&rec.Description,
		&rec.SubmissionDate,
	)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}
