package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Repository produces the aggregate snapshot from the primary store.
type Repository interface {
	Snapshot(ctx context.Context) (StatsSnapshot, error)
}

// PGRepository implements Repository backed by PostgreSQL. The component
// counts are independent, so they run concurrently; any single failure fails
// the whole snapshot and hands control to the fallback.
type PGRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool, now: time.Now}
}

func (r *PGRepository) WithClock(now func() time.Time) *PGRepository {
	r.now = now
	return r
}

// Snapshot gathers all dashboard counts within one errgroup; the first
// failing query cancels the rest.
func (r *PGRepository) Snapshot(ctx context.Context) (StatsSnapshot, error) {
	snap := StatsSnapshot{
		SpeciesByZone:   map[string]int{},
		SequencesByType: map[string]int{},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM species`).Scan(&snap.TotalSpecies)
	})
	g.Go(func() error {
		return r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genetic_sequences`).Scan(&snap.TotalSequences)
	})
	g.Go(func() error {
		return r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM species WHERE conservation_status IN ('endangered', 'critically_endangered')`,
		).Scan(&snap.EndangeredSpecies)
	})
	g.Go(func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT marine_zone, COUNT(*) FROM species WHERE marine_zone <> '' GROUP BY marine_zone`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var zone string
			var count int
			if err := rows.Scan(&zone, &count); err != nil {
				return err
			}
			snap.SpeciesByZone[zone] = count
		}
		return rows.Err()
	})
	g.Go(func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT sequence_type, COUNT(*) FROM genetic_sequences WHERE sequence_type <> '' GROUP BY sequence_type`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var seqType string
			var count int
			if err := rows.Scan(&seqType, &count); err != nil {
				return err
			}
			snap.SequencesByType[seqType] = count
		}
		return rows.Err()
	})

	if err := g.Wait(); err != nil {
		return StatsSnapshot{}, fmt.Errorf("dashboard: aggregate snapshot: %w", err)
	}

	snap.LastUpdated = r.now().UTC()
	return snap, nil
}
