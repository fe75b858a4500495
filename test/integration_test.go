package test

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"marinedata/auth"
	"marinedata/dashboard"
	"marinedata/db"
	"marinedata/gensequence"
	"marinedata/species"
	"marinedata/test/infra"
)

func dockerAvailable(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

// setupPool boots a Postgres instance (container, shared DSN, or local
// server) and applies the schema. Skips the test when nothing is available.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	var (
		pgC *infra.PGContainer
		dsn string
		err error
	)
	if dockerAvailable(ctx) {
		pgC, dsn, err = infra.StartPostgres16(ctx, "")
		if err != nil {
			t.Fatalf("start postgres container: %v", err)
		}
	} else {
		dsn, err = infra.InitLocalDatabase(ctx)
		if err != nil {
			t.Skipf("no Postgres available: %v", err)
		}
		pgC = &infra.PGContainer{}
	}
	t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

	pool, err := db.NewPool(ctx, dsn, 10*time.Second)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := db.ApplySchema(ctx, pool); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return pool
}

func TestAuthRepositoryRoundTrip(t *testing.T) {
	pool := setupPool(t)
	repo := auth.NewRepository(pool)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, auth.CreateUserParams{
		Email:        "Alice@Ocean.example",
		PasswordHash: "hash",
		Name:         "Alice Reef",
		Role:         auth.RoleResearcher,
		ResearchArea: []string{"coral"},
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if !created.IsActive {
		t.Fatal("expected new user active by default")
	}

	// Email lookup is case-insensitive.
	found, err := repo.GetUserByEmail(ctx, "alice@ocean.EXAMPLE")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected %q got %q", created.ID, found.ID)
	}

	// Uniqueness holds across casing too.
	_, err = repo.CreateUser(ctx, auth.CreateUserParams{
		Email:        "ALICE@ocean.example",
		PasswordHash: "hash2",
		Name:         "Imposter",
		Role:         auth.RoleUser,
		ResearchArea: []string{},
	})
	if !errors.Is(err, auth.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	if _, err := repo.GetUserByEmail(ctx, "nobody@ocean.example"); !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSpeciesRepositoryFilterAndCount(t *testing.T) {
	pool := setupPool(t)
	repo := species.NewRepository(pool)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := []species.Record{
		{ScientificName: "Thunnus albacares", CommonName: "Yellowfin tuna", Genus: "Thunnus", Family: "Scombridae", MarineZone: species.ZonePelagic, ConservationStatus: species.StatusLeastConcern},
		{ScientificName: "Thunnus thynnus", CommonName: "Bluefin tuna", Genus: "Thunnus", Family: "Scombridae", MarineZone: species.ZonePelagic, ConservationStatus: species.StatusEndangered},
		{ScientificName: "Amphiprion ocellaris", CommonName: "Clownfish", Genus: "Amphiprion", Family: "Pomacentridae", MarineZone: species.ZoneReef, ConservationStatus: species.StatusLeastConcern},
	}
	for i, rec := range seed {
		rec.LastUpdated = base.Add(time.Duration(i) * time.Hour)
		if _, err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("seed species: %v", err)
		}
	}

	// OR search across name fields, case-insensitive.
	items, total, err := repo.List(ctx, species.Filters{Search: "tuna"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("search tuna: expected 2/2 got %d/%d", len(items), total)
	}

	// Enumerated filters match exactly, combined with AND.
	items, total, err = repo.List(ctx, species.Filters{
		MarineZone:         species.ZonePelagic,
		ConservationStatus: species.StatusEndangered,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || items[0].ScientificName != "Thunnus thynnus" {
		t.Fatalf("enum filters: got %d items %+v", total, items)
	}

	// Recency ordering, newest first.
	items, _, err = repo.List(ctx, species.Filters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items[0].ScientificName != "Amphiprion ocellaris" {
		t.Fatalf("expected newest record first, got %q", items[0].ScientificName)
	}

	// Count and page query share the predicate.
	items, total, err = repo.List(ctx, species.Filters{Search: "tuna", Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || total != 2 {
		t.Fatalf("paged search: expected 1 item of 2 total, got %d/%d", len(items), total)
	}
}

func TestSequenceRepositoryExcludesBlob(t *testing.T) {
	pool := setupPool(t)
	repo := gensequence.NewRepository(pool)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, gensequence.Record{
			Organism:       fmt.Sprintf("Organism %d", i),
			Gene:           "COI",
			SequenceType:   gensequence.TypeDNA,
			Sequence:       "ACGTACGTACGT",
			SubmissionDate: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed sequence: %v", err)
		}
	}

	items, total, err := repo.List(ctx, gensequence.Filters{Gene: "coi"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3 matches got %d", total)
	}
	for _, item := range items {
		if item.Sequence != "" {
			t.Fatalf("list item %q carries sequence blob", item.ID)
		}
	}
}

func TestDashboardSnapshotLive(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	if _, err := species.NewRepository(pool).Create(ctx, species.Record{
		ScientificName:     "Thunnus thynnus",
		MarineZone:         species.ZonePelagic,
		ConservationStatus: species.StatusEndangered,
		LastUpdated:        time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed species: %v", err)
	}
	if _, err := gensequence.NewRepository(pool).Create(ctx, gensequence.Record{
		Organism:       "Thunnus thynnus",
		Gene:           "COI",
		SequenceType:   gensequence.TypeDNA,
		SubmissionDate: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed sequence: %v", err)
	}

	snap, err := dashboard.NewRepository(pool).Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.TotalSpecies != 1 || snap.TotalSequences != 1 || snap.EndangeredSpecies != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.SpeciesByZone["pelagic"] != 1 || snap.SequencesByType["DNA"] != 1 {
		t.Fatalf("unexpected groupings %+v", snap)
	}
}
