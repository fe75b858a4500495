package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marinedata/dashboard"
	"marinedata/gensequence"
	"marinedata/species"
)

func loginToken(t *testing.T, env *testEnv) string {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Writer",
		"email":    "writer@ocean.example",
		"password": "strongpassword",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "writer@ocean.example",
		"password": "strongpassword",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSpeciesListResponseShape(t *testing.T) {
	env := newTestEnv()
	env.speciesRepo.items = []species.Record{
		{ID: "s-1", ScientificName: "Thunnus albacares", LastUpdated: time.Now()},
		{ID: "s-2", ScientificName: "Orcinus orca", LastUpdated: time.Now()},
	}
	env.speciesRepo.total = 47

	rec := env.do(t, http.MethodGet, "/species?page=3&limit=20", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Contains(t, body, "species")
	pag, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, pag["current"])
	assert.EqualValues(t, 3, pag["pages"])
	assert.EqualValues(t, 47, pag["total"])
}

func TestSpeciesListPassesFiltersThrough(t *testing.T) {
	env := newTestEnv()

	rec := env.do(t, http.MethodGet,
		"/species?search=reef&marineZone=pelagic&conservationStatus=endangered", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := env.speciesRepo.lastFilters
	assert.Equal(t, "reef", got.Search)
	assert.Equal(t, species.ZonePelagic, got.MarineZone)
	assert.Equal(t, species.StatusEndangered, got.ConservationStatus)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.Limit)
}

func TestSpeciesListStoreFailureIsOpaque500(t *testing.T) {
	env := newTestEnv()
	env.speciesRepo.err = errors.New("pq: connection refused to 10.0.0.3")

	rec := env.do(t, http.MethodGet, "/species", "", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, genericServerError, body["error"])
	assert.NotContains(t, rec.Body.String(), "10.0.0.3")
}

func TestSpeciesCreate(t *testing.T) {
	env := newTestEnv()
	token := loginToken(t, env)

	rec := env.do(t, http.MethodPost, "/species", token, gin.H{
		"scientificName": "Orcinus orca",
		"marineZone":     "pelagic",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "species")

	rec = env.do(t, http.MethodPost, "/species", token, gin.H{
		"commonName": "Nameless",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSequenceListOmitsBlob(t *testing.T) {
	env := newTestEnv()
	env.sequenceRepo.items = []gensequence.Record{
		{ID: "q-1", Organism: "Thunnus albacares", Gene: "COI", SequenceType: gensequence.TypeDNA},
	}
	env.sequenceRepo.total = 1

	rec := env.do(t, http.MethodGet, "/genetic-sequences?organism=thunnus", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"sequence":`)
	assert.Contains(t, decodeBody(t, rec), "pagination")
}

func TestSequenceCreate(t *testing.T) {
	env := newTestEnv()
	token := loginToken(t, env)

	rec := env.do(t, http.MethodPost, "/genetic-sequences", token, gin.H{
		"organism":     "Orcinus orca",
		"gene":         "COI",
		"sequenceType": "DNA",
		"sequence":     "ACGTACGT",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/genetic-sequences", token, gin.H{
		"organism": "No gene",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardStatsLiveAndFallbackShareShape(t *testing.T) {
	env := newTestEnv()
	env.statsRepo.snap = dashboard.StatsSnapshot{
		TotalSpecies:      5,
		TotalSequences:    9,
		EndangeredSpecies: 1,
		SpeciesByZone:     map[string]int{"pelagic": 5},
		SequencesByType:   map[string]int{"DNA": 9},
		LastUpdated:       time.Now().UTC(),
	}

	live := env.do(t, http.MethodGet, "/dashboard/stats", "", nil)
	require.Equal(t, http.StatusOK, live.Code)
	liveBody := decodeBody(t, live)
	assert.Equal(t, true, liveBody["success"])

	env.statsRepo.err = errors.New("store unreachable")
	fallback := env.do(t, http.MethodGet, "/dashboard/stats", "", nil)
	require.Equal(t, http.StatusOK, fallback.Code)
	fbBody := decodeBody(t, fallback)
	assert.Equal(t, true, fbBody["success"])

	liveData := liveBody["data"].(map[string]any)
	fbData := fbBody["data"].(map[string]any)
	for key := range liveData {
		assert.Contains(t, fbData, key, "fallback snapshot missing %q", key)
	}
	assert.NotZero(t, fbData["totalSpecies"])
}

type fakeSpeciesRepo struct {
	items       []species.Record
	total       int
	err         error
	lastFilters species.Filters
}

func (f *fakeSpeciesRepo) List(ctx context.Context, filters species.Filters) ([]species.Record, int, error) {
	f.lastFilters = filters
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, f.total, nil
}

func (f *fakeSpeciesRepo) Create(ctx context.Context, rec species.Record) (species.Record, error) {
	if f.err != nil {
		return species.Record{}, f.err
	}
	return rec, nil
}

type fakeSequenceRepo struct {
	items []gensequence.Record
	total int
	err   error
}

func (f *fakeSequenceRepo) List(ctx context.Context, filters gensequence.Filters) ([]gensequence.Record, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, f.total, nil
}

func (f *fakeSequenceRepo) Create(ctx context.Context, rec gensequence.Record) (gensequence.Record, error) {
	if f.err != nil {
		return gensequence.Record{}, f.err
	}
	return rec, nil
}

type fakeStatsRepo struct {
	snap dashboard.StatsSnapshot
	err  error
}

func (f *fakeStatsRepo) Snapshot(ctx context.Context) (dashboard.StatsSnapshot, error) {
	if f.err != nil {
		return dashboard.StatsSnapshot{}, f.err
	}
	return f.snap, nil
}
