package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enrolify/leads-api/internal/models"
	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

type mockRecordRepo struct {
	records map[int64]models.LeadRecord
	finds   int
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: map[int64]models.LeadRecord{}}
}

func (m *mockRecordRepo) FindByID(_ context.Context, id int64) (*models.LeadRecord, error) {
	m.finds++
	record, ok := m.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &record, nil
}

func (m *mockRecordRepo) ListIDs(_ context.Context, start, limit int) ([]int64, error) {
	var all []int64
	for id := range m.records {
		all = append(all, id)
	}
	// mock data is inserted with contiguous ids starting at 1
	var ids []int64
	for i := start + 1; i <= len(all) && len(ids) < limit; i++ {
		ids = append(ids, int64(i))
	}
	return ids, nil
}

type mockRecordCache struct {
	entries map[string][]byte
	sets    int
}

func newMockRecordCache() *mockRecordCache {
	return &mockRecordCache{entries: map[string][]byte{}}
}

func (m *mockRecordCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *mockRecordCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.sets++
	return nil
}

type mockCacheMetrics struct {
	hits, misses int
	dbQueries    int
}

func (m *mockCacheMetrics) RecordCacheOperation(hit bool) {
	if hit {
		m.hits++
	} else {
		m.misses++
	}
}

func (m *mockCacheMetrics) ObserveDBQuery(_ string, _ time.Duration) {
	m.dbQueries++
}

func newRecordService(records *mockRecordRepo, cache *mockRecordCache, metrics *mockCacheMetrics) (*RecordService, *mockEnrollmentRepo) {
	students := newMockStudentRepo()
	enrollments := newMockEnrollmentRepo()
	var c recordCache
	if cache != nil {
		c = cache
	}
	var m recordMetrics
	if metrics != nil {
		m = metrics
	}
	svc := NewRecordService(students, newMockCatalogRepo(), enrollments, records, c, m, time.Minute, nil, nil)
	return svc, enrollments
}

func TestRecordServiceLoad(t *testing.T) {
	svc, enrollments := newRecordService(newMockRecordRepo(), nil, nil)

	req := LoadRecordRequest{
		DNI: "12345678", Name: "pepe", Email: "pepe@example.com",
		Subject: "anatomy", Career: "medicine", EnrollTimes: 1, YearEnroll: 2024,
	}
	id, err := svc.Load(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Len(t, enrollments.careerRows, 1)
	assert.Len(t, enrollments.subjectRows, 1)
}

// Re-posting the same record converges on the same enrollment id and leaves
// row counts unchanged.
func TestRecordServiceLoadIdempotent(t *testing.T) {
	svc, enrollments := newRecordService(newMockRecordRepo(), nil, nil)

	req := LoadRecordRequest{
		DNI: "12345678", Name: "pepe",
		Subject: "anatomy", Career: "medicine", EnrollTimes: 1, YearEnroll: 2024,
	}
	first, err := svc.Load(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Load(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, enrollments.careerRows, 1)
	assert.Len(t, enrollments.subjectRows, 1)
}

func TestRecordServiceLoadUnknownCareer(t *testing.T) {
	svc, _ := newRecordService(newMockRecordRepo(), nil, nil)

	req := LoadRecordRequest{
		DNI: "12345678", Name: "pepe",
		Subject: "anatomy", Career: "astrology", EnrollTimes: 1, YearEnroll: 2024,
	}
	_, err := svc.Load(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestRecordServiceGet(t *testing.T) {
	records := newMockRecordRepo()
	records.records[10] = models.LeadRecord{ID: 10, DNI: "12345678", Subject: "anatomy", Career: "medicine"}
	svc, _ := newRecordService(records, nil, nil)

	record, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "anatomy", record.Subject)
}

func TestRecordServiceGetNotFound(t *testing.T) {
	svc, _ := newRecordService(newMockRecordRepo(), nil, nil)

	_, err := svc.Get(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestRecordServiceGetCachesRecord(t *testing.T) {
	records := newMockRecordRepo()
	records.records[10] = models.LeadRecord{ID: 10, DNI: "12345678", Subject: "anatomy"}
	cache := newMockRecordCache()
	metrics := &mockCacheMetrics{}
	svc, _ := newRecordService(records, cache, metrics)

	first, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, records.finds) // second read served from cache
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
	assert.Equal(t, 1, metrics.dbQueries)
}

func TestRecordServiceList(t *testing.T) {
	records := newMockRecordRepo()
	for i := int64(1); i <= 5; i++ {
		records.records[i] = models.LeadRecord{ID: i, DNI: "12345678"}
	}
	svc, _ := newRecordService(records, nil, nil)

	window, err := svc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, int64(2), window[0].ID)
	assert.Equal(t, int64(3), window[1].ID)
}

func TestRecordServiceListPastEnd(t *testing.T) {
	records := newMockRecordRepo()
	records.records[1] = models.LeadRecord{ID: 1}
	svc, _ := newRecordService(records, nil, nil)

	window, err := svc.List(context.Background(), 10, 5)
	require.NoError(t, err)
	assert.Empty(t, window)
}
