package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"maintenance_backend/internal/feature/staleness/domain/entity"
)

// mockReportSource is a mock ReportSource implementation.
type mockReportSource struct {
	generateFn func(ctx context.Context, window int) (entity.Report, error)
}

func (m *mockReportSource) GenerateReport(ctx context.Context, window int) (entity.Report, error) {
	if m.generateFn != nil {
		return m.generateFn(ctx, window)
	}
	return entity.Report{}, nil
}

// TestNewCachingReportSource_Defaults verifies TTL and namespace defaults.
func TestNewCachingReportSource_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       15 * time.Minute,
			expectedNamespace: "staleness",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       15 * time.Minute,
			expectedNamespace: "staleness",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := NewCachingReportSource(nil, tt.ttl, &mockReportSource{}, tt.namespace)

			if src.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, src.ttl)
			}
			if src.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, src.namespace)
			}
		})
	}
}

// TestCachingReportSource_NilRedis verifies the cache is bypassed without a Redis client.
func TestCachingReportSource_NilRedis(t *testing.T) {
	t.Parallel()

	expected := entity.Report{Window: 10, Summary: entity.Summary{TotalFlagged: 2}}
	inner := &mockReportSource{
		generateFn: func(ctx context.Context, window int) (entity.Report, error) {
			return expected, nil
		},
	}

	src := NewCachingReportSource(nil, 5*time.Minute, inner, "staleness")

	report, err := src.GenerateReport(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.TotalFlagged != 2 {
		t.Errorf("expected 2 flagged, got %d", report.Summary.TotalFlagged)
	}
}

// TestCachingReportSource_CacheHit verifies Redis data is returned without calling inner.
func TestCachingReportSource_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached := entity.Report{Window: 10, Summary: entity.Summary{TotalFlagged: 1}}
	cachedJSON, _ := json.Marshal(cached)

	mock.ExpectGet("staleness:report:10").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockReportSource{
		generateFn: func(ctx context.Context, window int) (entity.Report, error) {
			innerCalled = true
			return entity.Report{}, nil
		},
	}

	src := NewCachingReportSource(rdb, 5*time.Minute, inner, "staleness")
	report, err := src.GenerateReport(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner source should not be called on cache hit")
	}
	if report.Summary.TotalFlagged != 1 {
		t.Errorf("expected 1 flagged, got %d", report.Summary.TotalFlagged)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingReportSource_CacheMiss verifies the report is generated and stored.
func TestCachingReportSource_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := entity.Report{Window: 10, Summary: entity.Summary{TotalFlagged: 3}}
	expectedJSON, _ := json.Marshal(expected)

	// Cache miss, then store after generating
	mock.ExpectGet("staleness:report:10").RedisNil()
	mock.ExpectSet("staleness:report:10", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockReportSource{
		generateFn: func(ctx context.Context, window int) (entity.Report, error) {
			return expected, nil
		},
	}

	src := NewCachingReportSource(rdb, 5*time.Minute, inner, "staleness")
	report, err := src.GenerateReport(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Summary.TotalFlagged != 3 {
		t.Errorf("expected 3 flagged, got %d", report.Summary.TotalFlagged)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingReportSource_InnerError verifies inner errors propagate.
func TestCachingReportSource_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedErr := errors.New("database error")

	mock.ExpectGet("staleness:report:10").RedisNil()

	inner := &mockReportSource{
		generateFn: func(ctx context.Context, window int) (entity.Report, error) {
			return entity.Report{}, expectedErr
		},
	}

	src := NewCachingReportSource(rdb, 5*time.Minute, inner, "staleness")
	_, err := src.GenerateReport(context.Background(), 10)
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected inner error, got %v", err)
	}
}

// TestCachingReportSource_Invalidate verifies the cache key is deleted.
func TestCachingReportSource_Invalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("staleness:report:10").SetVal(1)

	src := NewCachingReportSource(rdb, 5*time.Minute, &mockReportSource{}, "staleness")
	if err := src.Invalidate(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingReportSource_Invalidate_NilRedis verifies a nil client is a no-op.
func TestCachingReportSource_Invalidate_NilRedis(t *testing.T) {
	t.Parallel()

	src := NewCachingReportSource(nil, 5*time.Minute, &mockReportSource{}, "staleness")
	if err := src.Invalidate(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
