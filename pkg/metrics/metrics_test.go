package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordOrderOperation(t *testing.T) {
	m := New("grooming")

	m.RecordOrderOperation("create", "success")
	m.RecordOrderOperation("create", "conflict")
	m.RecordOrderOperation("create", "conflict")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.orderOperationsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.orderOperationsTotal.WithLabelValues("create", "conflict")))
}

func TestMetrics_DBStats(t *testing.T) {
	m := New("grooming")

	m.SetDBStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 7})
	m.ObserveDBQuery("select", nil, time.Millisecond)
	m.ObserveDBQuery("insert", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbOpenConnections))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbInUseConnections))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbIdleConnections))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbWaitCount))
	assert.Equal(t, 2, testutil.CollectAndCount(m.dbQueryDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("grooming")
	m.ObserveHTTP(http.MethodPost, "/api/v1/orders", http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="POST",route="/api/v1/orders",service="grooming",status="201"} 1`)
}
