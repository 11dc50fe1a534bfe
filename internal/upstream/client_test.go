package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL, Timeout: 2 * time.Second}, nil, nil)
}

func TestListAttendanceEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/attendance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"student_id":"ST01","student_name":"An","day":10,"month":3,"year":2024}],"count":1}`))
	})

	rows, count, err := client.ListAttendance(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ST01", rows[0].StudentID)
	assert.Equal(t, 1, count)
}

func TestListAttendanceBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"student_id":"ST01"}]`))
	})

	rows, _, err := client.ListAttendance(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestUpstreamErrorCarriesStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"No records found"}`))
	})

	_, _, err := client.ListAttendance(context.Background())

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "No records found", appErr.Message)
	assert.True(t, IsNoRecords(err))
}

func TestUpstreamErrorWithoutBodyDefaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := client.ListAttendance(context.Background())

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.NotEmpty(t, appErr.Message)
	assert.False(t, IsNoRecords(err))
}

func TestNetworkErrorDefaultsToInternalStatus(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, nil, nil)

	_, _, err := client.ListAttendance(context.Background())

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestListAttendanceByClassRequiresID(t *testing.T) {
	client := New(Config{BaseURL: "http://localhost:4000"}, nil, nil)

	_, _, err := client.ListAttendanceByClass(context.Background(), "")

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestListSubjectsNestedKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/subject/T01", r.URL.Path)
		w.Write([]byte(`{"success":true,"subjects":[{"subject_id":"S1","name":"Toán"},{"subject_id":"S2","name":"Lý"}]}`))
	})

	rows, count, err := client.ListSubjectsByTeacher(context.Background(), "T01")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Toán", rows[0].Name)
}

func TestListSchedulesByTeacher(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schedule/T01", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":[{"subject_id":"S1","day":10,"month":3,"year":2024,"day_of_week":"2","start_time":"07:30:00","end_time":"09:00:00"}]}`))
	})

	rows, err := client.ListSchedulesByTeacher(context.Background(), "T01")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "07:30:00", rows[0].StartTime)
}
