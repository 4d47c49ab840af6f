package timesheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hourkeep/hourkeep-cli/internal/constants"
	"github.com/hourkeep/hourkeep-cli/internal/models"
)

func TestClientHealthy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"healthy service", http.StatusOK, true},
		{"server error", http.StatusInternalServerError, false},
		{"not found", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/save-service/health" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, constants.SaveServicePrefix)
			if got := c.Healthy(context.Background()); got != tt.want {
				t.Errorf("Healthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClientHealthyUnreachable(t *testing.T) {
	// Closed server: connection refused must read as unhealthy, not panic.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, constants.SaveServicePrefix)
	if c.Healthy(context.Background()) {
		t.Error("unreachable service reported healthy")
	}
}

func TestClientRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submit-service/timesheets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("employeeId") != "EMP-007" {
			t.Errorf("employeeId = %q", q.Get("employeeId"))
		}
		if q.Get("startDate") != "2024-03-04" || q.Get("endDate") != "2024-03-10" {
			t.Errorf("date range = %q..%q", q.Get("startDate"), q.Get("endDate"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"date":"2024-03-06","hours":5,"employeeId":"EMP-007","projectId":"P","taskId":"T","recordType":"billable"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, constants.SubmitServicePrefix)
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)

	records, err := c.Records(context.Background(), "EMP-007", start, end)
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Hours != 5 || records[0].RecordType != constants.RecordBillable {
		t.Errorf("unexpected record %+v", records[0])
	}
}

func TestClientRecordsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"startDate must be before endDate"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, constants.SaveServicePrefix)
	_, err := c.Records(context.Background(), "EMP-001", time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "startDate must be before endDate") {
		t.Errorf("error %q does not carry the server message", err)
	}
}

func TestClientRecordsStatusFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, constants.SaveServicePrefix)
	_, err := c.Records(context.Background(), "EMP-001", time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "Bad Gateway") {
		t.Errorf("error %q should fall back to the HTTP status text", err)
	}
}

func TestClientWrite(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"created","data":{},"action":"save"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, constants.SaveServicePrefix)
	err := c.Write(context.Background(), models.Record{
		Date:       "2024-03-06",
		Hours:      8,
		EmployeeID: "EMP-001",
		ProjectID:  "PROJ-001",
		TaskID:     "TASK-001",
		RecordType: constants.RecordBillable,
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	for _, field := range []string{`"date":"2024-03-06"`, `"hours":8`, `"recordType":"billable"`} {
		if !strings.Contains(gotBody, field) {
			t.Errorf("request body %s missing %s", gotBody, field)
		}
	}
}

func TestClientWriteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"week already submitted"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, constants.SubmitServicePrefix)
	err := c.Write(context.Background(), models.Record{Date: "2024-03-06", RecordType: constants.RecordBillable})
	if err == nil {
		t.Fatal("expected error for 409 response")
	}
	if !strings.Contains(err.Error(), "week already submitted") {
		t.Errorf("error %q does not carry the server message", err)
	}
}
