package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(h http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(h)
	return New(srv.URL, "test-token", srv.Client()), srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestListJobsRequest(t *testing.T) {
	var gotReq *http.Request
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		writeJSON(w, 200, `{"success":true,"message":"OK","data":[],"pagination":{"page":1,"per_page":20,"total":0,"total_pages":0,"count":0}}`)
	})
	defer srv.Close()

	jobs, pg, err := cli.ListJobs(context.Background(), JobFilter{
		Status:    "active",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		Page:      0, // floors to 1
	})
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Errorf("empty result must decode to an empty slice, got %#v", jobs)
	}
	if pg == nil || pg.Total != 0 {
		t.Errorf("pagination = %+v", pg)
	}

	if gotReq.Method != http.MethodGet || gotReq.URL.Path != "/api/admin/jobs" {
		t.Errorf("request = %s %s", gotReq.Method, gotReq.URL.Path)
	}
	if got := gotReq.Header.Get("Authorization"); got != "Bearer test-token" {
		t.Errorf("Authorization = %q", got)
	}
	q := gotReq.URL.Query()
	if q.Get("page") != "1" {
		t.Errorf("page = %q, want floored to 1", q.Get("page"))
	}
	if q.Get("status") != "active" || q.Get("start_date") != "2026-03-01" || q.Get("end_date") != "2026-03-31" {
		t.Errorf("filter query = %v", q)
	}
	if _, present := q["search"]; present {
		t.Error("zero-value filters must be omitted")
	}
}

func TestUpdateJobStatusWireFormat(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		writeJSON(w, 200, `{"success":true,"message":"Updated","data":{"job_id":"j1","job_status":"active","job_status_label":"Active"}}`)
	})
	defer srv.Close()

	job, err := cli.UpdateJobStatus(context.Background(), "j1", "active")
	if err != nil {
		t.Fatalf("UpdateJobStatus: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/admin/jobs/j1/status" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(gotBody), &body); err != nil {
		t.Fatalf("body not JSON: %q", gotBody)
	}
	if body["status"] != "active" {
		t.Errorf("body = %v", body)
	}
	if job.JobStatus != "active" {
		t.Errorf("status = %q", job.JobStatus)
	}
}

func TestUpdateJobStatusGuardsBlankStatus(t *testing.T) {
	hits := 0
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, 200, `{"success":true,"message":"OK"}`)
	})
	defer srv.Close()

	if _, err := cli.UpdateJobStatus(context.Background(), "j1", "  "); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}
	if hits != 0 {
		t.Errorf("guard must block the request, server saw %d calls", hits)
	}
}

func TestRejectApplicationWireFormat(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		writeJSON(w, 200, `{"success":true,"message":"Updated","data":{"application_id":"a1","application_status":"rejected","application_status_label":"Rejected","application_reject_reason":"no show last week"}}`)
	})
	defer srv.Close()

	app, err := cli.RejectApplication(context.Background(), "a1", "no show last week")
	if err != nil {
		t.Fatalf("RejectApplication: %v", err)
	}
	if gotMethod != http.MethodPost || gotPath != "/api/admin/applications/a1/reject" {
		t.Errorf("request = %s %s", gotMethod, gotPath)
	}
	var body map[string]string
	if err := json.Unmarshal([]byte(gotBody), &body); err != nil {
		t.Fatalf("body not JSON: %q", gotBody)
	}
	if body["reason"] != "no show last week" {
		t.Errorf("body = %v", body)
	}
	if app.ApplicationStatus != "rejected" {
		t.Errorf("status = %q", app.ApplicationStatus)
	}
}

func TestRejectGuardsBlankReason(t *testing.T) {
	hits := 0
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, 200, `{"success":true,"message":"OK"}`)
	})
	defer srv.Close()

	for _, reason := range []string{"", "   ", "\t\n"} {
		if _, err := cli.RejectApplication(context.Background(), "a1", reason); !errors.Is(err, ErrEmptyReason) {
			t.Errorf("RejectApplication(%q) err = %v, want ErrEmptyReason", reason, err)
		}
		if _, err := cli.RejectTransaction(context.Background(), "t1", reason); !errors.Is(err, ErrEmptyReason) {
			t.Errorf("RejectTransaction(%q) err = %v, want ErrEmptyReason", reason, err)
		}
	}
	if hits != 0 {
		t.Errorf("guard must block the request, server saw %d calls", hits)
	}
}

func TestSuccessFalseOn200IsFailure(t *testing.T) {
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":false,"message":"Job cannot be cancelled anymore"}`)
	})
	defer srv.Close()

	_, err := cli.CancelJob(context.Background(), "j1")
	if err == nil {
		t.Fatal("success=false must be an error even on HTTP 200")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Message != "Job cannot be cancelled anymore" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestSecondApproveSurfacesConflict(t *testing.T) {
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 409, `{"success":false,"message":"Application is already approved"}`)
	})
	defer srv.Close()

	_, err := cli.ApproveApplication(context.Background(), "a1", "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != 409 || apiErr.Message != "Application is already approved" {
		t.Errorf("got %d %q", apiErr.Status, apiErr.Message)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{401, ErrUnauthorized},
		{403, ErrForbidden},
		{404, ErrNotFound},
		{500, ErrServer},
		{503, ErrServer},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d", c.status), func(t *testing.T) {
			cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, c.status, `{"success":false,"message":"nope"}`)
			})
			defer srv.Close()

			_, _, err := cli.ListTransactions(context.Background(), TransactionFilter{})
			if !errors.Is(err, c.want) {
				t.Errorf("status %d err = %v, want %v", c.status, err, c.want)
			}
		})
	}
}

func TestTimeoutClassification(t *testing.T) {
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writeJSON(w, 200, `{"success":true,"message":"OK"}`)
	})
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err := cli.ListJobs(ctx, JobFilter{})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("err = %v, want ErrTimeout", err)
	}
}

func TestApproveTransactionSurfacesRemainingDebt(t *testing.T) {
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/admin/payments/transactions/t1/approve" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, 200, `{"success":true,"message":"Payment released","data":{"transaction":{"transaction_id":"t1","transaction_status":"completed","transaction_status_label":"Paid","transaction_amount":10,"transaction_rate_type":"salary","transaction_worker_id":"w1","transaction_worker_name":"Ana","transaction_created_at":"2026-03-01T10:00:00Z"},"remaining_to_deduct":42.5}}`)
	})
	defer srv.Close()

	res, err := cli.ApproveTransaction(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ApproveTransaction: %v", err)
	}
	if res.Transaction.TransactionStatusLabel != "Paid" {
		t.Errorf("label = %q", res.Transaction.TransactionStatusLabel)
	}
	if res.RemainingToDeduct == nil {
		t.Fatal("remaining_to_deduct must be surfaced")
	}
	if got := fmt.Sprintf("$%.2f", *res.RemainingToDeduct); got != "$42.50" {
		t.Errorf("advisory renders as %q, want $42.50", got)
	}
}

func TestApproveTransactionWithoutDebt(t *testing.T) {
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, `{"success":true,"message":"Payment released","data":{"transaction":{"transaction_id":"t1","transaction_status":"completed","transaction_created_at":"2026-03-01T10:00:00Z"}}}`)
	})
	defer srv.Close()

	res, err := cli.ApproveTransaction(context.Background(), "t1")
	if err != nil {
		t.Fatalf("ApproveTransaction: %v", err)
	}
	if res.RemainingToDeduct != nil {
		t.Errorf("remaining_to_deduct = %v, want absent", *res.RemainingToDeduct)
	}
}

func TestRegenerateValidatesParams(t *testing.T) {
	hits := 0
	cli, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		hits++
		writeJSON(w, 200, `{"success":true,"message":"OK"}`)
	})
	defer srv.Close()

	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	bad := []RegenerateParams{
		{StartTime: start, EndTime: start.Add(8 * time.Hour), BreakMinutes: -1},
		{StartTime: start, EndTime: start.Add(8 * time.Hour), PenaltyAmount: -5},
		{StartTime: start, EndTime: start.Add(-time.Hour)},
		{StartTime: start, EndTime: start},
		{},
	}
	for i, p := range bad {
		if _, err := cli.RegenerateTransaction(context.Background(), "t1", p); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("case %d err = %v, want ErrInvalidParams", i, err)
		}
	}
	if hits != 0 {
		t.Errorf("invalid params must not reach the server, saw %d calls", hits)
	}
}
