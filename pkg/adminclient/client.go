// Package adminclient is a typed HTTP client for the staffly admin API.
// Every mutation maps to one fixed method, path and payload; guard
// failures are rejected locally before any request is sent.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a client for the admin API at baseURL, authenticating
// every request with the given bearer token. Pass a nil httpClient to
// get the default 10 second timeout.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// envelope mirrors the server's uniform response shape. A 200 with
// success=false is still a failure.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) (*Pagination, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if decErr := json.NewDecoder(resp.Body).Decode(&env); decErr != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("decode response: %w", decErr)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode response data: %w", err)
		}
	}
	return env.Pagination, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

/* ======================= JOBS ======================= */

// JobFilter narrows ListJobs. Zero values are omitted from the query.
type JobFilter struct {
	Status     string
	Search     string
	EmployerID string
	OutletID   string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Page       int
	PerPage    int
}

func (f JobFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "status", f.Status)
	setStr(q, "search", f.Search)
	setStr(q, "employer_id", f.EmployerID)
	setStr(q, "outlet_id", f.OutletID)
	setStr(q, "start_date", f.StartDate)
	setStr(q, "end_date", f.EndDate)
	setPage(q, f.Page, f.PerPage)
	return q
}

func (c *Client) ListJobs(ctx context.Context, f JobFilter) ([]Job, *Pagination, error) {
	var jobs []Job
	pg, err := c.do(ctx, http.MethodGet, "/api/admin/jobs", f.values(), nil, &jobs)
	if err != nil {
		return nil, nil, err
	}
	return jobs, pg, nil
}

func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	if _, err := c.do(ctx, http.MethodGet, "/api/admin/jobs/"+id, nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJobStatus moves a job along its lifecycle, e.g. activating a
// pending job so it starts taking applications. Cancelling goes
// through CancelJob.
func (c *Client) UpdateJobStatus(ctx context.Context, id string, status string) (*Job, error) {
	if strings.TrimSpace(status) == "" {
		return nil, ErrInvalidParams
	}
	var job Job
	body := map[string]string{"status": status}
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/jobs/"+id+"/status", nil, body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CancelJob(ctx context.Context, id string) (*Job, error) {
	var job Job
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/jobs/cancel/"+id, nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

/* ======================= APPLICATIONS ======================= */

type ApplicationFilter struct {
	Status    string
	JobID     string
	WorkerID  string
	Search    string
	StartDate string
	EndDate   string
	Page      int
	PerPage   int
}

func (f ApplicationFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "status", f.Status)
	setStr(q, "job_id", f.JobID)
	setStr(q, "worker_id", f.WorkerID)
	setStr(q, "search", f.Search)
	setStr(q, "start_date", f.StartDate)
	setStr(q, "end_date", f.EndDate)
	setPage(q, f.Page, f.PerPage)
	return q
}

func (c *Client) ListApplications(ctx context.Context, f ApplicationFilter) ([]Application, *Pagination, error) {
	var apps []Application
	pg, err := c.do(ctx, http.MethodGet, "/api/admin/applications", f.values(), nil, &apps)
	if err != nil {
		return nil, nil, err
	}
	return apps, pg, nil
}

func (c *Client) ApproveApplication(ctx context.Context, id string, notes string) (*Application, error) {
	body := map[string]interface{}{}
	if strings.TrimSpace(notes) != "" {
		body["notes"] = notes
	}
	var app Application
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/applications/"+id+"/approve", nil, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// RejectApplication refuses locally when reason is blank; the server
// would refuse it anyway, but the guard saves the round trip.
func (c *Client) RejectApplication(ctx context.Context, id string, reason string) (*Application, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}
	var app Application
	body := map[string]string{"reason": reason}
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/applications/"+id+"/reject", nil, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, status string) (*Application, error) {
	var app Application
	body := map[string]string{"status": status}
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/applications/"+id+"/status", nil, body, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

/* ======================= TRANSACTIONS ======================= */

type TransactionFilter struct {
	Status    string
	RateType  string
	WorkerID  string
	JobID     string
	Search    string
	StartDate string
	EndDate   string
	Page      int
	PerPage   int
}

func (f TransactionFilter) values() url.Values {
	q := url.Values{}
	setStr(q, "status", f.Status)
	setStr(q, "rate_type", f.RateType)
	setStr(q, "worker_id", f.WorkerID)
	setStr(q, "job_id", f.JobID)
	setStr(q, "search", f.Search)
	setStr(q, "start_date", f.StartDate)
	setStr(q, "end_date", f.EndDate)
	setPage(q, f.Page, f.PerPage)
	return q
}

func (c *Client) ListTransactions(ctx context.Context, f TransactionFilter) ([]Transaction, *Pagination, error) {
	var txns []Transaction
	pg, err := c.do(ctx, http.MethodGet, "/api/admin/payments/transactions", f.values(), nil, &txns)
	if err != nil {
		return nil, nil, err
	}
	return txns, pg, nil
}

func (c *Client) ApproveTransaction(ctx context.Context, id string) (*TransitionResult, error) {
	var res TransitionResult
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/payments/transactions/"+id+"/approve", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) RejectTransaction(ctx context.Context, id string, reason string) (*Transaction, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}
	var txn Transaction
	body := map[string]string{"reason": reason}
	if _, err := c.do(ctx, http.MethodPut, "/api/admin/payments/transactions/"+id+"/reject", nil, body, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

// RefundTransaction reverses a paid transaction. The reason is
// optional; the returned advisory states how much of the clawback is
// still owed when the wallet could not cover it.
func (c *Client) RefundTransaction(ctx context.Context, id string, reason string) (*TransitionResult, error) {
	body := map[string]interface{}{}
	if strings.TrimSpace(reason) != "" {
		body["reason"] = reason
	}
	var res TransitionResult
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/payments/transactions/"+id+"/refund", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RegenerateParams recomputes a salary transaction from adjusted
// shift times.
type RegenerateParams struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	BreakMinutes  int       `json:"break_minutes"`
	PenaltyAmount float64   `json:"penalty_amount"`
}

func (c *Client) RegenerateTransaction(ctx context.Context, id string, p RegenerateParams) (*Transaction, error) {
	if p.BreakMinutes < 0 || p.PenaltyAmount < 0 {
		return nil, ErrInvalidParams
	}
	if p.StartTime.IsZero() || p.EndTime.IsZero() || !p.EndTime.After(p.StartTime) {
		return nil, ErrInvalidParams
	}
	var txn Transaction
	if _, err := c.do(ctx, http.MethodPost, "/api/admin/transactions/"+id+"/regenerate", nil, p, &txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

/* ======================= HELPERS ======================= */

func setStr(q url.Values, key, val string) {
	if val != "" {
		q.Set(key, val)
	}
}

func setPage(q url.Values, page, perPage int) {
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
}
