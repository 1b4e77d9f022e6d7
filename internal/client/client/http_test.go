package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method      string
	Path        string
	Body        string
	ContentType string
	RequestID   string
}

// recorder is an httptest handler that stores every request and answers
// with a fixed status and body.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	b, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method:      req.Method,
		Path:        req.URL.EscapedPath(),
		Body:        string(b),
		ContentType: req.Header.Get("Content-Type"),
		RequestID:   req.Header.Get(RequestIDHeaderName),
	})
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.status)
	_, _ = io.WriteString(w, r.body)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests, "no request reached the server")
	return r.requests[len(r.requests)-1]
}

func newTestClient(t *testing.T, status int, body string) (*HTTPClient, *recorder) {
	t.Helper()
	rec := &recorder{status: status, body: body}
	ts := httptest.NewServer(rec)
	t.Cleanup(ts.Close)
	return NewHTTPClient(ts.URL+"/", time.Second, WithHTTPClient(ts.Client())), rec
}

func TestAuthenticate_Created(t *testing.T) {
	c, rec := newTestClient(t, http.StatusCreated, `{"id":11}`)

	out, err := c.Authenticate(context.Background(), models.Credentials{Username: "utkarsh", Password: "12345"})
	require.NoError(t, err)
	assert.Equal(t, float64(11), out["id"])

	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/users", req.Path)
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"username":"utkarsh","password":"12345"}`, req.Body)
	assert.NotEmpty(t, req.RequestID)
}

func TestAuthenticate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantMsg: "request failed with status code 500"},
		{name: "empty body", status: http.StatusCreated, body: ``, wantMsg: "invalid response body"},
		{name: "null body", status: http.StatusOK, body: `null`, wantMsg: "expected a JSON object"},
		{name: "not an object", status: http.StatusOK, body: `[1]`, wantMsg: "invalid response body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.status, tt.body)
			_, err := c.Authenticate(context.Background(), models.Credentials{Username: "u", Password: "p"})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRequestFailed)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestListUsers_PreservesOrder(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `[{"id":3,"name":"C"},{"id":1,"name":"A"},{"id":2,"name":"B"}]`)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []string{"C", "A", "B"}, []string{users[0].Name, users[1].Name, users[2].Name})
	assert.Equal(t, http.MethodGet, rec.last(t).Method)
	assert.Empty(t, rec.last(t).ContentType, "GET carries no body")
}

func TestListUsers_EmptyArray(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `[]`)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_RejectsNonArray(t *testing.T) {
	for _, body := range []string{`{"id":1}`, `null`, `oops`} {
		c, _ := newTestClient(t, http.StatusOK, body)
		_, err := c.ListUsers(context.Background())
		require.Error(t, err, body)
		assert.ErrorIs(t, err, ErrRequestFailed)
	}
}

func TestCreateUpdateDelete_Requests(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"id":11}`)
	ctx := context.Background()

	d := models.NewDraft()
	d.Set("name", "Ann")
	require.NoError(t, c.CreateUser(ctx, d))
	req := rec.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/users", req.Path)
	assert.JSONEq(t, `{"name":"Ann"}`, req.Body)

	require.NoError(t, c.CreateUser(ctx, nil))
	assert.JSONEq(t, `{}`, rec.last(t).Body)

	d["id"] = json.Number("3")
	d.Set("name", "Anna")
	require.NoError(t, c.UpdateUser(ctx, "3", d))
	req = rec.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/users/3", req.Path)
	assert.JSONEq(t, `{"id":3,"name":"Anna"}`, req.Body)

	require.NoError(t, c.DeleteUser(ctx, "a/b"))
	req = rec.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/users/a%2Fb", req.Path)
	assert.Empty(t, req.Body)
}

func TestMutations_MissingIDNeverCallsServer(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)

	err := c.UpdateUser(context.Background(), "", models.NewDraft())
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, "missing record id", err.Error())

	err = c.DeleteUser(context.Background(), "")
	require.ErrorIs(t, err, ErrRequestFailed)

	assert.Empty(t, rec.requests)
}

func TestMutations_StatusErrors(t *testing.T) {
	c, _ := newTestClient(t, http.StatusNotFound, `{}`)
	ctx := context.Background()

	for _, err := range []error{
		c.CreateUser(ctx, models.NewDraft()),
		c.UpdateUser(ctx, "1", models.NewDraft()),
		c.DeleteUser(ctx, "1"),
	} {
		require.Error(t, err)
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, http.StatusNotFound, e.StatusCode)
		assert.Equal(t, "request failed with status code 404", err.Error())
	}
}

func TestNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := NewHTTPClient(ts.URL, time.Second)
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Zero(t, e.StatusCode)
	assert.NotNil(t, errors.Unwrap(err))
	assert.False(t, strings.Contains(err.Error(), "status code"))
}

func TestTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(ts.Close)
	t.Cleanup(func() { close(release) })

	c := NewHTTPClient(ts.URL, 50*time.Millisecond, WithHTTPClient(ts.Client()))
	_, err := c.ListUsers(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrRequestFailed)
}
