package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team13/tutorfind-cli/internal/domain"
)

// recordingClient captures the outgoing request and returns a canned response.
type recordingClient struct {
	req    *http.Request
	status int
	header http.Header
	body   string
}

func (rc *recordingClient) Do(req *http.Request) (*http.Response, error) {
	rc.req = req
	header := rc.header
	if header == nil {
		header = http.Header{"Content-Type": []string{"application/json"}}
	}
	status := rc.status
	if status == 0 {
		status = http.StatusOK
	}
	rec := httptest.NewRecorder()
	for k, vs := range header {
		for _, v := range vs {
			rec.Header().Add(k, v)
		}
	}
	rec.WriteHeader(status)
	rec.WriteString(rc.body)
	return rec.Result(), nil
}

func TestRequestHeaders(t *testing.T) {
	rc := &recordingClient{body: `{"token":"tok","user":{"id":1,"email":"a@x.com","role":"LEARNER"}}`}
	c := NewWithClient("http://api.test", rc)

	_, err := c.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "application/json", rc.req.Header.Get("Content-Type"))
	assert.NotEmpty(t, rc.req.Header.Get("X-Request-ID"))
	assert.Empty(t, rc.req.Header.Get("Authorization"))
}

func TestBearerTokenOnlyWhenSupplied(t *testing.T) {
	rc := &recordingClient{body: `[]`}
	c := NewWithClient("http://api.test", rc)

	_, err := c.BookingsSent(context.Background(), "tok-123", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", rc.req.Header.Get("Authorization"))

	_, err = c.SearchTutors(context.Background(), SearchFilters{})
	require.NoError(t, err)
	assert.Empty(t, rc.req.Header.Get("Authorization"))
}

func TestErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "json message field",
			contentType: "application/json",
			body:        `{"message":"Email already registered"}`,
			want:        "Email already registered",
		},
		{
			name:        "json without message field",
			contentType: "application/json",
			body:        `{"error":"nope"}`,
			want:        "Request failed",
		},
		{
			name:        "raw text body",
			contentType: "text/plain",
			body:        "upstream unavailable",
			want:        "upstream unavailable",
		},
		{
			name:        "empty body",
			contentType: "text/plain",
			body:        "",
			want:        "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := &recordingClient{
				status: http.StatusBadRequest,
				header: http.Header{"Content-Type": []string{tt.contentType}},
				body:   tt.body,
			}
			c := NewWithClient("http://api.test", rc)

			_, err := c.Subjects(context.Background())
			require.Error(t, err)

			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Error())
		})
	}
}

func TestNetworkAndStatusErrorsShareOnePath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	c := NewWithClient(server.URL, &http.Client{})

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestCatalogPathsAndMethods(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
	}{
		{
			name: "search with filters",
			call: func(c *Client) error {
				_, err := c.SearchTutors(context.Background(), SearchFilters{City: "Almaty", MinRating: "4", SortBy: "price_asc"})
				return err
			},
			wantMethod: "GET",
			wantPath:   "/api/tutors?city=Almaty&minRating=4&sortBy=price_asc",
		},
		{
			name: "accept booking",
			call: func(c *Client) error {
				_, err := c.AcceptBooking(context.Background(), "tok", 7, "")
				return err
			},
			wantMethod: "PUT",
			wantPath:   "/api/bookings/7/accept",
		},
		{
			name: "my enrollments filtered",
			call: func(c *Client) error {
				_, err := c.MyEnrollments(context.Background(), "tok", "ACTIVE")
				return err
			},
			wantMethod: "GET",
			wantPath:   "/api/classes/enrollments/my?status=ACTIVE",
		},
		{
			name: "drop enrollment",
			call: func(c *Client) error {
				return c.DropEnrollment(context.Background(), "tok", 3)
			},
			wantMethod: "DELETE",
			wantPath:   "/api/classes/enrollments/3",
		},
		{
			name: "remove availability",
			call: func(c *Client) error {
				return c.RemoveAvailability(context.Background(), "tok", 12)
			},
			wantMethod: "DELETE",
			wantPath:   "/api/tutors/availability/12",
		},
		{
			name: "admin verify tutor",
			call: func(c *Client) error {
				return c.AdminVerifyTutor(context.Background(), "tok", 9)
			},
			wantMethod: "PUT",
			wantPath:   "/api/admin/tutors/9/verify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := &recordingClient{body: `{}`}
			c := NewWithClient("http://api.test", rc)

			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantMethod, rc.req.Method)
			assert.Equal(t, tt.wantPath, rc.req.URL.RequestURI())
		})
	}
}

func TestDecodePayload(t *testing.T) {
	rc := &recordingClient{body: `[{"id":1,"firstName":"Aigerim","isVerified":true},{"id":2,"firstName":"Daniyar"}]`}
	c := NewWithClient("http://api.test/", rc)

	tutors, err := c.SearchTutors(context.Background(), SearchFilters{})
	require.NoError(t, err)
	require.Len(t, tutors, 2)
	assert.Equal(t, int64(1), tutors[0].ID)
	assert.True(t, tutors[0].IsVerified)
	assert.Equal(t, "Daniyar", tutors[1].FirstName)

	// Trailing slash on the base URL is trimmed.
	assert.Equal(t, "api.test", rc.req.URL.Host)
}

func TestBookingResponseBodyOptional(t *testing.T) {
	rc := &recordingClient{body: `{"id":7,"status":"DECLINED"}`}
	c := NewWithClient("http://api.test", rc)

	booking, err := c.DeclineBooking(context.Background(), "tok", 7, "slot taken")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingDeclined, booking.Status)

	body := make([]byte, 64)
	n, _ := rc.req.Body.Read(body)
	assert.JSONEq(t, `{"response":"slot taken"}`, string(body[:n]))

	// No note sends no body at all.
	_, err = c.DeclineBooking(context.Background(), "tok", 7, "")
	require.NoError(t, err)
	assert.Nil(t, rc.req.Body)
}
