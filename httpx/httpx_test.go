package httpx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostFormRequest(t *testing.T) {
	req, err := NewPostFormRequest(context.Background(), "http://nas.local:5000/webapi/entry.cgi", "a=1&b=2")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))
	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", string(body))
}

func TestNewPostFormRequest_BadURL(t *testing.T) {
	_, err := NewPostFormRequest(context.Background(), "://nope", "")
	assert.ErrorContains(t, err, "failed to create form request")
}

func TestDoUnmarshalJSONResponse(t *testing.T) {
	type payload struct {
		Value string `json:"value"`
	}

	type testData struct {
		name     string
		status   int
		body     string
		exp      payload
		expError string
	}

	testCases := []testData{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"value":"hello"}`,
			exp:    payload{Value: "hello"},
		},
		{
			name:     "badStatus",
			status:   http.StatusBadGateway,
			body:     "upstream down",
			expError: "502 Bad Gateway: body: upstream down",
		},
		{
			name:     "badJSON",
			status:   http.StatusOK,
			body:     `{"value":`,
			expError: "failed to parse response body",
		},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(td.status)
				io.WriteString(w, td.body)
			}))
			defer server.Close()

			req, err := NewPostFormRequest(context.Background(), server.URL, "")
			require.NoError(t, err)

			var act payload
			err = DoUnmarshalJSONResponse(server.Client(), req, &act)
			if td.expError != "" {
				assert.ErrorContains(t, err, td.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, td.exp, act)
		})
	}
}

func TestNewDefaultClient_KeepsCookies(t *testing.T) {
	var gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("id"); err == nil {
			gotCookie = c.Value
		}
		http.SetCookie(w, &http.Cookie{Name: "id", Value: "cookie-value", Path: "/"})
	}))
	defer server.Close()

	client := NewDefaultClient()
	require.NotNil(t, client.Jar)

	for i := 0; i < 2; i++ {
		req, err := NewPostFormRequest(context.Background(), server.URL, "")
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
	}
	assert.Equal(t, "cookie-value", gotCookie)
}
