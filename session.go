package synophotos

import (
	"context"
	"errors"
	"fmt"

	"github.com/anitschke/go-synophotos/httpx"
	"github.com/anitschke/go-synophotos/internal/errorx"
	"github.com/rs/zerolog"
)

const sidField = "_sid"

var (
	ErrNoSessionID = errors.New("login response did not contain a session id")
)

// SessionOptions holds the optional settings for a Session.
type SessionOptions struct {
	// Logger receives a trace entry for every request sent. Defaults to a
	// disabled logger.
	Logger *zerolog.Logger
}

func (o SessionOptions) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// Session is a logged in connection to the API.
//
// A Session is immutable once created by Login so it is safe to use from
// multiple goroutines as long as the httpx.Client it was created with is.
// There is no logout and no handling of expired sessions, once the server
// forgets a session id every call made with it fails with a *RemoteError.
type Session struct {
	client   httpx.Client
	endpoint string
	sid      string
	logger   zerolog.Logger
}

// Login authenticates against the API and returns a session for making
// further requests.
//
// endpoint is the full URL of the API entry point, for example
// http://192.168.1.199:5000/webapi/entry.cgi. If client is nil a client from
// httpx.NewDefaultClient is used.
func Login(ctx context.Context, client httpx.Client, endpoint string, login LoginRequest, opts SessionOptions) (retSession *Session, err error) {
	defer errorx.WrapIfError("failed to log in", &err)

	if client == nil {
		client = httpx.NewDefaultClient()
	}
	logger := opts.logger()

	query, err := login.Query()
	if err != nil {
		return nil, err
	}

	// The password must not end up in the log.
	logger.Debug().Str("endpoint", endpoint).Str("account", login.Account).Msg("logging in")

	resp, err := post[LoginResponse](ctx, client, endpoint, queryOp(query), query.Encode())
	if err != nil {
		return nil, err
	}
	if resp.SID == "" {
		return nil, ErrNoSessionID
	}

	logger.Debug().Str("endpoint", endpoint).Msg("logged in")

	return &Session{
		client:   client,
		endpoint: endpoint,
		sid:      resp.SID,
		logger:   logger,
	}, nil
}

// NewSession creates a session from a session id obtained elsewhere, for
// example one saved from an earlier Login.
func NewSession(client httpx.Client, endpoint string, sid string, opts SessionOptions) *Session {
	if client == nil {
		client = httpx.NewDefaultClient()
	}
	return &Session{
		client:   client,
		endpoint: endpoint,
		sid:      sid,
		logger:   opts.logger(),
	}
}

func (s *Session) Endpoint() string {
	return s.endpoint
}

func (s *Session) SessionID() string {
	return s.sid
}

// Do sends the request using the session and returns the decoded payload.
//
// The session id is appended to the request's own fields as "_sid". Failures
// to send the request or read its response are returned as a *TransportError
// and errors reported by the API as a *RemoteError.
func Do[R any](ctx context.Context, s *Session, req Request[R]) (R, error) {
	var empty R

	query, err := req.Query()
	if err != nil {
		return empty, err
	}
	op := queryOp(query)

	if event := s.logger.Trace(); event.Enabled() {
		redacted := query.Clone()
		redacted.Add(sidField, "REDACTED")
		event.Str("op", op).Str("query", redacted.Encode()).Msg("sending request")
	}

	query.Add(sidField, s.sid)
	return post[R](ctx, s.client, s.endpoint, op, query.Encode())
}

func post[R any](ctx context.Context, client httpx.Client, endpoint string, op string, body string) (R, error) {
	var empty R

	req, err := httpx.NewPostFormRequest(ctx, endpoint, body)
	if err != nil {
		return empty, &TransportError{Op: op, Err: err}
	}

	var resp Response[R]
	if err := httpx.DoUnmarshalJSONResponse(client, req, &resp); err != nil {
		return empty, &TransportError{Op: op, Err: err}
	}

	data, err := resp.Result()
	if err != nil {
		return empty, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}
