package synophotos

import (
	"github.com/anitschke/go-synophotos/encoding"
)

const (
	authAPI     = "SYNO.API.Auth"
	authVersion = 3
)

// LoginRequest logs in to DSM with an account name and password.
type LoginRequest struct {
	Account string
	Passwd  string
}

// LoginResponse holds the session id that is sent with every later request.
type LoginResponse struct {
	DID string `json:"did"`
	SID string `json:"sid"`
}

var _ Request[LoginResponse] = LoginRequest{}

func (r LoginRequest) Query() (encoding.Query, error) {
	q := encoding.NewQuery(authAPI, authVersion, "login")
	q.Add("account", r.Account)
	q.Add("passwd", r.Passwd)
	return q, nil
}

func (LoginRequest) ResponseType() LoginResponse {
	return LoginResponse{}
}
