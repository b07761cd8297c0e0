package httpx

import (
	"net/http"
	"net/http/cookiejar"

	"golang.org/x/net/publicsuffix"
)

// Client is an interface for an http.Client from the standard library that
// allows us to more easily extend and/or mock out the existing http client from
// the standard library.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDefaultClient returns the http.Client used when the caller doesn't
// provide one.
//
// DSM sets an "id" cookie on login alongside the session id it returns in the
// body. We don't need it since every request carries _sid, but keeping it
// around in a jar matches what the browser does and some DSM versions are
// happier for it.
func NewDefaultClient() *http.Client {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		// cookiejar.New never returns an error, but if that ever changes we
		// can still function without the jar.
		return &http.Client{}
	}
	return &http.Client{Jar: jar}
}
