package synophotos

import (
	"github.com/anitschke/go-synophotos/encoding"
)

// Request is a single call to the API. R is the type the "data" portion of
// the response is decoded into.
type Request[R any] interface {
	// Query renders the request into the fields sent in the body of the POST.
	Query() (encoding.Query, error)

	// ResponseType ties the request to the type of its response so Do can
	// infer it. Implementations return the zero value and it is never called.
	ResponseType() R
}

// queryOp names the API method a query calls, used to label errors and log
// entries.
func queryOp(q encoding.Query) string {
	api, _ := q.Get("api")
	method, _ := q.Get("method")
	return api + "." + method
}
