package encoding

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// Query is an ordered set of key value pairs that is rendered into the URL
// encoded body of a request.
//
// We don't use url.Values here because it sorts the keys when encoding. The
// API doesn't care about the order but keeping the order the fields were added
// in makes the rendered queries predictable and a lot easier to read in logs.
type Query struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// NewQuery returns a query that starts with the api, version and method fields
// that every request carries.
func NewQuery(api string, version int, method string) Query {
	var q Query
	q.Add("api", api)
	q.AddInt("version", int64(version))
	q.Add("method", method)
	return q
}

// Add appends a key value pair to the query. Adding a key that already exists
// appends a second pair rather than replacing the first.
func (q *Query) Add(key string, value string) {
	q.pairs = append(q.pairs, pair{key: key, value: value})
}

func (q *Query) AddInt(key string, value int64) {
	q.Add(key, strconv.FormatInt(value, 10))
}

func (q *Query) AddUint(key string, value uint32) {
	q.Add(key, strconv.FormatUint(uint64(value), 10))
}

// Get returns the value of the first pair with the given key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q.pairs {
		if p.key == key {
			return p.value, true
		}
	}
	return "", false
}

func (q Query) Len() int {
	return len(q.pairs)
}

// Clone returns a copy of the query that can be added to without changing q.
func (q Query) Clone() Query {
	pairs := make([]pair, len(q.pairs))
	copy(pairs, q.pairs)
	return Query{pairs: pairs}
}

// Encode renders the query as "key=value&key=value" in the order the pairs
// were added. Values are escaped with url.QueryEscape so plain alphanumerics
// come through untouched.
func (q Query) Encode() string {
	var sb strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

func (q Query) String() string {
	return q.Encode()
}

// IDList renders a list of ids the way the API expects them, as a JSON array.
// A nil list is rendered as an empty array.
func IDList(ids []int64) string {
	if ids == nil {
		ids = []int64{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		// Marshalling a slice of int64 can't fail.
		panic(err)
	}
	return string(b)
}
