package types

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/anitschke/go-synophotos/encoding"
)

var (
	ErrInvalidAlbumID = errors.New("invalid album id")
)

// AlbumID identifies an album either by the numeric id of an album owned by
// the logged in user or by the passphrase of an album that has been shared
// with them.
//
// The zero value is not a valid AlbumID, use OwnedAlbum or SharedAlbum.
type AlbumID struct {
	id         int64
	passphrase string
	shared     bool
	set        bool
}

func OwnedAlbum(id int64) AlbumID {
	return AlbumID{id: id, set: true}
}

func SharedAlbum(passphrase string) AlbumID {
	return AlbumID{passphrase: passphrase, shared: true, set: true}
}

// Owned returns the numeric album id and true if this refers to an owned
// album.
func (a AlbumID) Owned() (int64, bool) {
	return a.id, a.set && !a.shared
}

// Shared returns the passphrase and true if this refers to a shared album.
func (a AlbumID) Shared() (string, bool) {
	return a.passphrase, a.set && a.shared
}

func (a AlbumID) IsZero() bool {
	return !a.set
}

func (a AlbumID) String() string {
	switch {
	case !a.set:
		return "<unset>"
	case a.shared:
		return "passphrase:" + a.passphrase
	default:
		return strconv.FormatInt(a.id, 10)
	}
}

// AddTo adds the album id to the query. Owned albums are added under idKey
// (which differs between APIs, "id" or "album_id"), shared albums are always
// added as "passphrase".
func (a AlbumID) AddTo(q *encoding.Query, idKey string) error {
	switch {
	case !a.set:
		return ErrInvalidAlbumID
	case a.shared:
		q.Add("passphrase", a.passphrase)
	default:
		q.AddInt(idKey, a.id)
	}
	return nil
}

// UnixTime is a time.Time that is sent and received as a count of seconds
// since the unix epoch.
type UnixTime struct {
	time.Time
}

func NewUnixTime(t time.Time) UnixTime {
	return UnixTime{Time: t}
}

// Unix returns the number of seconds since the epoch, zero for the zero time.
func (t UnixTime) Unix() int64 {
	if t.IsZero() {
		return 0
	}
	return t.Time.Unix()
}

func (t UnixTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

func (t *UnixTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = UnixTime{}
		return nil
	}
	seconds, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to decode unix time: %w", err)
	}
	*t = UnixTime{Time: time.Unix(seconds, 0).UTC()}
	return nil
}
