package synophotos

import (
	"context"
	"errors"

	"github.com/anitschke/go-synophotos/encoding"
	"github.com/anitschke/go-synophotos/types"
)

const (
	browseItemAPI     = "SYNO.Foto.Browse.Item"
	teamBrowseItemAPI = "SYNO.FotoTeam.Browse.Item"
)

var (
	ErrMissingAlbum = errors.New("album must be specified")
)

// Item is a photo or video.
type Item struct {
	ID          int64          `json:"id"`
	Filename    string         `json:"filename"`
	Filesize    uint64         `json:"filesize"`
	Time        types.UnixTime `json:"time"`
	IndexedTime types.UnixTime `json:"indexed_time"`
	OwnerUserID int64          `json:"owner_user_id"`
	FolderID    int64          `json:"folder_id"`
	Type        string         `json:"type"`
}

type ListItemsResponse struct {
	List []Item `json:"list"`
}

// ListItemsRequest lists a page of the items in the personal space taken
// between StartTime and EndTime.
type ListItemsRequest struct {
	Offset    uint32
	Limit     uint32
	StartTime types.UnixTime
	EndTime   types.UnixTime
}

var _ Request[ListItemsResponse] = ListItemsRequest{}

func (r ListItemsRequest) Query() (encoding.Query, error) {
	return timeRangeQuery(browseItemAPI, r.Offset, r.Limit, r.StartTime, r.EndTime), nil
}

func (ListItemsRequest) ResponseType() ListItemsResponse {
	return ListItemsResponse{}
}

// ListTeamItemsRequest is the same as ListItemsRequest but for the shared
// space.
type ListTeamItemsRequest struct {
	Offset    uint32
	Limit     uint32
	StartTime types.UnixTime
	EndTime   types.UnixTime
}

var _ Request[ListItemsResponse] = ListTeamItemsRequest{}

func (r ListTeamItemsRequest) Query() (encoding.Query, error) {
	return timeRangeQuery(teamBrowseItemAPI, r.Offset, r.Limit, r.StartTime, r.EndTime), nil
}

func (ListTeamItemsRequest) ResponseType() ListItemsResponse {
	return ListItemsResponse{}
}

func timeRangeQuery(api string, offset uint32, limit uint32, start types.UnixTime, end types.UnixTime) encoding.Query {
	q := encoding.NewQuery(api, 1, "list")
	q.AddUint("offset", offset)
	q.AddUint("limit", limit)
	q.AddInt("start_time", start.Unix())
	q.AddInt("end_time", end.Unix())
	return q
}

// ListAlbumItemsRequest lists a page of the items in an album.
type ListAlbumItemsRequest struct {
	Offset uint32
	Limit  uint32
	Album  types.AlbumID
}

var _ Request[ListItemsResponse] = ListAlbumItemsRequest{}

func (r ListAlbumItemsRequest) Query() (encoding.Query, error) {
	if r.Album.IsZero() {
		return encoding.Query{}, ErrMissingAlbum
	}
	q := encoding.NewQuery(browseItemAPI, 1, "list")
	if err := r.Album.AddTo(&q, "album_id"); err != nil {
		return encoding.Query{}, err
	}
	q.AddUint("offset", r.Offset)
	q.AddUint("limit", r.Limit)
	return q, nil
}

func (ListAlbumItemsRequest) ResponseType() ListItemsResponse {
	return ListItemsResponse{}
}

func (s *Session) ListItems(ctx context.Context, req ListItemsRequest) (ListItemsResponse, error) {
	return Do[ListItemsResponse](ctx, s, req)
}

func (s *Session) ListTeamItems(ctx context.Context, req ListTeamItemsRequest) (ListItemsResponse, error) {
	return Do[ListItemsResponse](ctx, s, req)
}

func (s *Session) ListAlbumItems(ctx context.Context, req ListAlbumItemsRequest) (ListItemsResponse, error) {
	return Do[ListItemsResponse](ctx, s, req)
}
