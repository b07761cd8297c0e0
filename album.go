package synophotos

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/anitschke/go-synophotos/encoding"
	"github.com/anitschke/go-synophotos/types"
)

const (
	normalAlbumAPI  = "SYNO.Foto.Browse.NormalAlbum"
	albumAPI        = "SYNO.Foto.Browse.Album"
	sharingMiscAPI  = "SYNO.Foto.Sharing.Misc"
	AlbumTypeNormal = "normal"
)

var (
	ErrEmptyAlbumName = errors.New("album name must not be empty")
)

// Album is an album as returned by the album APIs.
type Album struct {
	CantMigrateCondition json.RawMessage `json:"cant_migrate_condition"`
	CreateTime           int64           `json:"create_time"`
	EndTime              int64           `json:"end_time"`
	FreezeAlbum          bool            `json:"freeze_album"`
	ID                   int64           `json:"id"`
	ItemCount            int64           `json:"item_count"`
	Name                 string          `json:"name"`
	OwnerUserID          int64           `json:"owner_user_id"`
	Passphrase           string          `json:"passphrase"`
	Shared               bool            `json:"shared"`
	SortBy               string          `json:"sort_by"`
	SortDirection        string          `json:"sort_direction"`
	StartTime            int64           `json:"start_time"`
	TemporaryShared      bool            `json:"temporary_shared"`
	Type                 string          `json:"type"`
	Version              int64           `json:"version"`
}

// CreateAlbumRequest creates a normal album, optionally already holding some
// items.
type CreateAlbumRequest struct {
	Name  string
	Items []int64
}

// CreateAlbumResponse is returned from creating an album. ErrorList holds any
// items that could not be added to the new album.
type CreateAlbumResponse struct {
	Album     Album             `json:"album"`
	ErrorList []json.RawMessage `json:"error_list"`
}

var _ Request[CreateAlbumResponse] = CreateAlbumRequest{}

func (r CreateAlbumRequest) Query() (encoding.Query, error) {
	if r.Name == "" {
		return encoding.Query{}, ErrEmptyAlbumName
	}
	q := encoding.NewQuery(normalAlbumAPI, 1, "create")
	q.Add("name", r.Name)
	q.Add("item", encoding.IDList(r.Items))
	return q, nil
}

func (CreateAlbumRequest) ResponseType() CreateAlbumResponse {
	return CreateAlbumResponse{}
}

// AddItemsRequest adds existing items to an album.
type AddItemsRequest struct {
	Destination types.AlbumID
	Items       []int64
}

type AddItemsResponse struct {
	ErrorList []json.RawMessage `json:"error_list"`
}

var _ Request[AddItemsResponse] = AddItemsRequest{}

func (r AddItemsRequest) Query() (encoding.Query, error) {
	q := encoding.NewQuery(normalAlbumAPI, 1, "add_item")
	q.Add("item", encoding.IDList(r.Items))
	if err := r.Destination.AddTo(&q, "id"); err != nil {
		return encoding.Query{}, err
	}
	return q, nil
}

func (AddItemsRequest) ResponseType() AddItemsResponse {
	return AddItemsResponse{}
}

// ListAlbumsRequest lists a page of the albums owned by the logged in user.
type ListAlbumsRequest struct {
	Offset uint32
	Limit  uint32
}

type ListAlbumsResponse struct {
	List []Album `json:"list"`
}

var _ Request[ListAlbumsResponse] = ListAlbumsRequest{}

func (r ListAlbumsRequest) Query() (encoding.Query, error) {
	q := encoding.NewQuery(albumAPI, 2, "list")
	q.AddUint("offset", r.Offset)
	q.AddUint("limit", r.Limit)
	return q, nil
}

func (ListAlbumsRequest) ResponseType() ListAlbumsResponse {
	return ListAlbumsResponse{}
}

// ListSharedAlbumsRequest lists a page of the albums other users have shared
// with the logged in user.
type ListSharedAlbumsRequest struct {
	Offset uint32
	Limit  uint32
}

var _ Request[ListAlbumsResponse] = ListSharedAlbumsRequest{}

func (r ListSharedAlbumsRequest) Query() (encoding.Query, error) {
	q := encoding.NewQuery(sharingMiscAPI, 2, "list_shared_with_me_album")
	q.AddUint("offset", r.Offset)
	q.AddUint("limit", r.Limit)
	return q, nil
}

func (ListSharedAlbumsRequest) ResponseType() ListAlbumsResponse {
	return ListAlbumsResponse{}
}

// CreateAlbum is shorthand for Do with a CreateAlbumRequest.
func (s *Session) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (CreateAlbumResponse, error) {
	return Do[CreateAlbumResponse](ctx, s, req)
}

func (s *Session) AddItems(ctx context.Context, req AddItemsRequest) (AddItemsResponse, error) {
	return Do[AddItemsResponse](ctx, s, req)
}

func (s *Session) ListAlbums(ctx context.Context, req ListAlbumsRequest) (ListAlbumsResponse, error) {
	return Do[ListAlbumsResponse](ctx, s, req)
}

func (s *Session) ListSharedAlbums(ctx context.Context, req ListSharedAlbumsRequest) (ListAlbumsResponse, error) {
	return Do[ListAlbumsResponse](ctx, s, req)
}
