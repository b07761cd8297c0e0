package synophotos

import (
	"context"
	"fmt"

	"github.com/anitschke/go-synophotos/types"
)

// PageSize is the number of elements asked for per request when listing
// everything in one go. Same as the Synology Photos web UI.
const PageSize = uint32(100)

// pageFunc fetches the elements starting at offset. Offsets start at 0.
type pageFunc[T any] func(ctx context.Context, offset uint32, limit uint32) ([]T, error)

// allPages keeps requesting pages until it gets one that isn't full.
func allPages[T any](ctx context.Context, pageSize uint32, page pageFunc[T]) ([]T, error) {
	var all []T
	for offset := uint32(0); ; offset += pageSize {
		elements, err := page(ctx, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get page at offset %d: %w", offset, err)
		}
		all = append(all, elements...)
		if uint32(len(elements)) < pageSize {
			return all, nil
		}
	}
}

// AllAlbums lists every album owned by the logged in user.
func (s *Session) AllAlbums(ctx context.Context) ([]Album, error) {
	return allPages(ctx, PageSize, func(ctx context.Context, offset uint32, limit uint32) ([]Album, error) {
		resp, err := s.ListAlbums(ctx, ListAlbumsRequest{Offset: offset, Limit: limit})
		return resp.List, err
	})
}

// AllSharedAlbums lists every album shared with the logged in user.
func (s *Session) AllSharedAlbums(ctx context.Context) ([]Album, error) {
	return allPages(ctx, PageSize, func(ctx context.Context, offset uint32, limit uint32) ([]Album, error) {
		resp, err := s.ListSharedAlbums(ctx, ListSharedAlbumsRequest{Offset: offset, Limit: limit})
		return resp.List, err
	})
}

// AllItems lists every item in the personal space taken between start and
// end.
func (s *Session) AllItems(ctx context.Context, start types.UnixTime, end types.UnixTime) ([]Item, error) {
	return allPages(ctx, PageSize, func(ctx context.Context, offset uint32, limit uint32) ([]Item, error) {
		resp, err := s.ListItems(ctx, ListItemsRequest{Offset: offset, Limit: limit, StartTime: start, EndTime: end})
		return resp.List, err
	})
}

// AllTeamItems lists every item in the shared space taken between start and
// end.
func (s *Session) AllTeamItems(ctx context.Context, start types.UnixTime, end types.UnixTime) ([]Item, error) {
	return allPages(ctx, PageSize, func(ctx context.Context, offset uint32, limit uint32) ([]Item, error) {
		resp, err := s.ListTeamItems(ctx, ListTeamItemsRequest{Offset: offset, Limit: limit, StartTime: start, EndTime: end})
		return resp.List, err
	})
}

// AllAlbumItems lists every item in an album.
func (s *Session) AllAlbumItems(ctx context.Context, album types.AlbumID) ([]Item, error) {
	return allPages(ctx, PageSize, func(ctx context.Context, offset uint32, limit uint32) ([]Item, error) {
		resp, err := s.ListAlbumItems(ctx, ListAlbumItemsRequest{Offset: offset, Limit: limit, Album: album})
		return resp.List, err
	})
}
