package main

import (
	"context"
	"strconv"

	synophotos "github.com/anitschke/go-synophotos"
	"github.com/spf13/cobra"
)

func newAlbumsCmd(a *app) *cobra.Command {
	var shared bool

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List albums",
		Long: `List the albums you own, or with --shared the albums other users have
shared with you.

Examples:
  # List your albums
  synophotos albums

  # List albums shared with you
  synophotos albums --shared`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *synophotos.Session) error {
				var albums []synophotos.Album
				var err error
				if shared {
					albums, err = s.AllSharedAlbums(ctx)
				} else {
					albums, err = s.AllAlbums(ctx)
				}
				if err != nil {
					return err
				}
				a.log.Debug().Int("count", len(albums)).Bool("shared", shared).Msg("listed albums")
				return printJSON(cmd, albums)
			})
		},
	}
	cmd.Flags().BoolVar(&shared, "shared", false, "list albums shared with you instead of your own")
	return cmd
}

func newCreateAlbumCmd(a *app) *cobra.Command {
	var items []int64

	cmd := &cobra.Command{
		Use:   "create-album NAME",
		Short: "Create an album",
		Long: `Create a normal album, optionally adding existing items to it.

Examples:
  synophotos create-album "Spring 2023" --item 1001 --item 1002`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, func(ctx context.Context, s *synophotos.Session) error {
				resp, err := s.CreateAlbum(ctx, synophotos.CreateAlbumRequest{Name: args[0], Items: items})
				if err != nil {
					return err
				}
				if len(resp.ErrorList) > 0 {
					a.log.Warn().Int("failed", len(resp.ErrorList)).Msg("some items could not be added to the new album")
				}
				return printJSON(cmd, resp)
			})
		},
	}
	cmd.Flags().Int64SliceVar(&items, "item", nil, "id of an item to add to the album, may be repeated")
	return cmd
}

func newAddItemsCmd(a *app) *cobra.Command {
	var album albumIDFlags

	cmd := &cobra.Command{
		Use:   "add-items ITEM_ID...",
		Short: "Add items to an album",
		Long: `Add existing items to an album you own or one shared with you.

Examples:
  synophotos add-items --album-id 57 1001 1002
  synophotos add-items --passphrase xY7zQw2B 1001`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			albumID, err := album.albumID()
			if err != nil {
				return err
			}
			items := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return err
				}
				items = append(items, id)
			}
			return a.withSession(cmd, func(ctx context.Context, s *synophotos.Session) error {
				resp, err := s.AddItems(ctx, synophotos.AddItemsRequest{Destination: albumID, Items: items})
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
	album.register(cmd)
	return cmd
}
