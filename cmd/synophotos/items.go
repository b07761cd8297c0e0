package main

import (
	"context"
	"errors"
	"time"

	synophotos "github.com/anitschke/go-synophotos"
	"github.com/anitschke/go-synophotos/types"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newItemsCmd(a *app) *cobra.Command {
	var (
		album albumIDFlags
		team  bool
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List photos and videos",
		Long: `List the items in an album, or the items taken in a date range in your
personal space (or with --team the shared space).

Dates are given as YYYY-MM-DD in UTC, --end is exclusive.

Examples:
  # Items in an album
  synophotos items --album-id 57

  # Items taken in March 2023
  synophotos items --start 2023-03-01 --end 2023-04-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if album.set() {
				if team || start != "" || end != "" {
					return errors.New("--album-id/--passphrase can't be combined with --team, --start or --end")
				}
				albumID, err := album.albumID()
				if err != nil {
					return err
				}
				return a.withSession(cmd, func(ctx context.Context, s *synophotos.Session) error {
					items, err := s.AllAlbumItems(ctx, albumID)
					if err != nil {
						return err
					}
					return printJSON(cmd, items)
				})
			}

			startTime, endTime, err := parseRange(start, end)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, s *synophotos.Session) error {
				var items []synophotos.Item
				var err error
				if team {
					items, err = s.AllTeamItems(ctx, startTime, endTime)
				} else {
					items, err = s.AllItems(ctx, startTime, endTime)
				}
				if err != nil {
					return err
				}
				return printJSON(cmd, items)
			})
		},
	}
	album.register(cmd)
	cmd.Flags().BoolVar(&team, "team", false, "list items in the shared space")
	cmd.Flags().StringVar(&start, "start", "", "earliest date to include (default 1970-01-01)")
	cmd.Flags().StringVar(&end, "end", "", "date to stop before (default tomorrow)")
	return cmd
}

func parseRange(start string, end string) (types.UnixTime, types.UnixTime, error) {
	startTime := time.Unix(0, 0).UTC()
	endTime := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)

	var err error
	if start != "" {
		if startTime, err = time.Parse(dateLayout, start); err != nil {
			return types.UnixTime{}, types.UnixTime{}, err
		}
	}
	if end != "" {
		if endTime, err = time.Parse(dateLayout, end); err != nil {
			return types.UnixTime{}, types.UnixTime{}, err
		}
	}
	if !endTime.After(startTime) {
		return types.UnixTime{}, types.UnixTime{}, errors.New("--end must be after --start")
	}
	return types.NewUnixTime(startTime), types.NewUnixTime(endTime), nil
}
