package synophotos

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/anitschke/go-synophotos/internal/testaccount"
	"github.com/anitschke/go-synophotos/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests talk to a real Synology Photos server and only run when a test
// account has been configured, see testaccount.FromEnv.

func liveSession(t *testing.T) *Session {
	account, err := testaccount.FromEnv()
	if err != nil {
		t.Skip(err)
	}
	s, err := Login(context.Background(), nil, account.URL, LoginRequest{Account: account.Account, Passwd: account.Password}, SessionOptions{})
	require.NoError(t, err)
	return s
}

func TestLive_LoginFail_InvalidLogin(t *testing.T) {
	account, err := testaccount.FromEnv()
	if err != nil {
		t.Skip(err)
	}
	_, err = Login(context.Background(), nil, account.URL, LoginRequest{Account: "ThisIsNotAValidUser", Passwd: "ThisIsNotAValidPassword"}, SessionOptions{})
	var remoteErr *RemoteError
	assert.True(t, errors.As(err, &remoteErr))
}

func TestLive_CreateAlbumAndList(t *testing.T) {
	s := liveSession(t)
	ctx := context.Background()

	name := "go-synophotos-" + strconv.FormatUint(rand.Uint64(), 36)
	created, err := s.CreateAlbum(ctx, CreateAlbumRequest{Name: name})
	require.NoError(t, err)
	assert.Equal(t, AlbumTypeNormal, created.Album.Type)
	assert.Empty(t, created.ErrorList)

	albums, err := s.AllAlbums(ctx)
	require.NoError(t, err)
	found := false
	for _, a := range albums {
		if a.ID == created.Album.ID {
			found = true
			assert.Equal(t, name, a.Name)
		}
	}
	assert.True(t, found)

	items, err := s.AllAlbumItems(ctx, types.OwnedAlbum(created.Album.ID))
	require.NoError(t, err)
	assert.Empty(t, items)
}
