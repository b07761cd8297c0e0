package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	synophotos "github.com/anitschke/go-synophotos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formRecorder struct {
	mu    sync.Mutex
	forms []url.Values
}

func (r *formRecorder) add(form url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms = append(r.forms, form)
}

func (r *formRecorder) get(i int) url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.forms[i]
}

func (r *formRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// newTestServer fakes the handful of APIs the commands use and records the
// forms it receives.
func newTestServer(t *testing.T) (*httptest.Server, *formRecorder) {
	forms := &formRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		forms.add(form)

		switch form.Get("api") + "." + form.Get("method") {
		case "SYNO.API.Auth.login":
			io.WriteString(w, `{"success": true, "data": {"did": "d", "sid": "s"}}`)
		case "SYNO.Foto.Browse.Album.list":
			io.WriteString(w, `{"success": true, "data": {"list": [{"id": 57, "name": "Spring 2023", "type": "normal"}]}}`)
		case "SYNO.Foto.Browse.NormalAlbum.create":
			io.WriteString(w, `{"success": true, "data": {"album": {"id": 58, "name": "new", "type": "normal"}, "error_list": []}}`)
		case "SYNO.Foto.Browse.Item.list":
			io.WriteString(w, `{"success": true, "data": {"list": [{"id": 1001, "filename": "a.jpg", "time": 1681047480}]}}`)
		default:
			io.WriteString(w, `{"success": false, "error": {"code": 103}}`)
		}
	}))
	t.Cleanup(server.Close)
	return server, forms
}

func runCmd(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Setenv("SYNOPHOTOS_URL", serverURL)
	t.Setenv("SYNOPHOTOS_ACCOUNT", "photographer")
	t.Setenv("SYNOPHOTOS_PASSWORD", "hunter2")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestAlbumsCmd(t *testing.T) {
	server, forms := newTestServer(t)

	out, err := runCmd(t, server.URL, "albums")
	require.NoError(t, err)

	var albums []synophotos.Album
	require.NoError(t, json.Unmarshal([]byte(out), &albums))
	require.Len(t, albums, 1)
	assert.Equal(t, "Spring 2023", albums[0].Name)

	require.Equal(t, 2, forms.count())
	assert.Equal(t, "photographer", forms.get(0).Get("account"))
	assert.Equal(t, "s", forms.get(1).Get("_sid"))
}

func TestCreateAlbumCmd(t *testing.T) {
	server, forms := newTestServer(t)

	out, err := runCmd(t, server.URL, "create-album", "new", "--item", "1001", "--item", "1002")
	require.NoError(t, err)

	var resp synophotos.CreateAlbumResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, int64(58), resp.Album.ID)
	assert.Equal(t, "[1001,1002]", forms.get(1).Get("item"))
}

func TestItemsCmd_Album(t *testing.T) {
	server, forms := newTestServer(t)

	out, err := runCmd(t, server.URL, "items", "--passphrase", "xY7zQw2B")
	require.NoError(t, err)

	var items []synophotos.Item
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "a.jpg", items[0].Filename)
	assert.Equal(t, "xY7zQw2B", forms.get(1).Get("passphrase"))
}

func TestItemsCmd_Range(t *testing.T) {
	server, forms := newTestServer(t)

	_, err := runCmd(t, server.URL, "items", "--start", "2023-03-01", "--end", "2023-04-01")
	require.NoError(t, err)
	assert.Equal(t, "1677628800", forms.get(1).Get("start_time"))
	assert.Equal(t, "1680307200", forms.get(1).Get("end_time"))
}

func TestCmd_Errors(t *testing.T) {
	server, _ := newTestServer(t)

	type testData struct {
		name     string
		args     []string
		expError string
	}

	testCases := []testData{
		{
			name:     "remoteError",
			args:     []string{"add-items", "--album-id", "57", "1"},
			expError: "synology photos error code 103",
		},
		{
			name:     "bothAlbumFlags",
			args:     []string{"add-items", "--album-id", "57", "--passphrase", "p", "1"},
			expError: errAlbumFlags.Error(),
		},
		{
			name:     "badItemID",
			args:     []string{"add-items", "--album-id", "57", "one"},
			expError: "invalid syntax",
		},
		{
			name:     "backwardsRange",
			args:     []string{"items", "--start", "2023-04-01", "--end", "2023-03-01"},
			expError: "--end must be after --start",
		},
		{
			name:     "badURL",
			args:     []string{"albums", "--url", "not a url"},
			expError: "SYNOPHOTOS_URL",
		},
	}

	for _, td := range testCases {
		t.Run(td.name, func(t *testing.T) {
			_, err := runCmd(t, server.URL, td.args...)
			assert.ErrorContains(t, err, td.expError)
		})
	}
}

func TestParseRange_Defaults(t *testing.T) {
	start, end, err := parseRange("", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), start.Unix())
	assert.True(t, end.After(time.Now()))
}
