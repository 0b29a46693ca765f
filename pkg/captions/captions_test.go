package captions_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-studioedit/pkg/captions"
	"github.com/goliatone/go-studioedit/pkg/host"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, *host.HandlerRuntime, *[]string) {
	t.Helper()
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		requests = append(requests, r.Method+" "+r.URL.Path+" "+string(raw))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	rt, err := host.NewHandlerRuntime(srv.URL, "usage-1")
	require.NoError(t, err)
	return srv, rt, &requests
}

func TestFetch_Assets(t *testing.T) {
	srv, rt, requests := newServer(t, http.StatusOK,
		`[{"download_url":"https://cdn/a.vtt","name_file":"a.vtt"},{"download_url":"https://cdn/b.vtt","name_file":"<b>b</b>.vtt"}]`)

	client, err := captions.NewClient(rt, captions.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	result, err := client.Fetch(context.Background(), "nb:cid:UUID:1")
	require.NoError(t, err)
	assert.Empty(t, result.Message)
	require.Len(t, result.Assets, 2)
	assert.Equal(t, "https://cdn/a.vtt", result.Assets[0].DownloadURL)
	assert.Equal(t, "b.vtt", result.Assets[1].NameFile)

	require.Len(t, *requests, 1)
	assert.Equal(t, `POST /xblock/usage-1/handler/get_captions {"asset_id":"nb:cid:UUID:1"}`, (*requests)[0])
}

func TestFetch_EmptyList(t *testing.T) {
	srv, rt, _ := newServer(t, http.StatusOK, `[]`)
	client, err := captions.NewClient(rt, captions.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	result, err := client.Fetch(context.Background(), "asset")
	require.NoError(t, err)
	assert.Equal(t, captions.NoCaptionsMessage, result.Message)
	assert.Nil(t, result.Assets)
}

func TestFetch_ErrorEnvelope(t *testing.T) {
	srv, rt, _ := newServer(t, http.StatusOK, `{"result":"error","message":"Asset <script>x</script>missing"}`)
	client, err := captions.NewClient(rt, captions.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	result, err := client.Fetch(context.Background(), "asset")
	require.NoError(t, err)
	assert.Equal(t, "Asset missing", result.Message)
}

func TestFetch_TransportError(t *testing.T) {
	srv, rt, _ := newServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	client, err := captions.NewClient(rt, captions.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "asset")
	var terr *captions.TransportError
	require.True(t, errors.As(err, &terr), "want *TransportError, got %v", err)
	assert.Equal(t, http.StatusInternalServerError, terr.Status)
	assert.JSONEq(t, `{"error":"boom"}`, string(terr.Body))
}

func TestFetch_MalformedAndValidation(t *testing.T) {
	srv, rt, _ := newServer(t, http.StatusOK, `{"unexpected":true}`)
	client, err := captions.NewClient(rt, captions.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "asset")
	assert.ErrorIs(t, err, captions.ErrMalformedResponse)

	_, err = client.Fetch(context.Background(), " ")
	assert.ErrorIs(t, err, captions.ErrAssetRequired)

	_, err = captions.NewClient(nil)
	assert.Error(t, err)
}

func TestFieldValue(t *testing.T) {
	choices := []captions.Choice{
		{Asset: captions.Asset{DownloadURL: "https://cdn/en.vtt"}, Checked: true, Language: captions.Language{Code: "en", Label: "English"}},
		{Asset: captions.Asset{DownloadURL: "https://cdn/fr.vtt"}, Checked: false, Language: captions.Language{Code: "fr", Label: "French"}},
		{Asset: captions.Asset{DownloadURL: "https://cdn/es.vtt"}, Checked: true, Language: captions.Language{Code: "es", Label: "Spanish"}},
	}

	value, err := captions.FieldValue(choices)
	require.NoError(t, err)

	var tracks []captions.Track
	require.NoError(t, json.Unmarshal([]byte(value), &tracks))
	assert.Equal(t, []captions.Track{
		{Kind: "subtitles", Src: "https://cdn/en.vtt", SrcLang: "en", Label: "English"},
		{Kind: "subtitles", Src: "https://cdn/es.vtt", SrcLang: "es", Label: "Spanish"},
	}, tracks)

	empty, err := captions.FieldValue(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}
