package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tlhingan-hol/klingon"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store := klingon.NewMemoryStore([]klingon.Record{
		{ID: 1, Name: "Qong", PartOfSpeech: "v:i", Definition: "sleep (see {Qongbe':n})"},
		{ID: 2, Name: "ghoS", PartOfSpeech: "v:t,1", Definition: "approach"},
		{ID: 3, Name: "ghoS", PartOfSpeech: "v:t,2", Definition: "follow a course"},
	})
	return newHandler(klingon.New(store), []string{"*"}, zap.NewNop())
}

func get(t *testing.T, h http.Handler, path string, params url.Values, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path+"?"+params.Encode(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestDecomposeEndpoint(t *testing.T) {
	h := newTestHandler(t)

	var resp decomposeResponse
	rec := get(t, h, "/api/decompose", url.Values{"word": {"bIQongchoH"}, "class": {"v"}}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.NotEmpty(t, resp.Candidates)
	assert.Equal(t, "bI- + Qong + -choH", resp.Candidates[0].Display)
	assert.Equal(t, "Qong:v", resp.Candidates[0].Filter)
	assert.Equal(t, []string{"-choH"}, resp.Candidates[0].Suffixes)

	var both decomposeResponse
	rec = get(t, h, "/api/decompose", url.Values{"word": {"Qongpu'"}}, &both)
	require.Equal(t, http.StatusOK, rec.Code)
	classes := make(map[string]int)
	for _, c := range both.Candidates {
		classes[c.Class]++
	}
	assert.Equal(t, map[string]int{"noun": 2, "verb": 2}, classes)
}

func TestDecomposeEndpointErrors(t *testing.T) {
	h := newTestHandler(t)

	var errResp errorResponse
	rec := get(t, h, "/api/decompose", url.Values{}, &errResp)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errResp.Error, "word")

	rec = get(t, h, "/api/decompose", url.Values{"word": {"Qong"}, "class": {"adv"}}, &errResp)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errResp.Error, "unsupported word class")

	req := httptest.NewRequest(http.MethodPost, "/api/decompose?word=Qong", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLookupEndpoint(t *testing.T) {
	h := newTestHandler(t)

	var resp lookupResponse
	rec := get(t, h, "/api/lookup", url.Values{"q": {"Qong:v"}}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Results, 1)
	r := resp.Results[0]
	assert.Equal(t, int64(1), r.ID)
	assert.Equal(t, "sleep (see Qongbe')", r.Definition)
	assert.Equal(t, []string{"Qongbe'"}, r.Links)
	assert.Equal(t, "intransitive", r.Entry.Transitivity)
	assert.Nil(t, r.Analysis)

	rec = get(t, h, "/api/lookup", url.Values{"q": {"ghoS:v:2"}}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(3), resp.Results[0].ID)
	assert.Equal(t, 2, resp.Results[0].Entry.Homophone)

	rec = get(t, h, "/api/lookup", url.Values{"q": {"bIQongchoH"}}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].Analysis)
	assert.Equal(t, "bI-", resp.Results[0].Analysis.Prefix)

	rec = get(t, h, "/api/lookup", url.Values{"q": {"tlhIngan"}}, &resp)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, resp.Results)

	rec = get(t, h, "/api/lookup", url.Values{"q": {"  "}}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseEndpoint(t *testing.T) {
	h := newTestHandler(t)

	var resp parseResponse
	rec := get(t, h, "/api/parse", url.Values{"entry": {"Sagh:v:is,slang,bogus"}}, &resp)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sagh (slang)", resp.Entry.FormattedName)
	assert.Equal(t, "v", resp.Entry.PartOfSpeech)
	assert.Equal(t, "intransitive (state or quality)", resp.Entry.Transitivity)
	require.Len(t, resp.Diagnostics, 1)
	assert.Contains(t, resp.Diagnostics[0], "bogus")

	rec = get(t, h, "/api/parse", url.Values{}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/parse?entry=Qong:v", nil)
	req.Header.Set("Origin", "https://example.org")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestOpenStoreImportsOnce(t *testing.T) {
	dir := t.TempDir()
	dictFile := filepath.Join(dir, "entries.txt")
	require.NoError(t, os.WriteFile(dictFile, []byte("Qong|v:i|sleep\nghoS|v:t|approach\n"), 0o644))

	cfg := config{DBPath: filepath.Join(dir, "klingon.db"), Dictionary: dictFile}
	ctx := context.Background()

	store, err := openStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, store.Close())

	store, err = openStore(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	n, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
