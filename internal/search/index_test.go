package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiswalarts/artshop/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// fakeES answers cluster info requests with infoStatus and everything
// else with the configured status and body.
type fakeES struct {
	mu         sync.Mutex
	status     int
	body       string
	infoStatus int
	requests   []recordedRequest
}

func (f *fakeES) RoundTrip(req *http.Request) (*http.Response, error) {
	var body string
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		body = string(b)
	}
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("X-Elastic-Product", "Elasticsearch")

	if req.URL.Path == "/" {
		status := f.infoStatus
		if status == 0 {
			status = http.StatusOK
		}
		return &http.Response{
			StatusCode: status,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader(`{"version":{"number":"9.0.0"}}`)),
			Request:    req,
		}, nil
	}

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: req.Method, Path: req.URL.Path, Body: body})
	f.mu.Unlock()
	return &http.Response{
		StatusCode: f.status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Request:    req,
	}, nil
}

func (f *fakeES) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newTestIndex(t *testing.T, fake *fakeES) *ESIndex {
	t.Helper()
	idx, err := NewESIndex(Config{URL: "http://es.test:9200", Index: "products", Transport: fake})
	require.NoError(t, err)
	return idx
}

func TestESIndex_IndexProduct(t *testing.T) {
	t.Parallel()

	fake := &fakeES{status: http.StatusCreated, body: `{"result":"created"}`}
	idx := newTestIndex(t, fake)

	err := idx.IndexProduct(context.Background(), &models.Product{ID: 5, Name: "Sunset", Slug: "sunset"})
	require.NoError(t, err)

	req := fake.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/products/_doc/5", req.Path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.Body), &doc))
	assert.Equal(t, "Sunset", doc["name"])
	assert.Equal(t, "sunset", doc["slug"])
}

func TestESIndex_IndexProduct_ErrorStatus(t *testing.T) {
	t.Parallel()

	fake := &fakeES{status: http.StatusBadRequest, body: `{"error":"mapper_parsing_exception"}`}
	err := newTestIndex(t, fake).IndexProduct(context.Background(), &models.Product{ID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "mapper_parsing_exception")
}

func TestESIndex_DeleteProduct_MissingIsNotAnError(t *testing.T) {
	t.Parallel()

	fake := &fakeES{status: http.StatusNotFound, body: `{"result":"not_found"}`}
	idx := newTestIndex(t, fake)

	require.NoError(t, idx.DeleteProduct(context.Background(), 9))
	req := fake.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/products/_doc/9", req.Path)
}

func TestESIndex_Search(t *testing.T) {
	t.Parallel()

	fake := &fakeES{status: http.StatusOK, body: `{
		"hits": {
			"total": {"value": 2},
			"hits": [
				{"_source": {"id": 1, "name": "Sunset", "slug": "sunset"}},
				{"_source": {"id": 3, "name": "Sunrise", "slug": "sunrise"}}
			]
		}
	}`}
	idx := newTestIndex(t, fake)

	total, items, err := idx.Search(context.Background(), "sunst", 0, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)
	assert.Equal(t, "sunrise", items[1].Slug)

	req := fake.last(t)
	assert.Equal(t, "/products/_search", req.Path)
	assert.Contains(t, req.Body, `"fuzziness":"AUTO"`)
	assert.Contains(t, req.Body, `"query":"sunst"`)
}

func TestESIndex_Ping(t *testing.T) {
	t.Parallel()

	ok := newTestIndex(t, &fakeES{})
	assert.NoError(t, ok.Ping(context.Background()))

	down := newTestIndex(t, &fakeES{infoStatus: http.StatusInternalServerError})
	assert.Error(t, down.Ping(context.Background()))
}

func TestNop(t *testing.T) {
	t.Parallel()

	var idx Index = Nop{}
	assert.False(t, idx.Enabled())
	assert.NoError(t, idx.IndexProduct(context.Background(), &models.Product{}))
	assert.NoError(t, idx.DeleteProduct(context.Background(), 1))
	total, items, err := idx.Search(context.Background(), "x", 0, 10)
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
}
