// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/cgspace-agent/internal/httputil"
	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// discoverPath is the DSpace 7 search endpoint, relative to the API base.
const discoverPath = "/api/discover/search/objects"

// dateSortOrder asks the repository for newest-first results. The API's
// own order is trusted and preserved; results are not re-sorted here.
const dateSortOrder = "dc.date.issued,DESC"

// DSpaceBackend queries a DSpace 7 REST repository (CGSpace in production)
// and normalizes the nested discover response into canonical records.
// Responses are cached by (query, page, size) for Config.CacheTTL.
type DSpaceBackend struct {
	Client *http.Client
	Config types.RemoteSearchConfig
	Page   int

	cache *resultCache
}

// NewDSpaceBackend builds a remote backend with a fresh cache.
func NewDSpaceBackend(client *http.Client, cfg types.RemoteSearchConfig) *DSpaceBackend {
	return &DSpaceBackend{
		Client: client,
		Config: cfg,
		cache:  newResultCache(cfg.CacheTTL),
	}
}

// Name returns the backend identifier.
func (b *DSpaceBackend) Name() string { return "cgspace" }

// Search queries the repository for one page of results. An empty query
// returns an empty result without issuing a request. Failures are typed:
// *NetworkError for transport and HTTP status failures, *ParseError for
// an unexpected response shape.
func (b *DSpaceBackend) Search(ctx context.Context, query string) ([]types.Record, error) {
	size := b.Config.PageSize
	if size <= 0 {
		size = 50
	}
	return b.SearchPage(ctx, query, b.Page, size)
}

// SearchPage is Search with explicit paging.
func (b *DSpaceBackend) SearchPage(ctx context.Context, query string, page, size int) ([]types.Record, error) {
	if query == "" {
		return nil, nil
	}

	if cached, ok := b.cache.get(query, page, size); ok {
		return cached, nil
	}

	params := url.Values{
		"query": {query},
		"page":  {fmt.Sprintf("%d", page)},
		"size":  {fmt.Sprintf("%d", size)},
		"sort":  {dateSortOrder},
	}
	reqURL := b.Config.APIBase + discoverPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", b.Config.UserAgent)
	if b.Config.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+b.Config.APIToken)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, 0)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("repository request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &NetworkError{Err: fmt.Errorf("repository returned HTTP %d", resp.StatusCode)}
	}

	var dr discoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("decoding repository response: %w", err)}
	}
	if dr.Embedded == nil || dr.Embedded.SearchResult == nil {
		return nil, &ParseError{Err: fmt.Errorf("response missing _embedded.searchResult")}
	}

	var records []types.Record
	if dr.Embedded.SearchResult.Embedded != nil {
		for _, obj := range dr.Embedded.SearchResult.Embedded.Objects {
			if obj.Embedded == nil {
				continue
			}
			io := obj.Embedded.IndexableObject
			records = append(records, NormalizeRemote(io.Metadata, io.Name, io.Handle, b.Config.SiteBase))
		}
	}

	b.cache.put(query, page, size, records)
	return records, nil
}

// DSpace discover response JSON structures. The wrapper levels are
// pointers so a body missing them is detectable as a shape error rather
// than silently decoding to an empty result.
type discoverResponse struct {
	Embedded *discoverEmbedded `json:"_embedded"`
}

type discoverEmbedded struct {
	SearchResult *searchResult `json:"searchResult"`
}

type searchResult struct {
	Embedded *searchResultEmbedded `json:"_embedded"`
}

type searchResultEmbedded struct {
	Objects []searchObject `json:"objects"`
}

type searchObject struct {
	Embedded *objectEmbedded `json:"_embedded"`
}

type objectEmbedded struct {
	IndexableObject indexableObject `json:"indexableObject"`
}

type indexableObject struct {
	Name     string   `json:"name"`
	Handle   string   `json:"handle"`
	Metadata Metadata `json:"metadata"`
}
