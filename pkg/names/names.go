// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package names resolves player IDs to display names through a remote stats
// service, with a refresh-interval cache in front so repeated lookups for
// roster rendering do not hammer the API.
package names

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"

	"github.com/AccelByte/elo-team-matchmaker/pkg/config"
	"github.com/AccelByte/elo-team-matchmaker/pkg/playerdata"
)

// Fetcher is the remote half of the resolver. Split out so tests can swap
// the HTTP client for a canned one.
type Fetcher interface {
	FetchName(ctx context.Context, id playerdata.ID) (string, error)
}

// Resolver caches display names for a refresh interval. Expired entries are
// re-fetched on the next lookup; concurrent lookups for the same ID share
// one fetch.
type Resolver struct {
	fetcher Fetcher
	cache   *gocache.Cache
	group   singleflight.Group
}

func NewResolver(fetcher Fetcher, refresh time.Duration) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		cache:   gocache.New(refresh, 2*refresh),
	}
}

// Name returns the display name for a player ID, hitting the remote service
// only when the cached value is missing or older than the refresh interval.
func (r *Resolver) Name(ctx context.Context, id playerdata.ID) (string, error) {
	if cached, ok := r.cache.Get(string(id)); ok {
		return cached.(string), nil
	}

	name, err, _ := r.group.Do(string(id), func() (interface{}, error) {
		if cached, ok := r.cache.Get(string(id)); ok {
			return cached.(string), nil
		}
		fetched, err := r.fetcher.FetchName(ctx, id)
		if err != nil {
			return "", err
		}
		r.cache.SetDefault(string(id), fetched)
		return fetched, nil
	})
	if err != nil {
		return "", err
	}
	return name.(string), nil
}

// Client fetches display names from the stats API.
type Client struct {
	baseURL string
	apiKey  string
	client  *fasthttp.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.NameAPIBaseURL,
		apiKey:  cfg.NameAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type statsResponse struct {
	Name string `json:"name"`
}

func (c *Client) FetchName(ctx context.Context, id playerdata.ID) (string, error) {
	if c.baseURL == "" {
		return string(id), nil
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fmt.Sprintf("%s/player/%s/stats?api_key=%s", c.baseURL, id, c.apiKey))
	req.Header.SetMethod(fasthttp.MethodGet)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return "", err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return "", err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return "", fmt.Errorf("name lookup for %s: status %d", id, resp.StatusCode())
	}

	var result statsResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", err
	}
	return result.Name, nil
}
