package udise

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/schoolgis/schoolsync/internal/schools"
)

// FetchAll retrieves every facet of one school for yearID concurrently. A facet
// whose call fails or returns nothing is left nil; only cancellation is an error.
func (c *Client) FetchAll(ctx context.Context, key string, yearID int) (*schools.Payload, error) {
	var (
		payload = &schools.Payload{}
		mu      sync.Mutex
		social  = make(map[schools.SocialFlag]json.RawMessage, len(schools.SocialFlags))
		params  = yearParams(key, yearID)
	)

	var g errgroup.Group
	g.Go(func() error {
		if obj, ok := c.facet(ctx, c.endpoints.Report, params); ok {
			payload.Report = schools.ParseReport(obj)
		}
		return nil
	})
	g.Go(func() error {
		if obj, ok := c.facet(ctx, c.endpoints.Profile, params); ok {
			payload.Profile = schools.ParseProfile(obj)
		}
		return nil
	})
	g.Go(func() error {
		if obj, ok := c.facet(ctx, c.endpoints.Facility, params); ok {
			payload.Facility = schools.ParseFacility(obj)
		}
		return nil
	})
	g.Go(func() error {
		if obj, ok := c.facet(ctx, c.endpoints.Stats, params); ok {
			payload.Stats = schools.ParseStats(obj)
		}
		return nil
	})
	for _, flag := range schools.SocialFlags {
		g.Go(func() error {
			raw, ok := c.socialFacet(ctx, key, yearID, flag)
			if ok {
				mu.Lock()
				social[flag] = raw
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch facets for key %s: %w", key, err)
	}
	if len(social) > 0 {
		payload.Social = social
	}
	return payload, nil
}

// facet returns the object inside a facet envelope. An array envelope yields its first element.
func (c *Client) facet(ctx context.Context, path string, params url.Values) (gjson.Result, bool) {
	data, ok, err := c.getEnvelope(ctx, path, params)
	if err != nil {
		slog.DebugContext(ctx, "Facet fetch failed", "endpoint", path, "error", err)
		return gjson.Result{}, false
	}
	if !ok {
		return gjson.Result{}, false
	}
	if data.IsArray() {
		data = data.Get("0")
	}
	if !data.IsObject() {
		return gjson.Result{}, false
	}
	return data, true
}

func (c *Client) socialFacet(ctx context.Context, key string, yearID int, flag schools.SocialFlag) (json.RawMessage, bool) {
	params := yearParams(key, yearID)
	params.Set("flag", strconv.Itoa(int(flag)))

	data, ok, err := c.getEnvelope(ctx, c.endpoints.Social, params)
	if err != nil {
		slog.DebugContext(ctx, "Social facet fetch failed", "flag", int(flag), "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	rows := data.Get("schEnrollmentYearDataDTOS")
	if !rows.IsArray() {
		return nil, false
	}
	return json.RawMessage(rows.Raw), true
}
