// Package udise talks to the UDISE+ statistics service: it resolves a school's
// internal key, resolves academic year labels and fetches the per-school facets.
package udise

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/schoolgis/schoolsync/internal/httpclient"
)

// Endpoints are the service paths relative to the base URL.
type Endpoints struct {
	Search   string `yaml:"search"`
	Years    string `yaml:"years"`
	Profile  string `yaml:"profile"`
	Facility string `yaml:"facility"`
	Report   string `yaml:"report"`
	Stats    string `yaml:"stats"`
	Social   string `yaml:"social"`
}

// DefaultEndpoints returns the paths used by the public statistics service.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Search:   "search-schools",
		Years:    "master/year",
		Profile:  "school/profile",
		Facility: "school/facility",
		Report:   "school/report-card",
		Stats:    "school-statistics/enrolment-teacher",
		Social:   "getSocialData",
	}
}

// withDefaults fills every empty path from DefaultEndpoints.
func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return strings.Trim(v, "/")
	}
	return Endpoints{
		Search:   pick(e.Search, d.Search),
		Years:    pick(e.Years, d.Years),
		Profile:  pick(e.Profile, d.Profile),
		Facility: pick(e.Facility, d.Facility),
		Report:   pick(e.Report, d.Report),
		Stats:    pick(e.Stats, d.Stats),
		Social:   pick(e.Social, d.Social),
	}
}

// Client is the statistics service client. It is safe for concurrent use.
type Client struct {
	http      httpclient.Client
	baseURL   string
	endpoints Endpoints

	yearsMu sync.Mutex
	years   map[string]string
}

// NewClient creates a Client for baseURL.
func NewClient(hc httpclient.Client, baseURL string, endpoints Endpoints) *Client {
	return &Client{
		http:      hc,
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints.withDefaults(),
	}
}

func (c *Client) endpointURL(path string, params url.Values) string {
	u := c.baseURL + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// getEnvelope fetches path and returns the envelope's data member. ok is false when
// the envelope reports a failure or carries no data.
func (c *Client) getEnvelope(ctx context.Context, path string, params url.Values) (gjson.Result, bool, error) {
	body, err := c.http.Get(ctx, c.endpointURL(path, params))
	if err != nil {
		return gjson.Result{}, false, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, false, fmt.Errorf("%s: response is not valid JSON", path)
	}

	doc := gjson.ParseBytes(body)
	if status := doc.Get("status"); status.Exists() && !status.Bool() {
		return gjson.Result{}, false, nil
	}
	data := doc.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return gjson.Result{}, false, nil
	}
	return data, true, nil
}

func yearParams(key string, yearID int) url.Values {
	return url.Values{
		"schoolId": {key},
		"yearId":   {strconv.Itoa(yearID)},
	}
}
