// Package gis fetches school identity and coordinates from the ArcGIS MapServer
// query endpoint of the GIS portal.
package gis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/schoolgis/schoolsync/internal/httpclient"
	"github.com/schoolgis/schoolsync/internal/schools"
)

// MaxBatchSize is the largest number of object ids the portal accepts in one query.
const MaxBatchSize = 100

const outFields = "objectid,latitude,longitude,pincode,schcd,stname,dtname,stcode11,dtcode11"

// ErrPortal is returned when the portal answers with a JSON error object.
var ErrPortal = errors.New("gis portal returned an error")

// Fetcher queries the portal for a batch of object ids.
type Fetcher struct {
	client   httpclient.Client
	queryURL string
}

// NewFetcher creates a Fetcher for the MapServer query URL.
func NewFetcher(client httpclient.Client, queryURL string) *Fetcher {
	return &Fetcher{client: client, queryURL: queryURL}
}

// FetchBatch returns the directory entries for objectIDs within region.
// Features without a school code or object id are dropped.
func (f *Fetcher) FetchBatch(
	ctx context.Context, objectIDs []string, region schools.Region,
) ([]schools.DirectoryEntry, error) {
	if len(objectIDs) == 0 {
		return nil, nil
	}
	if len(objectIDs) > MaxBatchSize {
		return nil, fmt.Errorf("batch of %d object ids exceeds the limit of %d", len(objectIDs), MaxBatchSize)
	}

	body, err := f.client.Get(ctx, f.buildURL(objectIDs, region))
	if err != nil {
		return nil, fmt.Errorf("gis query: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("gis query: response is not valid JSON")
	}

	doc := gjson.ParseBytes(body)
	if e := doc.Get("error"); e.Exists() {
		return nil, fmt.Errorf("%w: %s (code %s)", ErrPortal, e.Get("message").String(), e.Get("code").String())
	}

	var entries []schools.DirectoryEntry
	for _, feature := range doc.Get("features").Array() {
		attrs := feature.Get("attributes")
		entry, ok := parseEntry(attrs, region)
		if !ok {
			slog.DebugContext(ctx, "Dropping GIS feature without identity",
				"region", region.String(),
				"attributes", attrs.Raw)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (f *Fetcher) buildURL(objectIDs []string, region schools.Region) string {
	q := url.Values{}
	q.Set("f", "json")
	q.Set("outFields", outFields)
	q.Set("objectIds", strings.Join(objectIDs, ","))
	q.Set("where", fmt.Sprintf("stcode11='%s' AND dtcode11='%s'",
		quoteLiteral(region.StateCode), quoteLiteral(region.DistrictCode)))
	q.Set("returnGeometry", "false")

	sep := "?"
	if strings.Contains(f.queryURL, "?") {
		sep = "&"
	}
	return f.queryURL + sep + q.Encode()
}

// quoteLiteral doubles single quotes so a code cannot close the where literal.
func quoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func parseEntry(attrs gjson.Result, region schools.Region) (schools.DirectoryEntry, bool) {
	identifier := strings.TrimSpace(attrs.Get("schcd").String())
	objectID := strings.TrimSpace(attrs.Get("objectid").String())
	if identifier == "" || objectID == "" {
		return schools.DirectoryEntry{}, false
	}

	entry := schools.DirectoryEntry{
		Identifier:   identifier,
		ObjectID:     objectID,
		Latitude:     coordinate(attrs.Get("latitude")),
		Longitude:    coordinate(attrs.Get("longitude")),
		Pincode:      strings.TrimSpace(attrs.Get("pincode").String()),
		StateName:    strings.TrimSpace(attrs.Get("stname").String()),
		DistrictName: strings.TrimSpace(attrs.Get("dtname").String()),
		StateCode:    firstNonEmpty(attrs.Get("stcode11").String(), region.StateCode),
		DistrictCode: firstNonEmpty(attrs.Get("dtcode11").String(), region.DistrictCode),
	}
	return entry, true
}

func coordinate(v gjson.Result) *float64 {
	switch v.Type {
	case gjson.Number:
		f := v.Float()
		return &f
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
