package udise

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// searchByCode is the search type that matches on the UDISE code.
const searchByCode = "3"

// ErrYearNotFound is returned when the service does not list the requested year.
var ErrYearNotFound = errors.New("academic year not found")

// ResolveKey maps an identifier to the service's internal school key. A miss is
// reported as found=false with a nil error; transport failures return an error.
func (c *Client) ResolveKey(ctx context.Context, identifier string) (string, bool, error) {
	params := url.Values{
		"searchType":  {searchByCode},
		"searchParam": {identifier},
	}
	data, ok, err := c.getEnvelope(ctx, c.endpoints.Search, params)
	if err != nil {
		return "", false, fmt.Errorf("resolve key for %s: %w", identifier, err)
	}
	if !ok {
		return "", false, nil
	}

	items := data
	if !data.IsArray() {
		items = data.Get("content")
	}

	var first string
	for _, item := range items.Array() {
		key := strings.TrimSpace(item.Get("schoolId").String())
		if key == "" {
			continue
		}
		if strings.TrimSpace(item.Get("udiseschCode").String()) == identifier {
			return key, true, nil
		}
		if first == "" {
			first = key
		}
	}
	if first == "" {
		return "", false, nil
	}
	return first, true, nil
}

// ResolveYear returns the label of yearID, such as "2023-24". The year list is
// fetched once and cached after the first successful call.
func (c *Client) ResolveYear(ctx context.Context, yearID int) (string, error) {
	years, err := c.loadYears(ctx)
	if err != nil {
		return "", err
	}
	label, ok := years[strconv.Itoa(yearID)]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrYearNotFound, yearID)
	}
	return label, nil
}

func (c *Client) loadYears(ctx context.Context) (map[string]string, error) {
	c.yearsMu.Lock()
	defer c.yearsMu.Unlock()
	if c.years != nil {
		return c.years, nil
	}

	data, ok, err := c.getEnvelope(ctx, c.endpoints.Years, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch academic years: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("fetch academic years: empty response")
	}

	years := make(map[string]string)
	data.ForEach(func(_, year gjson.Result) bool {
		id := strings.TrimSpace(year.Get("yearId").String())
		desc := strings.TrimSpace(year.Get("yearDesc").String())
		if id != "" && desc != "" {
			years[id] = desc
		}
		return true
	})
	c.years = years
	return years, nil
}
