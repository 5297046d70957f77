package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
	"github.com/schoolgis/schoolsync/internal/store/memory"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
	"github.com/schoolgis/schoolsync/internal/validators"
	"github.com/schoolgis/schoolsync/internal/versions"
)

var lucknow = schools.Region{StateCode: "09", DistrictCode: "0901"}

// newGISServer answers every query with one feature per requested object id.
func newGISServer(t *testing.T, userAgents *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgents.Store(r.Header.Get("User-Agent"))
		var features []string
		for _, id := range strings.Split(r.URL.Query().Get("objectIds"), ",") {
			features = append(features, fmt.Sprintf(
				`{"attributes":{"objectid":%s,"schcd":"0901%s","stcode11":"09","dtcode11":"0901"}}`, id, id))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"features":[%s]}`, strings.Join(features, ","))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// newStatisticsServer lists one academic year and knows no school.
func newStatisticsServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/master/year", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":[{"yearId":11,"yearDesc":"2024-25"}]}`))
	})
	mux.HandleFunc("/search-schools", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":false,"message":"No data found"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func pipelineConfig(gisURL, udiseURL string) *config.Config {
	return &config.Config{
		GIS:   config.GISConfig{URL: gisURL, BatchSize: 2},
		UDISE: config.UDISEConfig{BaseURL: udiseURL},
	}
}

func TestNewPipeline_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewPipeline(nil, memory.New(), nil, Instruments{})
	require.EqualError(t, err, "config cannot be nil")

	_, err = NewPipeline(&config.Config{}, nil, nil, Instruments{})
	require.EqualError(t, err, "store cannot be nil")

	p, err := NewPipeline(&config.Config{}, memory.New(), nil, Instruments{})
	require.NoError(t, err)
	var _ pkgsync.Manager = p
}

func TestNewPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var userAgent atomic.Value
	gisSrv := newGISServer(t, &userAgent)
	udiseSrv := newStatisticsServer(t)

	st := memory.New()
	_, err := st.ImportMasterObjects(ctx, []schools.MasterObjectID{
		{ObjectID: "1", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "2", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "3", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "4", StateCode: "10", DistrictCode: "1001"},
	})
	require.NoError(t, err)

	requestID, err := st.CreateRequest(ctx, "user-1", "09", []string{"0901"})
	require.NoError(t, err)

	p, err := NewPipeline(pipelineConfig(gisSrv.URL, udiseSrv.URL), st, lock.Noop(), Instruments{})
	require.NoError(t, err)

	dir, err := p.SyncDirectory(ctx, lucknow)
	require.NoError(t, err)
	assert.Equal(t, 3, dir.Added)
	assert.Equal(t, versions.UserAgent(), userAgent.Load())

	identifiers, err := st.ListIdentifiers(ctx, lucknow)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09011", "09012", "09013"}, identifiers)

	req, err := st.GetRequest(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, store.RequestResolved, req.Status)

	details, err := p.SyncDetails(ctx, pkgsync.DetailRequest{Region: lucknow})
	require.NoError(t, err)
	assert.Equal(t, "2024-25", details.YearLabel)
	assert.Equal(t, 3, details.Failed)
	assert.Zero(t, details.Processed)

	page, err := st.List(ctx, store.SkipFilter{})
	require.NoError(t, err)
	require.Len(t, page.Records, 3)
	for _, rec := range page.Records {
		assert.Equal(t, validators.ReasonKeyNotFound, rec.Reason)
		assert.Equal(t, "2024-25", rec.YearLabel)
	}

	run, err := st.GetRun(ctx, details.RunID)
	require.NoError(t, err)
	assert.Equal(t, store.RunCompleted, run.Status)
	assert.Equal(t, 3, run.Failed)
}
