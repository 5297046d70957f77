package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"

	"github.com/schoolgis/schoolsync/internal/app/storage"
	storagemocks "github.com/schoolgis/schoolsync/internal/app/storage/mocks"
	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store/memory"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
	"github.com/schoolgis/schoolsync/internal/sync/mocks"
)

func TestBaseConfigDefaults(t *testing.T) {
	t.Parallel()

	built, err := baseConfig(WithConfig(createTestAppConfig()))
	require.NoError(t, err)
	require.NotNil(t, built)
	assert.Equal(t, defaultHTTPAddress, built.address)
	assert.Equal(t, defaultRequestTimeout, built.requestTimeout)
	assert.Equal(t, defaultWriteTimeout, built.writeTimeout)
}

func TestBaseConfigError(t *testing.T) {
	t.Parallel()

	built, err := baseConfig(
		WithConfig(createTestAppConfig()),
		WithAddress(":"),
	)
	require.Error(t, err)
	require.Nil(t, built)
}

func TestWithAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    string
		wantErr bool
	}{
		{name: "valid address", address: ":9999", want: ":9999"},
		{name: "valid address with host", address: "127.0.0.1:9999", want: "127.0.0.1:9999"},
		{name: "valid address with localhost", address: "localhost:9999", want: "localhost:9999"},
		{name: "invalid empty address", address: "", wantErr: true},
		{name: "invalid empty port", address: ":", wantErr: true},
		{name: "invalid missing port", address: "localhost", wantErr: true},
		{name: "invalid port out of range", address: "localhost:999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &appConfig{}
			err := WithAddress(tt.address)(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.address)
		})
	}
}

func TestWithRequestTimeout(t *testing.T) {
	t.Parallel()

	built, err := baseConfig(WithRequestTimeout(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, built.requestTimeout)
	assert.Equal(t, 2*time.Hour+time.Minute, built.writeTimeout)

	_, err = baseConfig(WithRequestTimeout(0))
	require.Error(t, err)
}

func TestOptionSetters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	factory := storage.NewMemoryFactory()
	mw := func(next http.Handler) http.Handler { return next }
	mp := noop.NewMeterProvider()
	tp := tracenoop.NewTracerProvider()
	scrape := http.NotFoundHandler()

	built, err := baseConfig(
		WithSyncManager(manager),
		WithStorageFactory(factory),
		WithMiddlewares(mw, mw),
		WithMeterProvider(mp),
		WithTracerProvider(tp),
		WithMetricsHandler(scrape),
	)
	require.NoError(t, err)
	assert.Equal(t, manager, built.syncManager)
	assert.Equal(t, factory, built.storageFactory)
	assert.Len(t, built.middlewares, 2)
	assert.Equal(t, mp, built.meterProvider)
	assert.Equal(t, tp, built.tracerProvider)
	assert.NotNil(t, built.metricsHandler)
}

func TestBuildHTTPServer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		middlewares     []func(http.Handler) http.Handler
		meterProvider   bool
		tracerProvider  bool
		wantMiddlewares int
	}{
		{name: "with default middlewares", wantMiddlewares: 5},
		{
			name:            "with custom middlewares",
			middlewares:     []func(http.Handler) http.Handler{func(next http.Handler) http.Handler { return next }},
			wantMiddlewares: 1,
		},
		{name: "with telemetry", meterProvider: true, tracerProvider: true, wantMiddlewares: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			b := &appConfig{
				config:         createTestAppConfig(),
				syncManager:    mocks.NewMockManager(ctrl),
				address:        ":9999",
				middlewares:    tt.middlewares,
				requestTimeout: time.Second,
				readTimeout:    2 * time.Second,
				writeTimeout:   3 * time.Second,
				idleTimeout:    4 * time.Second,
			}
			if tt.meterProvider {
				b.meterProvider = noop.NewMeterProvider()
			}
			if tt.tracerProvider {
				b.tracerProvider = tracenoop.NewTracerProvider()
			}

			server, err := buildHTTPServer(context.Background(), b, memory.New())
			require.NoError(t, err)
			require.NotNil(t, server)
			assert.Equal(t, ":9999", server.Addr)
			assert.Equal(t, 2*time.Second, server.ReadTimeout)
			assert.Equal(t, 3*time.Second, server.WriteTimeout)
			assert.Equal(t, 4*time.Second, server.IdleTimeout)
			assert.Len(t, b.middlewares, tt.wantMiddlewares)

			rec := httptest.NewRecorder()
			server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestBuildHTTPServer_SyncDefaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	manager := mocks.NewMockManager(ctrl)
	cfg := createTestAppConfig()
	cfg.Sync.YearID = 9
	cfg.Sync.ChunkSize = 3
	cfg.Sync.Strict = true

	manager.EXPECT().
		SyncDetails(gomock.Any(), pkgsync.DetailRequest{
			Region:    schools.Region{StateCode: "09", DistrictCode: "0901"},
			YearID:    9,
			ChunkSize: 3,
			Strict:    true,
		}).
		Return(&pkgsync.DetailResult{YearLabel: "2021-22"}, nil)

	b := &appConfig{config: cfg, syncManager: manager, address: ":0", requestTimeout: time.Second}
	server, err := buildHTTPServer(context.Background(), b, memory.New())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/sync/details",
		stringsReader(`{"stateCode":"09","districtCode":"0901"}`))
	server.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2021-22")
}

func TestNewSchoolSyncApp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setup      func(f *storagemocks.MockFactory)
		opts       []SchoolSyncAppOptions
		wantErr    string
		wantAddr   string
		wantInject bool
	}{
		{
			name: "success with minimal config",
			setup: func(f *storagemocks.MockFactory) {
				f.EXPECT().CreateStore(gomock.Any()).Return(memory.New(), nil)
				f.EXPECT().CreateLocker(gomock.Any()).Return(lock.Noop(), nil)
			},
			opts:     []SchoolSyncAppOptions{WithConfig(createTestAppConfig())},
			wantAddr: defaultHTTPAddress,
		},
		{
			name: "success with custom address and injected manager",
			setup: func(f *storagemocks.MockFactory) {
				f.EXPECT().CreateStore(gomock.Any()).Return(memory.New(), nil)
			},
			opts: []SchoolSyncAppOptions{
				WithConfig(createTestAppConfig()),
				WithAddress("127.0.0.1:9091"),
				WithSyncManager(&pkgsync.Pipeline{}),
			},
			wantAddr:   "127.0.0.1:9091",
			wantInject: true,
		},
		{
			name:    "nil config",
			setup:   func(*storagemocks.MockFactory) {},
			wantErr: "config cannot be nil",
		},
		{
			name:    "invalid address",
			setup:   func(*storagemocks.MockFactory) {},
			opts:    []SchoolSyncAppOptions{WithConfig(createTestAppConfig()), WithAddress(":")},
			wantErr: "failed to build base configuration",
		},
		{
			name: "store failure cleans up",
			setup: func(f *storagemocks.MockFactory) {
				f.EXPECT().CreateStore(gomock.Any()).Return(nil, errors.New("store unavailable"))
				f.EXPECT().Cleanup()
			},
			opts:    []SchoolSyncAppOptions{WithConfig(createTestAppConfig())},
			wantErr: "failed to create store: store unavailable",
		},
		{
			name: "locker failure cleans up",
			setup: func(f *storagemocks.MockFactory) {
				f.EXPECT().CreateStore(gomock.Any()).Return(memory.New(), nil)
				f.EXPECT().CreateLocker(gomock.Any()).Return(nil, errors.New("redis unavailable"))
				f.EXPECT().Cleanup()
			},
			opts:    []SchoolSyncAppOptions{WithConfig(createTestAppConfig())},
			wantErr: "failed to create region locker: redis unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			factory := storagemocks.NewMockFactory(ctrl)
			tt.setup(factory)

			opts := append([]SchoolSyncAppOptions{WithStorageFactory(factory)}, tt.opts...)
			app, err := NewSchoolSyncApp(context.Background(), opts...)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, app)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, app)
			assert.Equal(t, tt.wantAddr, app.GetHTTPServer().Addr)
			assert.NotNil(t, app.components.SyncCoordinator)
			assert.NotNil(t, app.components.Store)
			if tt.wantInject {
				assert.IsType(t, &pkgsync.Pipeline{}, app.components.SyncManager)
			}

			// Cleanup moves to the app once construction succeeds
			factory.EXPECT().Cleanup()
			app.cancelFunc()
		})
	}
}

func stringsReader(s string) *strings.Reader { return strings.NewReader(s) }
