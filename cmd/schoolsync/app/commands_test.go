package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolgis/schoolsync/internal/app/storage"
	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
	"github.com/schoolgis/schoolsync/internal/versions"
)

var lucknow = schools.Region{StateCode: "09", DistrictCode: "0901"}

// writeConfig writes a valid configuration pointing at the given upstreams.
func writeConfig(t *testing.T, gisURL, udiseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`database:
  host: localhost
  port: 5432
  user: schoolsync
  database: schoolsync
gis:
  url: %s
udise:
  baseURL: %s
sync:
  chunkSize: 2
`, gisURL, udiseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// memoryFactory returns a factory function sharing one in-memory store.
func memoryFactory(t *testing.T) (FactoryFunc, store.Store) {
	t.Helper()
	f := storage.NewMemoryFactory()
	st, err := f.CreateStore(context.Background())
	require.NoError(t, err)
	return func(context.Context, *config.Config) (storage.Factory, error) { return f, nil }, st
}

func execute(t *testing.T, root *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func newGISServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var features []string
		for _, id := range strings.Split(r.URL.Query().Get("objectIds"), ",") {
			features = append(features, fmt.Sprintf(
				`{"attributes":{"objectid":%s,"schcd":"0901%s","stcode11":"09","dtcode11":"0901"}}`, id, id))
		}
		_, _ = fmt.Fprintf(w, `{"features":[%s]}`, strings.Join(features, ","))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, NewRootCmd(), "", "version", "--format", "json")
	require.NoError(t, err)

	var info versions.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, versions.Version, info.Version)

	out, err = execute(t, NewRootCmd(), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "schoolsync "+versions.Version))
}

func TestCommandsRequireConfig(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewRootCmd(), "", "skipped", "summary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a configuration file is required")
}

func TestSyncDirectoryCommand(t *testing.T) {
	t.Parallel()

	factory, st := memoryFactory(t)
	_, err := st.ImportMasterObjects(context.Background(), []schools.MasterObjectID{
		{ObjectID: "1", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "2", StateCode: "09", DistrictCode: "0901"},
	})
	require.NoError(t, err)

	gisSrv := newGISServer(t)
	cfgPath := writeConfig(t, gisSrv.URL, "http://udise.invalid")

	out, err := execute(t, NewRootCmd(WithStorageFactory(factory)), "",
		"sync", "directory", "--config", cfgPath, "--state", "09", "--district", "0901")
	require.NoError(t, err)
	assert.Contains(t, out, "Added 2 directory entries for 09/0901")

	ids, err := st.ListIdentifiers(context.Background(), lucknow)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"09011", "09012"}, ids)
}

func TestSyncDirectoryCommandInvalidRegion(t *testing.T) {
	t.Parallel()

	_, err := execute(t, NewRootCmd(), "", "sync", "directory", "--state", "09")
	require.Error(t, err)
}

func TestSyncDetailsCommand(t *testing.T) {
	t.Parallel()

	factory, _ := memoryFactory(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/master/year", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":true,"data":[{"yearId":11,"yearDesc":"2024-25"}]}`))
	})
	mux.HandleFunc("/search-schools", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":false}`))
	})
	udiseSrv := httptest.NewServer(mux)
	t.Cleanup(udiseSrv.Close)

	cfgPath := writeConfig(t, "http://gis.invalid/query", udiseSrv.URL)

	out, err := execute(t, NewRootCmd(WithStorageFactory(factory)), "",
		"sync", "details", "--config", cfgPath, "--codes", "09010100101,09010100102")
	require.NoError(t, err)
	assert.Contains(t, out, "Year 2024-25: 0 processed, 0 skipped, 2 failed")
	assert.Contains(t, out, "09010100101")
	assert.Contains(t, out, "Key Not Found")

	out, err = execute(t, NewRootCmd(WithStorageFactory(factory)), "",
		"skipped", "summary", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2024-25")
	assert.Contains(t, out, "Key Not Found")

	out, err = execute(t, NewRootCmd(WithStorageFactory(factory)), "",
		"skipped", "list", "--config", cfgPath, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1, 1 of 2 records")
}

func TestSyncDetailsCommandRequiresCodesOrRegion(t *testing.T) {
	t.Parallel()

	factory, _ := memoryFactory(t)
	cfgPath := writeConfig(t, "http://gis.invalid/query", "http://udise.invalid")

	_, err := execute(t, NewRootCmd(WithStorageFactory(factory)), "",
		"sync", "details", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--codes or a region is required")
}

func TestMasterImportCommand(t *testing.T) {
	t.Parallel()

	factory, st := memoryFactory(t)
	cfgPath := writeConfig(t, "http://gis.invalid/query", "http://udise.invalid")
	csvData := "object_id,stcode11,dtcode11\n1,09,0901\n2,09,0901\n3,10,1001\n"

	out, err := execute(t, NewRootCmd(WithStorageFactory(factory)), csvData,
		"master", "import", "--config", cfgPath, "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 3 of 3 object ids")

	ids, err := st.ListObjectIDs(context.Background(), lucknow)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)
}

func TestReadMasterObjects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []schools.MasterObjectID
		wantErr string
	}{
		{
			name:  "with header",
			input: "object_id,stcode11,dtcode11\n7, 09 ,0901\n",
			want:  []schools.MasterObjectID{{ObjectID: "7", StateCode: "09", DistrictCode: "0901"}},
		},
		{
			name:  "without header",
			input: "7,09,0901\n8,09,0902\n",
			want: []schools.MasterObjectID{
				{ObjectID: "7", StateCode: "09", DistrictCode: "0901"},
				{ObjectID: "8", StateCode: "09", DistrictCode: "0902"},
			},
		},
		{name: "empty input"},
		{name: "missing column", input: "7,09\n", wantErr: "failed to read object ids"},
		{name: "blank field", input: "7,,0901\n", wantErr: "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := readMasterObjects(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		input string
		want  bool
	}{
		{name: "yes flag", args: []string{"--yes"}, want: true},
		{name: "typed yes", input: "yes\n", want: true},
		{name: "typed y", input: "Y\n", want: true},
		{name: "typed no", input: "no\n", want: false},
		{name: "no input", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got bool
			cmd := &cobra.Command{
				Use: "test",
				Run: func(cmd *cobra.Command, _ []string) {
					got = confirm(cmd, "Continue?")
				},
			}
			cmd.Flags().BoolP("yes", "y", false, "")
			_, err := execute(t, cmd, tt.input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmRefusesPipedStdin(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	_, err = w.WriteString("yes\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolP("yes", "y", false, "")
	cmd.SetIn(r)
	cmd.SetOut(io.Discard)

	assert.False(t, confirm(cmd, "Continue?"))
}
