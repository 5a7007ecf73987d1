package app

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/scrape-server/internal/config"
	apperrors "github.com/darkkaiser/scrape-server/internal/pkg/errors"
	"github.com/darkkaiser/scrape-server/internal/service/search"
	"github.com/darkkaiser/scrape-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	t.Chdir(t.TempDir())
	t.Setenv(config.APIKeyEnv, "")

	cfg, err := config.LoadWithFile("")
	require.NoError(t, err)
	return cfg
}

func TestBuild_NilConfig(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Internal))
}

func TestBuild_DefaultCatalog(t *testing.T) {
	c, err := Build(newConfig(t))
	require.NoError(t, err)

	assert.Equal(t, search.ModeMock, c.DefaultMode)

	products, err := c.Search.Search(context.Background(), "", c.DefaultMode)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	err = c.Upstream.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Configuration))
}

func TestBuild_CatalogFile(t *testing.T) {
	cfg := newConfig(t)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"source": "Blibli", "name": "Monitor 27 inci", "price": "Rp 2.500.000", "url": "https://www.blibli.com/p/1"}
	]`), 0644))
	cfg.Search.CatalogFile = path

	c, err := Build(cfg)
	require.NoError(t, err)

	products, err := c.Search.Search(context.Background(), "monitor", search.ModeMock)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 2500000.0, products[0].Price)
}

func TestBuild_CatalogFileMissing(t *testing.T) {
	cfg := newConfig(t)
	cfg.Search.CatalogFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := Build(cfg)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestBuild_LiveAgainstUpstream(t *testing.T) {
	srv := testutil.NewUpstreamServer(t, http.StatusOK, `{"shopping_results": [
		{"title": "Mouse Logitech", "price": "Rp 150.000", "source": "Tokopedia", "link": "https://www.tokopedia.com/a"}
	]}`)

	cfg := newConfig(t)
	cfg.Search.Mode = config.ModeLive
	cfg.Upstream.Endpoint = srv.URL
	cfg.Upstream.APIKey = "test-key"

	c, err := Build(cfg)
	require.NoError(t, err)
	assert.Equal(t, search.ModeLive, c.DefaultMode)

	products, err := c.Search.Search(context.Background(), "mouse", c.DefaultMode)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse Logitech", products[0].Name)
	assert.Equal(t, 1, srv.Calls())
	assert.Equal(t, "mouse", srv.LastQuery())
}
