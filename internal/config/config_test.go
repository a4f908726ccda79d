package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"guestbook/internal/config"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := config.LoadFile("")
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.ListenAddr())
	require.Equal(t, "data", cfg.DataDir)
	require.Equal(t, filepath.Join("data", "guestbook.db"), cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "/", cfg.Root)
	require.Equal(t, 300, cfg.MaxCommentLen)
	require.Equal(t, 50, cfg.MaxNameLen)
	require.Equal(t, 100, cfg.MaxSiteLen)
	require.Equal(t, 24, cfg.HoursPerPost)
	require.Equal(t, 10, cfg.PostsPerPage)
	require.Empty(t, cfg.WhitelistedIPs)
	require.Equal(t, "icmp", cfg.ProbeMode)
	require.Equal(t, 3*time.Second, cfg.ProbeTimeout)
	require.Equal(t, []int{80, 443}, cfg.ProbePorts)
	require.Equal(t, 5*time.Second, cfg.GeoTimeout)
	require.Equal(t, "http://ip-api.com", cfg.GeoAPIURL)
	require.False(t, cfg.Cloudflare)
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
maxCommentLen: 500
siteTitle: "Kevin's Guestbook"
hoursPerPost: 12
postsPerPage: 20
maxNameLen: 30
maxSiteLen: 80
whitelistedIPs:
  - 127.0.0.1
  - "::1"
faviconApi: "https://icons.example/?d="
permalink: "https://guestbook.example"
port: 3000
root: "guestbook"
showStatus: true
statusInterval: 10m
cloudflare: true
probeMode: TCP
probePorts: [443]
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, 500, cfg.MaxCommentLen)
	require.Equal(t, "Kevin's Guestbook", cfg.SiteTitle)
	require.Equal(t, 12, cfg.HoursPerPost)
	require.Equal(t, 20, cfg.PostsPerPage)
	require.Equal(t, []string{"127.0.0.1", "::1"}, cfg.WhitelistedIPs)
	require.Equal(t, ":3000", cfg.ListenAddr())
	require.Equal(t, "/guestbook/", cfg.Root)
	require.True(t, cfg.ShowStatus)
	require.Equal(t, 10*time.Minute, cfg.StatusInterval)
	require.True(t, cfg.Cloudflare)
	require.Equal(t, "tcp", cfg.ProbeMode)
	require.Equal(t, []int{443}, cfg.ProbePorts)
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("hoursPerPost: 12\n"), 0o600))

	t.Setenv("GUESTBOOK_HOURS_PER_POST", "48")
	t.Setenv("GUESTBOOK_ADDR", "127.0.0.1:9999")
	t.Setenv("GUESTBOOK_DATA_DIR", "/tmp/guestbook")
	t.Setenv("GUESTBOOK_LOG_LEVEL", "debug")
	t.Setenv("GUESTBOOK_WHITELISTED_IPS", "10.0.0.1,10.0.0.2")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 48, cfg.HoursPerPost)
	require.Equal(t, "127.0.0.1:9999", cfg.ListenAddr())
	require.Equal(t, filepath.Join("/tmp/guestbook", "guestbook.db"), cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.WhitelistedIPs)
}

func TestLoad_UsesConfigEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("siteTitle: From Env Path\n"), 0o600))
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "From Env Path", cfg.SiteTitle)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("postsPerPage: 0\nprobeMode: smoke\n"), 0o600))

	_, err := config.LoadFile(path)
	require.ErrorContains(t, err, "postsPerPage")
	require.ErrorContains(t, err, "probeMode")
}
