package config

import (
	"os"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "BASE_URL", "DEBUG", "CATALOG_PATH", "ASSETS_DIR", "SESSION_CAPACITY", "QR_SIZE", "QR_CACHE_SIZE", "ALLOWED_ORIGINS", "REQUEST_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}
	chdir(t, t.TempDir())

	cfg := Load()
	want := Config{
		Addr:            ":8080",
		BaseURL:         "http://localhost:8080",
		AssetsDir:       "assets",
		SessionCapacity: 1000,
		QRSize:          256,
		QRCacheSize:     128,
		AllowedOrigins:  []string{"*"},
		RequestTimeout:  30 * time.Second,
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ADDR", ":9090")
	t.Setenv("BASE_URL", "https://compare.example/")
	t.Setenv("DEBUG", "1")
	t.Setenv("SESSION_CAPACITY", "5")
	t.Setenv("QR_SIZE", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")

	cfg := Load()
	if cfg.Addr != ":9090" || cfg.BaseURL != "https://compare.example" || !cfg.Debug {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SessionCapacity != 5 || cfg.QRSize != 256 {
		t.Errorf("ints: capacity=%d qr=%d", cfg.SessionCapacity, cfg.QRSize)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.RequestTimeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	// .env never overrides a variable that is already set, even to "".
	t.Setenv("ASSETS_DIR", "")
	os.Unsetenv("ASSETS_DIR")
	if err := os.WriteFile(".env", []byte("ASSETS_DIR=/srv/assets\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := Load().AssetsDir; got != "/srv/assets" {
		t.Errorf("AssetsDir = %q", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := map[string]bool{"true": true, "false": false, "0": false, "yes": true, "": false}
	for value, want := range tests {
		t.Setenv("FLAG_UNDER_TEST", value)
		if got := getEnvBool("FLAG_UNDER_TEST", false); got != want {
			t.Errorf("getEnvBool(%q) = %v, want %v", value, got, want)
		}
	}
}

func TestRequestTimeout(t *testing.T) {
	chdir(t, t.TempDir())
	tests := map[string]time.Duration{"0": 0, "12": 12 * time.Second, "-3": 30 * time.Second, "soon": 30 * time.Second}
	for value, want := range tests {
		t.Setenv("REQUEST_TIMEOUT_SECONDS", value)
		if got := Load().RequestTimeout; got != want {
			t.Errorf("REQUEST_TIMEOUT_SECONDS=%q: timeout = %v, want %v", value, got, want)
		}
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
