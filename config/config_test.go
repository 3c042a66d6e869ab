package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/fetchkit/fetch"
	"github.com/kbukum/fetchkit/interceptors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
base_url: https://api.example.com
credentials: include
headers:
  Accept: application/json
defaults:
  cache: no-store
standard: true
request_id:
  enabled: true
logging:
  enabled: true
  level: debug
`)
	f, err := Load("myservice", WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BaseURL != "https://api.example.com" {
		t.Errorf("unexpected base_url %q", f.BaseURL)
	}
	if f.Credentials != "include" {
		t.Errorf("unexpected credentials %q", f.Credentials)
	}
	if f.Headers["Accept"] != "application/json" {
		t.Errorf("unexpected headers %v", f.Headers)
	}
	if !f.Standard {
		t.Error("expected standard true")
	}
	if !f.RequestID.Enabled || f.RequestID.Header != interceptors.DefaultRequestIDHeader {
		t.Errorf("unexpected request_id %+v", f.RequestID)
	}
	if f.Defaults["cache"] != "no-store" {
		t.Errorf("unexpected defaults %v", f.Defaults)
	}
	if !f.Logging.Enabled || f.Logging.Level != "debug" {
		t.Errorf("unexpected logging %+v", f.Logging)
	}
}

func TestLoad_MissingFileIsEmptyConfig(t *testing.T) {
	chdir(t, t.TempDir())
	f, err := Load("myservice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BaseURL != "" || f.Standard {
		t.Errorf("expected empty config, got %+v", f)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "config.yml", "base_url: https://file.example.com\n")
	t.Setenv("MYSERVICE_BASE_URL", "https://env.example.com")

	f, err := Load("myservice", WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BaseURL != "https://env.example.com" {
		t.Errorf("expected env override, got %q", f.BaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envPath := writeFile(t, ".env", "MYSERVICE_CREDENTIALS=include\n")
	chdir(t, t.TempDir())
	t.Cleanup(func() { os.Unsetenv("MYSERVICE_CREDENTIALS") })

	f, err := Load("myservice", WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Credentials != "include" {
		t.Errorf("expected credentials from .env, got %q", f.Credentials)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	path := writeFile(t, "config.yml", "base_url: not a url\n")
	if _, err := Load("myservice", WithConfigFile(path)); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoad_InvalidCredentials(t *testing.T) {
	path := writeFile(t, "config.yml", "credentials: sometimes\n")
	if _, err := Load("myservice", WithConfigFile(path)); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestLoad_UnreadableYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "base_url: [unclosed\n")
	if _, err := Load("myservice", WithConfigFile(path)); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestBuild_Standard(t *testing.T) {
	f := File{
		BaseURL:  "https://api.example.com",
		Headers:  map[string]string{"Accept": "application/json"},
		Standard: true,
	}
	cfg := f.Build()

	if cfg.BaseURL() != "https://api.example.com" {
		t.Errorf("unexpected base URL %q", cfg.BaseURL())
	}
	d := cfg.Defaults()
	if d.Credentials() != fetch.CredentialsSameOrigin {
		t.Errorf("expected same-origin credentials, got %q", d.Credentials())
	}
	if d.Headers()["Accept"] != "application/json" {
		t.Errorf("expected headers lowered into defaults, got %v", d)
	}
	chain := cfg.Interceptors()
	if len(chain) == 0 || chain[len(chain)-1].Response == nil {
		t.Error("expected a trailing response-rejection interceptor")
	}
}

func TestBuild_ExplicitCredentialsWithoutStandard(t *testing.T) {
	f := File{Credentials: "include"}
	cfg := f.Build()
	if cfg.Defaults().Credentials() != fetch.CredentialsInclude {
		t.Errorf("unexpected credentials %q", cfg.Defaults().Credentials())
	}
	if len(cfg.Interceptors()) != 0 {
		t.Errorf("expected no interceptors, got %d", len(cfg.Interceptors()))
	}
}

func TestBuild_RequestIDBeforeRejection(t *testing.T) {
	f := File{
		Standard:  true,
		RequestID: RequestIDFile{Enabled: true, Header: "X-Trace"},
	}
	cfg := f.Build()
	chain := cfg.Interceptors()
	if len(chain) != 2 {
		t.Fatalf("expected 2 interceptors, got %d", len(chain))
	}
	if chain[0].Request == nil {
		t.Error("expected the request-ID interceptor first")
	}
	if chain[1].Response == nil {
		t.Error("expected the rejection interceptor last")
	}
}

func TestBuild_DefaultsPassthrough(t *testing.T) {
	f := File{
		Defaults:    map[string]any{"cache": "no-store", "credentials": "omit"},
		Credentials: "include",
	}
	d := f.Build().Defaults()
	if d["cache"] != "no-store" {
		t.Errorf("expected unrecognized keys carried, got %v", d)
	}
	// The named field wins over the same key in the passthrough map.
	if d.Credentials() != fetch.CredentialsInclude {
		t.Errorf("expected the credentials field to win, got %q", d.Credentials())
	}
}

func TestBuild_Logging(t *testing.T) {
	f := File{Logging: LoggingFile{Enabled: true, Level: "debug"}}
	chain := f.Build().Interceptors()
	if len(chain) != 1 {
		t.Fatalf("expected 1 interceptor, got %d", len(chain))
	}
	in := chain[0]
	if in.Request == nil || in.Response == nil || in.RequestError == nil || in.ResponseError == nil {
		t.Error("expected the logging interceptor to hook all four slots")
	}
}

func TestBuild_LoggingAfterRejection(t *testing.T) {
	f := File{
		Standard: true,
		Logging:  LoggingFile{Enabled: true},
	}
	chain := f.Build().Interceptors()
	if len(chain) != 2 {
		t.Fatalf("expected 2 interceptors, got %d", len(chain))
	}
	if chain[0].Response == nil || chain[0].Request != nil {
		t.Error("expected the rejection interceptor first")
	}
	if chain[1].ResponseError == nil {
		t.Error("expected the logging interceptor last, watching the failure channel")
	}
}

func TestBuild_Empty(t *testing.T) {
	cfg := (&File{}).Build()
	if cfg.BaseURL() != "" || len(cfg.Defaults()) != 0 || len(cfg.Interceptors()) != 0 {
		t.Errorf("expected the empty configuration, got %+v", cfg)
	}
}
