package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Upload.MaxFileSize != 52428800 {
		t.Errorf("Upload.MaxFileSize = %d, want %d", cfg.Upload.MaxFileSize, 52428800)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("Session.TTL = %v, want %v", cfg.Session.TTL, 24*time.Hour)
	}
	if cfg.Fields.Path != "SIUSFields.txt" {
		t.Errorf("Fields.Path = %q, want %q", cfg.Fields.Path, "SIUSFields.txt")
	}
	if cfg.Rate.RequestsPerMinute != 100 {
		t.Errorf("Rate.RequestsPerMinute = %d, want %d", cfg.Rate.RequestsPerMinute, 100)
	}
	if !cfg.Browser.AutoOpen {
		t.Error("Browser.AutoOpen default should be true")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("SESSION_TTL", "2h")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("BROWSER_AUTO_OPEN", "false")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SESSION_TTL")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("BROWSER_AUTO_OPEN")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v, want %v", cfg.Session.TTL, 2*time.Hour)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Browser.AutoOpen {
		t.Error("Browser.AutoOpen should be false")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	// PORT works as fallback for SERVER_PORT
	os.Setenv("PORT", "3000")
	defer os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
}

func TestLoad_AltEnvVarPrecedence(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("PORT", "3000")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("PORT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d (primary env var wins)", cfg.Server.Port, 9090)
	}
}

func TestLoad_ManagedDeployment(t *testing.T) {
	// PORT alone implies a hosted environment: bind all interfaces,
	// skip the browser.
	os.Setenv("PORT", "3000")
	defer os.Unsetenv("PORT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Browser.AutoOpen {
		t.Error("Browser.AutoOpen should be false when PORT is set")
	}
}

func TestLoad_ManagedDeploymentExplicitOverrides(t *testing.T) {
	os.Setenv("PORT", "3000")
	os.Setenv("SERVER_HOST", "127.0.0.1")
	os.Setenv("BROWSER_AUTO_OPEN", "true")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("SERVER_HOST")
		os.Unsetenv("BROWSER_AUTO_OPEN")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q (explicit SERVER_HOST wins)", cfg.Server.Host, "127.0.0.1")
	}
	if !cfg.Browser.AutoOpen {
		t.Error("Browser.AutoOpen should honor explicit BROWSER_AUTO_OPEN")
	}
}

func TestLoad_Duration(t *testing.T) {
	os.Setenv("SERVER_READ_TIMEOUT", "45s")
	os.Setenv("SESSION_TTL", "1h30m")
	defer func() {
		os.Unsetenv("SERVER_READ_TIMEOUT")
		os.Unsetenv("SESSION_TTL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Session.TTL != 90*time.Minute {
		t.Errorf("Session.TTL = %v, want %v", cfg.Session.TTL, 90*time.Minute)
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	os.Setenv("SERVER_PORT", "not-a-number")
	defer os.Unsetenv("SERVER_PORT")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error for invalid SERVER_PORT")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 99999

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid port")
	}
	if !contains(err.Error(), "SERVER_PORT") {
		t.Errorf("error should mention SERVER_PORT: %v", err)
	}
}

func TestValidate_NonPositiveTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Session.TTL = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for zero session TTL")
	}
	if !contains(err.Error(), "SESSION_TTL") {
		t.Errorf("error should mention SESSION_TTL: %v", err)
	}
}

func TestValidate_EmptyFieldsPath(t *testing.T) {
	cfg := validConfig()
	cfg.Fields.Path = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for empty fields path")
	}
	if !contains(err.Error(), "FIELDS_PATH") {
		t.Errorf("error should mention FIELDS_PATH: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error for invalid log level")
	}
	if !contains(err.Error(), "LOG_LEVEL") {
		t.Errorf("error should mention LOG_LEVEL: %v", err)
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
		{"localhost", 443, "localhost:443"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		got := cfg.Addr()
		if got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Host: "127.0.0.1", Port: 8080, ShutdownTimeout: time.Second},
		Upload:  UploadConfig{MaxFileSize: 1},
		Session: SessionConfig{TTL: time.Hour},
		Fields:  FieldsConfig{Path: "SIUSFields.txt"},
		Rate:    RateLimitConfig{Enabled: true, RequestsPerMinute: 100, UploadLimit: 20},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsHelper(s, substr))
}

func containsHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
