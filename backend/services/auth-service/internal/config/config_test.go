package config

import "testing"

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("AUTH_POSTGRES_DSN", "postgres://localhost/auth")
	t.Setenv("AUTH_HTTP_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != DriverPostgres {
		t.Fatalf("unexpected driver %q", cfg.Storage.Driver)
	}
	if cfg.HTTPAddress() != ":3001" {
		t.Fatalf("unexpected address %q", cfg.HTTPAddress())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "postgres ok", cfg: Config{Storage: StorageConfig{Driver: "postgres"}, Database: DatabaseConfig{DSN: "dsn"}}},
		{name: "postgres missing dsn", cfg: Config{Storage: StorageConfig{Driver: "postgres"}}, wantErr: true},
		{name: "redis ok", cfg: Config{Storage: StorageConfig{Driver: " Redis "}, Redis: RedisConfig{Addr: "localhost:6379"}}},
		{name: "redis missing addr", cfg: Config{Storage: StorageConfig{Driver: "redis"}}, wantErr: true},
		{name: "memory", cfg: Config{Storage: StorageConfig{Driver: "memory"}}},
		{name: "unknown driver", cfg: Config{Storage: StorageConfig{Driver: "sqlite"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTPAddress(t *testing.T) {
	for port, want := range map[string]string{"": ":3001", "8080": ":8080", ":9000": ":9000", "127.0.0.1:3001": "127.0.0.1:3001"} {
		cfg := Config{HTTP: HTTPConfig{Port: port}}
		if got := cfg.HTTPAddress(); got != want {
			t.Errorf("HTTPAddress(%q) = %q, want %q", port, got, want)
		}
	}
}
