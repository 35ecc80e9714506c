package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every key Load reads so the host environment does not leak
// into assertions. t.Setenv restores the original values afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "APP_NAME", "APP_VERSION", "CONFIG_FILE",
		"STORE_BACKEND", "DATABASE_URL", "DB_HOST", "DB_USER",
		"GRADES_BACKEND", "SQLITE_PATH",
		"REDIS_URL", "REDIS_DISABLED", "REPORT_CACHE_TTL",
		"COURSE_CAPACITY", "PASS_GRADE",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "ERROR_LOG_PATH",
	} {
		t.Setenv(key, "")
	}
	// Keep godotenv from picking up a stray .env in the package directory.
	chdir(t, t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "university-hub", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, BackendMemory, cfg.Grades.Backend)
	assert.True(t, cfg.Redis.Disabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ReportTTL)
	assert.Equal(t, 30, cfg.Domain.CourseCapacity)
	assert.Equal(t, 50.0, cfg.Domain.PassGrade)
	assert.Equal(t, "none", cfg.Observability.LogOutput)
	assert.Equal(t, "errors.log", cfg.Observability.ErrorLogPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/university")
	t.Setenv("GRADES_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/grades.db")
	t.Setenv("COURSE_CAPACITY", "12")
	t.Setenv("PASS_GRADE", "60.5")
	t.Setenv("REPORT_CACHE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, BackendSQLite, cfg.Grades.Backend)
	assert.Equal(t, "/tmp/grades.db", cfg.Grades.SQLitePath)
	assert.Equal(t, 12, cfg.Domain.CourseCapacity)
	assert.Equal(t, 60.5, cfg.Domain.PassGrade)
	assert.Equal(t, 90*time.Second, cfg.Redis.ReportTTL)
}

func TestLoad_YAMLFileIsOverriddenByEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "university.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: campus
grades:
  backend: sqlite
  sqlite_path: ledger.db
redis:
  disabled: false
  report_ttl: 1m
domain:
  course_capacity: 25
logging:
  output: stderr
  error_log_path: failures.log
`), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("COURSE_CAPACITY", "40")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "campus", cfg.App.Name)
	assert.Equal(t, BackendSQLite, cfg.Grades.Backend)
	assert.Equal(t, "ledger.db", cfg.Grades.SQLitePath)
	assert.False(t, cfg.Redis.Disabled)
	assert.Equal(t, time.Minute, cfg.Redis.ReportTTL)
	assert.Equal(t, 40, cfg.Domain.CourseCapacity)
	assert.Equal(t, "stderr", cfg.Observability.LogOutput)
	assert.Equal(t, "failures.log", cfg.Observability.ErrorLogPath)
}

func TestLoad_MissingConfigFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "university-hub", cfg.App.Name)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unterminated"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid"},
		{
			name:    "postgres without url",
			mutate:  func(c *Config) { c.Store.Backend = BackendPostgres },
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "unknown store",
			mutate:  func(c *Config) { c.Store.Backend = "mongo" },
			wantErr: "STORE_BACKEND must be memory or postgres",
		},
		{
			name:    "unknown grades backend",
			mutate:  func(c *Config) { c.Grades.Backend = "csv" },
			wantErr: "GRADES_BACKEND must be memory or sqlite",
		},
		{
			name:    "capacity",
			mutate:  func(c *Config) { c.Domain.CourseCapacity = 0 },
			wantErr: "COURSE_CAPACITY must be positive",
		},
		{
			name:    "pass grade",
			mutate:  func(c *Config) { c.Domain.PassGrade = 120 },
			wantErr: "PASS_GRADE must be 0-100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Store:         StoreConfig{Backend: BackendMemory},
				Grades:        GradesConfig{Backend: BackendMemory, SQLitePath: "grades.db"},
				Domain:        DomainConfig{CourseCapacity: 30, PassGrade: 50},
				Observability: ObservabilityConfig{LogFormat: "json", ErrorLogPath: "errors.log"},
			}
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// chdir switches the working directory for the duration of the test and
// restores it on cleanup (testing.T.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
