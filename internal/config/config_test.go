package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RiotAPIKeyRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when RIOT_API_KEY is missing")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_RiotClientConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("RIOT_BASE_DOMAIN", "")
		t.Setenv("RIOT_TIMEOUT", "")
		t.Setenv("RIOT_MAX_RETRIES", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.RiotBaseDomain != "api.riotgames.com" {
			t.Fatalf("unexpected default riot base domain: %q", cfg.RiotBaseDomain)
		}
		if cfg.RiotTimeout != 10*time.Second {
			t.Fatalf("unexpected default riot timeout: %s", cfg.RiotTimeout)
		}
		if cfg.RiotMaxRetries != 2 {
			t.Fatalf("unexpected default riot max retries: %d", cfg.RiotMaxRetries)
		}
		if !cfg.RiotCircuitEnabled {
			t.Fatalf("expected circuit breaker enabled by default")
		}
		if cfg.RiotCircuitFailureCount != 5 {
			t.Fatalf("unexpected default circuit failure count: %d", cfg.RiotCircuitFailureCount)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("RIOT_TIMEOUT", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid RIOT_TIMEOUT")
		}
	})

	t.Run("negative retries rejected", func(t *testing.T) {
		t.Setenv("RIOT_TIMEOUT", "10s")
		t.Setenv("RIOT_MAX_RETRIES", "-1")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative RIOT_MAX_RETRIES")
		}
	})
}

func TestLoad_ProfileTTLParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	t.Run("default one hour", func(t *testing.T) {
		t.Setenv("PROFILE_TTL", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.ProfileTTL != time.Hour {
			t.Fatalf("unexpected default profile ttl: %s", cfg.ProfileTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("PROFILE_TTL", "-5m")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-positive PROFILE_TTL")
		}
	})
}

func TestLoad_IngestWorkersParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	t.Run("default", func(t *testing.T) {
		t.Setenv("INGEST_WORKERS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.IngestWorkers != 4 {
			t.Fatalf("unexpected default ingest workers: %d", cfg.IngestWorkers)
		}
	})

	t.Run("zero rejected", func(t *testing.T) {
		t.Setenv("INGEST_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for INGEST_WORKERS=0")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")
	t.Setenv("APP_SERVICE_NAME", "riftwatch-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "riftwatch-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_MatchIDsCacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("RIOT_API_KEY", "RGAPI-test")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MATCH_IDS_CACHE_ENABLED", "")
		t.Setenv("MATCH_IDS_CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.MatchIDsCacheEnabled {
			t.Fatalf("expected match ids cache enabled by default")
		}
		if cfg.MatchIDsCacheTTL != 15*time.Minute {
			t.Fatalf("unexpected default match ids cache ttl: %s", cfg.MatchIDsCacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("MATCH_IDS_CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid MATCH_IDS_CACHE_TTL")
		}
	})
}
