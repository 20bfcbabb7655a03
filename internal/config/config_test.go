package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("ANALYSIS_CACHE_SECS", "")
	t.Setenv("OPENAI_MODEL", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RedisURL != "localhost:6379" {
		t.Errorf("expected default redis addr, got %s", cfg.RedisURL)
	}
	if cfg.AnalysisCacheSecs != 300 {
		t.Errorf("expected default cache TTL 300, got %d", cfg.AnalysisCacheSecs)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("expected default model, got %s", cfg.OpenAIModel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("ANALYSIS_CACHE_SECS", "60")
	t.Setenv("RUGCHECK_BASE_URL", "http://localhost:9001/v1")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("unexpected port: %s", cfg.Port)
	}
	if cfg.RedisURL != "redis://cache:6379/0" {
		t.Errorf("unexpected redis url: %s", cfg.RedisURL)
	}
	if cfg.AnalysisCacheSecs != 60 {
		t.Errorf("unexpected cache TTL: %d", cfg.AnalysisCacheSecs)
	}
	if cfg.RugcheckBaseURL != "http://localhost:9001/v1" {
		t.Errorf("unexpected rugcheck base url: %s", cfg.RugcheckBaseURL)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("unexpected model: %s", cfg.OpenAIModel)
	}
}

func TestLoadIgnoresInvalidCacheTTL(t *testing.T) {
	t.Setenv("ANALYSIS_CACHE_SECS", "not-a-number")

	if cfg := Load(); cfg.AnalysisCacheSecs != 300 {
		t.Errorf("expected fallback to default, got %d", cfg.AnalysisCacheSecs)
	}
}
