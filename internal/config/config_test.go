package config

import (
	"testing"

	"github.com/fumr/tidalgo/tidal"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TIDAL_TOKEN", "tok-xyz")
	t.Setenv("TIDAL_COUNTRY", "PL")
	t.Setenv("TIDAL_PREFERRED_QUALITY", "HI_RES")
	t.Setenv("TIDAL_REQUIRED_QUALITY", "LOSSLESS")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sc, err := cfg.SessionConfig()
	if err != nil {
		t.Fatalf("SessionConfig: %v", err)
	}
	if sc.Token != "tok-xyz" || sc.CountryCode != "PL" {
		t.Errorf("session config = %+v", sc)
	}
	if sc.PreferredQuality != tidal.Master {
		t.Errorf("preferred = %v, want Master", sc.PreferredQuality)
	}
	if sc.RequiredQuality != tidal.HiFi {
		t.Errorf("required = %v, want HiFi", sc.RequiredQuality)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TIDAL_TOKEN", "tok")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CountryCode != "US" {
		t.Errorf("default country = %q, want US", cfg.CountryCode)
	}
	if cfg.PreferredQuality != "LOSSLESS" || cfg.RequiredQuality != "LOW" {
		t.Errorf("default qualities = %q / %q", cfg.PreferredQuality, cfg.RequiredQuality)
	}
}

func TestSessionConfigValidation(t *testing.T) {
	cfg := &Config{Token: "tok", PreferredQuality: "ULTRA", RequiredQuality: "LOW"}
	if _, err := cfg.SessionConfig(); err == nil {
		t.Error("bad preferred quality accepted")
	}

	cfg = &Config{PreferredQuality: "LOW", RequiredQuality: "LOW"}
	if _, err := cfg.SessionConfig(); err == nil {
		t.Error("missing token accepted")
	}
}
