package revaluation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moisespsena-go/revaluation"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name             string
		data             string
		valuator, prefix string
		appendRevaluated bool
	}{
		{"empty", "", revaluation.IdentityValuator, revaluation.DefaultPrefix, true},
		{"full", "default_valuator: money\nprefix: rv\nappend_revaluated: false\n", "money", "rv", false},
		{"partial", "default_valuator: percent\n", "percent", revaluation.DefaultPrefix, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := revaluation.ParseConfig([]byte(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.DefaultValuator != tt.valuator {
				t.Errorf("DefaultValuator = %v, want %v", cfg.DefaultValuator, tt.valuator)
			}
			if cfg.Prefix != tt.prefix {
				t.Errorf("Prefix = %v, want %v", cfg.Prefix, tt.prefix)
			}
			if *cfg.AppendRevaluated != tt.appendRevaluated {
				t.Errorf("AppendRevaluated = %v, want %v", *cfg.AppendRevaluated, tt.appendRevaluated)
			}
		})
	}
}

func TestParseConfigInvalid(t *testing.T) {
	if _, err := revaluation.ParseConfig([]byte("prefix: [")); err == nil {
		t.Error("expected error")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revaluation.yaml")
	if err := os.WriteFile(path, []byte("prefix: valued\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := revaluation.LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prefix != "valued" {
		t.Errorf("Prefix = %v, want valued", cfg.Prefix)
	}

	if _, err = revaluation.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error")
	}
}

func TestSetConfig(t *testing.T) {
	defer revaluation.SetConfig(nil)

	revaluation.SetConfig(&revaluation.Config{Prefix: "valued"})
	cfg := revaluation.GetConfig()
	if cfg.Prefix != "valued" || cfg.DefaultValuator != revaluation.IdentityValuator {
		t.Errorf("unexpected config %+v", cfg)
	}

	r := revaluation.New(declared{[]string{"price"}}, nil)
	if got := r.GetRevaluablePrefixedAttributeName("price"); got != "valued_price" {
		t.Errorf("expected valued_price; but got = %v", got)
	}

	revaluation.SetConfig(nil)
	if cfg := revaluation.GetConfig(); cfg.Prefix != revaluation.DefaultPrefix {
		t.Errorf("expected default prefix; but got = %v", cfg.Prefix)
	}
}

func TestSetConfig_Copy(t *testing.T) {
	defer revaluation.SetConfig(nil)

	appendRevaluated := false
	cfg := &revaluation.Config{AppendRevaluated: &appendRevaluated}
	revaluation.SetConfig(cfg)
	appendRevaluated = true
	if got := revaluation.GetConfig(); *got.AppendRevaluated {
		t.Error("expected global config unchanged after caller write")
	}

	got := revaluation.GetConfig()
	*got.AppendRevaluated = true
	if again := revaluation.GetConfig(); *again.AppendRevaluated {
		t.Error("expected global config unchanged after write to GetConfig result")
	}
}

func TestOptConfig(t *testing.T) {
	r := revaluation.New(declared{[]string{"price"}}, nil, revaluation.OptConfig(nil))
	if r.GetRevaluableAttributePrefix() != revaluation.DefaultPrefix || !r.IsAppendRevaluated() {
		t.Errorf("expected default config; but got prefix = %v", r.GetRevaluableAttributePrefix())
	}

	appendRevaluated := false
	cfg := &revaluation.Config{Prefix: "valued", AppendRevaluated: &appendRevaluated}
	opt := revaluation.OptConfig(cfg)
	appendRevaluated = true
	r = revaluation.New(declared{[]string{"price"}}, nil, opt)
	if r.GetRevaluableAttributePrefix() != "valued" {
		t.Errorf("expected valued prefix; but got = %v", r.GetRevaluableAttributePrefix())
	}
	if r.IsAppendRevaluated() {
		t.Error("expected append revaluated as it was on OptConfig call")
	}
}
