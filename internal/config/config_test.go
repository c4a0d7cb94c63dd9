package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/msomdec/userdesk/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RULES_FILE", "")
	t.Setenv("SEED_DEMO", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Rules.PageSize != 5 {
		t.Fatalf("expected default page size 5, got %d", cfg.Rules.PageSize)
	}
	if !cfg.Rules.Editable {
		t.Fatal("expected editable by default")
	}
	if cfg.Rules.NameMin != 2 || cfg.Rules.NameMax != 50 {
		t.Fatalf("expected name bounds [2,50], got [%d,%d]", cfg.Rules.NameMin, cfg.Rules.NameMax)
	}
}

func TestDefaultPatterns(t *testing.T) {
	rules := config.DefaultRules()

	if !rules.Email.MatchString("jane@x.com") {
		t.Fatal("expected default email pattern to accept jane@x.com")
	}
	if rules.Email.MatchString("not-an-email") {
		t.Fatal("expected default email pattern to reject not-an-email")
	}
	if !rules.Linkedin.MatchString("https://www.linkedin.com/in/jane") {
		t.Fatal("expected LinkedIn pattern to accept a www profile URL")
	}
	if !rules.Linkedin.MatchString("https://in.linkedin.com/in/jane") {
		t.Fatal("expected LinkedIn pattern to accept a 2-letter subdomain")
	}
	if rules.Linkedin.MatchString("https://evil.linkedin.com/in/jane") {
		t.Fatal("expected LinkedIn pattern to reject a 4-letter subdomain")
	}
	if !rules.PIN.MatchString("403001") {
		t.Fatal("expected PIN pattern to accept 403001")
	}
	if rules.PIN.MatchString("40300") || rules.PIN.MatchString("4030011") {
		t.Fatal("expected PIN pattern to require exactly 6 digits")
	}
}

func TestLoadWithRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.ini")
	contents := `[form]
editable = false
page_size = 10
name_min = 3
name_max = 40
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	t.Setenv("PORT", "")
	t.Setenv("SEED_DEMO", "")
	t.Setenv("RULES_FILE", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules.Editable {
		t.Fatal("expected editable overridden to false")
	}
	if cfg.Rules.PageSize != 10 {
		t.Fatalf("expected page size 10, got %d", cfg.Rules.PageSize)
	}
	if cfg.Rules.NameMin != 3 || cfg.Rules.NameMax != 40 {
		t.Fatalf("expected name bounds [3,40], got [%d,%d]", cfg.Rules.NameMin, cfg.Rules.NameMax)
	}
	// Patterns keep their defaults when not overridden.
	if !cfg.Rules.PIN.MatchString("403001") {
		t.Fatal("expected default PIN pattern to survive a partial override")
	}
}

func TestLoadRejectsBadRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.ini")
	contents := `[form]
pin_pattern = ([unclosed
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	t.Setenv("PORT", "")
	t.Setenv("SEED_DEMO", "")
	t.Setenv("RULES_FILE", path)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
}

func TestLoadRejectsInvertedNameBounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.ini")
	contents := `[form]
name_min = 60
name_max = 50
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	t.Setenv("PORT", "")
	t.Setenv("SEED_DEMO", "")
	t.Setenv("RULES_FILE", path)

	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for inverted name bounds")
	}
}
