package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullYAML = `
server:
  port: 9090

database:
  host: 10.0.0.5
  port: 3307
  user: chantier
  password: secret
  database: chantier_prod

storage:
  dir: /var/lib/chantier/uploads
  base_url: https://files.chantier.example

session:
  ttl_hours: 12

notify:
  slack:
    bot_token: xoxb-test
    channel_id: C0123456

admin:
  email: admin@chantier.example
`

const minimalYAML = `
admin:
  email: admin@chantier.example
`

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "10.0.0.5" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "10.0.0.5")
	}
	if cfg.Database.Port != 3307 {
		t.Errorf("Database.Port = %d, want 3307", cfg.Database.Port)
	}
	if cfg.Database.Database != "chantier_prod" {
		t.Errorf("Database.Database = %q, want %q", cfg.Database.Database, "chantier_prod")
	}
	if cfg.Storage.Dir != "/var/lib/chantier/uploads" {
		t.Errorf("Storage.Dir = %q, want /var/lib/chantier/uploads", cfg.Storage.Dir)
	}
	if cfg.Session.TTLHours != 12 {
		t.Errorf("Session.TTLHours = %d, want 12", cfg.Session.TTLHours)
	}
	if cfg.Notify.Slack.BotToken != "xoxb-test" {
		t.Errorf("Notify.Slack.BotToken = %q, want xoxb-test", cfg.Notify.Slack.BotToken)
	}
	if cfg.Admin.Email != "admin@chantier.example" {
		t.Errorf("Admin.Email = %q, want admin@chantier.example", cfg.Admin.Email)
	}
}

func TestParse_MinimalConfigDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("default Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Host != "127.0.0.1" {
		t.Errorf("default Database.Host = %q, want 127.0.0.1", cfg.Database.Host)
	}
	if cfg.Database.Port != 3306 {
		t.Errorf("default Database.Port = %d, want 3306", cfg.Database.Port)
	}
	if cfg.Database.User != "root" {
		t.Errorf("default Database.User = %q, want root", cfg.Database.User)
	}
	if cfg.Database.Database != "chantier" {
		t.Errorf("default Database.Database = %q, want chantier", cfg.Database.Database)
	}
	if cfg.Storage.Dir != "uploads" {
		t.Errorf("default Storage.Dir = %q, want uploads", cfg.Storage.Dir)
	}
	if cfg.Storage.BaseURL != "http://localhost:8080/files" {
		t.Errorf("default Storage.BaseURL = %q, want http://localhost:8080/files", cfg.Storage.BaseURL)
	}
	if cfg.Session.TTLHours != 24 {
		t.Errorf("default Session.TTLHours = %d, want 24", cfg.Session.TTLHours)
	}
}

func TestParse_MissingAdminEmail(t *testing.T) {
	_, err := Parse([]byte(`server: {port: 8080}`))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "admin.email is required") {
		t.Errorf("error = %q, want to mention admin.email", err.Error())
	}
}

func TestParse_SlackChannelRequiredWithToken(t *testing.T) {
	yaml := `
admin:
  email: a@b.c
notify:
  slack:
    bot_token: xoxb-abc
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "notify.slack.channel_id") {
		t.Errorf("error = %q, want to mention notify.slack.channel_id", err.Error())
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("admin: ["))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("error = %q, want config: parse prefix", err.Error())
	}
}

func TestParse_NegativeTTL(t *testing.T) {
	yaml := `
admin:
  email: a@b.c
session:
  ttl_hours: -1
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "ttl_hours") {
		t.Errorf("error = %q, want to mention ttl_hours", err.Error())
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chantier.yaml")
	if err := os.WriteFile(path, []byte(fullYAML), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "config: read") {
		t.Errorf("error = %q, want config: read prefix", err.Error())
	}
}
