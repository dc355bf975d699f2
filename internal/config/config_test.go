package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	path := writeConfig(t, `
grpc:
  port: 50051
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("Driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.Scheduler.Spec != "* * * * *" {
		t.Errorf("Scheduler.Spec = %q", cfg.Scheduler.Spec)
	}
	if cfg.Identity.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.Identity.TokenTTL)
	}
	loc, err := cfg.Analytics.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location = %v, %v; want UTC", loc, err)
	}
}

func TestLoadFileExpandsAndOverridesEnv(t *testing.T) {
	t.Setenv("WELLNESS_TEST_TOPIC", "reminders.test")
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

	path := writeConfig(t, `
grpc:
  port: 50051
kafka:
  enabled: true
  topic: ${WELLNESS_TEST_TOPIC:fallback}
notifications:
  recipients:
    alice: alice@example.com
scheduler:
  lock_ttl: 90s
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Kafka.Topic != "reminders.test" {
		t.Errorf("Topic = %q, want expanded value", cfg.Kafka.Topic)
	}
	if cfg.GRPC.Port != 6000 {
		t.Errorf("GRPC.Port = %d, want 6000", cfg.GRPC.Port)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "b:9092" {
		t.Errorf("Brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Notifications.Recipients["alice"] != "alice@example.com" {
		t.Errorf("Recipients = %v", cfg.Notifications.Recipients)
	}
	if cfg.Scheduler.LockTTL != 90*time.Second {
		t.Errorf("LockTTL = %v", cfg.Scheduler.LockTTL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "grpc:\n  port: 1\ndatabase:\n  driver: mysql\n"},
		{"missing grpc port", "database:\n  driver: sqlite\n"},
		{"kafka without topic", "grpc:\n  port: 1\nkafka:\n  enabled: true\n  brokers: [\"a:1\"]\n"},
		{"bad timezone", "grpc:\n  port: 1\nanalytics:\n  timezone: Mars/Olympus\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: 5432, Database: "d", SSLMode: "disable"}
	if got, want := db.GetDSN(), "postgres://u:p@h:5432/d?sslmode=disable"; got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}

func TestBaseConfigLoads(t *testing.T) {
	// an unset secret must fall back to the empty default (demo identity)
	t.Setenv("IDENTITY_SECRET", "")
	os.Unsetenv("IDENTITY_SECRET")

	cfg, err := LoadFile(filepath.Join("..", "..", "config", "base.yaml"))
	if err != nil {
		t.Fatalf("LoadFile(base.yaml): %v", err)
	}
	if cfg.Identity.DefaultUserID == "" {
		t.Error("base config should define a default user")
	}
	if cfg.Identity.Secret != "" {
		t.Errorf("secret = %q, want empty without IDENTITY_SECRET", cfg.Identity.Secret)
	}
}
