package smtp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"wellness-service/internal/config"
	"wellness-service/internal/domain/entity"
)

func testEvent() *entity.ReminderEvent {
	return &entity.ReminderEvent{
		Title:        "Take <magnesium>",
		Message:      "after dinner",
		ReminderType: entity.ReminderTypeSupplement,
		DueAt:        time.Date(2026, 3, 4, 19, 0, 0, 0, time.UTC),
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	c, err := NewClient(&config.SMTPConfig{}, filepath.Join(t.TempDir(), "missing"), berlin)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	subject, body, err := c.render(testEvent())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if subject != "Reminder: Take <magnesium>" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"Take &lt;magnesium&gt;", "after dinner", "Wed 4 Mar 20:00", "supplement reminder"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestCustomTemplateOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	custom := `<p>{{.Title}} at {{.DueAt}}</p>`
	if err := os.WriteFile(filepath.Join(dir, "reminder.html"), []byte(custom), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := NewClient(&config.SMTPConfig{}, dir, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, body, err := c.render(testEvent())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if body != "<p>Take &lt;magnesium&gt; at Wed 4 Mar 19:00</p>" {
		t.Errorf("body = %q", body)
	}
}

func TestSendReminderEmailHonoursCancelledContext(t *testing.T) {
	c, err := NewClient(&config.SMTPConfig{Host: "localhost", Port: 1}, "", nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.SendReminderEmail(ctx, "a@example.com", testEvent()); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
