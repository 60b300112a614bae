package transcript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diogo/cricketai/internal/models"
)

var exportedAt = time.Date(2025, 4, 12, 19, 30, 0, 0, time.UTC)

func sampleMessages() []models.ChatMessage {
	return []models.ChatMessage{
		{ID: "1", Text: models.WelcomeMessage, Sender: models.SenderAI, Time: exportedAt},
		{ID: "2", Text: "Who should I captain?", Sender: models.SenderUser, Time: exportedAt.Add(time.Minute)},
		{ID: "3", Text: "Pick **Virat Kohli**\n• chasing <target>", Sender: models.SenderAI, Time: exportedAt.Add(2 * time.Minute)},
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"chat.md", FormatMarkdown},
		{"chat.JSON", FormatJSON},
		{"out/chat.html", FormatHTML},
		{"chat.htm", FormatHTML},
		{"chat", FormatMarkdown},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("MD"); err != nil || f != FormatMarkdown {
		t.Errorf("ParseFormat(MD) = %q, %v", f, err)
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("expected an error for pdf")
	}
}

func TestExportMarkdownKeepsOrder(t *testing.T) {
	data, err := Export(sampleMessages(), Options{Format: FormatMarkdown, ExportedAt: exportedAt})
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	if !strings.HasPrefix(out, "# Cricket AI chat\n\n**Exported:** 2025-04-12 19:30:00\n**Messages:** 3\n") {
		t.Errorf("unexpected header:\n%s", out)
	}

	welcome := strings.Index(out, "IPL Fantasy Cricket expert")
	question := strings.Index(out, "## You (19:31:00)\n\nWho should I captain?")
	answer := strings.Index(out, "Pick **Virat Kohli**")
	if welcome < 0 || question < 0 || answer < 0 || !(welcome < question && question < answer) {
		t.Errorf("messages missing or out of order:\n%s", out)
	}
	if strings.HasSuffix(out, "---\n\n") {
		t.Error("no separator after the last message")
	}
}

func TestExportJSON(t *testing.T) {
	data, err := Export(sampleMessages(), Options{Format: FormatJSON, Title: "Match day", ExportedAt: exportedAt})
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Title    string `json:"title"`
		Messages []struct {
			ID     string `json:"id"`
			Sender string `json:"sender"`
			Text   string `json:"text"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Title != "Match day" || len(decoded.Messages) != 3 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.Messages[1].Sender != "user" || decoded.Messages[2].ID != "3" {
		t.Errorf("messages = %+v", decoded.Messages)
	}
}

func TestExportJSONEmpty(t *testing.T) {
	data, err := Export(nil, Options{Format: FormatJSON, ExportedAt: exportedAt})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"messages": []`) {
		t.Errorf("empty log should export an empty array:\n%s", data)
	}
}

func TestExportHTML(t *testing.T) {
	data, err := Export(sampleMessages(), Options{Format: FormatHTML, ExportedAt: exportedAt})
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		`<div class="message user" id="msg-2">Who should I captain?</div>`,
		`Pick <strong>Virat Kohli</strong><br>&bull; chasing &lt;target&gt;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %q:\n%s", want, out)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := Export(sampleMessages(), Options{Format: "pdf"}); err == nil {
		t.Error("expected an error")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "chat.html")

	if err := Save(path, sampleMessages()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") {
		t.Errorf("expected html output, got:\n%s", data)
	}
}

func TestSearch(t *testing.T) {
	hits := Search(sampleMessages(), "virat")
	if len(hits) != 1 || hits[0] != 2 {
		t.Errorf("Search(virat) = %v", hits)
	}
	if Search(sampleMessages(), "  ") != nil {
		t.Error("blank query should match nothing")
	}
}
