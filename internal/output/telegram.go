package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rsilvagit/ajudaja/internal/model"
)

const telegramAPI = "https://api.telegram.org"

// TelegramWriter sends opportunities to a Telegram chat via the Bot API.
type TelegramWriter struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

func NewTelegramWriter(token, chatID string) *TelegramWriter {
	return &TelegramWriter{
		token:   token,
		chatID:  chatID,
		baseURL: telegramAPI,
		client:  &http.Client{},
	}
}

func (tw *TelegramWriter) WriteOpportunities(opps []model.Opportunity) error {
	if len(opps) == 0 {
		return tw.send(escapeMarkdown(NoResults))
	}

	// Telegram has a 4096 char limit per message. Split into chunks.
	header := fmt.Sprintf("*%d oportunidade\\(s\\) de voluntariado:*\n\n", len(opps))
	entries := make([]string, 0, len(opps))
	for i, o := range opps {
		entries = append(entries, formatOpportunity(i+1, o))
	}

	for _, chunk := range chunk(header, entries, 3800) {
		if err := tw.send(chunk); err != nil {
			return err
		}
	}
	return nil
}

func formatOpportunity(n int, o model.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%d\\. %s*\n", n, escapeMarkdown(o.Title))
	fmt.Fprintf(&b, "Organização: %s\n", escapeMarkdown(o.Organization))
	fmt.Fprintf(&b, "Categoria: %s\n", escapeMarkdown(o.Category))
	fmt.Fprintf(&b, "Local: %s\n", escapeMarkdown(o.Location))
	fmt.Fprintf(&b, "Data: %s\n", escapeMarkdown(o.Date))
	if o.Website != "" {
		fmt.Fprintf(&b, "[Saiba mais](%s)\n", o.Website)
	}
	b.WriteString("\n")
	return b.String()
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
		"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
		">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
		"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
		".", "\\.", "!", "\\!",
	)
	return replacer.Replace(s)
}

func (tw *TelegramWriter) send(text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", tw.baseURL, tw.token)

	payload := map[string]string{
		"chat_id":    tw.chatID,
		"text":       text,
		"parse_mode": "MarkdownV2",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram: marshaling payload: %w", err)
	}

	resp, err := tw.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var result map[string]any
		json.NewDecoder(resp.Body).Decode(&result)
		return fmt.Errorf("telegram: API error %d: %v", resp.StatusCode, result["description"])
	}

	return nil
}

// chunk packs header and entries into messages no longer than limit bytes,
// never splitting an entry.
func chunk(header string, entries []string, limit int) []string {
	var chunks []string
	var current strings.Builder
	current.WriteString(header)

	for _, e := range entries {
		if current.Len() > 0 && current.Len()+len(e) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(e)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
