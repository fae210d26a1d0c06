package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rsilvagit/ajudaja/internal/model"
)

// DiscordWriter sends opportunities to a Discord channel via Webhook.
type DiscordWriter struct {
	webhookURL string
	client     *http.Client
}

func NewDiscordWriter(webhookURL string) *DiscordWriter {
	return &DiscordWriter{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

func (dw *DiscordWriter) WriteOpportunities(opps []model.Opportunity) error {
	if len(opps) == 0 {
		return dw.send(NoResults)
	}

	// Discord has a 2000 char limit per message. Split into chunks.
	header := fmt.Sprintf("**%d oportunidade(s) de voluntariado:**\n\n", len(opps))
	entries := make([]string, 0, len(opps))
	for i, o := range opps {
		entries = append(entries, formatDiscordOpportunity(i+1, o))
	}

	for _, c := range chunk(header, entries, 1900) {
		if err := dw.send(c); err != nil {
			return err
		}
	}
	return nil
}

func formatDiscordOpportunity(n int, o model.Opportunity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%d. %s**\n", n, o.Title)
	fmt.Fprintf(&b, "> Organização: %s\n", o.Organization)
	fmt.Fprintf(&b, "> Categoria: %s\n", o.Category)
	fmt.Fprintf(&b, "> Local: %s\n", o.Location)
	if o.Date != "" {
		fmt.Fprintf(&b, "> Data: %s\n", o.Date)
	}
	if o.Website != "" {
		fmt.Fprintf(&b, "> [Saiba mais](%s)\n", o.Website)
	}
	b.WriteString("\n")
	return b.String()
}

type discordPayload struct {
	Content string `json:"content"`
}

func (dw *DiscordWriter) send(text string) error {
	payload, err := json.Marshal(discordPayload{Content: text})
	if err != nil {
		return fmt.Errorf("discord: marshaling payload: %w", err)
	}

	resp, err := dw.client.Post(dw.webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("discord: sending message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var result map[string]any
		json.NewDecoder(resp.Body).Decode(&result)
		return fmt.Errorf("discord: API error %d: %v", resp.StatusCode, result["message"])
	}

	return nil
}
