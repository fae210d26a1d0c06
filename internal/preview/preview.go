package preview

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rsilvagit/ajudaja/internal/httpclient"
)

// Preview is a short summary of an organization's website.
type Preview struct {
	URL         string
	Title       string
	Description string
}

// Empty reports whether nothing useful was found on the page.
func (p Preview) Empty() bool {
	return p.Title == "" && p.Description == ""
}

// Fetcher builds previews from web pages.
type Fetcher struct {
	client *httpclient.Client
}

func NewFetcher(client *httpclient.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads pageURL and extracts its title and description, preferring
// Open Graph tags over the plain ones.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (Preview, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Preview{}, fmt.Errorf("preview: building request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return Preview{}, fmt.Errorf("preview: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Preview{}, fmt.Errorf("preview: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Preview{}, fmt.Errorf("preview: parsing HTML: %w", err)
	}

	p := Preview{
		URL:         pageURL,
		Title:       firstNonEmpty(meta(doc, "property", "og:title"), doc.Find("head title").First().Text()),
		Description: firstNonEmpty(meta(doc, "property", "og:description"), meta(doc, "name", "description")),
	}
	return p, nil
}

func meta(doc *goquery.Document, attr, value string) string {
	content, _ := doc.Find(fmt.Sprintf("meta[%s='%s']", attr, value)).First().Attr("content")
	return content
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.Join(strings.Fields(v), " "); v != "" {
			return v
		}
	}
	return ""
}
