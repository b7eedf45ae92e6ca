package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"

	"golang-stock-dashboard/internal/dashboard/config"
)

const (
	maxScrapedItems = 10
	maxExcerptRunes = 200
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// ScrapedItem is one headline pulled from a news source.
type ScrapedItem struct {
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Excerpt     string     `json:"excerpt,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// ScrapeResult is the outcome of fetching one source.
type ScrapeResult struct {
	Source     string        `json:"source"`
	SourceName string        `json:"source_name"`
	Items      []ScrapedItem `json:"items"`
	FetchedAt  time.Time     `json:"fetched_at"`
}

// Fetcher pulls headlines from a configured source.
type Fetcher interface {
	Fetch(ctx context.Context, source config.ScraperSource) (ScrapeResult, error)
}

// NewHTTPFetcher reads rss sources with gofeed and html sources with goquery and readability.
func NewHTTPFetcher(timeout time.Duration) Fetcher {
	client := &http.Client{Timeout: timeout}
	fp := gofeed.NewParser()
	fp.Client = client
	fp.UserAgent = userAgent
	return &httpFetcher{client: client, feedParser: fp}
}

type httpFetcher struct {
	client     *http.Client
	feedParser *gofeed.Parser
}

func (f *httpFetcher) Fetch(ctx context.Context, source config.ScraperSource) (ScrapeResult, error) {
	result := ScrapeResult{Source: source.Key, SourceName: source.Name, Items: []ScrapedItem{}}

	var err error
	switch source.Kind {
	case "rss":
		result.Items, err = f.fetchFeed(ctx, source.URL)
	case "html", "":
		result.Items, err = f.fetchPage(ctx, source.URL)
	default:
		err = fmt.Errorf("unsupported source kind %q", source.Kind)
	}
	if err != nil {
		return result, fmt.Errorf("failed to scrape %s: %w", source.Key, err)
	}
	result.FetchedAt = time.Now()
	return result, nil
}

func (f *httpFetcher) fetchFeed(ctx context.Context, feedURL string) ([]ScrapedItem, error) {
	feed, err := f.feedParser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}
	items := []ScrapedItem{}
	for _, it := range feed.Items {
		if len(items) == maxScrapedItems {
			break
		}
		items = append(items, ScrapedItem{
			Title:       strings.TrimSpace(it.Title),
			Link:        it.Link,
			Excerpt:     truncateRunes(plainText(it.Description), maxExcerptRunes),
			PublishedAt: it.PublishedParsed,
		})
	}
	return items, nil
}

func (f *httpFetcher) fetchPage(ctx context.Context, pageURL string) ([]ScrapedItem, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code: %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	items := []ScrapedItem{}
	seen := map[string]bool{}
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.Join(strings.Fields(sel.Text()), " ")
		href, _ := sel.Attr("href")
		if utf8.RuneCountInString(title) < 8 || strings.HasPrefix(href, "javascript:") {
			return true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		link := base.ResolveReference(ref).String()
		if seen[link] {
			return true
		}
		seen[link] = true
		items = append(items, ScrapedItem{Title: title, Link: link})
		return len(items) < maxScrapedItems
	})

	if len(items) > 0 {
		if article, err := readability.NewDocument(string(body)); err == nil {
			items[0].Excerpt = truncateRunes(plainText(article.Content()), maxExcerptRunes)
		}
	}
	return items, nil
}

// plainText strips markup from an html fragment.
func plainText(fragment string) string {
	if fragment == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
