package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

type fakeFetcher struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]bool
}

func (f *fakeFetcher) Fetch(_ context.Context, src config.ScraperSource) (ScrapeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, src.Key)
	if f.failOn[src.Key] {
		return ScrapeResult{}, errors.New("connection refused")
	}
	return ScrapeResult{
		Source:     src.Key,
		SourceName: src.Name,
		Items:      []ScrapedItem{{Title: "headline from " + src.Key}},
		FetchedAt:  time.Now(),
	}, nil
}

type fixedPicker int

func (p fixedPicker) Intn(n int) int { return int(p) % n }

func newTestScraper(fetcher Fetcher, pick int) (ScraperService, *recordingNotifications) {
	notes := &recordingNotifications{}
	svc := NewScraperService(config.DefaultScraperSources(), fetcher, fixedPicker(pick), newTestSettings(), notes, logger.NewNop())
	return svc, notes
}

func TestScraperRunOnceWithoutSources(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc, notes := newTestScraper(fetcher, 0)

	result, err := svc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, fetcher.calls)
	assert.Empty(t, notes.Recent(0))
	assert.Equal(t, 0, svc.Status().ScrapeCount)
}

func TestScraperRunOncePicksSelectedSource(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{}
	svc, notes := newTestScraper(fetcher, 1)

	_, err := svc.UpdateSettings(ctx, entity.ScraperConfig{Sources: []string{"sina", "ifeng"}, Interval: 10})
	require.NoError(t, err)

	result, err := svc.RunOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ifeng", result.Source)
	assert.Equal(t, []string{"ifeng"}, fetcher.calls)
	assert.Equal(t, 1, notes.count("Scrape completed"))
	assert.Contains(t, notes.last().Message, "凤凰财经")

	status := svc.Status()
	assert.Equal(t, 1, status.ScrapeCount)
	assert.NotNil(t, status.LastScrape)
	assert.Equal(t, "ifeng", status.LastResult.Source)
}

func TestScraperTest(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{failOn: map[string]bool{"hexun": true}}
	svc, notes := newTestScraper(fetcher, 0)

	_, err := svc.Test(ctx)
	assert.True(t, entity.IsValidation(err))
	assert.Equal(t, 1, notes.count("Test scrape failed"))

	_, err = svc.UpdateSettings(ctx, entity.ScraperConfig{Sources: []string{"sina", "hexun", "eastmoney"}, Interval: 5})
	require.NoError(t, err)

	result, err := svc.Test(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Selected)
	assert.Equal(t, 2, result.Succeeded)
	assert.Contains(t, result.Failures, "hexun")
	assert.Equal(t, 1, notes.count("Test scrape succeeded"))
	assert.Contains(t, notes.last().Message, "2 of 3")
}

func TestScraperUpdateSettingsValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScraper(&fakeFetcher{}, 0)

	_, err := svc.UpdateSettings(ctx, entity.ScraperConfig{Sources: []string{"reuters"}, Interval: 5})
	assert.True(t, entity.IsValidation(err))
	_, err = svc.UpdateSettings(ctx, entity.ScraperConfig{Sources: []string{"sina"}, Interval: 0})
	assert.True(t, entity.IsValidation(err))

	cfg, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Empty(t, cfg.Sources)
	assert.Equal(t, 5, cfg.Interval)
}

func TestScraperEnableDisable(t *testing.T) {
	ctx := context.Background()
	svc, notes := newTestScraper(&fakeFetcher{}, 0)
	require.NoError(t, svc.Start(ctx))
	defer svc.Stop()

	require.NoError(t, svc.Enable(ctx))
	assert.Equal(t, SchedulerRunning, svc.Status().State)
	next := svc.Status().NextRun
	require.NotNil(t, next)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), *next, 5*time.Second)

	svc.Disable(ctx)
	assert.Equal(t, SchedulerStopped, svc.Status().State)
	assert.Equal(t, 1, notes.count("Data scraper started"))
	assert.Equal(t, 1, notes.count("Data scraper stopped"))
}

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Finance</title>
<item><title>Shanghai index closes higher</title><link>http://example.com/a</link>
<description><![CDATA[<p>Blue chips <b>led</b> the gains.</p>]]></description></item>
<item><title>Liquor stocks rebound</title><link>http://example.com/b</link></item>
</channel></rss>`

const testPage = `<html><head><title>Market news</title></head><body>
<nav><a href="/home">Home</a></nav>
<article><h1>Shares rally on policy hopes</h1>
<p>Chinese equities advanced on Monday as investors bet on further policy support for the property sector and consumer demand.</p>
<p>Turnover on the two main exchanges topped one trillion yuan for the third straight session.</p>
<a href="/news/rally-on-policy-hopes">Shares rally on policy hopes, full story</a>
<a href="https://other.example.com/bank-valuations">Bank valuations near historical lows</a>
<a href="javascript:void(0)">Open the interactive chart now</a>
</article></body></html>`

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rss":
			w.Header().Set("Content-Type", "application/rss+xml")
			fmt.Fprint(w, testFeed)
		case "/page":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprint(w, testPage)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(5 * time.Second)
	ctx := context.Background()

	feed, err := fetcher.Fetch(ctx, config.ScraperSource{Key: "sina", Name: "Sina", Kind: "rss", URL: server.URL + "/rss"})
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "Shanghai index closes higher", feed.Items[0].Title)
	assert.Equal(t, "Blue chips led the gains.", feed.Items[0].Excerpt)

	page, err := fetcher.Fetch(ctx, config.ScraperSource{Key: "ifeng", Name: "Ifeng", Kind: "html", URL: server.URL + "/page"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, server.URL+"/news/rally-on-policy-hopes", page.Items[0].Link)
	assert.Equal(t, "https://other.example.com/bank-valuations", page.Items[1].Link)

	_, err = fetcher.Fetch(ctx, config.ScraperSource{Key: "x", Kind: "html", URL: server.URL + "/missing"})
	assert.Error(t, err)

	_, err = fetcher.Fetch(ctx, config.ScraperSource{Key: "x", Kind: "ftp", URL: server.URL})
	assert.Error(t, err)
}
