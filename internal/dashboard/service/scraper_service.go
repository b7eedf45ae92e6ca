package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang-stock-dashboard/internal/dashboard/config"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
	"golang-stock-dashboard/pkg/utils"
)

// Picker returns a uniform index in [0,n).
type Picker interface {
	Intn(n int) int
}

// ScraperStatus summarizes the scraper for the dashboard.
type ScraperStatus struct {
	State       SchedulerState `json:"state"`
	NextRun     *time.Time     `json:"next_run,omitempty"`
	LastScrape  *time.Time     `json:"last_scrape,omitempty"`
	ScrapeCount int            `json:"scrape_count"`
	LastResult  *ScrapeResult  `json:"last_result,omitempty"`
}

// ScrapeTestResult reports how many selected sources answered.
type ScrapeTestResult struct {
	Selected  int               `json:"selected"`
	Succeeded int               `json:"succeeded"`
	Failures  map[string]string `json:"failures,omitempty"`
}

// ScraperService polls the selected news sources on a cron schedule.
type ScraperService interface {
	Start(ctx context.Context) error
	Stop()
	Sources() []config.ScraperSource
	Settings(ctx context.Context) (entity.ScraperConfig, error)
	UpdateSettings(ctx context.Context, cfg entity.ScraperConfig) (entity.ScraperConfig, error)
	Enable(ctx context.Context) error
	Disable(ctx context.Context)
	// RunOnce scrapes one randomly chosen selected source. It returns nil when no source is selected.
	RunOnce(ctx context.Context) (*ScrapeResult, error)
	Test(ctx context.Context) (ScrapeTestResult, error)
	Status() ScraperStatus
}

func NewScraperService(
	sources []config.ScraperSource,
	fetcher Fetcher,
	picker Picker,
	settings repository.SettingsRepository,
	notifications NotificationService,
	log *logger.Logger,
) ScraperService {
	s := &scraperService{
		sources:       sources,
		fetcher:       fetcher,
		picker:        picker,
		settings:      settings,
		notifications: notifications,
		logger:        log,
		baseCtx:       context.Background(),
	}
	s.job = NewCronJob("scraper", s.tick, log)
	return s
}

type scraperService struct {
	sources       []config.ScraperSource
	fetcher       Fetcher
	picker        Picker
	settings      repository.SettingsRepository
	notifications NotificationService
	logger        *logger.Logger
	job           *CronJob

	mu          sync.Mutex
	baseCtx     context.Context
	lastScrape  time.Time
	scrapeCount int
	lastResult  *ScrapeResult
}

// Start records the service lifetime context. The scraper only runs after Enable.
func (s *scraperService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.baseCtx = ctx
	s.mu.Unlock()
	return nil
}

func (s *scraperService) Stop() {
	s.job.Stop()
}

func (s *scraperService) Sources() []config.ScraperSource {
	out := make([]config.ScraperSource, len(s.sources))
	copy(out, s.sources)
	return out
}

func (s *scraperService) Settings(ctx context.Context) (entity.ScraperConfig, error) {
	cfg, _, err := s.settings.GetScraper(ctx)
	if cfg.Sources == nil {
		cfg.Sources = []string{}
	}
	return cfg, err
}

func (s *scraperService) UpdateSettings(ctx context.Context, cfg entity.ScraperConfig) (entity.ScraperConfig, error) {
	if cfg.Interval < 1 {
		return cfg, &entity.ValidationError{Field: "interval", Message: "must be at least 1 minute"}
	}
	if cfg.Sources == nil {
		cfg.Sources = []string{}
	}
	for _, key := range cfg.Sources {
		if _, ok := s.source(key); !ok {
			return cfg, &entity.ValidationError{Field: "sources", Message: fmt.Sprintf("unknown source %q", key)}
		}
	}
	if err := s.settings.SaveScraper(ctx, cfg); err != nil {
		return cfg, err
	}

	if s.job.State() == SchedulerRunning {
		if err := s.arm(cfg.Interval); err != nil {
			return cfg, err
		}
	}
	s.notifications.Notify(ctx, "Scraper settings saved",
		fmt.Sprintf("%d source(s) selected, scraping every %d minute(s)", len(cfg.Sources), cfg.Interval))
	return cfg, nil
}

func (s *scraperService) Enable(ctx context.Context) error {
	cfg, err := s.Settings(ctx)
	if err != nil {
		return err
	}
	if err := s.arm(cfg.Interval); err != nil {
		return err
	}
	s.notifications.Notify(ctx, "Data scraper started", "Stock data will be scraped from the selected sources")
	return nil
}

func (s *scraperService) Disable(ctx context.Context) {
	s.job.Stop()
	s.notifications.Notify(ctx, "Data scraper stopped", "Stock data will no longer be scraped")
}

func (s *scraperService) arm(intervalMinutes int) error {
	if intervalMinutes < 1 {
		return &entity.ValidationError{Field: "interval", Message: "must be at least 1 minute"}
	}
	s.mu.Lock()
	base := s.baseCtx
	s.mu.Unlock()
	return s.job.Start(base, EverySpec(time.Duration(intervalMinutes)*time.Minute))
}

func (s *scraperService) tick(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.ErrorContext(ctx, "Scrape failed", logger.ErrorField(err))
	}
}

func (s *scraperService) RunOnce(ctx context.Context) (*ScrapeResult, error) {
	cfg, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if len(cfg.Sources) == 0 {
		s.logger.DebugContext(ctx, "Scrape skipped, no source selected")
		return nil, nil
	}

	key := cfg.Sources[s.picker.Intn(len(cfg.Sources))]
	src, ok := s.source(key)
	if !ok {
		return nil, &entity.ValidationError{Field: "sources", Message: fmt.Sprintf("unknown source %q", key)}
	}

	result, err := s.fetcher.Fetch(ctx, src)
	if err != nil {
		s.notifications.Notify(ctx, "Scrape failed", fmt.Sprintf("Could not fetch data from %s", src.Name))
		return nil, err
	}

	s.mu.Lock()
	s.lastScrape = utils.TimeNowCST()
	s.scrapeCount++
	s.lastResult = &result
	s.mu.Unlock()

	s.notifications.Notify(ctx, "Scrape completed", fmt.Sprintf("Fetched the latest stock data from %s", src.Name))
	s.logger.InfoContext(ctx, "Scrape completed", logger.StringField("source", src.Key), logger.IntField("items", len(result.Items)))
	return &result, nil
}

func (s *scraperService) Test(ctx context.Context) (ScrapeTestResult, error) {
	cfg, err := s.Settings(ctx)
	if err != nil {
		return ScrapeTestResult{}, err
	}
	if len(cfg.Sources) == 0 {
		s.notifications.Notify(ctx, "Test scrape failed", "Please select at least one data source")
		return ScrapeTestResult{}, &entity.ValidationError{Field: "sources", Message: "select at least one data source"}
	}

	result := ScrapeTestResult{Selected: len(cfg.Sources), Failures: map[string]string{}}
	for _, key := range cfg.Sources {
		src, ok := s.source(key)
		if !ok {
			result.Failures[key] = "unknown source"
			continue
		}
		if _, err := s.fetcher.Fetch(ctx, src); err != nil {
			result.Failures[key] = err.Error()
			continue
		}
		result.Succeeded++
	}

	if result.Succeeded == 0 {
		s.notifications.Notify(ctx, "Test scrape failed", fmt.Sprintf("None of the %d selected sources responded", result.Selected))
	} else {
		s.notifications.Notify(ctx, "Test scrape succeeded", fmt.Sprintf("Fetched stock data from %d of %d sources", result.Succeeded, result.Selected))
	}
	return result, nil
}

func (s *scraperService) Status() ScraperStatus {
	state := s.job.State()
	next := s.job.Next()

	s.mu.Lock()
	defer s.mu.Unlock()
	status := ScraperStatus{State: state, ScrapeCount: s.scrapeCount, LastResult: s.lastResult}
	if !next.IsZero() {
		status.NextRun = &next
	}
	if !s.lastScrape.IsZero() {
		last := s.lastScrape
		status.LastScrape = &last
	}
	return status
}

func (s *scraperService) source(key string) (config.ScraperSource, bool) {
	for _, src := range s.sources {
		if src.Key == key {
			return src, true
		}
	}
	return config.ScraperSource{}, false
}
