package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"golang-stock-dashboard/internal/entity"
	"golang-stock-dashboard/pkg/logger"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// EverySpec builds an "@every" cron descriptor.
func EverySpec(d time.Duration) string {
	return fmt.Sprintf("@every %s", d)
}

// CronJob runs one task on a cron schedule. Like Scheduler it owns at most one schedule;
// Start replaces the current one.
type CronJob struct {
	name   string
	task   func(ctx context.Context)
	logger *logger.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	runCtx context.Context
	cancel context.CancelFunc
	spec   string
}

func NewCronJob(name string, task func(ctx context.Context), log *logger.Logger) *CronJob {
	return &CronJob{name: name, task: task, logger: log}
}

func (j *CronJob) Start(ctx context.Context, spec string) error {
	schedule, err := cronParser.Parse(spec)
	if err != nil {
		return &entity.ValidationError{Field: "schedule", Message: fmt.Sprintf("invalid schedule %q: %v", spec, err)}
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	c := cron.New(
		cron.WithParser(cronParser),
		cron.WithChain(cron.Recover(cronLogger{logger: j.logger, name: j.name}), cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	c.Schedule(schedule, cron.FuncJob(func() {
		if runCtx.Err() != nil {
			return
		}
		j.task(runCtx)
	}))
	c.Start()

	go func() {
		<-runCtx.Done()
		c.Stop()
	}()

	j.cron, j.runCtx, j.cancel, j.spec = c, runCtx, cancel, spec
	j.logger.Debug("Cron job started", logger.StringField("job", j.name), logger.StringField("spec", spec))
	return nil
}

// Stop removes the schedule and waits for a running task to return.
func (j *CronJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stopLocked() {
		j.logger.Debug("Cron job stopped", logger.StringField("job", j.name))
	}
}

func (j *CronJob) stopLocked() bool {
	if j.cron == nil {
		return false
	}
	j.cancel()
	<-j.cron.Stop().Done()
	j.cron, j.runCtx, j.cancel = nil, nil, nil
	return true
}

func (j *CronJob) State() SchedulerState {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.runCtx == nil || j.runCtx.Err() != nil {
		return SchedulerStopped
	}
	return SchedulerRunning
}

// Next returns the next planned run, or the zero time when stopped.
func (j *CronJob) Next() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cron == nil {
		return time.Time{}
	}
	entries := j.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

// cronLogger adapts the service logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
	name   string
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, logger.StringField("job", l.name), logger.Field("details", keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, logger.StringField("job", l.name), logger.ErrorField(err), logger.Field("details", keysAndValues))
}
