package distribution

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type distributionRunner interface {
	Run(ctx context.Context, params RunParams) (*RunResult, error)
}

// Scheduler triggers a live distribution run on a cron spec evaluated
// in the civil timezone. Overlapping runs are skipped.
type Scheduler struct {
	cron    *cron.Cron
	runner  distributionRunner
	timeout time.Duration
}

func NewScheduler(spec string, loc *time.Location, runner distributionRunner, timeout time.Duration) (*Scheduler, error) {
	logger := cron.PrintfLogger(log.StandardLogger())
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	s := &Scheduler{
		cron:    c,
		runner:  runner,
		timeout: timeout,
	}
	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("add distribution cron job [%s]: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		log.Infof("distribution scheduled, next run at %s", entry.Next)
	}
}

// Stop stops scheduling and waits for a running job, up to ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		log.Warnln("distribution scheduler stop: running job did not finish in time")
	}
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.runner.Run(ctx, RunParams{})
	if err != nil {
		log.Errorf("scheduled distribution run: %s", err)
		return
	}
	log.Infof("scheduled distribution run %s: sent %d, failed %d", result.RunID, result.Sent, result.Failed)
}
