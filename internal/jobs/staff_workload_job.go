package jobs

import (
	"context"
	"sync/atomic"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultStaffWorkloadSchedule runs the release every minute at second 0.
const DefaultStaffWorkloadSchedule = "0 * * * * *"

const runTimeout = 30 * time.Second

// WorkloadReleaser is satisfied by commands.ReleaseStaffWorkloadCommandHandler.
type WorkloadReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseStaffWorkloadCommand) (int, error)
}

// StaffWorkloadJob periodically frees staff capacity held by finished orders.
type StaffWorkloadJob struct {
	releaser WorkloadReleaser
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
	running  atomic.Bool
}

func NewStaffWorkloadJob(releaser WorkloadReleaser, schedule string, l *zap.Logger) *StaffWorkloadJob {
	if schedule == "" {
		schedule = DefaultStaffWorkloadSchedule
	}
	return &StaffWorkloadJob{
		releaser: releaser,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.Component(l, "staff_workload_job"),
	}
}

func (j *StaffWorkloadJob) Name() string {
	return "staff workload"
}

// Start registers the schedule and starts the cron runner.
func (j *StaffWorkloadJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("staff workload job started", zap.String("schedule", j.schedule))
	return nil
}

// RunOnce performs one release pass. Overlapping ticks are skipped.
func (j *StaffWorkloadJob) RunOnce(ctx context.Context) {
	if !j.running.CompareAndSwap(false, true) {
		j.logger.Debug("previous run still in progress, skipping")
		return
	}
	defer j.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	released, err := j.releaser.Handle(ctx, commands.NewReleaseStaffWorkloadCommand())
	if err != nil {
		j.logger.Error("staff workload release failed", zap.Error(err))
		return
	}
	if released > 0 {
		j.logger.Info("staff workload released", zap.Int("released", released))
	}
}

// Stop waits for a running release to finish.
func (j *StaffWorkloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("staff workload job stopped")
}
