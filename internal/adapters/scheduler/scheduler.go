// Package scheduler runs the periodic jobs of the service.
package scheduler

import (
	"context"
	"log"
	"time"

	"clanops/internal/common/clock"
	"clanops/internal/ports/input"
)

// Scheduler generates the attendance of events once they have ended.
type Scheduler struct {
	attendance input.AttendanceUseCase
	clock      clock.Clock
	interval   time.Duration
}

func New(attendance input.AttendanceUseCase, clk clock.Clock, interval time.Duration) *Scheduler {
	return &Scheduler{attendance: attendance, clock: clk, interval: interval}
}

// Run ticks until ctx is done. The first pass runs immediately so events
// that ended while the service was down are caught up.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		s.Tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick runs the jobs once.
func (s *Scheduler) Tick(ctx context.Context) {
	n, err := s.attendance.GenerateDue(ctx, s.clock.Now())
	if err != nil {
		log.Printf("❌ Attendance generation failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("✅ Attendance generated for %d events", n)
	}
}
