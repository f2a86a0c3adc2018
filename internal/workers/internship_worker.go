package workers

import (
	"context"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/repositories"
)

// InternshipWorker следит за стажировками с истекшим дедлайном.
// Стажировка не имеет отдельного статуса, поэтому воркер только
// отчитывается в лог; постинги остаются видимыми до удаления владельцем.
type InternshipWorker struct {
	internshipRepo repositories.InternshipRepository
}

func NewInternshipWorker(internshipRepo repositories.InternshipRepository) *InternshipWorker {
	return &InternshipWorker{internshipRepo: internshipRepo}
}

// Start запускает фоновые задачи для стажировок
func (w *InternshipWorker) Start(ctx context.Context) {
	go w.reportExpiredInternships(ctx)
}

func (w *InternshipWorker) reportExpiredInternships(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Internship worker stopped")
			return
		case <-ticker.C:
			expired, err := w.internshipRepo.FindExpired(ctx)
			if err != nil {
				logger.WorkerLog("internship", "report_expired", err)
				continue
			}
			if len(expired) > 0 {
				logger.Info("Internships past application deadline", "count", len(expired))
			}
		}
	}
}
