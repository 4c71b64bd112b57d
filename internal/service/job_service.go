package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"arcyrent/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// UpdateFinishedRentas marks active rentas whose end date has passed as
// finished. Run periodically from the cron scheduler.
func (s *JobService) UpdateFinishedRentas() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Cron Job: Checking for rentas to mark as 'finished'...")

	rentaIDs, err := s.Repo.GetActiveRentaIDsPastFechaFin(ctx)
	if err != nil {
		return fmt.Errorf("cron job: failed to get active rentas past fecha_fin: %w", err)
	}

	if len(rentaIDs) == 0 {
		log.Println("Cron Job: No active rentas found past their end date.")
		return nil
	}

	log.Printf("Cron Job: Found %d rentas to mark as 'finished'. IDs: %v", len(rentaIDs), rentaIDs)

	err = s.Repo.UpdateRentaStatuses(ctx, rentaIDs, statusFinished)
	if err != nil {
		return fmt.Errorf("cron job: failed to update renta statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d rentas to 'finished'.", len(rentaIDs))
	return nil
}
