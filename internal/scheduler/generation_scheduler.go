package scheduler

import (
	"github.com/robfig/cron/v3"

	"github.com/hraza/pakretail-datagen/internal/app/service"
	"github.com/hraza/pakretail-datagen/pkg/logger"
)

// GenerationScheduler regenerates the dataset on a cron schedule so
// downstream consumers always have fresh synthetic data to load.
type GenerationScheduler struct {
	cron              *cron.Cron
	generationService service.GenerationService
	spec              string
}

func NewGenerationScheduler(generationService service.GenerationService, spec string) *GenerationScheduler {
	return &GenerationScheduler{
		cron:              cron.New(),
		generationService: generationService,
		spec:              spec,
	}
}

// Start registers the scheduled run and starts the cron loop.
func (s *GenerationScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled generation run", nil)

		summary, err := s.generationService.Run()
		if err != nil {
			logger.Error("Scheduled generation run failed", err)
			return
		}

		logger.Info("Scheduled generation run completed", map[string]interface{}{
			"run_id": summary.RunID,
			"orders": summary.Orders,
		})
	})
	if err != nil {
		logger.Error("Failed to register generation cron job", err, map[string]interface{}{
			"schedule": s.spec,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Generation scheduler started", map[string]interface{}{
		"schedule": s.spec,
	})
	return nil
}

// Stop stops the scheduler.
func (s *GenerationScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Generation scheduler stopped", nil)
}
