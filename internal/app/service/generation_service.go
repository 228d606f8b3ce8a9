package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hraza/pakretail-datagen/config"
	"github.com/hraza/pakretail-datagen/internal/app/export"
	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/pkg/logger"
	"github.com/hraza/pakretail-datagen/pkg/util"
)

// Uploader pushes an exported file to remote storage. Satisfied by
// storage.S3Storage; nil disables uploads.
type Uploader interface {
	UploadFile(ctx context.Context, localPath, key string) error
}

// RunSummary describes one completed generation run.
type RunSummary struct {
	RunID        string        `json:"run_id"`
	Seed         int64         `json:"seed"`
	StartedAt    time.Time     `json:"started_at"`
	DurationMS   int64         `json:"duration_ms"`
	Customers    int           `json:"customers"`
	Addresses    int           `json:"addresses"`
	Categories   int           `json:"categories"`
	Products     int           `json:"products"`
	Stores       int           `json:"stores"`
	Employees    int           `json:"employees"`
	Orders       int           `json:"orders"`
	OrderLines   int           `json:"order_lines"`
	SalesRecords int           `json:"sales_records"`
	Files        []string      `json:"files"`
}

// GenerationService runs the generator end to end: build the dataset,
// export it, optionally upload the files.
type GenerationService interface {
	// Run executes one complete generation run. Concurrent calls are
	// serialized; a run either completes fully or leaves no summary.
	Run() (*RunSummary, error)
	// Latest returns the most recent completed run summary, if any.
	Latest() (*RunSummary, bool)
	// Dataset returns the most recently generated dataset, if any.
	Dataset() (*generator.Dataset, bool)
}

type generationService struct {
	cfg      *config.Config
	uploader Uploader

	mu      sync.Mutex
	latest  *RunSummary
	dataset *generator.Dataset
}

func NewGenerationService(cfg *config.Config, uploader Uploader) GenerationService {
	return &generationService{cfg: cfg, uploader: uploader}
}

func (s *generationService) Run() (*RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.New().String()
	seed := s.cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	started := time.Now()

	log := logger.WithContext(map[string]interface{}{
		"run_id": runID,
		"seed":   seed,
	})
	log.Info("Starting generation run", map[string]interface{}{
		"customers": s.cfg.Generator.Customers,
		"products":  s.cfg.Generator.Products,
		"stores":    s.cfg.Generator.Stores,
		"employees": s.cfg.Generator.Employees,
		"orders":    s.cfg.Generator.Orders,
	})

	g := generator.New(util.NewRand(seed))
	ds, err := g.Generate(generator.Counts{
		Customers: s.cfg.Generator.Customers,
		Products:  s.cfg.Generator.Products,
		Stores:    s.cfg.Generator.Stores,
		Employees: s.cfg.Generator.Employees,
		Orders:    s.cfg.Generator.Orders,
	})
	if err != nil {
		log.Error("Generation run failed", err)
		return nil, err
	}

	files, err := export.WriteCSV(ds, s.cfg.Generator.OutputDir)
	if err != nil {
		log.Error("Dataset export failed", err)
		return nil, fmt.Errorf("export dataset: %w", err)
	}

	if s.cfg.Generator.ExportXLSX {
		path, err := export.WriteXLSX(ds, s.cfg.Generator.OutputDir)
		if err != nil {
			log.Error("XLSX export failed", err)
			return nil, fmt.Errorf("export xlsx: %w", err)
		}
		files = append(files, path)
	}

	if s.uploader != nil {
		for _, f := range files {
			key := fmt.Sprintf("%s/%s", runID, filepath.Base(f))
			if err := s.uploader.UploadFile(context.Background(), f, key); err != nil {
				log.Error("Dataset upload failed", err)
				return nil, fmt.Errorf("upload dataset: %w", err)
			}
		}
	}

	summary := &RunSummary{
		RunID:        runID,
		Seed:         seed,
		StartedAt:    started,
		DurationMS:   time.Since(started).Milliseconds(),
		Customers:    len(ds.Customers),
		Addresses:    len(ds.Addresses),
		Categories:   len(ds.Categories),
		Products:     len(ds.Products),
		Stores:       len(ds.Stores),
		Employees:    len(ds.Employees),
		Orders:       len(ds.Orders),
		OrderLines:   len(ds.OrderLines),
		SalesRecords: len(ds.SalesRecords),
		Files:        files,
	}
	s.latest = summary
	s.dataset = ds

	log.Info("Generation run completed", map[string]interface{}{
		"orders":      summary.Orders,
		"order_lines": summary.OrderLines,
		"duration_ms": summary.DurationMS,
	})
	return summary, nil
}

func (s *generationService) Latest() (*RunSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return nil, false
	}
	return s.latest, true
}

func (s *generationService) Dataset() (*generator.Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dataset == nil {
		return nil, false
	}
	return s.dataset, true
}
