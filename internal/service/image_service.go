package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"artisan-bazaar/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyPrompt      = errors.New("prompt must not be empty")
	ErrImageJobNotFound = errors.New("image job not found")
)

// ImageService is the stand-in for a generative-image backend. A job resolves
// after a fixed simulated latency with a placeholder image reference carrying
// the prompt, which is echoed back alongside it.
type ImageService interface {
	Start(ctx context.Context, prompt string) (*domain.ImageJob, error)
	Get(ctx context.Context, jobID uuid.UUID) (*domain.ImageJob, error)
	Cancel(ctx context.Context, jobID uuid.UUID) error
	SuggestedPrompts() []string
	Shutdown()
}

type imageService struct {
	latency time.Duration
	prompts []string
	logger  *zap.Logger

	mu     sync.Mutex
	jobs   map[uuid.UUID]*domain.ImageJob
	timers map[uuid.UUID]*time.Timer
	closed bool
}

// NewImageService creates a new instance of ImageService. latency is the
// simulated generation time; prompts are the quick suggestions.
func NewImageService(latency time.Duration, prompts []string, logger *zap.Logger) ImageService {
	return &imageService{
		latency: latency,
		prompts: prompts,
		logger:  logger,
		jobs:    make(map[uuid.UUID]*domain.ImageJob),
		timers:  make(map[uuid.UUID]*time.Timer),
	}
}

// Start begins a generation job for the prompt.
func (s *imageService) Start(ctx context.Context, prompt string) (*domain.ImageJob, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	job := &domain.ImageJob{
		ID:        uuid.New(),
		Prompt:    prompt,
		Status:    domain.ImageJobPending,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errors.New("image service is shut down")
	}
	stored := *job
	s.jobs[job.ID] = &stored
	s.timers[job.ID] = time.AfterFunc(s.latency, func() {
		s.finish(job.ID)
	})
	s.mu.Unlock()

	s.logger.Info("Image generation started",
		zap.String("job_id", job.ID.String()),
		zap.String("prompt", prompt),
	)

	return job, nil
}

// finish is the timer callback marking a job done with its placeholder image.
func (s *imageService) finish(jobID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, pending := s.timers[jobID]; !pending || s.closed {
		return
	}
	delete(s.timers, jobID)

	job, exists := s.jobs[jobID]
	if !exists {
		return
	}
	job.Status = domain.ImageJobDone
	job.ImageURL = fmt.Sprintf("/placeholder.svg?height=512&width=512&query=%s", url.QueryEscape(job.Prompt))

	s.logger.Info("Image generation finished",
		zap.String("job_id", jobID.String()),
		zap.String("image_url", job.ImageURL),
	)
}

// Get returns the current state of a job.
func (s *imageService) Get(ctx context.Context, jobID uuid.UUID) (*domain.ImageJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return nil, ErrImageJobNotFound
	}
	j := *job
	return &j, nil
}

// Cancel discards a job. For a pending job the generation timer is stopped
// first, so the result never materializes after dismissal.
func (s *imageService) Cancel(ctx context.Context, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[jobID]; !exists {
		return ErrImageJobNotFound
	}
	if timer, pending := s.timers[jobID]; pending {
		timer.Stop()
		delete(s.timers, jobID)
	}
	delete(s.jobs, jobID)

	s.logger.Info("Image generation cancelled", zap.String("job_id", jobID.String()))
	return nil
}

// SuggestedPrompts returns the quick suggestions shown before typing.
func (s *imageService) SuggestedPrompts() []string {
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

// Shutdown stops every pending generation timer.
func (s *imageService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
