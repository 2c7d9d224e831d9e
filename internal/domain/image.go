package domain

import (
	"time"

	"github.com/google/uuid"
)

// ImageJobStatus is the state of a simulated generation job.
type ImageJobStatus string

const (
	ImageJobPending ImageJobStatus = "pending"
	ImageJobDone    ImageJobStatus = "done"
)

// ImageJob tracks one simulated product-image generation. The job echoes its
// prompt back alongside the generated image reference.
type ImageJob struct {
	ID        uuid.UUID      `json:"id"`
	Prompt    string         `json:"prompt"`
	Status    ImageJobStatus `json:"status"`
	ImageURL  string         `json:"image_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
