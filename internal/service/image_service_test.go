package service

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newImageForTest(t *testing.T, latency time.Duration) ImageService {
	t.Helper()
	svc := NewImageService(latency, seed.SuggestedPrompts(), zap.NewNop())
	t.Cleanup(svc.Shutdown)
	return svc
}

func TestImageGeneration_JobResolvesWithPlaceholder(t *testing.T) {
	svc := newImageForTest(t, 20*time.Millisecond)
	ctx := context.Background()

	prompt := "Handwoven silk fabric with golden threads"
	job, err := svc.Start(ctx, prompt)
	require.NoError(t, err)
	assert.Equal(t, domain.ImageJobPending, job.Status)
	assert.Equal(t, prompt, job.Prompt)
	assert.Empty(t, job.ImageURL)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err = svc.Get(ctx, job.ID)
		require.NoError(t, err)
		if job.Status == domain.ImageJobDone {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	require.Equal(t, domain.ImageJobDone, job.Status)
	assert.True(t, strings.HasPrefix(job.ImageURL, "/placeholder.svg?"))
	assert.Contains(t, job.ImageURL, "query="+url.QueryEscape(prompt))
}

func TestImageGeneration_BlankPromptRejected(t *testing.T) {
	svc := newImageForTest(t, 20*time.Millisecond)
	ctx := context.Background()

	_, err := svc.Start(ctx, "   ")
	require.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestImageGeneration_CancelStopsPendingJob(t *testing.T) {
	svc := newImageForTest(t, 30*time.Millisecond)
	ctx := context.Background()

	job, err := svc.Start(ctx, "Terracotta horse figurine")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, job.ID))

	_, err = svc.Get(ctx, job.ID)
	require.ErrorIs(t, err, ErrImageJobNotFound)

	// The timer must not resurrect the job
	time.Sleep(60 * time.Millisecond)
	_, err = svc.Get(ctx, job.ID)
	require.ErrorIs(t, err, ErrImageJobNotFound)
}

func TestImageGeneration_SuggestedPromptsAreCopied(t *testing.T) {
	svc := newImageForTest(t, time.Millisecond)

	prompts := svc.SuggestedPrompts()
	require.NotEmpty(t, prompts)
	prompts[0] = "mutated"

	again := svc.SuggestedPrompts()
	assert.NotEqual(t, "mutated", again[0])
}
