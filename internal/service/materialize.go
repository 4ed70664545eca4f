package service

import (
	"context"
	"errors"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaterializeJob tracks one background content-materialization run.
type MaterializeJob struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Done is closed when the run finishes, whether it succeeded or not.
func (j *MaterializeJob) Done() <-chan struct{} { return j.done }

// Err reports the run's outcome. Only valid after Done is closed.
func (j *MaterializeJob) Err() error { return j.err }

// Cancel stops the run after the resource currently being generated.
func (j *MaterializeJob) Cancel() { j.cancel() }

// StartMaterialization fills in a path's generating resources in path
// order on a background goroutine.
func (o *OrchestratorService) StartMaterialization(pathID string) *MaterializeJob {
	ctx, cancel := context.WithCancel(context.Background())
	job := &MaterializeJob{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(job.done)
		defer cancel()
		job.err = o.materialize(ctx, pathID)
		if job.err != nil && !errors.Is(job.err, context.Canceled) {
			logger.Log.Error("content materialization failed",
				zap.String("path_id", pathID),
				zap.Error(job.err))
		}
	}()
	return job
}

// materialize walks the path's resources and synthesizes content for each
// one still marked generating. Resources another run already filled in are
// skipped via the status guard, so concurrent runs for the same path stay
// idempotent. Synthesis itself cannot fail outright because of the lesson
// bank, so every visited resource ends up ready.
func (o *OrchestratorService) materialize(ctx context.Context, pathID string) error {
	path, err := o.pathRepo.FindByID(pathID)
	if err != nil {
		return err
	}

	ids := []string(path.Resources)
	for i, id := range ids {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		res, err := o.resourceRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		if res.Status != model.ResourceGenerating {
			continue
		}

		lesson := o.content.Synthesize(ctx, res.Topic, res.Type, res.LearningStyle,
			res.DifficultyLevel, i+1, len(ids))

		updated, err := o.resourceRepo.MarkReady(id, repository.ResourceUpdate{
			Title:              lesson.Title,
			Content:            lesson.Content,
			Summary:            lesson.Summary,
			LearningObjectives: lesson.LearningObjectives,
			EstimatedDuration:  lesson.EstimatedDuration,
		})
		if err != nil {
			logger.Log.Warn("failed to persist generated resource",
				zap.String("resource_id", id),
				zap.Error(err))
			continue
		}
		if updated {
			logger.Log.Info("materialized resource",
				zap.String("resource_id", id),
				zap.String("topic", res.Topic))
		}
	}
	return nil
}
