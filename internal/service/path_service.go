package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// PathService builds learning paths: the ordered topic sequence and the
// resources hanging off it.
type PathService struct {
	generator    TextGenerator
	content      *ContentService
	resourceRepo *repository.ResourceRepository
	pathRepo     *repository.PathRepository
	cfg          config.PipelineConfig
}

func NewPathService(
	generator TextGenerator,
	content *ContentService,
	resourceRepo *repository.ResourceRepository,
	pathRepo *repository.PathRepository,
	cfg config.PipelineConfig,
) *PathService {
	return &PathService{
		generator:    generator,
		content:      content,
		resourceRepo: resourceRepo,
		pathRepo:     pathRepo,
		cfg:          cfg,
	}
}

// TopicSequence asks the generator for a progressive topic sequence
// tailored to the learner. Responses with fewer than three topics are
// rejected; the canonical subject sequence serves as fallback either way.
func (s *PathService) TopicSequence(ctx context.Context, profile *model.LearnerProfile) []string {
	prompt := fmt.Sprintf(`You are an expert learning path designer.

TASK: Create a logical sequence of learning topics for this learner.

LEARNER PROFILE:
- Subject: %s
- Knowledge Level: %d/5
- Weak Areas: %v
- Learning Style: %s

REQUIREMENTS:
1. Create 4-5 progressive topics in %s
2. Start with difficulty appropriate for level %d
3. Focus on weak areas: %v
4. Ensure logical progression from basic to advanced concepts
5. Each topic should build on the previous one

Return only a JSON array of topic names:
["Topic 1", "Topic 2", "Topic 3", "Topic 4", "Topic 5"]

Generate the topic sequence now:`,
		profile.Subject, profile.KnowledgeLevel, []string(profile.WeakAreas), profile.LearningStyle,
		profile.Subject, profile.KnowledgeLevel, []string(profile.WeakAreas))

	opts := DefaultOptions()
	opts.MaxOutputTokens = 500
	response, err := s.generator.Generate(ctx, prompt, opts)
	if err == nil {
		if span := extractJSONArray(response); span != "" {
			var topics []string
			if json.Unmarshal([]byte(span), &topics) == nil && len(topics) >= 3 {
				if len(topics) > 5 {
					topics = topics[:5]
				}
				return topics
			}
		}
	}
	if err != nil {
		logger.Log.Warn("topic sequencing failed, using canonical topics",
			zap.String("subject", profile.Subject),
			zap.Error(err))
	}
	return fallbackTopics(profile.Subject, profile.WeakAreas)
}

// BuildSkeleton creates a path of placeholder resources without any AI
// calls, so learner intake returns immediately. Each placeholder carries
// its topic and target difficulty and is marked generating until content
// materialization fills it in.
func (s *PathService) BuildSkeleton(profile *model.LearnerProfile) (*model.LearningPath, error) {
	topics := fallbackTopics(profile.Subject, profile.WeakAreas)
	if len(topics) > s.cfg.SkeletonResources {
		topics = topics[:s.cfg.SkeletonResources]
	}

	now := time.Now()
	resources := make([]*model.LearningResource, 0, len(topics))
	ids := make([]string, 0, len(topics))
	for i, topic := range topics {
		res := &model.LearningResource{
			UUIDBase:           model.UUIDBase{ID: model.GenerateUUID()},
			LearnerID:          profile.ID,
			Title:              fmt.Sprintf("%s - Introduction", topic),
			Type:               "lesson",
			Content:            fmt.Sprintf("Loading comprehensive content for %s...", topic),
			Summary:            fmt.Sprintf("Learn the fundamentals of %s", topic),
			DifficultyLevel:    progressiveDifficulty(profile.KnowledgeLevel, i),
			LearningStyle:      profile.LearningStyle,
			Topic:              topic,
			EstimatedDuration:  15,
			LearningObjectives: datatypes.NewJSONSlice([]string{fmt.Sprintf("Understand %s concepts", topic)}),
			Status:             model.ResourceGenerating,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		resources = append(resources, res)
		ids = append(ids, res.ID)
	}
	if err := s.resourceRepo.CreateBatch(resources); err != nil {
		return nil, err
	}

	path := &model.LearningPath{
		LearnerID: profile.ID,
		Resources: datatypes.NewJSONSlice(ids),
		Progress:  datatypes.NewJSONType(map[string]model.OverallFeedback{}),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.pathRepo.Create(path); err != nil {
		return nil, err
	}
	return path, nil
}

// BuildEager generates a fully materialized path up front: an AI topic
// sequence with a fixed number of ready resources per topic. Used when the
// caller prefers complete content over fast intake.
func (s *PathService) BuildEager(ctx context.Context, profile *model.LearnerProfile) (*model.LearningPath, error) {
	topics := s.TopicSequence(ctx, profile)
	types := resourceTypesForStyle(profile.LearningStyle)

	now := time.Now()
	var ids []string
	for _, topic := range topics {
		for j := 0; j < s.cfg.EagerResourcesPerTopic; j++ {
			difficulty := progressiveDifficulty(profile.KnowledgeLevel, j)
			resourceType := types[j%len(types)]
			lesson := s.content.Synthesize(ctx, topic, resourceType, profile.LearningStyle,
				difficulty, j+1, s.cfg.EagerResourcesPerTopic)

			res := &model.LearningResource{
				UUIDBase:           model.UUIDBase{ID: model.GenerateUUID()},
				LearnerID:          profile.ID,
				Title:              lesson.Title,
				Type:               resourceType,
				Content:            lesson.Content,
				Summary:            lesson.Summary,
				DifficultyLevel:    difficulty,
				LearningStyle:      profile.LearningStyle,
				Topic:              topic,
				EstimatedDuration:  lesson.EstimatedDuration,
				LearningObjectives: datatypes.NewJSONSlice(lesson.LearningObjectives),
				Status:             model.ResourceReady,
				CreatedAt:          now,
				UpdatedAt:          now,
			}
			if err := s.resourceRepo.Create(res); err != nil {
				return nil, err
			}
			ids = append(ids, res.ID)
		}
	}

	path := &model.LearningPath{
		LearnerID: profile.ID,
		Resources: datatypes.NewJSONSlice(ids),
		Progress:  datatypes.NewJSONType(map[string]model.OverallFeedback{}),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.pathRepo.Create(path); err != nil {
		return nil, err
	}
	return path, nil
}
