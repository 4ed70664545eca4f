package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GeneratedLesson is the payload produced for a single resource, whether
// by the generator or the static bank.
type GeneratedLesson struct {
	Title              string   `json:"title"`
	Content            string   `json:"content"`
	Summary            string   `json:"summary"`
	LearningObjectives []string `json:"learning_objectives"`
	EstimatedDuration  int      `json:"estimated_duration"`
	KeyConcepts        []string `json:"key_concepts"`
}

// ContentService produces lesson content tailored to a learner.
type ContentService struct {
	generator    TextGenerator
	resourceRepo *repository.ResourceRepository
	cfg          config.PipelineConfig
}

func NewContentService(generator TextGenerator, resourceRepo *repository.ResourceRepository, cfg config.PipelineConfig) *ContentService {
	return &ContentService{generator: generator, resourceRepo: resourceRepo, cfg: cfg}
}

// Synthesize generates one lesson for a topic. Generation failures and
// unparseable responses fall back to the static lesson bank so the caller
// always receives usable content.
func (s *ContentService) Synthesize(ctx context.Context, topic, resourceType, style string, difficulty, position, total int) GeneratedLesson {
	prompt := fmt.Sprintf(`You are an expert educational content generator.

TASK: Create educational content for a %s learner.

CONTENT SPECIFICATIONS:
- Topic: %s
- Resource Type: %s
- Difficulty Level: %d/5
- Learning Style: %s
- Position in Sequence: %d of %d
- Target Audience: %s

REQUIREMENTS:
1. Create engaging, comprehensive content appropriate for the difficulty level
2. Tailor the presentation style to %s learners
3. Include clear learning objectives
4. Provide practical examples and applications
5. Make it progressive (building on previous knowledge)

Please generate content in the following JSON format:
{
    "title": "Engaging title for the content",
    "content": "Full educational content (800-1200 words for lessons, shorter for exercises)",
    "summary": "Brief summary (2-3 sentences)",
    "learning_objectives": ["Objective 1", "Objective 2", "Objective 3"],
    "estimated_duration": 15,
    "key_concepts": ["Concept 1", "Concept 2", "Concept 3"]
}

CONTENT STYLE GUIDELINES:
- Visual learners: Include descriptions of diagrams, charts, visual examples
- Auditory learners: Use conversational tone, include discussion questions
- Reading/Writing learners: Structured text, clear headings, note-taking prompts
- Kinesthetic learners: Include hands-on activities, practice exercises, real-world applications

Generate the content now:`,
		style, topic, resourceType, difficulty, style, position, total, audienceFor(difficulty), style)

	opts := DefaultOptions()
	opts.MaxOutputTokens = 3000
	response, err := s.generator.Generate(ctx, prompt, opts)
	if err == nil && response != "" {
		if span := extractJSONObject(response); span != "" {
			var lesson GeneratedLesson
			if json.Unmarshal([]byte(span), &lesson) == nil && lesson.Content != "" {
				if lesson.Title == "" {
					lesson.Title = fmt.Sprintf("%s - Part %d", topic, position)
				}
				if lesson.EstimatedDuration <= 0 {
					lesson.EstimatedDuration = 15
				}
				monitoring.GenerationCounter.WithLabelValues("content", "success").Inc()
				return lesson
			}
		}
	}
	if err != nil {
		logger.Log.Warn("content generation failed, using lesson bank",
			zap.String("topic", topic),
			zap.Error(err))
	}
	monitoring.GenerationCounter.WithLabelValues("content", "fallback").Inc()

	tpl := fallbackLesson(topic, style, difficulty)
	return GeneratedLesson{
		Title:              tpl.title,
		Content:            tpl.content,
		Summary:            tpl.summary,
		LearningObjectives: tpl.objectives,
		EstimatedDuration:  15,
	}
}

func audienceFor(difficulty int) string {
	switch {
	case difficulty <= 2:
		return "Beginner"
	case difficulty <= 4:
		return "Intermediate"
	default:
		return "Advanced"
	}
}

// GetResource returns a single resource by id.
func (s *ContentService) GetResource(id string) (*model.LearningResource, error) {
	resource, err := s.resourceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResourceNotFound
		}
		return nil, err
	}
	return resource, nil
}

// progressiveDifficulty ramps difficulty through a sequence, stepping up
// every second resource and capping at 5.
func progressiveDifficulty(knowledgeLevel, index int) int {
	d := knowledgeLevel + index/2
	if d > 5 {
		d = 5
	}
	if d < 1 {
		d = 1
	}
	return d
}
