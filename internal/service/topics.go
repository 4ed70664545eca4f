package service

import "strings"

// Canonical topic sequences used when AI sequencing is unavailable or
// returns unusable output.
var subjectTopics = map[string][]string{
	"algebra": {
		"Variables and Expressions",
		"Linear Equations",
		"Systems of Equations",
		"Quadratic Functions",
		"Polynomial Operations",
	},
	"geometry": {
		"Basic Shapes and Properties",
		"Angles and Triangles",
		"Area and Perimeter",
		"Circle Geometry",
		"3D Shapes and Volume",
	},
	"trigonometry": {
		"Introduction to Trigonometry",
		"Sine, Cosine, and Tangent",
		"Unit Circle",
		"Trigonometric Identities",
		"Applications of Trigonometry",
	},
	"calculus": {
		"Limits and Continuity",
		"Introduction to Derivatives",
		"Applications of Derivatives",
		"Introduction to Integrals",
		"Applications of Integration",
	},
}

// fallbackTopics returns the canonical sequence for a subject with topics
// matching the learner's weak areas moved to the front. Unknown subjects
// fall back to algebra.
func fallbackTopics(subject string, weakAreas []string) []string {
	base, ok := subjectTopics[strings.ToLower(strings.TrimSpace(subject))]
	if !ok {
		base = subjectTopics["algebra"]
	}

	if len(weakAreas) == 0 {
		out := make([]string, len(base))
		copy(out, base)
		return out
	}

	var prioritized []string
	for _, area := range weakAreas {
		a := strings.ToLower(strings.TrimSpace(area))
		if a == "" {
			continue
		}
		for _, topic := range base {
			if strings.Contains(strings.ToLower(topic), a) && !contains(prioritized, topic) {
				prioritized = append(prioritized, topic)
			}
		}
	}
	for _, topic := range base {
		if !contains(prioritized, topic) {
			prioritized = append(prioritized, topic)
		}
	}
	return prioritized
}

// Resource type rotation per learning style. Materialized resources cycle
// through these in path order.
var styleResourceTypes = map[string][]string{
	"visual":      {"infographic_lesson", "diagram_tutorial", "visual_guide", "chart_explanation"},
	"auditory":    {"audio_lesson", "discussion_guide", "verbal_explanation", "story_based_lesson"},
	"reading":     {"text_lesson", "article", "step_by_step_guide", "detailed_explanation"},
	"kinesthetic": {"interactive_exercise", "hands_on_activity", "practice_problems", "simulation"},
}

func resourceTypesForStyle(style string) []string {
	types, ok := styleResourceTypes[strings.ToLower(strings.TrimSpace(style))]
	if !ok {
		types = []string{"lesson", "tutorial", "guide", "practice"}
	}
	return types
}
