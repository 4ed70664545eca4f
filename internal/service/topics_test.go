package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackTopics(t *testing.T) {
	topics := fallbackTopics("calculus", nil)
	assert.Equal(t, []string{
		"Limits and Continuity",
		"Introduction to Derivatives",
		"Applications of Derivatives",
		"Introduction to Integrals",
		"Applications of Integration",
	}, topics)
}

func TestFallbackTopicsUnknownSubject(t *testing.T) {
	assert.Equal(t, subjectTopics["algebra"], fallbackTopics("philosophy", nil))
	assert.Equal(t, subjectTopics["algebra"], fallbackTopics("  Algebra ", nil))
}

func TestFallbackTopicsWeakAreasFirst(t *testing.T) {
	topics := fallbackTopics("algebra", []string{"quadratic"})
	assert.Equal(t, "Quadratic Functions", topics[0])
	assert.Len(t, topics, 5)

	// Remaining topics keep their canonical order.
	assert.Equal(t, []string{
		"Variables and Expressions",
		"Linear Equations",
		"Systems of Equations",
		"Polynomial Operations",
	}, topics[1:])
}

func TestFallbackTopicsWeakAreaNoMatch(t *testing.T) {
	topics := fallbackTopics("geometry", []string{"calculus limits"})
	assert.Equal(t, subjectTopics["geometry"], topics)
}

func TestResourceTypesForStyle(t *testing.T) {
	assert.Equal(t, "infographic_lesson", resourceTypesForStyle("visual")[0])
	assert.Equal(t, "interactive_exercise", resourceTypesForStyle("kinesthetic")[0])
	assert.Equal(t, []string{"lesson", "tutorial", "guide", "practice"}, resourceTypesForStyle("unknown"))
}
