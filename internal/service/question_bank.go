package service

import (
	"strings"

	"ai_tutor_backend/internal/model"
)

type questionTemplate struct {
	question string
	options  []string
}

// Static question bank used when AI generation exhausts its retries. The
// first option of every template is the correct answer.
var questionBank = map[string][]questionTemplate{
	"algebra": {
		{"What is a variable in algebra?", []string{"A letter representing an unknown", "A constant number", "An operation", "A graph"}},
		{"How do you solve x + 5 = 10?", []string{"Subtract 5 from both sides", "Add 5 to both sides", "Multiply by 5", "Divide by 5"}},
		{"What is a linear equation?", []string{"An equation with degree 1", "An equation with degree 2", "A curved line", "A circle"}},
		{"What does 'like terms' mean?", []string{"Terms with same variables and powers", "Any two numbers", "Equal signs", "Multiplication terms"}},
		{"What is the order of operations?", []string{"PEMDAS/BODMAS", "Left to right always", "Addition first", "Random order"}},
	},
	"calculus": {
		{"What is a limit?", []string{"Value a function approaches", "Maximum value", "Minimum value", "Average value"}},
		{"What is a derivative?", []string{"Rate of change", "Area under curve", "Maximum point", "Minimum point"}},
		{"What is integration?", []string{"Finding area under curve", "Finding slope", "Finding maximum", "Finding minimum"}},
		{"What does continuity mean?", []string{"No breaks in function", "Always increasing", "Always positive", "Has a maximum"}},
		{"What is the fundamental theorem?", []string{"Links derivatives and integrals", "States all functions continuous", "Proves limits exist", "Shows functions are smooth"}},
	},
	"geometry": {
		{"Sum of angles in a triangle?", []string{"180 degrees", "360 degrees", "90 degrees", "270 degrees"}},
		{"Area of a rectangle?", []string{"length × width", "2(length + width)", "length + width", "length²"}},
		{"What is a right angle?", []string{"90 degrees", "180 degrees", "45 degrees", "60 degrees"}},
		{"What is the Pythagorean theorem?", []string{"a² + b² = c²", "a + b = c", "a × b = c", "a² = b² + c²"}},
		{"How many sides does a hexagon have?", []string{"6", "5", "7", "8"}},
	},
	"trigonometry": {
		{"What is sine in a right triangle?", []string{"opposite/hypotenuse", "adjacent/hypotenuse", "opposite/adjacent", "hypotenuse/opposite"}},
		{"What is cosine in a right triangle?", []string{"adjacent/hypotenuse", "opposite/hypotenuse", "opposite/adjacent", "hypotenuse/adjacent"}},
		{"What is tangent in a right triangle?", []string{"opposite/adjacent", "adjacent/opposite", "opposite/hypotenuse", "adjacent/hypotenuse"}},
		{"What is the unit circle?", []string{"Circle with radius 1", "Circle with radius 2", "Any circle", "Circle with diameter 1"}},
		{"What is the period of sin(x)?", []string{"2π", "π", "π/2", "4π"}},
	},
}

// bankQuestions builds count deterministic questions for a topic. Unknown
// topics draw from the algebra templates. When count exceeds the bank,
// templates repeat with an "Advanced: " prefix so question text stays
// unique within a quiz.
func bankQuestions(topic string, difficulty, count int) []model.QuizQuestion {
	templates, ok := questionBank[strings.ToLower(strings.TrimSpace(topic))]
	if !ok {
		templates = questionBank["algebra"]
	}

	questions := make([]model.QuizQuestion, 0, count)
	for i := 0; i < count && i < len(templates); i++ {
		questions = append(questions, templateQuestion(templates[i], templates[i].question, topic, difficulty))
	}
	for len(questions) < count {
		t := templates[len(questions)%len(templates)]
		questions = append(questions, templateQuestion(t, "Advanced: "+t.question, topic, difficulty))
	}
	return questions[:count]
}

func templateQuestion(t questionTemplate, text, topic string, difficulty int) model.QuizQuestion {
	options := make([]string, len(t.options))
	copy(options, t.options)
	return model.QuizQuestion{
		ID:              model.GenerateUUID(),
		Question:        text,
		Options:         options,
		CorrectAnswer:   options[0],
		Topic:           topic,
		DifficultyLevel: difficulty,
	}
}
