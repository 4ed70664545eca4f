package service

import (
	"fmt"
	"strings"
)

type contentTemplate struct {
	title      string
	content    string
	summary    string
	objectives []string
}

// Static lesson templates used when AI content generation fails. Templates
// are keyed by subject and difficulty tier; the learner's style gets a
// tailored addendum appended to the base text.
var contentBank = map[string]map[int]contentTemplate{
	"algebra": {
		1: {
			title: "Introduction to Algebraic Variables",
			content: `Welcome to the world of algebra! This lesson introduces one of the most fundamental concepts in mathematics: variables.

What is a Variable?
A variable is a letter or symbol that represents an unknown number. Think of it as a placeholder or a mystery box that contains a value we don't know yet. The most commonly used variables are x, y, and z, but any letter can be a variable.

Why Do We Use Variables?
Variables allow us to:
1. Write general rules and formulas
2. Solve problems where we don't know all the values
3. Express relationships between quantities
4. Make mathematics more flexible and powerful

Examples in Real Life:
Suppose you're planning a pizza party. Each pizza costs $12, but you don't know how many pizzas you'll need. We can write this as:
Total cost = 12 x p (where p is the number of pizzas)
If you end up buying 3 pizzas, then p = 3, and the total cost is $36.

Basic Operations with Variables:
- Addition: x + 5 (add 5 to whatever x represents)
- Subtraction: y - 3 (subtract 3 from whatever y represents)
- Multiplication: 4z (multiply whatever z represents by 4)
- Division: x/2 (divide whatever x represents by 2)

Key Points to Remember:
- A variable can represent any number
- The same variable in an expression represents the same value
- We can substitute actual numbers for variables once we know their values`,
			summary:    "An introduction to algebraic variables, explaining what they are, why we use them, and how they work in basic mathematical operations.",
			objectives: []string{"Understand what a variable represents", "Identify variables in mathematical expressions", "Apply variables to real-world situations"},
		},
		2: {
			title: "Working with Linear Equations",
			content: `Now that you understand variables, let's explore linear equations.

What is a Linear Equation?
A linear equation is an equation where the highest power of the variable is 1. It creates a straight line when graphed. The general form is ax + b = c, where a, b, and c are numbers and x is our variable.

The Golden Rule: Balance
Whatever you do to one side of the equation, you must do to the other side. This keeps the equation balanced, like a scale.

Step-by-Step Solution Process:
Let's solve 2x + 3 = 11.
Step 1: Subtract 3 from both sides, giving 2x = 8.
Step 2: Divide both sides by 2, giving x = 4.
Step 3: Check your answer by substituting back: 2(4) + 3 = 11.

Real-World Applications:
If you earn $15 per hour, how many hours h do you need to work to earn $120? Equation: 15h = 120, so h = 8 hours.
A phone plan costs $30 plus $0.10 per text. If your bill is $45, 30 + 0.10t = 45 gives t = 150 texts.

Common Mistakes to Avoid:
1. Forgetting to do the same operation to both sides
2. Sign errors with negatives
3. Not checking the answer`,
			summary:    "Learn to solve linear equations using balance principles, step-by-step methods, and real-world applications.",
			objectives: []string{"Solve linear equations systematically", "Apply linear equations to real problems", "Check solutions for accuracy"},
		},
		3: {
			title: "Mastering Systems of Equations",
			content: `A system of equations is a set of two or more equations with the same variables. Our goal is to find values that satisfy all equations at once.

Example System:
x + y = 10
2x - y = 2

Method 1: Substitution
From the first equation, y = 10 - x. Substituting into the second: 2x - (10 - x) = 2, so 3x = 12 and x = 4, giving y = 6.

Method 2: Elimination
Add the equations: (x + y) + (2x - y) = 12, so 3x = 12 and x = 4.

Method 3: Graphing
Each equation is a line; the solution is the intersection.

Special Cases:
- No solution: the lines are parallel
- Infinite solutions: the lines coincide
- One solution: the lines intersect at a single point

Real-World Application:
A store sells t-shirts for $15 and hats for $10. If they sold 100 items for $1300 total, then t + h = 100 and 15t + 10h = 1300.

Always check your solution in both original equations.`,
			summary:    "Master three methods for solving systems of equations: substitution, elimination, and graphing, with real-world applications.",
			objectives: []string{"Apply substitution method effectively", "Use elimination to solve systems", "Recognize and interpret different types of solutions"},
		},
	},
	"geometry": {
		1: {
			title: "Fundamentals of Geometric Shapes",
			content: `Welcome to geometry, the study of shapes, sizes, and spatial relationships!

Basic Building Blocks:
1. Points: a location in space with no size, named with capital letters.
2. Lines: extend infinitely in both directions with no thickness.
3. Line segments: part of a line with two endpoints and definite length.
4. Rays: start at one point and extend infinitely in one direction.
5. Angles: formed when two rays share a common endpoint.

Types of Angles:
- Acute: less than 90 degrees
- Right: exactly 90 degrees
- Obtuse: between 90 and 180 degrees
- Straight: exactly 180 degrees

Basic Shapes:
Triangles have 3 sides and their angles sum to 180 degrees. Quadrilaterals have 4 sides and their angles sum to 360 degrees. Circles are all points equidistant from a center, described by radius, diameter, and circumference.

Geometric Relationships:
Parallel lines never intersect. Perpendicular lines intersect at 90 degrees. Congruent figures have the same size and shape; similar figures have the same shape but different size.

Real-World Applications:
Architecture, art, sports field dimensions, navigation, and computer graphics all depend on geometry.`,
			summary:    "Explore the basic building blocks of geometry: points, lines, angles, and fundamental shapes with their properties.",
			objectives: []string{"Identify basic geometric shapes", "Understand shape properties", "Classify angles and shapes by attributes"},
		},
	},
	"trigonometry": {
		1: {
			title: "Trigonometry Foundations",
			content: `Trigonometry studies the relationships between the angles and sides of triangles, starting with right triangles.

The Three Core Ratios:
For an angle in a right triangle:
- sine = opposite / hypotenuse
- cosine = adjacent / hypotenuse
- tangent = opposite / adjacent

Remember SOH CAH TOA. It encodes all three ratios.

Worked Example:
In a right triangle with an angle of 30 degrees and hypotenuse 10, the opposite side is 10 x sin(30) = 5.

The Unit Circle:
A circle of radius 1 centered at the origin. The coordinates of a point on the circle at angle t are (cos t, sin t). The unit circle extends the trig ratios beyond acute angles.

Applications:
Surveying, navigation, physics of waves, and engineering all lean on these ratios to turn angle measurements into distances.`,
			summary:    "Begin your journey into trigonometry with right triangles, the SOH CAH TOA ratios, and the unit circle.",
			objectives: []string{"Understand trigonometric ratios", "Apply SOH CAH TOA", "Solve right triangle problems"},
		},
	},
	"calculus": {
		1: {
			title: "Understanding Limits",
			content: `Limits are the foundation of calculus. They describe the value a function approaches as its input approaches some point.

The Idea:
Consider f(x) = (x^2 - 1)/(x - 1). At x = 1 the function is undefined, yet as x gets closer and closer to 1, f(x) gets closer and closer to 2. We write lim(x->1) f(x) = 2.

Evaluating Basic Limits:
1. Direct substitution: if the function is continuous at the point, plug in the value.
2. Factoring: cancel common factors to remove holes, as in the example above.
3. One-sided limits: approach from the left or the right; the two must agree for the limit to exist.

Continuity:
A function is continuous at a point when the limit exists there and equals the function's value. Informally, you can draw it without lifting your pencil.

Why Limits Matter:
Derivatives and integrals, the two pillars of calculus, are both defined as limits.`,
			summary:    "Grasp the fundamental concept of limits in calculus and how they underpin continuity.",
			objectives: []string{"Define limits conceptually", "Evaluate basic limits", "Understand limit notation"},
		},
	},
}

var styleAddenda = map[string]string{
	"visual": `

Visual Learning Tips:
Sketch each example as you read. Draw boxes for unknowns, label diagrams, and use a balance-scale picture for equations. Seeing the structure on paper makes the relationships concrete.`,
	"auditory": `

Discussion Prompts:
Read the worked examples aloud and explain each step in your own words, as if teaching a friend. Ask yourself: why is this step valid? What would happen if I skipped it?`,
	"reading": `

Note-Taking Guide:
Summarize each section in one sentence before moving on. Keep a running glossary of new terms and rewrite each worked example in your notebook with your own annotations.`,
	"kinesthetic": `

Hands-On Practice:
Work through each example with pencil and paper before reading the solution. Then invent a similar problem from your own life and solve it the same way.`,
}

// fallbackLesson picks the best static template for a topic. The topic is
// matched to a subject via the canonical sequences; the difficulty tier
// falls back to the closest lower tier available. Topics with no matching
// subject get a minimal generic lesson.
func fallbackLesson(topic, style string, difficulty int) contentTemplate {
	subject := subjectForTopic(topic)
	tiers, ok := contentBank[subject]
	if !ok {
		return genericLesson(topic, style)
	}

	tpl, ok := tiers[difficulty]
	if !ok {
		best := 0
		for tier := range tiers {
			if tier <= difficulty && tier > best {
				best = tier
			}
		}
		if best == 0 {
			return genericLesson(topic, style)
		}
		tpl = tiers[best]
	}

	if addendum, ok := styleAddenda[strings.ToLower(style)]; ok {
		tpl.content += addendum
	}
	return tpl
}

// subjectForTopic maps a topic name onto one of the canonical subjects by
// word overlap with the subject's topic sequence.
func subjectForTopic(topic string) string {
	t := strings.ToLower(topic)
	for subject, topics := range subjectTopics {
		if strings.Contains(t, subject) {
			return subject
		}
		for _, known := range topics {
			k := strings.ToLower(known)
			if strings.Contains(t, k) || strings.Contains(k, t) {
				return subject
			}
		}
	}
	return ""
}

func genericLesson(topic, style string) contentTemplate {
	return contentTemplate{
		title:      fmt.Sprintf("Learning %s", topic),
		content:    fmt.Sprintf("This lesson covers the fundamentals of %s. Content is tailored for %s learners.", topic, style),
		summary:    fmt.Sprintf("Introduction to %s concepts.", topic),
		objectives: []string{fmt.Sprintf("Understand %s", topic), fmt.Sprintf("Apply %s concepts", topic)},
	}
}
