package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationPromptNamesParametersAndStrands(t *testing.T) {
	prompt := buildGenerationPrompt("Medium", "Fractions")

	assert.Contains(t, prompt, "Difficulty: Medium")
	assert.Contains(t, prompt, "Problem Type: Fractions")
	for _, strand := range syllabusStrands {
		assert.Contains(t, prompt, strand)
	}
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestFeedbackPromptEmbedsVerdict(t *testing.T) {
	correct := buildFeedbackPrompt("What is 6 x 7?", "42", "42", true)
	assert.Contains(t, correct, "The student's answer is correct.")
	assert.Contains(t, correct, "Student's answer: 42")

	wrong := buildFeedbackPrompt("What is 6 x 7?", "36", "42", false)
	assert.Contains(t, wrong, "The student's answer is incorrect.")
	assert.Contains(t, wrong, "Correct answer: 42")
}

func TestHintPromptEmbedsProblem(t *testing.T) {
	prompt := buildHintPrompt("What is 6 x 7?")
	assert.Contains(t, prompt, "step-by-step")
	assert.Contains(t, prompt, "What is 6 x 7?")
}
