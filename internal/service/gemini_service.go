package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Numbat/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// PlaceholderProblemText is returned when the model's generation output
// cannot be parsed into a problem.
const PlaceholderProblemText = "No problem generated."

// GeneratedProblem is the model's answer to a generation prompt.
// FinalAnswer is nil for the placeholder problem.
type GeneratedProblem struct {
	ProblemText string   `json:"problem_text"`
	FinalAnswer *float64 `json:"final_answer"`
}

// GeminiService wraps every Gemini interaction the API needs: problem
// generation, grading feedback, and hints.
type GeminiService interface {
	GenerateProblem(ctx context.Context, difficulty, problemType string) (*GeneratedProblem, error)
	FeedbackForSubmission(ctx context.Context, problemText, userAnswer, correctAnswer string, isCorrect bool) (string, error)
	HintForProblem(ctx context.Context, problemText string) (string, error)
}

type geminiService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return &geminiService{cfg: cfg, model: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.GeminiModel)
	return &geminiService{model: model, cfg: cfg}, nil
}

var syllabusStrands = []string{
	"Whole Numbers",
	"Fractions",
	"Decimals",
	"Measurement",
	"Geometry",
	"Statistics",
	"Ratio",
	"Percentage",
	"Money",
	"Time",
	"Area and Volume",
}

func buildGenerationPrompt(difficulty, problemType string) string {
	var b strings.Builder
	b.WriteString("You are a Singapore Primary Mathematics teacher following the 2021 Primary Mathematics Syllabus (P1-P6).\n\n")
	b.WriteString("Generate ONE random math word problem aligned with the syllabus strands:\n")
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Problem Type: %s\n\n", problemType)
	for _, strand := range syllabusStrands {
		fmt.Fprintf(&b, "- %s\n", strand)
	}
	b.WriteString("\nEach problem should be age-appropriate for Primary 5 students.\n")
	b.WriteString("Return ONLY valid JSON in this format (no code blocks, no explanations):\n\n")
	b.WriteString(`{"problem_text": "string", "final_answer": number}`)
	return b.String()
}

func buildFeedbackPrompt(problemText, userAnswer, correctAnswer string, isCorrect bool) string {
	verdict := "incorrect"
	if isCorrect {
		verdict = "correct"
	}

	var b strings.Builder
	b.WriteString("You are a Primary 5 Math teacher.\n")
	b.WriteString("The student answered this problem:\n")
	fmt.Fprintf(&b, "%q\n", problemText)
	fmt.Fprintf(&b, "Student's answer: %s\n", userAnswer)
	fmt.Fprintf(&b, "Correct answer: %s\n", correctAnswer)
	fmt.Fprintf(&b, "The student's answer is %s.\n", verdict)
	b.WriteString("Give short, encouraging feedback (2-3 sentences) appropriate for a Primary 5 student.\n")
	b.WriteString("If the student is correct, praise them and reinforce the concept.\n")
	b.WriteString("If the student is wrong, gently explain where the mistake might be and encourage retry.\n")
	b.WriteString("Return only plain text.")
	return b.String()
}

func buildHintPrompt(problemText string) string {
	var b strings.Builder
	b.WriteString("You are a Primary 5 Math teacher.\n")
	b.WriteString("Provide a step-by-step hint or solution for this math problem:\n")
	fmt.Fprintf(&b, "%q\n", problemText)
	b.WriteString("Make it clear, encouraging, and educational.\n")
	b.WriteString("Return only plain text.")
	return b.String()
}

// GenerateProblem asks the model for one problem and parses the reply.
// A malformed reply is not an error for the caller: it degrades to the
// placeholder problem so the endpoint always returns a usable object.
func (s *geminiService) GenerateProblem(ctx context.Context, difficulty, problemType string) (*GeneratedProblem, error) {
	raw, err := s.generateText(ctx, buildGenerationPrompt(difficulty, problemType))
	if err != nil {
		log.Error().Err(err).Str("difficulty", difficulty).Str("problemType", problemType).Msg("Gemini API error during problem generation")
		return nil, err
	}

	return problemFromRaw(raw), nil
}

// problemFromRaw parses raw model output, degrading to the placeholder
// problem when the output cannot be parsed.
func problemFromRaw(raw string) *GeneratedProblem {
	problem, err := parseGeneratedProblem(raw)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Gemini returned invalid problem JSON, using placeholder")
		return &GeneratedProblem{ProblemText: PlaceholderProblemText}
	}
	return problem
}

func (s *geminiService) FeedbackForSubmission(ctx context.Context, problemText, userAnswer, correctAnswer string, isCorrect bool) (string, error) {
	feedback, err := s.generateText(ctx, buildFeedbackPrompt(problemText, userAnswer, correctAnswer, isCorrect))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during feedback generation")
		return "", err
	}
	return strings.TrimSpace(feedback), nil
}

func (s *geminiService) HintForProblem(ctx context.Context, problemText string) (string, error) {
	hint, err := s.generateText(ctx, buildHintPrompt(problemText))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during hint generation")
		return "", err
	}
	return strings.TrimSpace(hint), nil
}

func (s *geminiService) generateText(ctx context.Context, prompt string) (string, error) {
	if s.model == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text.String(), nil
}

// parseGeneratedProblem sanitizes raw model output and decodes it as the
// two-field problem object the generation prompt asks for.
func parseGeneratedProblem(raw string) (*GeneratedProblem, error) {
	cleaned := sanitizeModelOutput(raw)

	var problem GeneratedProblem
	if err := json.Unmarshal([]byte(cleaned), &problem); err != nil {
		return nil, fmt.Errorf("model output is not valid problem JSON: %w", err)
	}
	if problem.ProblemText == "" {
		return nil, fmt.Errorf("model output is missing problem_text")
	}
	return &problem, nil
}
