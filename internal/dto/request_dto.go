package dto

// GenerateProblemRequest asks for one new word problem. ProblemType is a
// syllabus strand or operation tag, e.g. "Addition" or "Fractions".
type GenerateProblemRequest struct {
	Difficulty  string `json:"difficulty" binding:"required,oneof=Easy Medium Hard"`
	ProblemType string `json:"problemType" binding:"required"`
}

// SubmitAnswerRequest carries one answer attempt. CorrectAnswer is
// optional; when omitted the stored session answer is used.
type SubmitAnswerRequest struct {
	SessionID      uint    `json:"session_id" binding:"required"`
	UserAnswer     Numeric `json:"user_answer" binding:"required"`
	CorrectAnswer  Numeric `json:"correct_answer"`
	ProblemText    string  `json:"problem_text" binding:"required"`
	UserIdentifier string  `json:"user_identifier"`
}

// HintRequest asks for a stepwise hint for the given problem.
type HintRequest struct {
	SessionID   uint   `json:"session_id" binding:"required"`
	ProblemText string `json:"problem_text" binding:"required"`
}

// HistoryFilter narrows the submission history. Both filters are
// optional and combinable; nil means no filter.
type HistoryFilter struct {
	SessionID      *uint
	UserIdentifier *string
}
