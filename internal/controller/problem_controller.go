package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Numbat/internal/dto"
	"github.com/lshigami/Numbat/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type MathProblemController struct {
	problemService    service.ProblemService
	submissionService service.SubmissionService
	hintService       service.HintService
	historyService    service.HistoryService
}

func NewMathProblemController(
	problemService service.ProblemService,
	submissionService service.SubmissionService,
	hintService service.HintService,
	historyService service.HistoryService,
) *MathProblemController {
	return &MathProblemController{
		problemService:    problemService,
		submissionService: submissionService,
		hintService:       hintService,
		historyService:    historyService,
	}
}

// GenerateProblem godoc
// @Summary Generate a new math problem
// @Description Generates one word problem for the given difficulty and type, persists it as a session, and returns the session id with the problem.
// @Tags Problems
// @Accept json
// @Produce json
// @Param request body dto.GenerateProblemRequest true "Difficulty and problem type"
// @Success 200 {object} dto.ProblemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid difficulty or problem type"
// @Failure 500 {object} dto.ErrorResponse "AI backend or persistence error"
// @Router /problems [post]
func (c *MathProblemController) GenerateProblem(ctx *gin.Context) {
	var req dto.GenerateProblemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateProblem: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	problem, err := c.problemService.GenerateProblem(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("GenerateProblem: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate problem", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, problem)
}

// GetSession godoc
// @Summary Get a stored problem session
// @Description Returns the persisted problem for a session id.
// @Tags Problems
// @Produce json
// @Param session_id path int true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session id"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /problems/{session_id} [get]
func (c *MathProblemController) GetSession(ctx *gin.Context) {
	sessionID, err := strconv.ParseUint(ctx.Param("session_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format"})
		return
	}

	session, err := c.problemService.GetSession(ctx.Request.Context(), uint(sessionID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve session", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// SubmitAnswer godoc
// @Summary Submit an answer for grading
// @Description Grades the answer, generates AI feedback, and records the attempt. Each submission is an independent row; re-submitting for the same session is always allowed.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body dto.SubmitAnswerRequest true "Answer submission"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed fields"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "AI backend or persistence error"
// @Router /submissions [post]
func (c *MathProblemController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	submission, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("sessionID", req.SessionID).Msg("SubmitAnswer: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit answer", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// GetHint godoc
// @Summary Get a hint for a problem
// @Description Returns stepwise AI hint text. Nothing is persisted; session and submission state are untouched.
// @Tags Hints
// @Accept json
// @Produce json
// @Param request body dto.HintRequest true "Session id and problem text"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 500 {object} dto.ErrorResponse "AI backend error"
// @Router /hints [post]
func (c *MathProblemController) GetHint(ctx *gin.Context) {
	var req dto.HintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GetHint: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	hint, err := c.hintService.HintForProblem(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", req.SessionID).Msg("GetHint: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate hint", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, hint)
}

// ListHistory godoc
// @Summary List submission history
// @Description Lists submissions newest first with the derived score and total. Filters by session id and/or user identifier are optional and combinable.
// @Tags Submissions
// @Produce json
// @Param session_id query int false "Filter by session ID"
// @Param user_identifier query string false "Filter by user identifier"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid session id filter"
// @Failure 500 {object} dto.ErrorResponse "Read error"
// @Router /submissions [get]
func (c *MathProblemController) ListHistory(ctx *gin.Context) {
	var filter dto.HistoryFilter

	if raw := ctx.Query("session_id"); raw != "" {
		val, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid session ID format in query"})
			return
		}
		sessionID := uint(val)
		filter.SessionID = &sessionID
	}
	if raw := ctx.Query("user_identifier"); raw != "" {
		userIdentifier := raw
		filter.UserIdentifier = &userIdentifier
	}

	history, err := c.historyService.ListSubmissions(ctx.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("ListHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve submission history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
