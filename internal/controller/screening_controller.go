package controller

import (
	"errors"

	"lexiscreen_backend/internal/screening"
	"lexiscreen_backend/internal/service"
	"lexiscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScreeningController struct {
	ScreeningService *service.ScreeningService
}

func NewScreeningController(screeningService *service.ScreeningService) *ScreeningController {
	return &ScreeningController{ScreeningService: screeningService}
}

// GetQuestions godoc
// @Summary Screening question battery
// @Description Lists the questions in order. Expected answers are never included.
// @Tags screening
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]screening.Question}
// @Router /api/screening/questions [get]
func (c *ScreeningController) GetQuestions(ctx *gin.Context) {
	util.Success(ctx, c.ScreeningService.Questions())
}

// swagger:model StartScreeningRequest
type StartScreeningRequest struct {
	Age            int    `json:"age" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	NativeLangCode int    `json:"nativeLangCode"`
}

// Start godoc
// @Summary Start a screening run
// @Description Collects demographics and opens the battery at question zero
// @Tags screening
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StartScreeningRequest true "Demographics"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Missing demographics"
// @Router /api/screening/start [post]
func (c *ScreeningController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartScreeningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.ScreeningService.Start(claims.UserID, screening.Demographics{
		Age:            req.Age,
		Gender:         req.Gender,
		NativeLangCode: req.NativeLangCode,
	})
	if err != nil {
		if errors.Is(err, screening.ErrDemographicsRequired) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"state":     a.State(),
		"index":     a.Index(),
		"questions": screening.QuestionCount(),
	})
}

// swagger:model AnswerRequest
type AnswerRequest struct {
	QuestionID int    `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

// Answer godoc
// @Summary Answer the current question
// @Description Scores the answer and advances the battery
// @Tags screening
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AnswerRequest true "Answer"
// @Success 200 {object} util.Response{data=service.AnswerOutcome}
// @Failure 400 {object} util.Response "Out of order or not in progress"
// @Router /api/screening/answer [post]
func (c *ScreeningController) Answer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.ScreeningService.Answer(claims.UserID, req.QuestionID, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrScreeningNotFound),
			errors.Is(err, screening.ErrNotInProgress),
			errors.Is(err, screening.ErrWrongQuestion):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, outcome)
}

// SequenceStatus godoc
// @Summary Memory sequence visibility
// @Description Reports whether the memory question's sequence is still revealed
// @Tags screening
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object}
// @Router /api/screening/sequence [get]
func (c *ScreeningController) SequenceStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	visible, err := c.ScreeningService.SequenceVisible(claims.UserID)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"visible": visible})
}

// Finish godoc
// @Summary Classify a finished screening
// @Description Builds the feature payload, calls the risk classifier and stores the outcome
// @Tags screening
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.ScreeningRecord}
// @Failure 400 {object} util.Response "Battery not finished"
// @Failure 502 {object} util.Response "Classifier unavailable"
// @Router /api/screening/result [post]
func (c *ScreeningController) Finish(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.ScreeningService.Finish(ctx.Request.Context(), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrClassifierUnavailable):
			util.Error(ctx, 502, err.Error())
		case errors.Is(err, util.ErrScreeningNotFound),
			errors.Is(err, screening.ErrNotInProgress):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, record)
}

// History godoc
// @Summary Past screening runs
// @Tags screening
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ScreeningRecord}
// @Router /api/screening/history [get]
func (c *ScreeningController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ScreeningService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, records)
}
