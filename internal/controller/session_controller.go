package controller

import (
	"errors"

	"lexiscreen_backend/internal/exercise"
	"lexiscreen_backend/internal/service"
	"lexiscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// swagger:model CreateSessionRequest
type CreateSessionRequest struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
}

// Create godoc
// @Summary Open an exercise session
// @Description Starts a session at level select with the caller's unlock progress restored
// @Tags sessions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateSessionRequest true "Exercise id"
// @Success 201 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Unknown exercise"
// @Router /api/sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.SessionService.Create(ctx.Request.Context(), claims.UserID, req.ExerciseID)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, sessionView(sess))
}

// Get godoc
// @Summary Session state
// @Tags sessions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Session id"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Unknown session"
// @Router /api/sessions/{id} [get]
func (c *SessionController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sess, err := c.SessionService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, sessionView(sess))
}

// Event godoc
// @Summary Apply a gameplay event
// @Description Dispatches one action (selectLevel, begin, clickCell, choose, ...) to the session
// @Tags sessions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Session id"
// @Param   body body service.Event true "Event"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response "Invalid action for the current state"
// @Failure 404 {object} util.Response "Unknown session"
// @Failure 423 {object} util.Response "Level locked"
// @Router /api/sessions/{id}/events [post]
func (c *SessionController) Event(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var ev service.Event
	if err := ctx.ShouldBindJSON(&ev); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess, err := c.SessionService.Dispatch(ctx.Request.Context(), claims.UserID, ctx.Param("id"), ev)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, exercise.ErrLevelLocked):
			util.Error(ctx, 423, err.Error())
		case errors.Is(err, exercise.ErrSpeechUnavailable):
			util.Error(ctx, 422, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, sessionView(sess))
}

// Close godoc
// @Summary Close a session
// @Description Stops narration and capture and discards the session
// @Tags sessions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Session id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Unknown session"
// @Router /api/sessions/{id} [delete]
func (c *SessionController) Close(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SessionService.Close(claims.UserID, ctx.Param("id")); err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"closed": true})
}

// sessionView flattens a session for the wire. Expected answers stay
// server side via their json:"-" tags.
func sessionView(sess *exercise.Session) gin.H {
	return gin.H{
		"id":            sess.ID,
		"state":         sess.State,
		"mode":          sess.Mode,
		"levelIndex":    sess.LevelIndex,
		"errorFlag":     sess.ErrorFlag,
		"grid":          sess.Grid,
		"flipped":       sess.Flipped,
		"wpm":           sess.WPM,
		"accuracy":      sess.Accuracy,
		"transcript":    sess.Transcript,
		"narrationRate": sess.NarrationRate(),
		"maxUnlocked":   sess.MaxUnlocked(),
		"exercise":      sess.Exercise,
	}
}
