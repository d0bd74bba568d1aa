package controller

import (
	"errors"
	"strconv"

	"lexiscreen_backend/internal/service"
	"lexiscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// ListForTeacher godoc
// @Summary Submitted results
// @Description All assignment submissions with student and assignment, paged
// @Tags results
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/teacher/results [get]
func (c *ResultController) ListForTeacher(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	results, total, err := c.ResultService.ListForTeacher(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  results,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// ListMine godoc
// @Summary Caller's own submissions
// @Tags results
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Result}
// @Router /api/results [get]
func (c *ResultController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.ResultService.ListForStudent(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// UploadAudio godoc
// @Summary Attach a read-aloud clip
// @Description Stores the recorded clip for a reading submission and probes its duration
// @Tags results
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Result id"
// @Param   audio formData file true "Audio clip"
// @Success 200 {object} util.Response{data=model.Result}
// @Failure 400 {object} util.Response "Bad file"
// @Failure 403 {object} util.Response "Not the submitting student"
// @Failure 404 {object} util.Response "Unknown result"
// @Router /api/results/{id}/audio [post]
func (c *ResultController) UploadAudio(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	file, err := ctx.FormFile("audio")
	if err != nil {
		util.BadRequest(ctx, "audio file is required")
		return
	}

	result, err := c.ResultService.AttachAudio(ctx.Request.Context(), id, claims.UserID, file)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, result)
}
