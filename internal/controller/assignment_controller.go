package controller

import (
	"strconv"

	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/internal/service"
	"lexiscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// swagger:model AssignmentRequest
type AssignmentRequest struct {
	Title string `json:"title" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

// Create godoc
// @Summary Create an assignment
// @Description Publishes a passage students complete as a hybrid read or write task
// @Tags assignments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AssignmentRequest true "Assignment"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Failure 400 {object} util.Response "Invalid request"
// @Router /api/teacher/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment := &model.Assignment{
		Title:     req.Title,
		Text:      req.Text,
		TaskType:  model.AssignmentTaskHybrid,
		CreatorID: claims.UserID,
	}
	if err := c.AssignmentService.Create(ctx.Request.Context(), assignment); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// List godoc
// @Summary List assignments
// @Tags assignments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	assignments, err := c.AssignmentService.List(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// Update godoc
// @Summary Update an assignment
// @Tags assignments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Assignment id"
// @Param   body body AssignmentRequest true "Assignment"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Failure 404 {object} util.Response "Unknown assignment"
// @Router /api/teacher/assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	assignment, err := c.AssignmentService.FindByID(id)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment.Title = req.Title
	assignment.Text = req.Text
	if err := c.AssignmentService.Update(ctx.Request.Context(), assignment); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// Delete godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Assignment id"
// @Success 200 {object} util.Response
// @Router /api/teacher/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid assignment id")
		return
	}

	if err := c.AssignmentService.Delete(ctx.Request.Context(), uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
