package controller

import (
	"lexiscreen_backend/internal/service"
	"lexiscreen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	CatalogService *service.CatalogService
}

func NewExerciseController(catalogService *service.CatalogService) *ExerciseController {
	return &ExerciseController{CatalogService: catalogService}
}

// List godoc
// @Summary Exercise catalog
// @Description The exercise set for the caller's risk label plus any teacher assignments
// @Tags exercises
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]exercise.Exercise}
// @Router /api/exercises [get]
func (c *ExerciseController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	catalog, err := c.CatalogService.CatalogForUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, catalog)
}
