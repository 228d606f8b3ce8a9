package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hraza/pakretail-datagen/internal/app/generator"
	"github.com/hraza/pakretail-datagen/internal/app/service"
	"github.com/hraza/pakretail-datagen/internal/errors"
)

type RunController struct {
	generationService service.GenerationService
}

func NewRunController(generationService service.GenerationService) *RunController {
	return &RunController{generationService: generationService}
}

// CreateRun triggers a full generation run and returns its summary.
// POST /api/v1/runs
func (ctrl *RunController) CreateRun(c *gin.Context) {
	summary, err := ctrl.generationService.Run()
	if err != nil {
		switch {
		case stderrors.Is(err, generator.ErrInvalidCount):
			errors.BadRequest(c, errors.ConfigInvalidCount, err.Error())
		case stderrors.Is(err, generator.ErrEmptyTable):
			errors.BadRequest(c, errors.GenerateEmptyTable, err.Error())
		case stderrors.Is(err, generator.ErrNoStaffedStores):
			errors.Conflict(c, errors.GenerateNoStaffedStores, err.Error())
		default:
			errors.RespondWithError(c, http.StatusInternalServerError, errors.GenerateFailed, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// LatestRun returns the summary of the most recent completed run.
// GET /api/v1/runs/latest
func (ctrl *RunController) LatestRun(c *gin.Context) {
	summary, ok := ctrl.generationService.Latest()
	if !ok {
		errors.NotFound(c, errors.RunNotFound, "no generation run has completed yet")
		return
	}

	c.JSON(http.StatusOK, summary)
}
