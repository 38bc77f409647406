package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/highlights/internal/scheduler"
)

type ExportStatusResponse struct {
	scheduler.SyncStatus
	NextRunAt *time.Time `json:"next_run_at,omitempty"`
}

type ExportController struct {
	runner ExportRunner
}

func NewExportController(runner ExportRunner) *ExportController {
	return &ExportController{runner: runner}
}

// Sync runs the markdown export immediately and reports its outcome.
func (controller *ExportController) Sync(c *gin.Context) {
	status := controller.runner.RunNow()
	code := http.StatusOK
	if status.Status == "failed" {
		code = http.StatusInternalServerError
	}
	c.IndentedJSON(code, ExportStatusResponse{
		SyncStatus: status,
		NextRunAt:  controller.runner.GetNextRunTime(),
	})
}

func (controller *ExportController) Status(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, ExportStatusResponse{
		SyncStatus: controller.runner.Status(),
		NextRunAt:  controller.runner.GetNextRunTime(),
	})
}
