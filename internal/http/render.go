package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/highlights/internal/input/bookcision"
	"github.com/mrlokans/highlights/internal/render"
	"github.com/mrlokans/highlights/internal/render/markdown"
)

// RenderController turns a posted bookcision export into markdown without
// storing anything.
type RenderController struct {
	defaults markdown.Settings
}

func NewRenderController(defaults markdown.Settings) *RenderController {
	return &RenderController{defaults: defaults}
}

func (controller *RenderController) Render(c *gin.Context) {
	settings, err := settingsFromQuery(c, controller.defaults)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	limitBody(c)
	book, err := bookcision.Parse(c.Request.Body)
	if err != nil {
		respondDecodeError(c, err)
		return
	}

	// Rendered into memory first so a failure can still change the status code.
	body, err := render.RenderString(markdown.NewRenderer(settings), book)
	if err != nil {
		respondInternalError(c, err, "render")
		return
	}
	respondMarkdown(c, body)
}
