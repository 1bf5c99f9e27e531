package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UIController renders the catalog page. The page itself is static; all
// data flows through the JSON API from static/js/app.js.
type UIController struct {
	version string
}

func NewUIController(version string) *UIController {
	return &UIController{version: version}
}

func (controller *UIController) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Version": controller.version,
	})
}
