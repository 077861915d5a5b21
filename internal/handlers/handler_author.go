package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// authorController serves the home and author pages.
type authorController struct {
	site *Site
}

// NewAuthorController creates the controller for "/" and "/author".
func NewAuthorController(site *Site) Controller {
	return &authorController{site: site}
}

func (h *authorController) Handle(c *gin.Context, path string, params Params) Outcome {
	switch path {
	case "":
		h.index(c, params)
	case "/author":
		h.author(c, params)
	default:
		return NotMine
	}
	return Claimed
}

// index godoc
// @Summary Home page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *authorController) index(c *gin.Context, params Params) {
	c.HTML(http.StatusOK, "index.html", h.site.pageData(params, gin.H{"title": "Home"}))
}

// author godoc
// @Summary Author page
// @Tags pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /author [get]
func (h *authorController) author(c *gin.Context, params Params) {
	c.HTML(http.StatusOK, "author.html", h.site.pageData(params, gin.H{"title": "Author"}))
}
