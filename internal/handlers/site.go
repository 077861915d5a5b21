package handlers

import (
	"github.com/SscSPs/currency_board/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Site is the data shared by every rendered page.
type Site struct {
	App   domain.AppInfo
	Pages []domain.Page
}

// DefaultPages is the navigation shown on every page.
func DefaultPages() []domain.Page {
	return []domain.Page{
		{Caption: "Home", Href: "/"},
		{Caption: "Rates", Href: "/currencies"},
		{Caption: "Users", Href: "/users"},
		{Caption: "Author", Href: "/author"},
	}
}

// NewSite creates a Site with the default navigation.
func NewSite(app domain.AppInfo) *Site {
	return &Site{App: app, Pages: DefaultPages()}
}

// pageData builds the template data: query params first, then app, pages and the page's
// own keys on top so a parameter can never replace them.
func (s *Site) pageData(params Params, page gin.H) gin.H {
	data := make(gin.H, len(params)+len(page)+2)
	for k, v := range params {
		data[k] = v
	}
	data["app"] = s.App
	data["pages"] = s.Pages
	for k, v := range page {
		data[k] = v
	}
	return data
}
