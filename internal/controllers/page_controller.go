package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/middlewares"
)

// PageController는 로직이 없는 페이지 셸을 렌더링합니다.
type PageController struct{}

func NewPageController() *PageController { return &PageController{} }

type shellPageData struct {
	Principal auth.Principal
}

// AboutHandler는 서비스 소개 페이지입니다.
// GET /about
func (h *PageController) AboutHandler(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", shellPageData{
		Principal: middlewares.GetPrincipal(c),
	})
}
