package httpEngine

import (
	"github.com/labstack/echo/v4"

	"github.com/youngnam81-kim/gov-bid-web/configs"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/controllers"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
	"github.com/youngnam81-kim/gov-bid-web/internal/middlewares"
)

// RegisterRoutes sets up all the server routes.
func RegisterRoutes(e *echo.Echo, api *backend.Client, boards *logics.BoardService, details *logics.DetailRegistry) {
	authCtl := controllers.NewAuthController(api, details, configs.Configs.Session.ExpireMin, configs.Logger)
	boardCtl := controllers.NewBoardController(boards, configs.Logger)
	detailCtl := controllers.NewDetailController(details, configs.Logger)
	pageCtl := controllers.NewPageController()

	root := e.Group(configs.Configs.Service.BasePath)
	root.Use(middlewares.SessionMiddleware)

	// 페이지
	root.GET("/", boardCtl.BrowseHandler)
	root.GET("/bidBoard", boardCtl.MyBoardHandler, middlewares.RequireLogin)
	root.GET("/about", pageCtl.AboutHandler)

	// 인증
	authGroup := root.Group("/auth")
	{
		authGroup.POST("/login", authCtl.LoginHandler)
		authGroup.POST("/register", authCtl.RegisterHandler)
		authGroup.POST("/logout", authCtl.LogoutHandler)
		authGroup.GET("/me", authCtl.MeHandler)
	}

	// 물건 상세 보기
	detailGroup := root.Group("/detail")
	{
		detailGroup.POST("/open", detailCtl.OpenHandler)
		detailGroup.GET("", detailCtl.RefreshHandler)
		detailGroup.POST("/close", detailCtl.CloseHandler)
		detailGroup.POST("/bid", detailCtl.BidHandler)
		detailGroup.POST("/favorite", detailCtl.FavoriteHandler)
	}
}
