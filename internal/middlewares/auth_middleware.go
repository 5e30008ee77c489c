package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/youngnam81-kim/gov-bid-web/configs"
)

// RequireLogin은 로그인한 사용자만 통과시킵니다. 페이지 요청은 홈으로
// 돌려보내고, 그 외에는 401을 돌려줍니다.
func RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetPrincipal(c).SignedIn() {
			return next(c)
		}
		if c.Request().Method == http.MethodGet {
			return c.Redirect(http.StatusFound, configs.Configs.Service.BasePath+"/")
		}
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "로그인이 필요합니다."})
	}
}
