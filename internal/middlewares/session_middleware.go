package middlewares

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
)

// 컨텍스트에 세션과 로그인 사용자를 저장할 때 사용하는 키.
const (
	sessionKeyContext   = "session_data"
	principalKeyContext = "principal"
)

// SessionMiddleware는 요청에서 세션을 가져와 컨텍스트에 저장합니다.
// 세션 복원에 실패하면 클라이언트 쿠키를 초기화하고 익명으로 진행합니다.
func SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(auth.SessionName, c)
		if err != nil {
			// 비밀키 변경 등으로 복원이 불가능한 쿠키는 버리고, 스토어가
			// 함께 돌려준 새 세션으로 진행합니다.
			resetSessionCookie(c)
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "세션을 초기화할 수 없습니다.")
			}
		}

		c.Set(sessionKeyContext, sess)
		c.Set(principalKeyContext, auth.FromSession(sess))
		return next(c)
	}
}

func resetSessionCookie(c echo.Context) {
	cookie := new(http.Cookie)
	cookie.Name = auth.SessionName
	cookie.Value = ""
	cookie.Path = "/"
	cookie.MaxAge = -1
	cookie.HttpOnly = true
	c.SetCookie(cookie)
}

// GetSessionFromContext는 컨텍스트에서 세션을 가져옵니다.
func GetSessionFromContext(c echo.Context) (*sessions.Session, error) {
	if sess, ok := c.Get(sessionKeyContext).(*sessions.Session); ok {
		return sess, nil
	}
	sess, err := session.Get(auth.SessionName, c)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// GetPrincipal은 현재 요청의 로그인 사용자를 돌려줍니다.
func GetPrincipal(c echo.Context) auth.Principal {
	if p, ok := c.Get(principalKeyContext).(auth.Principal); ok {
		return p
	}
	return auth.Principal{}
}
