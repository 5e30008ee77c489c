// Package controllers는 echo 핸들러 계층입니다. 백엔드 호출 결과를
// 화면(HTML)과 JSON 응답으로 옮기는 것 외의 로직은 갖지 않습니다.
package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/middlewares"
)

// clearCredentialsOn401은 백엔드 401 응답 시 세션의 자격 증명을 지웁니다.
// 원본 프론트엔드의 응답 인터셉터와 같은 역할입니다.
func clearCredentialsOn401(c echo.Context, err error) bool {
	if !errors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	if sess, serr := middlewares.GetSessionFromContext(c); serr == nil {
		auth.SignOut(sess)
		_ = sess.Save(c.Request(), c.Response())
	}
	return true
}

// jsonError는 {message: ...} 형태의 오류 응답입니다.
func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"message": message})
}

// backendJSONError는 백엔드 오류를 JSON으로 변환합니다. 401이면 세션을
// 비우고 401을, 그 외에는 서버 메시지(없으면 fallback)를 돌려줍니다.
func backendJSONError(c echo.Context, err error, fallback string) error {
	if clearCredentialsOn401(c, err) {
		return jsonError(c, http.StatusUnauthorized, "로그인이 만료되었습니다. 다시 로그인해주세요.")
	}
	var apiErr *backend.APIError
	status := http.StatusBadGateway
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		status = apiErr.Status
	}
	return jsonError(c, status, backend.UserMessage(err, fallback))
}
