package backend

import (
	"errors"
	"fmt"
)

// ErrUnauthorized는 백엔드가 401을 돌려준 경우입니다.
// 호출자는 저장된 토큰과 사용자 정보를 지워야 합니다.
var ErrUnauthorized = errors.New("backend: unauthorized")

// APIError는 401을 제외한 백엔드 호출 실패입니다.
type APIError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("backend: %s, status=%d", e.Code, e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// UserMessage는 폼에 인라인으로 노출할 서버 메시지입니다.
// 서버가 메시지를 주지 않았다면 fallback을 사용합니다.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
