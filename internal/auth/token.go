package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL은 JWT의 exp 클레임까지 남은 시간을 돌려줍니다.
// 서명 검증은 백엔드 책임이므로 여기서는 클레임만 읽습니다.
func TokenTTL(token string) (time.Duration, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return 0, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0, false
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 {
		return 0, false
	}
	return ttl, true
}
