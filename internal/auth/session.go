// Package auth는 세션에 저장되는 로그인 상태를 관리합니다.
// 토큰·사용자명·아이디는 고정된 키로 세션에 저장되고, 로그아웃이나
// 백엔드 401 응답 시 같은 경로로 제거됩니다.
package auth

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
)

const SessionName = "session"

// 세션 값 키. 원본 프론트엔드의 localStorage 키와 동일하게 유지합니다.
const (
	keyAccessToken = "accessToken"
	keyUserName    = "userName"
	keyUserId      = "userId"
	keySid         = "sid"
)

// Principal은 현재 요청의 로그인 사용자입니다.
type Principal struct {
	UserID   string
	UserName string
	Token    string
}

// SignedIn reports whether the session carries a usable credential.
func (p Principal) SignedIn() bool {
	return p.UserID != "" && p.Token != ""
}

// FromSession은 세션 값에서 Principal을 복원합니다.
func FromSession(sess *sessions.Session) Principal {
	p := Principal{}
	if v, ok := sess.Values[keyUserId].(string); ok {
		p.UserID = v
	}
	if v, ok := sess.Values[keyUserName].(string); ok {
		p.UserName = v
	}
	if v, ok := sess.Values[keyAccessToken].(string); ok {
		p.Token = v
	}
	return p
}

// SID는 세션의 고유 식별자를 돌려줍니다. 없으면 새로 발급합니다.
// 상세 보기 레지스트리의 키로 사용됩니다.
func SID(sess *sessions.Session) string {
	if v, ok := sess.Values[keySid].(string); ok && v != "" {
		return v
	}
	sid := uuid.NewString()
	sess.Values[keySid] = sid
	return sid
}

// SignIn은 로그인 응답을 세션에 기록합니다. 토큰의 exp 클레임이
// 설정된 세션 만료보다 이르면 쿠키 수명을 토큰에 맞춥니다.
func SignIn(sess *sessions.Session, res *backend.LoginResponse, expireMin int) {
	userName := res.User.UserName
	if userName == "" {
		userName = "null" // 원본 프론트엔드의 fallback 동작 유지
	}
	sess.Values[keyAccessToken] = res.Token
	sess.Values[keyUserName] = userName
	sess.Values[keyUserId] = res.User.UserId

	maxAge := expireMin * 60
	if ttl, ok := TokenTTL(res.Token); ok && int(ttl.Seconds()) < maxAge {
		maxAge = int(ttl.Seconds())
	}
	if sess.Options != nil {
		opts := *sess.Options
		opts.MaxAge = maxAge
		sess.Options = &opts
	}
}

// SignOut은 저장된 자격 증명을 제거합니다. 401 처리에서도 사용됩니다.
func SignOut(sess *sessions.Session) {
	delete(sess.Values, keyAccessToken)
	delete(sess.Values, keyUserName)
	delete(sess.Values, keyUserId)
}
