package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"

	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
)

func newSession() *sessions.Session {
	sess := sessions.NewSession(sessions.NewCookieStore([]byte("test")), SessionName)
	sess.Options = &sessions.Options{Path: "/", MaxAge: 3600}
	return sess
}

func TestSignInAndFromSession(t *testing.T) {
	sess := newSession()
	SignIn(sess, &backend.LoginResponse{
		Token: "token-1",
		User:  backend.LoginUser{UserId: "user-1", UserName: "홍길동"},
	}, 60)

	p := FromSession(sess)
	assert.True(t, p.SignedIn())
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "홍길동", p.UserName)
	assert.Equal(t, "token-1", p.Token)
}

func TestSignIn_EmptyUserNameFallback(t *testing.T) {
	sess := newSession()
	SignIn(sess, &backend.LoginResponse{
		Token: "token-1",
		User:  backend.LoginUser{UserId: "user-1"},
	}, 60)

	assert.Equal(t, "null", FromSession(sess).UserName)
}

func TestSignIn_CookieLifetimeCappedByToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(10 * time.Minute).Unix(),
	})

	sess := newSession()
	SignIn(sess, &backend.LoginResponse{
		Token: token,
		User:  backend.LoginUser{UserId: "user-1", UserName: "홍길동"},
	}, 60)

	assert.LessOrEqual(t, sess.Options.MaxAge, 10*60)
	assert.Greater(t, sess.Options.MaxAge, 9*60)
}

func TestSignOut(t *testing.T) {
	sess := newSession()
	SignIn(sess, &backend.LoginResponse{
		Token: "token-1",
		User:  backend.LoginUser{UserId: "user-1", UserName: "홍길동"},
	}, 60)
	sid := SID(sess)

	SignOut(sess)
	p := FromSession(sess)
	assert.False(t, p.SignedIn())
	assert.Empty(t, p.Token)

	// The session id survives sign out.
	assert.Equal(t, sid, SID(sess))
}

func TestSID_Stable(t *testing.T) {
	sess := newSession()
	sid := SID(sess)
	assert.NotEmpty(t, sid)
	assert.Equal(t, sid, SID(sess))
}
