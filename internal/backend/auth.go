package backend

import (
	"context"
	"net/http"
)

type LoginUser struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

type RegisterRequest struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// Login은 자격 증명을 검증하고 JWT 토큰과 사용자 정보를 받아옵니다.
// POST /auth/login
func (c *Client) Login(ctx context.Context, userID, password string) (*LoginResponse, error) {
	body := map[string]string{
		"userId":   userID,
		"password": password,
	}
	var res LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register는 새 계정을 생성합니다.
// POST /user/register
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/user/register", "", nil, req, nil)
}
