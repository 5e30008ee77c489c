package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
	"github.com/youngnam81-kim/gov-bid-web/internal/middlewares"
)

type LoginRequest struct {
	UserId   string `json:"userId" form:"userId" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RegisterRequest struct {
	UserId   string `json:"userId" form:"userId" validate:"required"`
	UserName string `json:"userName" form:"userName" validate:"required"`
	Password string `json:"password" form:"password" validate:"required,min=4"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
}

type UserResponse struct {
	UserId   string `json:"userId"`
	UserName string `json:"userName"`
}

type AuthController struct {
	api       *backend.Client
	details   *logics.DetailRegistry
	validate  *validator.Validate
	expireMin int
	log       *zap.Logger
}

func NewAuthController(api *backend.Client, details *logics.DetailRegistry, expireMin int, log *zap.Logger) *AuthController {
	return &AuthController{
		api:       api,
		details:   details,
		validate:  validator.New(),
		expireMin: expireMin,
		log:       log,
	}
}

// LoginHandler는 자격 증명을 백엔드로 보내고 성공하면 세션에 기록합니다.
// POST /auth/login
func (h *AuthController) LoginHandler(c echo.Context) error {
	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return jsonError(c, http.StatusBadRequest, "요청이 올바르지 않습니다.")
	}
	if err := h.validate.Struct(req); err != nil {
		return jsonError(c, http.StatusBadRequest, "아이디와 비밀번호를 입력해주세요.")
	}

	res, err := h.api.Login(c.Request().Context(), req.UserId, req.Password)
	if err != nil {
		h.log.Warn("로그인 실패", zap.String("userId", req.UserId), zap.Error(err))
		return backendJSONError(c, err, "로그인 실패")
	}

	sess, err := middlewares.GetSessionFromContext(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}
	auth.SignIn(sess, res, h.expireMin)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		h.log.Error("세션 저장 실패", zap.Error(err))
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}

	h.log.Info("로그인 성공", zap.String("userId", res.User.UserId))
	return c.JSON(http.StatusOK, UserResponse{
		UserId:   res.User.UserId,
		UserName: res.User.UserName,
	})
}

// RegisterHandler는 회원가입 요청을 백엔드로 전달합니다.
// POST /auth/register
func (h *AuthController) RegisterHandler(c echo.Context) error {
	req := new(RegisterRequest)
	if err := c.Bind(req); err != nil {
		return jsonError(c, http.StatusBadRequest, "요청이 올바르지 않습니다.")
	}
	if err := h.validate.Struct(req); err != nil {
		return jsonError(c, http.StatusBadRequest, "아이디, 이름, 비밀번호를 확인해주세요.")
	}

	err := h.api.Register(c.Request().Context(), backend.RegisterRequest{
		UserId:   req.UserId,
		UserName: req.UserName,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		h.log.Warn("회원가입 실패", zap.String("userId", req.UserId), zap.Error(err))
		return backendJSONError(c, err, "회원가입 실패")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "회원가입이 완료되었습니다. 로그인해주세요.",
	})
}

// LogoutHandler는 세션의 자격 증명과 상세 보기 상태를 제거합니다.
// POST /auth/logout
func (h *AuthController) LogoutHandler(c echo.Context) error {
	sess, err := middlewares.GetSessionFromContext(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}
	h.details.Drop(auth.SID(sess))
	auth.SignOut(sess)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "로그아웃되었습니다."})
}

// MeHandler는 현재 로그인 사용자를 돌려줍니다.
// GET /auth/me
func (h *AuthController) MeHandler(c echo.Context) error {
	p := middlewares.GetPrincipal(c)
	if !p.SignedIn() {
		return jsonError(c, http.StatusUnauthorized, "인증되지 않음")
	}
	return c.JSON(http.StatusOK, UserResponse{UserId: p.UserID, UserName: p.UserName})
}
