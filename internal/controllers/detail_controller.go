package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/format"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
	"github.com/youngnam81-kim/gov-bid-web/internal/middlewares"
	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

type DetailController struct {
	details *logics.DetailRegistry
	log     *zap.Logger
}

func NewDetailController(details *logics.DetailRegistry, log *zap.Logger) *DetailController {
	return &DetailController{details: details, log: log}
}

// DetailFragmentData는 상세 보기 조각 템플릿의 데이터입니다.
type DetailFragmentData struct {
	logics.DetailState
	Principal           auth.Principal
	EstimatedFee        string
	BidConfirmTemplate  string
	FavoriteConfirmMsg  string
	LoginRequiredForBid string
}

// view는 현재 세션의 상세 보기를 꺼냅니다. 세션 아이디가 새로 발급되면
// 쿠키에 반영되도록 저장합니다.
func (h *DetailController) view(c echo.Context) (*logics.DetailView, error) {
	sess, err := middlewares.GetSessionFromContext(c)
	if err != nil {
		return nil, err
	}
	sid := auth.SID(sess)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil, err
	}
	return h.details.Get(sid), nil
}

func (h *DetailController) renderFragment(c echo.Context, v *logics.DetailView) error {
	st := v.State()
	data := DetailFragmentData{
		DetailState:         st,
		Principal:           middlewares.GetPrincipal(c),
		BidConfirmTemplate:  v.BidConfirmTemplate(),
		FavoriteConfirmMsg:  v.FavoriteConfirmMessage(),
		LoginRequiredForBid: logics.MsgLoginRequiredBid,
	}
	if st.Item != nil {
		data.EstimatedFee = format.EstimatedFee(st.Item.MinBidPrc, st.Item.FeeRate)
	}
	return c.Render(http.StatusOK, "detail.html", data)
}

// OpenHandler는 목록에서 선택한 물건으로 상세 보기를 엽니다. 본문에는
// 호출자가 이미 가진 물건 필드가 담기며, 화면 구분은 쿼리로 받습니다.
// POST /detail/open?board=bidBoard
func (h *DetailController) OpenHandler(c echo.Context) error {
	item := new(models.AuctionItem)
	if err := c.Bind(item); err != nil || !item.Identity().Valid() {
		return jsonError(c, http.StatusBadRequest, "물건 정보가 올바르지 않습니다.")
	}

	board := logics.BoardKind(c.QueryParam("board"))
	if board != logics.BoardMy {
		board = logics.BoardBrowse
	}

	v, err := h.view(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}
	v.Open(item, board)

	if err := v.Sync(c.Request().Context(), middlewares.GetPrincipal(c)); err != nil {
		if clearCredentialsOn401(c, err) {
			return jsonError(c, http.StatusUnauthorized, "로그인이 만료되었습니다. 다시 로그인해주세요.")
		}
	}
	return h.renderFragment(c, v)
}

// RefreshHandler는 열린 상세 보기를 다시 그립니다. 조회 완료 마커가
// 남아 있으면 네트워크 호출 없이 현재 상태만 렌더링됩니다.
// GET /detail
func (h *DetailController) RefreshHandler(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}
	if err := v.Sync(c.Request().Context(), middlewares.GetPrincipal(c)); err != nil {
		if clearCredentialsOn401(c, err) {
			return jsonError(c, http.StatusUnauthorized, "로그인이 만료되었습니다. 다시 로그인해주세요.")
		}
	}
	return h.renderFragment(c, v)
}

// CloseHandler는 상세 보기를 닫고 상태를 비웁니다.
// POST /detail/close
func (h *DetailController) CloseHandler(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}
	v.Close()
	return c.NoContent(http.StatusNoContent)
}

type BidRequest struct {
	BidAmount string `json:"bidAmount" form:"bidAmount"`
}

type actionResponse struct {
	Message  string `json:"message"`
	Favorite bool   `json:"favorite,omitempty"`
	Refresh  bool   `json:"refresh"`
}

// BidHandler는 입찰을 저장합니다. 확인 대화상자는 화면 쪽에서 끝났다고
// 가정하며, 검증 실패는 네트워크 호출 없이 400으로 돌아갑니다.
// POST /detail/bid
func (h *DetailController) BidHandler(c echo.Context) error {
	req := new(BidRequest)
	if err := c.Bind(req); err != nil {
		return jsonError(c, http.StatusBadRequest, "요청이 올바르지 않습니다.")
	}

	v, err := h.view(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}

	refresh := false
	v.SetRefreshHook(func() { refresh = true })

	if err := v.PlaceBid(c.Request().Context(), middlewares.GetPrincipal(c), req.BidAmount); err != nil {
		return h.actionError(c, err, logics.MsgBidError)
	}
	return c.JSON(http.StatusOK, actionResponse{Message: logics.MsgBidSuccess, Refresh: refresh})
}

// FavoriteHandler는 관심목록 플래그를 토글합니다.
// POST /detail/favorite
func (h *DetailController) FavoriteHandler(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, "세션 처리 중 오류가 발생했습니다.")
	}

	refresh := false
	v.SetRefreshHook(func() { refresh = true })

	if err := v.ToggleFavorite(c.Request().Context(), middlewares.GetPrincipal(c)); err != nil {
		return h.actionError(c, err, logics.MsgFavoriteError)
	}
	return c.JSON(http.StatusOK, actionResponse{
		Favorite: v.State().IsFavorite,
		Refresh:  refresh,
	})
}

func (h *DetailController) actionError(c echo.Context, err error, fallback string) error {
	var vErr *logics.ValidationError
	if errors.As(err, &vErr) {
		return jsonError(c, http.StatusBadRequest, vErr.Error())
	}
	if clearCredentialsOn401(c, err) {
		return jsonError(c, http.StatusUnauthorized, "로그인이 만료되었습니다. 다시 로그인해주세요.")
	}
	var aErr *logics.ActionError
	if errors.As(err, &aErr) {
		return jsonError(c, http.StatusInternalServerError, aErr.Error())
	}
	return jsonError(c, http.StatusInternalServerError, fallback)
}
