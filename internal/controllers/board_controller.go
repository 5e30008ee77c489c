package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/configs"
	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
	"github.com/youngnam81-kim/gov-bid-web/internal/middlewares"
	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

type BoardController struct {
	boards *logics.BoardService
	log    *zap.Logger
}

func NewBoardController(boards *logics.BoardService, log *zap.Logger) *BoardController {
	return &BoardController{boards: boards, log: log}
}

// BrowsePageData는 전체 조회 화면의 템플릿 데이터입니다.
type BrowsePageData struct {
	Principal  auth.Principal
	Items      []models.AuctionItem
	TotalCount int
	CltrNm     string
	Sort       logics.SortState
	Pagination logics.Pagination
	Error      string
}

// MyPageData는 나의 물건 화면의 템플릿 데이터입니다.
type MyPageData struct {
	Principal  auth.Principal
	Items      []models.MyItem
	TotalCount int
	CltrNm     string
	SelectGbn  string
	Sort       logics.SortState
	Pagination logics.Pagination
	Error      string
}

func pageNoParam(c echo.Context) int {
	pageNo, err := strconv.Atoi(c.QueryParam("pageNo"))
	if err != nil || pageNo < 1 {
		return 1
	}
	return pageNo
}

func sortParams(c echo.Context) logics.SortState {
	s := logics.SortState{
		Key:       c.QueryParam("sortKey"),
		Direction: logics.SortDirection(c.QueryParam("sortDir")),
	}
	if s.Direction != logics.SortDesc {
		s.Direction = logics.SortAsc
	}
	return s
}

// BrowseHandler는 전체 공매 물건 목록 화면입니다.
// GET /
func (h *BoardController) BrowseHandler(c echo.Context) error {
	p := middlewares.GetPrincipal(c)
	pageNo := pageNoParam(c)
	cltrNm := c.QueryParam("cltrNm")
	sortState := sortParams(c)

	data := BrowsePageData{
		Principal: p,
		CltrNm:    cltrNm,
		Sort:      sortState,
	}

	page, err := h.boards.Browse(c.Request().Context(), p.Token, pageNo, cltrNm)
	if err != nil {
		if clearCredentialsOn401(c, err) {
			return c.Redirect(http.StatusFound, configs.Configs.Service.BasePath+"/")
		}
		// 목록 조회 실패는 화면 상단 배너로만 알리고 페이지는 유지합니다.
		data.Error = "공매 물건 데이터를 불러오는데 실패했습니다. 잠시 후 다시 시도해주세요."
		return c.Render(http.StatusOK, "board.html", data)
	}

	logics.SortAuctionItems(page.Items, sortState.Key, sortState.Direction)
	data.Items = page.Items
	data.TotalCount = page.TotalCount
	data.Pagination = logics.Paginate(page.TotalCount, logics.RowsPerPage, page.PageNo)
	return c.Render(http.StatusOK, "board.html", data)
}

// MyBoardHandler는 나의 관심/입찰 물건 화면입니다. 로그인이 필요합니다.
// GET /bidBoard
func (h *BoardController) MyBoardHandler(c echo.Context) error {
	p := middlewares.GetPrincipal(c)
	pageNo := pageNoParam(c)
	cltrNm := c.QueryParam("cltrNm")
	selectGbn := c.QueryParam("selectGbn")
	sortState := sortParams(c)

	data := MyPageData{
		Principal: p,
		CltrNm:    cltrNm,
		SelectGbn: selectGbn,
		Sort:      sortState,
	}

	page, err := h.boards.My(c.Request().Context(), p.Token, backend.MyListQuery{
		UserId:    p.UserID,
		NumOfRows: logics.RowsPerPage,
		PageNo:    pageNo,
		CltrNm:    cltrNm,
		SelectGbn: selectGbn,
	})
	if err != nil {
		if clearCredentialsOn401(c, err) {
			return c.Redirect(http.StatusFound, configs.Configs.Service.BasePath+"/")
		}
		data.Error = "나의 물건 데이터를 불러오는데 실패했습니다. 잠시 후 다시 시도해주세요."
		return c.Render(http.StatusOK, "bidboard.html", data)
	}

	logics.SortMyItems(page.Items, sortState.Key, sortState.Direction)
	data.Items = page.Items
	data.TotalCount = page.TotalCount
	data.Pagination = logics.Paginate(page.TotalCount, logics.RowsPerPage, page.PageNo)
	return c.Render(http.StatusOK, "bidboard.html", data)
}
