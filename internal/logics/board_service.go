package logics

import (
	"context"

	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

// RowsPerPage는 목록 화면의 페이지당 행 수입니다. 고정값입니다.
const RowsPerPage = 10

// BoardFetcher는 목록 화면이 사용하는 백엔드 호출입니다.
type BoardFetcher interface {
	OnbidList(ctx context.Context, token string, q backend.OnbidListQuery) (*backend.OnbidListResult, error)
	MyList(ctx context.Context, token string, q backend.MyListQuery) ([]models.MyItem, error)
}

// BoardService는 두 목록 화면(전체 조회, 나의 물건)의 페이지 조회를
// 담당합니다. 정렬은 받아온 페이지에 대해서만 클라이언트 측에서 합니다.
type BoardService struct {
	api BoardFetcher
	log *zap.Logger
}

func NewBoardService(api BoardFetcher, log *zap.Logger) *BoardService {
	return &BoardService{api: api, log: log}
}

// BrowsePage는 전체 공매 물건 목록 한 페이지입니다.
type BrowsePage struct {
	Items      []models.AuctionItem
	TotalCount int
	PageNo     int
}

// MyPage는 나의 물건 목록 한 페이지입니다.
type MyPage struct {
	Items      []models.MyItem
	TotalCount int
	PageNo     int
}

// Browse는 온비드 목록 한 페이지를 조회합니다.
func (s *BoardService) Browse(ctx context.Context, token string, pageNo int, cltrNm string) (*BrowsePage, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	res, err := s.api.OnbidList(ctx, token, backend.OnbidListQuery{
		NumOfRows: RowsPerPage,
		PageNo:    pageNo,
		CltrNm:    cltrNm,
	})
	if err != nil {
		s.log.Error("온비드 목록 조회 실패", zap.Int("pageNo", pageNo), zap.Error(err))
		return nil, err
	}
	return &BrowsePage{Items: res.Items, TotalCount: res.TotalCount, PageNo: pageNo}, nil
}

// My는 사용자의 관심/입찰 목록 한 페이지를 조회합니다.
// 총 건수는 백엔드가 내려주지 않으므로 받은 행 수를 사용합니다.
func (s *BoardService) My(ctx context.Context, token string, q backend.MyListQuery) (*MyPage, error) {
	if q.PageNo < 1 {
		q.PageNo = 1
	}
	if q.NumOfRows <= 0 {
		q.NumOfRows = RowsPerPage
	}
	items, err := s.api.MyList(ctx, token, q)
	if err != nil {
		s.log.Error("나의 물건 목록 조회 실패", zap.String("userId", q.UserId), zap.Error(err))
		return nil, err
	}
	return &MyPage{Items: items, TotalCount: len(items), PageNo: q.PageNo}, nil
}
