package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

type OnbidListQuery struct {
	NumOfRows  int
	PageNo     int
	CltrMnmtNo string
	CltrNm     string
}

type OnbidListResult struct {
	TotalCount int                  `json:"totalCount"`
	Items      []models.AuctionItem `json:"items"`
}

// OnbidList는 공매 물건 목록(및 동일 관리번호의 이력 전체)을 조회합니다.
// GET /onbid/list
func (c *Client) OnbidList(ctx context.Context, token string, q OnbidListQuery) (*OnbidListResult, error) {
	query := url.Values{}
	query.Set("numOfRows", strconv.Itoa(q.NumOfRows))
	query.Set("pageNo", strconv.Itoa(q.PageNo))
	if q.CltrMnmtNo != "" {
		query.Set("cltrMnmtNo", q.CltrMnmtNo)
	}
	if q.CltrNm != "" {
		query.Set("cltrNm", q.CltrNm)
	}

	var res OnbidListResult
	if err := c.do(ctx, http.MethodGet, "/onbid/list", token, query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
