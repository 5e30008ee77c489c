package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

// MyDataStatus는 (사용자, 물건 이력) 한 건의 관심/입찰 상태를 조회합니다.
// 저장된 데이터가 없으면 빈 MyItem이 내려옵니다.
// GET /kamco/getMyDataStatus
func (c *Client) MyDataStatus(ctx context.Context, token, userID string, id models.ItemIdentity) (*models.MyItem, error) {
	query := url.Values{}
	query.Set("userId", userID)
	query.Set("cltrMnmtNo", id.CltrMnmtNo)
	query.Set("cltrHstrNo", id.CltrHstrNo)

	var res models.MyItem
	if err := c.do(ctx, http.MethodGet, "/kamco/getMyDataStatus", token, query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type MyListQuery struct {
	UserId    string
	NumOfRows int
	PageNo    int
	CltrNm    string
	SelectGbn string // "" | "favorite" | "bid"
}

// MyList는 사용자의 관심/입찰 물건 목록을 조회합니다.
// GET /kamco/getMyList
func (c *Client) MyList(ctx context.Context, token string, q MyListQuery) ([]models.MyItem, error) {
	query := url.Values{}
	query.Set("userId", q.UserId)
	query.Set("numOfRows", strconv.Itoa(q.NumOfRows))
	query.Set("pageNo", strconv.Itoa(q.PageNo))
	if q.CltrNm != "" {
		query.Set("cltrNm", q.CltrNm)
	}
	if q.SelectGbn != "" {
		query.Set("selectGbn", q.SelectGbn)
	}

	var res []models.MyItem
	if err := c.do(ctx, http.MethodGet, "/kamco/getMyList", token, query, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ModifyMyData는 관심/입찰 상태를 저장하고 갱신된 상태를 돌려받습니다.
// POST /kamco/modifyMyData
func (c *Client) ModifyMyData(ctx context.Context, token string, req models.ModifyRequest) (*models.MyItem, error) {
	var res models.MyItem
	if err := c.do(ctx, http.MethodPost, "/kamco/modifyMyData", token, nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
