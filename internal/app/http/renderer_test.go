package httpEngine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngnam81-kim/gov-bid-web/configs"
	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/controllers"
	"github.com/youngnam81-kim/gov-bid-web/internal/logics"
	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

func renderToString(t *testing.T, name string, data interface{}) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, name, data, nil))
	return buf.String()
}

func detailData(isBid bool) controllers.DetailFragmentData {
	item := models.AuctionItem{
		CltrMnmtNo: "2024-00001",
		CltrHstrNo: "1",
		CltrNm:     "테스트 아파트",
		MinBidPrc:  "50000000",
		FeeRate:    "1.5",
	}
	data := controllers.DetailFragmentData{
		DetailState: logics.DetailState{
			Open:  true,
			Board: logics.BoardBrowse,
			Item:  &item,
			IsBid: isBid,
		},
		Principal:           auth.Principal{UserID: "user-1", UserName: "홍길동", Token: "token-1"},
		EstimatedFee:        "₩750,000",
		BidConfirmTemplate:  "테스트 아파트에 {amount}원으로 입찰하시겠습니까?",
		FavoriteConfirmMsg:  "테스트 아파트을(를) 관심목록에 추가하시겠습니까?",
		LoginRequiredForBid: logics.MsgLoginRequiredBid,
	}
	if isBid {
		amount := int64(60000000)
		data.SavedBidAmount = &amount
		data.BidInput = "60,000,000"
	}
	return data
}

func TestDetailFragment_BidLockedAfterSuccess(t *testing.T) {
	html := renderToString(t, "detail.html", detailData(true))

	// Once a bid is saved the input is read-only and the action disabled.
	assert.Contains(t, html, "readonly")
	assert.Contains(t, html, "disabled")
	assert.Contains(t, html, "저장된 입찰가")
}

func TestDetailFragment_BidEditableBeforeBid(t *testing.T) {
	html := renderToString(t, "detail.html", detailData(false))

	assert.NotContains(t, html, "readonly")
	assert.NotContains(t, html, "disabled")
}

func TestDetailFragment_BidControlAttributes(t *testing.T) {
	html := renderToString(t, "detail.html", detailData(false))

	// The confirm template and the local bid checks are driven by these.
	assert.Contains(t, html, "테스트 아파트에 {amount}원으로 입찰하시겠습니까?")
	assert.Contains(t, html, `data-min-bid="50000000"`)
	assert.Contains(t, html, "입찰 금액은 최저입찰가(₩50,000,000)보다 높아야 합니다.")
}

func TestTemplates_LinksCarryBasePath(t *testing.T) {
	configs.Configs.Service.BasePath = "/gov-bid-app"
	defer func() { configs.Configs.Service.BasePath = "" }()

	html := renderToString(t, "board.html", controllers.BrowsePageData{
		Principal:  auth.Principal{},
		Items:      []models.AuctionItem{{CltrMnmtNo: "2024-00001", CltrHstrNo: "1", CltrNm: "테스트"}},
		TotalCount: 95,
		Pagination: logics.Paginate(95, logics.RowsPerPage, 1),
	})

	assert.Contains(t, html, `href="/gov-bid-app/bidBoard"`)
	assert.Contains(t, html, `href="/gov-bid-app/?pageNo=`)
	assert.Contains(t, html, `data-base="/gov-bid-app"`)
	assert.False(t, strings.Contains(html, `href="/?pageNo=`))
}
