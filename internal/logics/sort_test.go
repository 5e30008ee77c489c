package logics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

func prices(items []models.AuctionItem) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].MinBidPrc
	}
	return out
}

func TestSortAuctionItems_Numeric(t *testing.T) {
	items := []models.AuctionItem{
		{MinBidPrc: "30000000"},
		{MinBidPrc: "5000000"},
		{MinBidPrc: "100000000"},
	}

	SortAuctionItems(items, "minBidPrc", SortAsc)
	assert.Equal(t, []string{"5000000", "30000000", "100000000"}, prices(items))

	SortAuctionItems(items, "minBidPrc", SortDesc)
	assert.Equal(t, []string{"100000000", "30000000", "5000000"}, prices(items))
}

func TestSortAuctionItems_EmptyValuesAlwaysLast(t *testing.T) {
	items := []models.AuctionItem{
		{MinBidPrc: ""},
		{MinBidPrc: "100"},
		{MinBidPrc: "50"},
	}

	SortAuctionItems(items, "minBidPrc", SortAsc)
	assert.Equal(t, []string{"50", "100", ""}, prices(items))

	// Direction does not move empty values to the front.
	SortAuctionItems(items, "minBidPrc", SortDesc)
	assert.Equal(t, []string{"100", "50", ""}, prices(items))
}

func TestSortAuctionItems_DatetimeChronological(t *testing.T) {
	items := []models.AuctionItem{
		{PbctBegnDtm: "20251201090000"},
		{PbctBegnDtm: "20250301090000"},
		{PbctBegnDtm: "20250915120000"},
	}

	SortAuctionItems(items, "pbctBegnDtm", SortAsc)
	assert.Equal(t, "20250301090000", items[0].PbctBegnDtm)
	assert.Equal(t, "20250915120000", items[1].PbctBegnDtm)
	assert.Equal(t, "20251201090000", items[2].PbctBegnDtm)

	SortAuctionItems(items, "pbctBegnDtm", SortDesc)
	assert.Equal(t, "20251201090000", items[0].PbctBegnDtm)
}

func TestSortAuctionItems_UnparseableDatetimeKeepsOrder(t *testing.T) {
	items := []models.AuctionItem{
		{CltrMnmtNo: "a", PbctBegnDtm: "미정"},
		{CltrMnmtNo: "b", PbctBegnDtm: "20250301090000"},
	}
	SortAuctionItems(items, "pbctBegnDtm", SortAsc)
	assert.Equal(t, "a", items[0].CltrMnmtNo)
	assert.Equal(t, "b", items[1].CltrMnmtNo)
}

func TestSortAuctionItems_LocaleCompare(t *testing.T) {
	items := []models.AuctionItem{
		{CltrNm: "서울 아파트"},
		{CltrNm: "부산 상가"},
		{CltrNm: "대전 토지"},
	}
	SortAuctionItems(items, "cltrNm", SortAsc)
	assert.Equal(t, "대전 토지", items[0].CltrNm)
	assert.Equal(t, "부산 상가", items[1].CltrNm)
	assert.Equal(t, "서울 아파트", items[2].CltrNm)
}

func TestSortAuctionItems_NoKeyLeavesOrder(t *testing.T) {
	items := []models.AuctionItem{
		{CltrNm: "나"},
		{CltrNm: "가"},
	}
	SortAuctionItems(items, "", SortAsc)
	assert.Equal(t, "나", items[0].CltrNm)
}

func TestSortMyItems_BidAmount(t *testing.T) {
	items := []models.MyItem{
		{BidAmount: "200"},
		{BidAmount: ""},
		{BidAmount: "100"},
	}
	SortMyItems(items, "bidAmount", SortDesc)
	assert.Equal(t, "200", items[0].BidAmount)
	assert.Equal(t, "100", items[1].BidAmount)
	assert.Equal(t, "", items[2].BidAmount)
}

func TestSortState(t *testing.T) {
	s := SortState{}
	s.Toggle("minBidPrc")
	assert.Equal(t, SortState{Key: "minBidPrc", Direction: SortAsc}, s)

	s.Toggle("minBidPrc")
	assert.Equal(t, SortDesc, s.Direction)

	s.Toggle("cltrNm")
	assert.Equal(t, SortState{Key: "cltrNm", Direction: SortAsc}, s)

	assert.Equal(t, SortDesc, s.Next("cltrNm"))
	assert.Equal(t, SortAsc, s.Next("minBidPrc"))
}
