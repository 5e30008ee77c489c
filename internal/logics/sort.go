package logics

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/youngnam81-kim/gov-bid-web/internal/format"
	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState는 목록 화면의 정렬 상태입니다. 같은 컬럼을 다시 누르면
// 방향이 뒤집히고, 다른 컬럼을 누르면 오름차순부터 시작합니다.
type SortState struct {
	Key       string
	Direction SortDirection
}

func (s *SortState) Toggle(key string) {
	if key == "" {
		return
	}
	if s.Key == key {
		if s.Direction == SortAsc {
			s.Direction = SortDesc
		} else {
			s.Direction = SortAsc
		}
		return
	}
	s.Key = key
	s.Direction = SortAsc
}

// Next는 해당 컬럼을 눌렀을 때 적용될 방향을 돌려줍니다. 템플릿에서
// 정렬 링크를 만들 때 사용합니다.
func (s SortState) Next(key string) SortDirection {
	if s.Key == key && s.Direction == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// 한국어 로케일, 대소문자 무시 비교기.
var collator = collate.New(language.Korean, collate.IgnoreCase)

// compareValues는 정렬 비교 정책입니다. 우선순위:
// 빈 값은 방향과 무관하게 항상 뒤 → 둘 다 숫자면 숫자 비교 →
// 일시(Dtm) 컬럼은 날짜 비교(한쪽이라도 해석 불가면 순서 유지) →
// 그 외는 대소문자 구분 없는 로케일 비교.
func compareValues(a, b, key string, dir SortDirection) int {
	if a == "" && b == "" {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}

	var cmp int
	na, aerr := strconv.ParseFloat(a, 64)
	nb, berr := strconv.ParseFloat(b, 64)
	switch {
	case aerr == nil && berr == nil:
		switch {
		case na < nb:
			cmp = -1
		case na > nb:
			cmp = 1
		}
	case strings.Contains(key, "Dtm"):
		ta, aerr := format.ParseDateTime(a)
		tb, berr := format.ParseDateTime(b)
		if aerr != nil || berr != nil {
			return 0
		}
		switch {
		case ta.Before(tb):
			cmp = -1
		case ta.After(tb):
			cmp = 1
		}
	default:
		cmp = collator.CompareString(strings.ToLower(a), strings.ToLower(b))
	}

	if dir == SortDesc {
		return -cmp
	}
	return cmp
}

// SortAuctionItems는 받아온 페이지의 물건 목록을 정렬합니다.
func SortAuctionItems(items []models.AuctionItem, key string, dir SortDirection) {
	if key == "" {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return compareValues(AuctionItemField(&items[i], key), AuctionItemField(&items[j], key), key, dir) < 0
	})
}

// SortMyItems는 나의 물건 목록을 정렬합니다.
func SortMyItems(items []models.MyItem, key string, dir SortDirection) {
	if key == "" {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return compareValues(MyItemField(&items[i], key), MyItemField(&items[j], key), key, dir) < 0
	})
}

// AuctionItemField는 컬럼 키로 물건 필드 값을 꺼냅니다.
func AuctionItemField(item *models.AuctionItem, key string) string {
	switch key {
	case "cltrMnmtNo":
		return item.CltrMnmtNo
	case "cltrHstrNo":
		return item.CltrHstrNo
	case "ctgrFullNm":
		return item.CtgrFullNm
	case "cltrNm":
		return item.CltrNm
	case "minBidPrc":
		return item.MinBidPrc
	case "apslAsesAvgAmt":
		return item.ApslAsesAvgAmt
	case "feeRate":
		return item.FeeRate
	case "pbctBegnDtm":
		return item.PbctBegnDtm
	case "pbctClsDtm":
		return item.PbctClsDtm
	case "pbctCltrStatNm":
		return item.PbctCltrStatNm
	case "uscbdCnt":
		return item.UscbdCnt
	case "iqryCnt":
		return item.IqryCnt
	default:
		return ""
	}
}

// MyItemField는 컬럼 키로 나의 물건 필드 값을 꺼냅니다.
func MyItemField(item *models.MyItem, key string) string {
	switch key {
	case "cltrMnmtNo":
		return item.CltrMnmtNo
	case "cltrHstrNo":
		return item.CltrHstrNo
	case "ctgrFullNm":
		return item.CtgrFullNm
	case "cltrNm":
		return item.CltrNm
	case "feeRate":
		return item.FeeRate
	case "pbctBegnDtm":
		return item.PbctBegnDtm
	case "pbctClsDtm":
		return item.PbctClsDtm
	case "bidAmount":
		return item.BidAmount
	default:
		return ""
	}
}
