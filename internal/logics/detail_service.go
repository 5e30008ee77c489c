package logics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/internal/auth"
	"github.com/youngnam81-kim/gov-bid-web/internal/backend"
	"github.com/youngnam81-kim/gov-bid-web/internal/format"
	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

// BoardKind는 상세 보기가 열린 화면 구분입니다. 나의 물건 화면에서만
// 온비드 재조회와 이력 표시가 동작합니다.
type BoardKind string

const (
	BoardBrowse BoardKind = "apiBoard"
	BoardMy     BoardKind = "bidBoard"
)

// historyPageSize는 이력 재조회 시 요청하는 행 수입니다.
const historyPageSize = 10

// DetailFetcher는 상세 보기가 사용하는 백엔드 호출입니다.
type DetailFetcher interface {
	MyDataStatus(ctx context.Context, token, userID string, id models.ItemIdentity) (*models.MyItem, error)
	OnbidList(ctx context.Context, token string, q backend.OnbidListQuery) (*backend.OnbidListResult, error)
	ModifyMyData(ctx context.Context, token string, req models.ModifyRequest) (*models.MyItem, error)
}

// DetailView는 물건 상세 보기 한 개의 상태입니다. 세션마다 하나씩
// 유지되며, 세 가지 데이터 소스(호출자가 넘긴 물건, 사용자별 상태 조회,
// 온비드 재조회)를 하나의 화면 상태로 합칩니다.
//
// 불변 조건: (물건관리번호, 물건이력번호) 쌍이 바뀌면 어떤 조회도 일어나기
// 전에 입력값·플래그·조회 완료 마커가 전부 초기화됩니다. 각 조회는 열림
// 수명주기 안에서 물건당 한 번만 일어납니다.
type DetailView struct {
	mu  sync.Mutex
	api DetailFetcher
	log *zap.Logger

	open  bool
	board BoardKind

	current        *models.AuctionItem
	bidInput       string
	savedBidAmount *int64
	isFavorite     bool
	isBid          bool
	history        []models.AuctionItem

	// 조회 완료 마커. 물건이 바뀌거나 닫힐 때만 리셋됩니다.
	fetchedMyData      bool
	fetchedAuctionData bool

	loadingMyData      bool
	loadingAuctionData bool

	// onRefresh는 나의 물건 화면에서 저장 성공 후 목록 재조회를 알립니다.
	onRefresh func()
}

func NewDetailView(api DetailFetcher, log *zap.Logger) *DetailView {
	return &DetailView{api: api, log: log}
}

// SetRefreshHook은 저장 성공 시 호출될 콜백을 설정합니다.
func (v *DetailView) SetRefreshHook(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onRefresh = fn
}

// Open은 상세 보기를 연다. 넘어온 물건의 식별자가 현재 들고 있는 것과
// 다르면(또는 아무것도 없으면) 전체 상태를 초기화한 뒤에 연다.
func (v *DetailView) Open(item *models.AuctionItem, board BoardKind) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.open = true
	v.board = board
	if item == nil {
		return
	}
	if v.current == nil || !v.current.SameIdentity(item.Identity()) {
		v.resetLocked(item)
	}
}

// Close는 상세 보기를 닫고 모든 상태와 마커를 비웁니다.
// 같은 물건으로 다시 열어도 조회가 새로 일어납니다.
func (v *DetailView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open = false
	v.resetLocked(nil)
}

// resetLocked: 표시 물건 교체와 동시에 입력·플래그·마커 전부 초기화.
// 반드시 식별자에 의존하는 동작보다 먼저 수행되어야 합니다.
func (v *DetailView) resetLocked(item *models.AuctionItem) {
	v.current = item
	v.bidInput = ""
	v.savedBidAmount = nil
	v.isFavorite = false
	v.isBid = false
	v.history = nil
	v.fetchedMyData = false
	v.fetchedAuctionData = false
	v.loadingMyData = true
	v.loadingAuctionData = false
}

// Sync는 아직 수행되지 않은 조회를 실행합니다. 두 조회는 독립적으로
// 동시에 나가며, 완료 시점에 식별자가 그대로일 때만 결과를 반영합니다.
// 401이 발생하면 이를 돌려주어 호출자가 세션을 비우게 합니다.
func (v *DetailView) Sync(ctx context.Context, p auth.Principal) error {
	v.mu.Lock()
	if !v.open || v.current == nil || !v.current.Identity().Valid() {
		v.mu.Unlock()
		return nil
	}
	id := v.current.Identity()
	name := v.current.CltrNm

	needMyData := !v.fetchedMyData
	needAuction := v.board == BoardMy && !v.fetchedAuctionData
	if v.board != BoardMy {
		// 이력 조회가 적용되지 않는 화면에서는 이력을 강제로 비웁니다.
		v.history = nil
		v.loadingAuctionData = false
	}
	if needMyData {
		v.loadingMyData = true
	}
	if needAuction {
		v.loadingAuctionData = true
	}
	v.mu.Unlock()

	var wg sync.WaitGroup
	var myErr, auctionErr error

	if needMyData {
		wg.Add(1)
		go func() {
			defer wg.Done()
			myErr = v.fetchMyData(ctx, p, id)
		}()
	}
	if needAuction {
		wg.Add(1)
		go func() {
			defer wg.Done()
			auctionErr = v.fetchAuctionData(ctx, p.Token, id, name)
		}()
	}
	wg.Wait()

	if errors.Is(myErr, backend.ErrUnauthorized) || errors.Is(auctionErr, backend.ErrUnauthorized) {
		return backend.ErrUnauthorized
	}
	return nil
}

// fetchMyData는 사용자별 관심/입찰 상태를 한 번 조회합니다.
// 실패 시 플래그를 미정 상태로 두지 않고 기본값으로 되돌립니다.
func (v *DetailView) fetchMyData(ctx context.Context, p auth.Principal, id models.ItemIdentity) error {
	if !p.SignedIn() {
		v.mu.Lock()
		if v.open && v.current != nil && v.current.SameIdentity(id) {
			v.loadingMyData = false
		}
		v.mu.Unlock()
		return nil
	}

	status, err := v.api.MyDataStatus(ctx, p.Token, p.UserID, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	// 조회가 나가 있는 동안 다른 물건으로 바뀌었으면 결과를 버립니다.
	// 로딩 플래그도 이미 새 물건의 것이므로 건드리지 않습니다.
	if !v.open || v.current == nil || !v.current.SameIdentity(id) {
		return nil
	}
	v.loadingMyData = false
	v.fetchedMyData = true

	if err != nil {
		v.log.Error("사용자별 물건 데이터 로드 중 오류 발생", zap.Error(err),
			zap.String("cltrMnmtNo", id.CltrMnmtNo), zap.String("cltrHstrNo", id.CltrHstrNo))
		v.isFavorite = false
		v.isBid = false
		v.savedBidAmount = nil
		v.bidInput = ""
		return err
	}

	v.isFavorite = status.Favorite()
	v.isBid = status.Bid()
	if status.BidAmount != "" {
		if amount, perr := strconv.ParseInt(status.BidAmount, 10, 64); perr == nil {
			v.savedBidAmount = &amount
			v.bidInput = format.BidAmountInput(status.BidAmount)
			return nil
		}
	}
	v.savedBidAmount = nil
	v.bidInput = ""
	return nil
}

// fetchAuctionData는 온비드에서 최신 물건 정보와 이력을 한 번 조회합니다.
// 조회 결과에서 같은 식별자를 찾으면 표시 물건을 최신 데이터로 교체합니다.
func (v *DetailView) fetchAuctionData(ctx context.Context, token string, id models.ItemIdentity, name string) error {
	res, err := v.api.OnbidList(ctx, token, backend.OnbidListQuery{
		NumOfRows:  historyPageSize,
		PageNo:     1,
		CltrMnmtNo: id.CltrMnmtNo,
		CltrNm:     name,
	})

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.open || v.current == nil || !v.current.SameIdentity(id) {
		return nil
	}
	v.loadingAuctionData = false
	v.fetchedAuctionData = true

	if err != nil {
		v.log.Error("온비드 데이터 로드 중 오류 발생", zap.Error(err),
			zap.String("cltrMnmtNo", id.CltrMnmtNo))
		return err
	}

	items := res.Items
	SortHistoryDesc(items)
	v.history = items

	for i := range items {
		if items[i].SameIdentity(id) {
			fresh := items[i]
			v.current = &fresh
			break
		}
	}
	return nil
}

// SortHistoryDesc는 물건이력번호 내림차순으로 정렬합니다. 양쪽 모두
// 정수로 해석되면 숫자 비교, 아니면 문자열 내림차순 비교를 사용합니다.
func SortHistoryDesc(items []models.AuctionItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, aerr := strconv.Atoi(items[i].CltrHstrNo)
		b, berr := strconv.Atoi(items[j].CltrHstrNo)
		if aerr != nil || berr != nil {
			return strings.Compare(items[i].CltrHstrNo, items[j].CltrHstrNo) > 0
		}
		return a > b
	})
}

// PlaceBid는 입찰을 저장합니다. 검사 순서와 각 실패의 안내 문구는
// 고정이며, 검사에 걸리면 네트워크 호출 없이 바로 돌아갑니다.
func (v *DetailView) PlaceBid(ctx context.Context, p auth.Principal, input string) error {
	if !p.SignedIn() {
		return ErrLoginRequiredBid
	}

	amount, err := format.ParseBidAmount(input)
	if err != nil || amount <= 0 {
		return ErrInvalidBidAmount
	}

	v.mu.Lock()
	if v.current == nil {
		v.mu.Unlock()
		return ErrInvalidBidAmount
	}
	id := v.current.Identity()
	minBid := format.ParsePrice(v.current.MinBidPrc)
	req := v.modifyRequestLocked(p.UserID)
	board := v.board
	v.mu.Unlock()

	if amount < minBid {
		return &ValidationError{
			msg: fmt.Sprintf("입찰 금액은 최저입찰가(%s)보다 높아야 합니다.", format.CurrencyInt(minBid)),
		}
	}

	req.IsBid = models.FlagYes
	req.BidAmount = &amount
	if _, err := v.api.ModifyMyData(ctx, p.Token, req); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return err
		}
		v.log.Error("입찰 처리 중 오류 발생", zap.Error(err),
			zap.String("cltrMnmtNo", id.CltrMnmtNo))
		return &ActionError{msg: MsgBidError, err: err}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current != nil && v.current.SameIdentity(id) {
		v.savedBidAmount = &amount
		v.bidInput = format.BidAmountInput(strconv.FormatInt(amount, 10))
		v.isBid = true
	}
	if board == BoardMy && v.onRefresh != nil {
		v.onRefresh()
	}
	return nil
}

// ToggleFavorite는 관심목록 플래그를 토글합니다. 저장 성공 시에만
// 로컬 플래그가 바뀝니다.
func (v *DetailView) ToggleFavorite(ctx context.Context, p auth.Principal) error {
	if !p.SignedIn() {
		return ErrLoginRequiredFavorite
	}

	v.mu.Lock()
	if v.current == nil {
		v.mu.Unlock()
		return &ActionError{msg: MsgFavoriteError}
	}
	id := v.current.Identity()
	newFavorite := !v.isFavorite
	req := v.modifyRequestLocked(p.UserID)
	req.IsFavorite = yn(newFavorite)
	req.IsBid = yn(v.isBid)
	req.BidAmount = v.savedBidAmount
	board := v.board
	v.mu.Unlock()

	if _, err := v.api.ModifyMyData(ctx, p.Token, req); err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return err
		}
		v.log.Error("관심목록 처리 중 오류 발생", zap.Error(err),
			zap.String("cltrMnmtNo", id.CltrMnmtNo))
		return &ActionError{msg: MsgFavoriteError, err: err}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current != nil && v.current.SameIdentity(id) {
		v.isFavorite = newFavorite
	}
	if board == BoardMy && v.onRefresh != nil {
		v.onRefresh()
	}
	return nil
}

// modifyRequestLocked는 현재 물건의 식별자와 서술 필드를 담은
// 저장 요청 골격을 만듭니다. 호출자는 mu를 쥐고 있어야 합니다.
func (v *DetailView) modifyRequestLocked(userID string) models.ModifyRequest {
	return models.ModifyRequest{
		UserId:      userID,
		CltrMnmtNo:  v.current.CltrMnmtNo,
		CltrHstrNo:  v.current.CltrHstrNo,
		CtgrFullNm:  v.current.CtgrFullNm,
		CltrNm:      v.current.CltrNm,
		PbctBegnDtm: v.current.PbctBegnDtm,
		PbctClsDtm:  v.current.PbctClsDtm,
		FeeRate:     v.current.FeeRate,
	}
}

func yn(b bool) string {
	if b {
		return models.FlagYes
	}
	return models.FlagNo
}

// BidConfirmTemplate는 입찰 확인 대화상자 문구의 틀입니다. 금액은 확인
// 시점에 정해지므로 {amount} 자리표시자로 두고 화면 쪽에서 채웁니다.
func (v *DetailView) BidConfirmTemplate() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	name := "물건"
	if v.current != nil && v.current.CltrNm != "" {
		name = v.current.CltrNm
	}
	return fmt.Sprintf("%s에 {amount}원으로 입찰하시겠습니까?", name)
}

// BidConfirmMessage는 금액이 채워진 입찰 확인 문구입니다.
func (v *DetailView) BidConfirmMessage(amount int64) string {
	return strings.Replace(v.BidConfirmTemplate(), "{amount}", format.CurrencyInt(amount), 1)
}

// FavoriteConfirmMessage는 관심목록 추가/제거 확인 문구입니다.
func (v *DetailView) FavoriteConfirmMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	name := "물건"
	if v.current != nil && v.current.CltrNm != "" {
		name = v.current.CltrNm
	}
	if v.isFavorite {
		return fmt.Sprintf("%s을(를) 관심목록에서 제거하시겠습니까?", name)
	}
	return fmt.Sprintf("%s을(를) 관심목록에 추가하시겠습니까?", name)
}

// DetailState는 렌더링용 스냅샷입니다.
type DetailState struct {
	Open           bool
	Loading        bool
	Board          BoardKind
	Item           *models.AuctionItem
	BidInput       string
	SavedBidAmount *int64
	IsFavorite     bool
	IsBid          bool
	History        []models.AuctionItem
	ImageURLs      []string
}

// State는 현재 상태의 복사본을 돌려줍니다. 닫혀 있으면 Open=false이며
// 아무것도 렌더링하지 않아야 합니다.
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := DetailState{
		Open:           v.open,
		Board:          v.board,
		BidInput:       v.bidInput,
		SavedBidAmount: v.savedBidAmount,
		IsFavorite:     v.isFavorite,
		IsBid:          v.isBid,
	}
	if !v.open {
		return st
	}
	if v.current == nil || !v.current.Identity().Valid() || v.loadingMyData || v.loadingAuctionData {
		st.Loading = true
		return st
	}
	item := *v.current
	st.Item = &item
	st.History = append([]models.AuctionItem(nil), v.history...)
	st.ImageURLs = format.ImageURLs(item.CltrImgFiles)
	if len(st.ImageURLs) == 0 {
		for _, link := range item.ImageLinks {
			if link.Url != "" {
				st.ImageURLs = append(st.ImageURLs, link.Url)
			}
		}
	}
	return st
}
