package logics

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// DetailRegistry는 세션별 DetailView 보관소입니다. 조회 완료 마커가
// 요청 사이에 유지되도록 세션 아이디를 키로 사용합니다.
type DetailRegistry struct {
	mu       sync.Mutex
	views    map[string]*detailEntry
	api      DetailFetcher
	log      *zap.Logger
	maxIdle  time.Duration
	lastSwep time.Time
}

type detailEntry struct {
	view     *DetailView
	lastUsed time.Time
}

func NewDetailRegistry(api DetailFetcher, log *zap.Logger) *DetailRegistry {
	return &DetailRegistry{
		views:   make(map[string]*detailEntry),
		api:     api,
		log:     log,
		maxIdle: 30 * time.Minute,
	}
}

// Get은 세션의 상세 보기를 돌려줍니다. 없으면 새로 만듭니다.
func (r *DetailRegistry) Get(sid string) *DetailView {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked(time.Now())

	entry, ok := r.views[sid]
	if !ok {
		entry = &detailEntry{view: NewDetailView(r.api, r.log)}
		r.views[sid] = entry
	}
	entry.lastUsed = time.Now()
	return entry.view
}

// Drop은 세션의 상세 보기를 제거합니다. 로그아웃 시 호출됩니다.
func (r *DetailRegistry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.views, sid)
}

// sweepLocked는 오래 사용되지 않은 항목을 정리합니다. 정리 주기는
// maxIdle과 같게 두어 Get 경로에서 가볍게 처리합니다.
func (r *DetailRegistry) sweepLocked(now time.Time) {
	if now.Sub(r.lastSwep) < r.maxIdle {
		return
	}
	r.lastSwep = now
	for sid, entry := range r.views {
		if now.Sub(entry.lastUsed) > r.maxIdle {
			delete(r.views, sid)
		}
	}
}
