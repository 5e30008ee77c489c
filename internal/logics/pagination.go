package logics

// pageBlockSize는 페이지 버튼 묶음 크기입니다. (한 블록 10페이지)
const pageBlockSize = 10

// Pagination은 목록 하단 페이지 이동 컨트롤의 렌더링 모델입니다.
type Pagination struct {
	Current    int
	TotalPages int
	// Pages는 현재 블록에 표시할 페이지 번호들입니다. 전체가 1페이지
	// 이하면 비어 있으며 컨트롤 자체를 그리지 않습니다.
	Pages []int
	// PrevBlock/NextBlock은 블록 이동 버튼의 목적지 페이지입니다.
	PrevBlock int
	NextBlock int
	// 비활성화 조건: 처음/이전 블록은 첫 블록에서, 다음 블록/마지막은
	// 마지막 블록에서 비활성화됩니다.
	DisableFirst bool
	DisablePrev  bool
	DisableNext  bool
	DisableLast  bool
}

// Paginate는 총 건수와 현재 페이지로 페이지 컨트롤을 계산합니다.
func Paginate(totalCount, rowsPerPage, current int) Pagination {
	if rowsPerPage <= 0 {
		rowsPerPage = RowsPerPage
	}
	totalPages := (totalCount + rowsPerPage - 1) / rowsPerPage
	if current < 1 {
		current = 1
	}
	if current > totalPages && totalPages > 0 {
		current = totalPages
	}

	p := Pagination{Current: current, TotalPages: totalPages}
	if totalPages <= 1 {
		return p
	}

	currentBlock := (current + pageBlockSize - 1) / pageBlockSize
	start := (currentBlock-1)*pageBlockSize + 1
	end := currentBlock * pageBlockSize
	if end > totalPages {
		end = totalPages
	}

	for i := start; i <= end; i++ {
		p.Pages = append(p.Pages, i)
	}

	p.PrevBlock = start - pageBlockSize
	if p.PrevBlock < 1 {
		p.PrevBlock = 1
	}
	p.NextBlock = start + pageBlockSize
	if p.NextBlock > totalPages {
		p.NextBlock = totalPages
	}

	p.DisableFirst = current == 1
	p.DisablePrev = start == 1
	p.DisableNext = end == totalPages
	p.DisableLast = current == totalPages
	return p
}
