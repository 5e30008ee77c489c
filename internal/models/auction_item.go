package models

// ItemIdentity는 물건관리번호와 물건이력번호의 쌍으로,
// 하나의 공매 물건 이력을 유일하게 식별합니다.
type ItemIdentity struct {
	CltrMnmtNo string `json:"cltrMnmtNo"`
	CltrHstrNo string `json:"cltrHstrNo"`
}

// Valid reports whether both halves of the identity are present.
func (id ItemIdentity) Valid() bool {
	return id.CltrMnmtNo != "" && id.CltrHstrNo != ""
}

// ImageLink는 온비드 프록시가 내려주는 물건 이미지 링크입니다.
type ImageLink struct {
	Seq string `json:"seq"`
	Url string `json:"url"`
}

// AuctionItem은 온비드 공매 물건 한 건의 이력 정보입니다.
// 백엔드가 소유하는 데이터이며 클라이언트는 읽기만 합니다.
type AuctionItem struct {
	Rnum           string `json:"rnum,omitempty"`
	PlnmNo         string `json:"plnmNo,omitempty"`         // 공매계획번호
	PbctNo         string `json:"pbctNo,omitempty"`         // 공고번호
	PbctCdtnNo     string `json:"pbctCdtnNo,omitempty"`     // 공고조건번호
	CltrNo         string `json:"cltrNo,omitempty"`         // 물건번호
	CltrHstrNo     string `json:"cltrHstrNo"`               // 물건이력번호
	CtgrFullNm     string `json:"ctgrFullNm,omitempty"`     // 카테고리전체명
	BidMnmtNo      string `json:"bidMnmtNo,omitempty"`      // 입찰관리번호
	CltrNm         string `json:"cltrNm,omitempty"`         // 물건명
	CltrMnmtNo     string `json:"cltrMnmtNo"`               // 물건관리번호
	LdnmAdrs       string `json:"ldnmAdrs,omitempty"`       // 지번주소
	NmrdAdrs       string `json:"nmrdAdrs,omitempty"`       // 도로명주소
	DpslMtdCd      string `json:"dpslMtdCd,omitempty"`      // 처분방법코드
	DpslMtdNm      string `json:"dpslMtdNm,omitempty"`      // 처분방법명
	BidMtdNm       string `json:"bidMtdNm,omitempty"`       // 입찰방법명
	MinBidPrc      string `json:"minBidPrc,omitempty"`      // 최저입찰가
	ApslAsesAvgAmt string `json:"apslAsesAvgAmt,omitempty"` // 감정평가평균금액
	FeeRate        string `json:"feeRate,omitempty"`        // 수수료율
	PbctBegnDtm    string `json:"pbctBegnDtm,omitempty"`    // 공고시작일시 (YYYYMMDDHHMISS)
	PbctClsDtm     string `json:"pbctClsDtm,omitempty"`     // 공고종료일시
	PbctCltrStatNm string `json:"pbctCltrStatNm,omitempty"` // 공고물건상태명
	UscbdCnt       string `json:"uscbdCnt,omitempty"`       // 유찰회수
	IqryCnt        string `json:"iqryCnt,omitempty"`        // 조회건수
	GoodsNm        string `json:"goodsNm,omitempty"`        // 물품명세

	// 자동차/동산 물건에만 내려오는 항목들
	Manf     string `json:"manf,omitempty"`     // 제조사
	Mdl      string `json:"mdl,omitempty"`      // 모델
	Nrgt     string `json:"nrgt,omitempty"`     // 배기량
	Grbx     string `json:"grbx,omitempty"`     // 변속기
	Fuel     string `json:"fuel,omitempty"`     // 연료
	VhclMlge string `json:"vhclMlge,omitempty"` // 주행거리
	ScrtNm   string `json:"scrtNm,omitempty"`   // 보증서명
	Tpbz     string `json:"tpbz,omitempty"`     // 업종
	ItmNm    string `json:"itmNm,omitempty"`    // 품목명
	MmbRgtNm string `json:"mmbRgtNm,omitempty"` // 회원권종명

	CltrImgFiles string      `json:"cltrImgFiles,omitempty"` // 이미지 경로 (콤마 구분)
	ImageLinks   []ImageLink `json:"imageLinks,omitempty"`
}

// Identity returns the (management number, history sequence) pair.
func (a *AuctionItem) Identity() ItemIdentity {
	return ItemIdentity{CltrMnmtNo: a.CltrMnmtNo, CltrHstrNo: a.CltrHstrNo}
}

// SameIdentity reports whether two items refer to the same auction history entry.
func (a *AuctionItem) SameIdentity(id ItemIdentity) bool {
	return a.CltrMnmtNo == id.CltrMnmtNo && a.CltrHstrNo == id.CltrHstrNo
}
