package models

// FlagYes/FlagNo는 백엔드가 사용하는 Y/N 플래그 값입니다.
const (
	FlagYes = "Y"
	FlagNo  = "N"
)

// MyItem은 사용자별 관심/입찰 데이터 한 건입니다. (kamco my data)
type MyItem struct {
	UserId      string `json:"userId,omitempty"`
	CltrMnmtNo  string `json:"cltrMnmtNo"`
	CltrHstrNo  string `json:"cltrHstrNo"`
	CtgrFullNm  string `json:"ctgrFullNm,omitempty"`
	CltrNm      string `json:"cltrNm,omitempty"`
	PbctBegnDtm string `json:"pbctBegnDtm,omitempty"`
	PbctClsDtm  string `json:"pbctClsDtm,omitempty"`
	FeeRate     string `json:"feeRate,omitempty"`
	IsFavorite  string `json:"isFavorite,omitempty"`
	IsBid       string `json:"isBid,omitempty"`
	BidAmount   string `json:"bidAmount,omitempty"`
	RegDate     string `json:"regDate,omitempty"`
	ModDate     string `json:"modDate,omitempty"`
	SelectGbn   string `json:"selectGbn,omitempty"`
}

func (m *MyItem) Identity() ItemIdentity {
	return ItemIdentity{CltrMnmtNo: m.CltrMnmtNo, CltrHstrNo: m.CltrHstrNo}
}

// Favorite reports the favorite flag as a bool.
func (m *MyItem) Favorite() bool { return m.IsFavorite == FlagYes }

// Bid reports the bid flag as a bool.
func (m *MyItem) Bid() bool { return m.IsBid == FlagYes }

// ModifyRequest는 modifyMyData 호출 본문입니다. 물건 식별자와 함께
// 화면에 보이던 서술 필드 전체를 같이 보냅니다.
type ModifyRequest struct {
	UserId      string `json:"userId"`
	CltrMnmtNo  string `json:"cltrMnmtNo"`
	CltrHstrNo  string `json:"cltrHstrNo"`
	CtgrFullNm  string `json:"ctgrFullNm,omitempty"`
	CltrNm      string `json:"cltrNm,omitempty"`
	PbctBegnDtm string `json:"pbctBegnDtm,omitempty"`
	PbctClsDtm  string `json:"pbctClsDtm,omitempty"`
	FeeRate     string `json:"feeRate,omitempty"`
	IsFavorite  string `json:"isFavorite,omitempty"`
	IsBid       string `json:"isBid,omitempty"`
	BidAmount   *int64 `json:"bidAmount,omitempty"`
}
