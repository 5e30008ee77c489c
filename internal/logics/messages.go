package logics

// 사용자에게 노출되는 문구. 원본 서비스의 문구를 그대로 사용합니다.
const (
	MsgLoginRequiredBid      = "로그인 후 입찰할 수 있습니다."
	MsgLoginRequiredFavorite = "로그인 후 관심목록을 할 수 있습니다."
	MsgInvalidBidAmount      = "유효한 입찰 금액을 입력해주세요."
	MsgBidSuccess            = "입찰이 성공적으로 처리되었습니다."
	MsgBidError              = "입찰 처리 중 오류가 발생했습니다."
	MsgFavoriteError         = "관심목록 처리 중 오류가 발생했습니다."
)

// ValidationError는 네트워크 호출 없이 로컬에서 걸러지는 입력 오류입니다.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

var (
	ErrLoginRequiredBid      = &ValidationError{MsgLoginRequiredBid}
	ErrLoginRequiredFavorite = &ValidationError{MsgLoginRequiredFavorite}
	ErrInvalidBidAmount      = &ValidationError{MsgInvalidBidAmount}
)

// ActionError는 입찰/관심목록 저장 호출이 실패한 경우의 일반 안내입니다.
type ActionError struct {
	msg string
	err error
}

func (e *ActionError) Error() string { return e.msg }
func (e *ActionError) Unwrap() error { return e.err }
