// Package format은 백엔드 원본 필드를 화면 표시용 문자열로 바꾸는
// 순수 함수 모음입니다. 상태와 I/O가 없습니다.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// compactDateTime은 온비드가 쓰는 일시 포맷입니다. (YYYYMMDDHHMISS)
const compactDateTime = "20060102150405"

var printer = message.NewPrinter(language.Korean)

// digitsOnly는 숫자 이외의 문자를 모두 제거합니다.
func digitsOnly(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Currency는 금액 필드를 "₩1,000" 형태로 포맷합니다.
// 빈 값이나 숫자로 해석할 수 없는 값은 "-"를 돌려줍니다.
func Currency(v string) string {
	digits := digitsOnly(v)
	if digits == "" {
		return "-"
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "-"
	}
	return "₩" + printer.Sprintf("%d", n)
}

// CurrencyInt는 이미 파싱된 금액을 포맷합니다.
func CurrencyInt(n int64) string {
	return "₩" + printer.Sprintf("%d", n)
}

// DateTime은 "YYYYMMDDHHMISS" 문자열을 "2025. 11. 12. 14:30:00" 형태로
// 포맷합니다. 빈 값은 "-", 형식이 맞지 않으면 원본을 그대로 돌려줍니다.
func DateTime(s string) string {
	if s == "" {
		return "-"
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return s
	}
	return t.Format("2006. 01. 02. 15:04:05")
}

// ParseDateTime은 온비드 일시 문자열을 time.Time으로 변환합니다.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(compactDateTime, s)
}

// BidAmountInput은 입찰 금액 입력값에서 숫자만 남기고 천 단위
// 콤마를 넣습니다. 입력 그대로의 자릿수를 유지하기 위해 문자열로 처리합니다.
func BidAmountInput(v string) string {
	digits := digitsOnly(v)
	if digits == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseBidAmount는 콤마가 섞인 입찰 금액 입력값을 정수로 해석합니다.
func ParseBidAmount(v string) (int64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	return strconv.ParseInt(cleaned, 10, 64)
}

// ParsePrice는 금액 필드에서 숫자 이외의 문자를 제거하고 정수로
// 해석합니다. 해석할 수 없으면 0을 돌려줍니다.
func ParsePrice(v string) int64 {
	digits := digitsOnly(v)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ImageURLs는 콤마로 구분된 이미지 경로 문자열을 배열로 바꿉니다.
func ImageURLs(s string) []string {
	if s == "" {
		return nil
	}
	var urls []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

// EstimatedFee는 최저입찰가와 수수료율로 예상 수수료를 계산합니다.
// 수수료율은 "1.5" 또는 "1.5%" 형태를 허용합니다. 계산할 수 없으면 "-".
func EstimatedFee(minBidPrc, feeRate string) string {
	digits := digitsOnly(minBidPrc)
	if digits == "" {
		return "-"
	}
	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return "-"
	}
	rateStr := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(feeRate), "%"))
	rate, err := decimal.NewFromString(rateStr)
	if err != nil {
		return "-"
	}
	fee := amount.Mul(rate).Div(decimal.NewFromInt(100)).Floor()
	return Currency(fee.String())
}
