// Package backend는 원격 REST 백엔드 호출을 감싸는 API 클라이언트입니다.
// 토큰이 있으면 모든 요청에 Bearer 헤더를 붙이고, 401 응답은
// ErrUnauthorized로 변환해 호출자가 저장된 자격 증명을 비우게 합니다.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do performs one JSON request. token may be empty for anonymous calls.
// out이 nil이 아니면 2xx 응답 본문을 JSON으로 디코딩합니다.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return &APIError{Code: "MARSHAL_ERROR", Message: "요청 본문 생성에 실패했습니다.", Err: err}
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return &APIError{Code: "REQUEST_ERROR", Message: "요청 생성에 실패했습니다.", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return &APIError{Code: "NETWORK_ERROR", Message: "백엔드 요청에 실패했습니다.", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Code: "RESPONSE_ERROR", Message: "응답을 읽지 못했습니다.", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Warn("Backend returned 401, credentials must be cleared",
			zap.String("path", path))
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "API_ERROR"}
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		c.logger.Warn("Backend returned non-2xx",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(respBody)))
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &APIError{Code: "PARSE_ERROR", Message: "응답 해석에 실패했습니다.", Err: err}
		}
	}
	return nil
}
