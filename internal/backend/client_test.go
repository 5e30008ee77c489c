package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/youngnam81-kim/gov-bid-web/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	})

	_, err := c.MyDataStatus(context.Background(), "token-1", "user-1",
		models.ItemIdentity{CltrMnmtNo: "2024-00001", CltrHstrNo: "1"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-1", gotAuth)
}

func TestClient_AnonymousRequestHasNoBearerHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"totalCount":0,"items":[]}`))
	})

	_, err := c.OnbidList(context.Background(), "", OnbidListQuery{NumOfRows: 10, PageNo: 1})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_UnauthorizedMapsToSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.MyDataStatus(context.Background(), "expired", "user-1",
		models.ItemIdentity{CltrMnmtNo: "2024-00001", CltrHstrNo: "1"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"이미 사용 중인 아이디입니다."}`))
	})

	err := c.Register(context.Background(), RegisterRequest{UserId: "dup", Password: "pw"})
	require.Error(t, err)

	assert.Equal(t, "이미 사용 중인 아이디입니다.", UserMessage(err, "회원가입 실패"))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestClient_ErrorWithoutMessageUsesFallback(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`oops`))
	})

	err := c.Register(context.Background(), RegisterRequest{UserId: "u", Password: "pw"})
	require.Error(t, err)
	assert.Equal(t, "회원가입 실패", UserMessage(err, "회원가입 실패"))
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user-1", body["userId"])
		assert.Equal(t, "secret", body["password"])

		w.Write([]byte(`{"token":"jwt-token","user":{"userId":"user-1","userName":"홍길동"}}`))
	})

	res, err := c.Login(context.Background(), "user-1", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, "홍길동", res.User.UserName)
}

func TestClient_MyDataStatusQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/kamco/getMyDataStatus", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "user-1", q.Get("userId"))
		assert.Equal(t, "2024-00001", q.Get("cltrMnmtNo"))
		assert.Equal(t, "2", q.Get("cltrHstrNo"))
		w.Write([]byte(`{"isFavorite":"Y","isBid":"N"}`))
	})

	res, err := c.MyDataStatus(context.Background(), "token-1", "user-1",
		models.ItemIdentity{CltrMnmtNo: "2024-00001", CltrHstrNo: "2"})
	require.NoError(t, err)
	assert.True(t, res.Favorite())
	assert.False(t, res.Bid())
}

func TestClient_OnbidListQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/onbid/list", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("numOfRows"))
		assert.Equal(t, "1", q.Get("pageNo"))
		assert.Equal(t, "2024-00001", q.Get("cltrMnmtNo"))
		w.Write([]byte(`{"totalCount":2,"items":[{"cltrMnmtNo":"2024-00001","cltrHstrNo":"1"},{"cltrMnmtNo":"2024-00001","cltrHstrNo":"2"}]}`))
	})

	res, err := c.OnbidList(context.Background(), "token-1", OnbidListQuery{
		NumOfRows:  10,
		PageNo:     1,
		CltrMnmtNo: "2024-00001",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
	assert.Len(t, res.Items, 2)
}

func TestClient_ModifyMyData(t *testing.T) {
	amount := int64(60000000)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/kamco/modifyMyData", r.URL.Path)

		var req models.ModifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Y", req.IsBid)
		require.NotNil(t, req.BidAmount)
		assert.Equal(t, amount, *req.BidAmount)

		w.Write([]byte(`{"isBid":"Y","bidAmount":"60000000"}`))
	})

	res, err := c.ModifyMyData(context.Background(), "token-1", models.ModifyRequest{
		UserId:     "user-1",
		CltrMnmtNo: "2024-00001",
		CltrHstrNo: "1",
		IsBid:      "Y",
		BidAmount:  &amount,
	})
	require.NoError(t, err)
	assert.True(t, res.Bid())
	assert.Equal(t, "60000000", res.BidAmount)
}
