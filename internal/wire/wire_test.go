package wire

import (
	"Board/internal/api/config"
	"Board/internal/api/dto"
	"Board/internal/model"
	"Board/internal/pkg/consts"
	"Board/internal/pkg/database"
	"Board/internal/pkg/redis"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

type testApp struct {
	t      *testing.T
	router *gin.Engine
	db     *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	redis.UseClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	db, err := database.NewSQLiteDB(fmt.Sprintf("wire_%d", dbSeq.Add(1)))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", Issuer: "board-test", ExpireHours: 1}}
	app, err := BuildApplication(db, cfg)
	require.NoError(t, err)
	return &testApp{t: t, router: app.Router, db: db}
}

// call 发起请求并把 data 解码到 out（可为 nil），返回业务码与消息
func (a *testApp) call(method, path, token string, body any, out any) (int, string) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(a.t, http.StatusOK, w.Code)

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &envelope))
	if out != nil && envelope.Code == 200 {
		require.NoError(a.t, json.Unmarshal(envelope.Data, out))
	}
	return envelope.Code, envelope.Message
}

func (a *testApp) signupAndLogin(loginID string) string {
	a.t.Helper()
	code, msg := a.call(http.MethodPost, "/api/users/signup", "", dto.SignupDTO{LoginID: loginID, Password: "pass1234", Username: loginID}, nil)
	require.Equal(a.t, 200, code, msg)

	var token dto.TokenDTO
	code, msg = a.call(http.MethodPost, "/api/users/login", "", dto.LoginDTO{LoginID: loginID, Password: "pass1234"}, &token)
	require.Equal(a.t, 200, code, msg)
	return token.Token
}

func (a *testApp) createPost(token, title string) uint64 {
	a.t.Helper()
	var created dto.PostIDDTO
	code, msg := a.call(http.MethodPost, "/api/posts", token, dto.CreatePostDTO{Title: title, Content: "body"}, &created)
	require.Equal(a.t, 200, code, msg)
	return created.PostID
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	code, msg := app.call(http.MethodGet, "/api/ping", "", nil, nil)
	assert.Equal(t, 200, code)
	assert.Equal(t, "pong", msg)
}

func TestAccountFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.signupAndLogin("alice")

	var me dto.UserDTO
	code, _ := app.call(http.MethodGet, "/api/users/me", token, nil, &me)
	require.Equal(t, 200, code)
	assert.Equal(t, "alice", me.LoginID)

	code, msg := app.call(http.MethodPost, "/api/users/signup", "", dto.SignupDTO{LoginID: "alice", Password: "pass1234", Username: "x"}, nil)
	assert.Equal(t, 409, code)
	assert.Equal(t, "이미 존재하는 아이디입니다.", msg)

	code, msg = app.call(http.MethodPost, "/api/users/login", "", dto.LoginDTO{LoginID: "alice", Password: "nope"}, nil)
	assert.Equal(t, 401, code)
	assert.Equal(t, "비밀번호가 일치하지 않습니다.", msg)

	code, _ = app.call(http.MethodPost, "/api/users/logout", token, nil, nil)
	require.Equal(t, 200, code)
	code, _ = app.call(http.MethodGet, "/api/users/me", token, nil, nil)
	assert.Equal(t, 401, code)
}

func TestReactionEndpoints(t *testing.T) {
	app := newTestApp(t)
	owner := app.signupAndLogin("owner")
	reader := app.signupAndLogin("reader")
	postID := app.createPost(owner, "hello")

	expect := []dto.ReactionResultDTO{
		{Result: "created", LikeCount: 1, DislikeCount: 0},
		{Result: "changed", LikeCount: 0, DislikeCount: 1},
		{Result: "cancelled", LikeCount: 0, DislikeCount: 0},
	}
	paths := []string{"like", "dislike", "dislike"}
	for i, p := range paths {
		var result dto.ReactionResultDTO
		code, msg := app.call(http.MethodPost, fmt.Sprintf("/api/posts/%d/%s", postID, p), reader, nil, &result)
		require.Equal(t, 200, code, msg)
		assert.Equal(t, expect[i], result)
	}

	code, _ := app.call(http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), "", nil, nil)
	assert.Equal(t, 401, code)
	code, _ = app.call(http.MethodPost, "/api/posts/999/like", reader, nil, nil)
	assert.Equal(t, 404, code)
}

func TestPostDetailComposition(t *testing.T) {
	app := newTestApp(t)
	owner := app.signupAndLogin("owner")
	reader := app.signupAndLogin("reader")
	postID := app.createPost(owner, "hello")

	var comment dto.CommentIDDTO
	code, msg := app.call(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", postID), reader, dto.WriteCommentDTO{Content: "first!"}, &comment)
	require.Equal(t, 200, code, msg)
	code, _ = app.call(http.MethodPost, fmt.Sprintf("/api/posts/%d/like", postID), reader, nil, nil)
	require.Equal(t, 200, code)

	var bookmark dto.BookmarkResultDTO
	code, _ = app.call(http.MethodPost, fmt.Sprintf("/api/bookmarks/%d", postID), reader, nil, &bookmark)
	require.Equal(t, 200, code)
	assert.True(t, bookmark.Bookmarked)
	assert.Equal(t, "북마크에 추가되었습니다.", bookmark.Message)

	var detail dto.PostPageDTO
	code, _ = app.call(http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), reader, nil, &detail)
	require.Equal(t, 200, code)
	assert.Equal(t, int64(1), detail.Post.ViewCount)
	assert.Equal(t, int64(1), detail.Post.LikeCount)
	assert.Equal(t, int64(1), detail.Post.BookmarkCount)
	assert.False(t, detail.Post.IsOwner)
	require.NotNil(t, detail.MyReaction)
	assert.Equal(t, string(model.ReactionLike), *detail.MyReaction)
	assert.True(t, detail.IsBookmarked)
	assert.Equal(t, int64(1), detail.CommentCount)
	require.Len(t, detail.Comments.Items, 1)
	assert.True(t, detail.Comments.Items[0].IsOwner)

	// 作者浏览不计数，匿名浏览计数
	code, _ = app.call(http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), owner, nil, &detail)
	require.Equal(t, 200, code)
	assert.True(t, detail.Post.IsOwner)
	assert.Equal(t, int64(1), detail.Post.ViewCount)
	assert.Nil(t, detail.MyReaction)

	code, _ = app.call(http.MethodGet, fmt.Sprintf("/api/posts/%d", postID), "", nil, &detail)
	require.Equal(t, 200, code)
	assert.Equal(t, int64(2), detail.Post.ViewCount)
	assert.False(t, detail.IsBookmarked)

	code, _ = app.call(http.MethodPost, fmt.Sprintf("/api/bookmarks/%d", postID), reader, nil, &bookmark)
	require.Equal(t, 200, code)
	assert.False(t, bookmark.Bookmarked)
	assert.Equal(t, "북마크가 해제되었습니다.", bookmark.Message)
}

func TestPostOwnershipOverHTTP(t *testing.T) {
	app := newTestApp(t)
	owner := app.signupAndLogin("owner")
	other := app.signupAndLogin("other")
	postID := app.createPost(owner, "mine")

	path := fmt.Sprintf("/api/posts/%d", postID)
	code, _ := app.call(http.MethodDelete, path, other, nil, nil)
	assert.Equal(t, 403, code)
	code, _ = app.call(http.MethodPut, path, other, dto.UpdatePostDTO{Title: "x", Content: "y"}, nil)
	assert.Equal(t, 403, code)

	code, _ = app.call(http.MethodDelete, path, owner, nil, nil)
	assert.Equal(t, 200, code)
	code, _ = app.call(http.MethodGet, path, "", nil, nil)
	assert.Equal(t, 404, code)

	code, _ = app.call(http.MethodGet, "/api/posts/abc", "", nil, nil)
	assert.Equal(t, 400, code)
}

func TestCategoryAdminOnly(t *testing.T) {
	app := newTestApp(t)
	userToken := app.signupAndLogin("user")
	app.signupAndLogin("admin")
	require.NoError(t, app.db.Model(&model.User{}).Where("login_id = ?", "admin").Update("role", consts.RoleAdmin).Error)
	// 角色写在令牌里，重新登录后生效
	var token dto.TokenDTO
	code, _ := app.call(http.MethodPost, "/api/users/login", "", dto.LoginDTO{LoginID: "admin", Password: "pass1234"}, &token)
	require.Equal(t, 200, code)
	adminToken := token.Token

	code, _ = app.call(http.MethodPost, "/api/categories", userToken, dto.CreateCategoryDTO{Name: "notice"}, nil)
	assert.Equal(t, 403, code)

	var created dto.CategoryDTO
	code, _ = app.call(http.MethodPost, "/api/categories", adminToken, dto.CreateCategoryDTO{Name: "notice"}, &created)
	require.Equal(t, 200, code)
	assert.Equal(t, "notice", created.Name)

	code, msg := app.call(http.MethodPost, "/api/categories", adminToken, dto.CreateCategoryDTO{Name: "notice"}, nil)
	assert.Equal(t, 409, code)
	assert.Equal(t, "이미 존재하는 카테고리입니다: notice", msg)

	var categories []dto.CategoryDTO
	code, _ = app.call(http.MethodGet, "/api/categories", "", nil, &categories)
	require.Equal(t, 200, code)
	assert.Len(t, categories, 1)
}

func TestBookmarkListAndComments(t *testing.T) {
	app := newTestApp(t)
	owner := app.signupAndLogin("owner")
	reader := app.signupAndLogin("reader")
	first := app.createPost(owner, "first")
	second := app.createPost(owner, "second")

	for _, id := range []uint64{first, second} {
		code, _ := app.call(http.MethodPost, fmt.Sprintf("/api/bookmarks/%d", id), reader, nil, nil)
		require.Equal(t, 200, code)
	}

	var page dto.PageResult[*dto.PostSummaryDTO]
	code, _ := app.call(http.MethodGet, "/api/bookmarks?page=1&page_size=10", reader, nil, &page)
	require.Equal(t, 200, code)
	require.Len(t, page.Items, 2)
	assert.Equal(t, second, page.Items[0].ID)

	var root dto.CommentIDDTO
	code, _ = app.call(http.MethodPost, fmt.Sprintf("/api/posts/%d/comments", first), reader, dto.WriteCommentDTO{Content: "root"}, &root)
	require.Equal(t, 200, code)
	commentPath := fmt.Sprintf("/api/posts/%d/comments/%d", first, root.CommentID)

	code, _ = app.call(http.MethodDelete, commentPath, owner, nil, nil)
	assert.Equal(t, 403, code)
	code, _ = app.call(http.MethodDelete, commentPath, reader, nil, nil)
	assert.Equal(t, 200, code)
	code, msg := app.call(http.MethodPut, commentPath, reader, dto.UpdateCommentDTO{Content: "again"}, nil)
	assert.Equal(t, 400, code)
	assert.Equal(t, "삭제된 댓글은 수정할 수 없습니다.", msg)

	var comments dto.PageResult[*dto.CommentDTO]
	code, _ = app.call(http.MethodGet, fmt.Sprintf("/api/posts/%d/comments", first), "", nil, &comments)
	require.Equal(t, 200, code)
	require.Len(t, comments.Items, 1)
	assert.Equal(t, consts.DeletedCommentPlaceholder, comments.Items[0].Content)
}
