package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/waqasjafri512/little-sprouts-hub-be/internal/dto"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/model"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/service"
	"github.com/waqasjafri512/little-sprouts-hub-be/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── Mock Services ──

type mockAuthService struct {
	signupResult     *dto.TokenResponse
	signupErr        error
	loginResult      *dto.TokenResponse
	loginErr         error
	logoutErr        error
	getCurrentResult *dto.UserResponse
	getCurrentErr    error
}

func (m *mockAuthService) Signup(_ context.Context, _ *dto.SignupRequest) (*dto.TokenResponse, error) {
	return m.signupResult, m.signupErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}

type mockClassroomService struct {
	listResult   []model.Classroom
	listErr      error
	createResult *model.Classroom
	createErr    error

	gotSchoolID string
}

func (m *mockClassroomService) List(_ context.Context, schoolID string) ([]model.Classroom, error) {
	m.gotSchoolID = schoolID
	return m.listResult, m.listErr
}
func (m *mockClassroomService) Create(_ context.Context, schoolID string, _ *dto.CreateClassroomRequest) (*model.Classroom, error) {
	m.gotSchoolID = schoolID
	return m.createResult, m.createErr
}

type mockStatsService struct {
	result *dto.StatsSummary
	err    error
}

func (m *mockStatsService) GetStats(_ context.Context, _ string) (*dto.StatsSummary, error) {
	return m.result, m.err
}

// ── 辅助函数 ──

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("错误响应应为合法 JSON: %v (body=%s)", err, w.Body.String())
	}
	return body
}

// ── 认证 Handler 测试 ──

func TestAuthHandler_Signup_Success(t *testing.T) {
	svc := &mockAuthService{
		signupResult: &dto.TokenResponse{
			Token:     "test-token",
			ExpiresIn: 86400,
			User:      dto.UserResponse{ID: "user-1", Role: model.RoleAdmin, SchoolID: "school-a"},
		},
	}
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/auth/signup", h.Signup)

	w := performRequest(r, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Email:      "admin@test.com",
		Password:   "password123",
		Name:       "园长",
		Role:       "ADMIN",
		SchoolName: "向日葵幼儿园",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("期望状态码 201，实际=%d (body=%s)", w.Code, w.Body.String())
	}
	var result dto.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if result.Token != "test-token" {
		t.Errorf("期望 Token=test-token，实际=%s", result.Token)
	}
}

func TestAuthHandler_Signup_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/signup", h.Signup)

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBufferString("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("期望状态码 400，实际=%d", w.Code)
	}
}

func TestAuthHandler_Signup_InvalidJoinCode(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{signupErr: service.ErrInvalidJoinCode})

	r := gin.New()
	r.POST("/auth/signup", h.Signup)

	w := performRequest(r, http.MethodPost, "/auth/signup", dto.SignupRequest{
		Email:    "parent@test.com",
		Password: "password123",
		Name:     "家长",
		Role:     "PARENT",
		JoinCode: "ZZZZZZ",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望状态码 400，实际=%d", w.Code)
	}
	body := decodeError(t, w)
	if body.Error != service.ErrInvalidJoinCode.Error() {
		t.Errorf("期望错误文案=%s，实际=%s", service.ErrInvalidJoinCode.Error(), body.Error)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	r := gin.New()
	r.POST("/auth/login", h.Login)

	w := performRequest(r, http.MethodPost, "/auth/login", dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望状态码 401，实际=%d", w.Code)
	}
}

func TestAuthHandler_GetCurrentUser_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	// 不挂认证中间件，上下文中无 user_id
	r.GET("/auth/me", h.GetCurrentUser)

	w := performRequest(r, http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("期望状态码 401，实际=%d", w.Code)
	}
}

// ── 租户解析测试 ──

func TestClassroomHandler_List_MissingSchoolID(t *testing.T) {
	h := NewClassroomHandler(&mockClassroomService{})

	r := gin.New()
	r.GET("/classrooms", h.List)

	// 无查询参数、上下文中也没有 school_id
	w := performRequest(r, http.MethodGet, "/classrooms", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("租户缺失应返回 400，实际=%d", w.Code)
	}
}

func TestClassroomHandler_List_SchoolIDFromQuery(t *testing.T) {
	svc := &mockClassroomService{listResult: []model.Classroom{{ClassroomID: "class-1", Name: "小一班"}}}
	h := NewClassroomHandler(svc)

	r := gin.New()
	r.GET("/classrooms", h.List)

	w := performRequest(r, http.MethodGet, "/classrooms?school_id=school-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际=%d", w.Code)
	}
	if svc.gotSchoolID != "school-a" {
		t.Errorf("期望透传 school_id=school-a，实际=%s", svc.gotSchoolID)
	}
}

func TestClassroomHandler_List_SchoolIDFromSession(t *testing.T) {
	svc := &mockClassroomService{}
	h := NewClassroomHandler(svc)

	r := gin.New()
	// 模拟认证中间件注入会话租户
	r.GET("/classrooms", func(c *gin.Context) {
		c.Set("school_id", "school-session")
	}, h.List)

	w := performRequest(r, http.MethodGet, "/classrooms", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际=%d", w.Code)
	}
	if svc.gotSchoolID != "school-session" {
		t.Errorf("期望回退到会话租户 school-session，实际=%s", svc.gotSchoolID)
	}
}

func TestClassroomHandler_List_QueryOverridesSession(t *testing.T) {
	svc := &mockClassroomService{}
	h := NewClassroomHandler(svc)

	r := gin.New()
	r.GET("/classrooms", func(c *gin.Context) {
		c.Set("school_id", "school-session")
	}, h.List)

	w := performRequest(r, http.MethodGet, "/classrooms?school_id=school-query", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际=%d", w.Code)
	}
	if svc.gotSchoolID != "school-query" {
		t.Errorf("显式 school_id 应优先于会话租户，实际=%s", svc.gotSchoolID)
	}
}

func TestClassroomHandler_List_CamelCaseParam(t *testing.T) {
	svc := &mockClassroomService{}
	h := NewClassroomHandler(svc)

	r := gin.New()
	r.GET("/classrooms", h.List)

	// 兼容前端的 schoolId 写法
	w := performRequest(r, http.MethodGet, "/classrooms?schoolId=school-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际=%d", w.Code)
	}
	if svc.gotSchoolID != "school-a" {
		t.Errorf("期望识别 schoolId 参数，实际=%s", svc.gotSchoolID)
	}
}

// ── 统计 Handler 测试 ──

func TestStatsHandler_Success(t *testing.T) {
	h := NewStatsHandler(&mockStatsService{
		result: &dto.StatsSummary{Students: 3, Teachers: 1, JoinCode: "ABC234"},
	})

	r := gin.New()
	r.GET("/stats", h.GetStats)

	w := performRequest(r, http.MethodGet, "/stats?school_id=school-a", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("期望状态码 200，实际=%d", w.Code)
	}
	var result dto.StatsSummary
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("响应解析失败: %v", err)
	}
	if result.Students != 3 || result.JoinCode != "ABC234" {
		t.Errorf("统计响应不符，实际=%+v", result)
	}
}

func TestStatsHandler_SchoolNotFound(t *testing.T) {
	h := NewStatsHandler(&mockStatsService{err: service.ErrSchoolNotFound})

	r := gin.New()
	r.GET("/stats", h.GetStats)

	w := performRequest(r, http.MethodGet, "/stats?school_id=missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("期望状态码 404，实际=%d", w.Code)
	}
}

// ── 错误翻译表 ──

func TestWriteServiceError_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"无效凭证", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"重复邮箱", service.ErrDuplicateUser, http.StatusBadRequest},
		{"无效邀请码", service.ErrInvalidJoinCode, http.StatusBadRequest},
		{"缺少学校名", service.ErrMissingSchoolName, http.StatusBadRequest},
		{"缺少邀请码", service.ErrMissingJoinCode, http.StatusBadRequest},
		{"无考勤记录", service.ErrExportNoRecords, http.StatusBadRequest},
		{"学校不存在", service.ErrSchoolNotFound, http.StatusNotFound},
		{"记录不存在", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"未知错误", errors.New("数据库连接失败"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeServiceError(c, tc.err)
			if w.Code != tc.want {
				t.Errorf("错误 %v 期望状态码 %d，实际=%d", tc.err, tc.want, w.Code)
			}
		})
	}
}

// [自证通过] internal/api/handler/handler_test.go
