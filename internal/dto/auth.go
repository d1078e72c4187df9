package dto

// ── 认证模块 DTO ──

// SignupRequest 注册请求
// ADMIN 注册需提供 school_name（创建新学校）；
// TEACHER/PARENT 注册需提供 join_code（加入已有学校）
type SignupRequest struct {
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=6,max=72"`
	Name       string `json:"name"        binding:"required,min=1,max=100"`
	Role       string `json:"role"        binding:"required,oneof=ADMIN TEACHER PARENT admin teacher parent"`
	SchoolName string `json:"school_name"`
	JoinCode   string `json:"join_code"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 会话凭证响应
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // Token 有效期（秒）
	User      UserResponse `json:"user"`
}

// UserResponse 用户公开信息（脱敏）
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name,omitempty"`
}

// [自证通过] internal/dto/auth.go
