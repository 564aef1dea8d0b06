package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campus-hq/college-admin-api/internal/dto"
	"github.com/campus-hq/college-admin-api/internal/repository"
)

func TestCreateSessionRejectsInvertedInterval(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAcademicService(repository.NewAcademicRepository(db), newValidator(), testLogger())

	_, err := svc.CreateSession(context.Background(), dto.SessionCreateRequest{
		StartDate: "2026-06-01",
		EndDate:   "2025-06-01",
	})
	require.ErrorIs(t, err, ErrSessionDates)

	session, err := svc.CreateSession(context.Background(), dto.SessionCreateRequest{
		StartDate: "2025-06-01",
		EndDate:   "2026-05-31",
	})
	require.NoError(t, err)
	require.Equal(t, "2025-06-01", session.StartDate)
}

func TestDepartmentLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAcademicService(repository.NewAcademicRepository(db), newValidator(), testLogger())

	created, err := svc.CreateDepartment(context.Background(), dto.DepartmentRequest{Name: "Physics"})
	require.NoError(t, err)

	renamed, err := svc.UpdateDepartment(context.Background(), created.ID, dto.DepartmentRequest{Name: "Applied Physics"})
	require.NoError(t, err)
	require.Equal(t, "Applied Physics", renamed.Name)

	require.NoError(t, svc.DeleteDepartment(context.Background(), created.ID))
	require.ErrorIs(t, svc.DeleteDepartment(context.Background(), created.ID), ErrAcademicNotFound)
}

func TestCourseFilterByDepartment(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAcademicService(repository.NewAcademicRepository(db), newValidator(), testLogger())

	physics, err := svc.CreateDepartment(context.Background(), dto.DepartmentRequest{Name: "Physics"})
	require.NoError(t, err)
	maths, err := svc.CreateDepartment(context.Background(), dto.DepartmentRequest{Name: "Mathematics"})
	require.NoError(t, err)

	_, err = svc.CreateCourse(context.Background(), dto.CourseRequest{Name: "Mechanics", DepartmentID: &physics.ID})
	require.NoError(t, err)
	_, err = svc.CreateCourse(context.Background(), dto.CourseRequest{Name: "Algebra", DepartmentID: &maths.ID})
	require.NoError(t, err)

	courses, err := svc.ListCourses(context.Background(), &physics.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Mechanics", courses[0].Name)

	all, err := svc.ListCourses(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestSubjectRequiresStaffAndCourse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAcademicService(repository.NewAcademicRepository(db), newValidator(), testLogger())

	_, err := svc.CreateSubject(context.Background(), dto.SubjectRequest{Name: "Orphan"})
	require.Error(t, err)
}
