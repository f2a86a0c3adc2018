package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
)

// In-memory реализации репозиториев для юнит-тестов сервисов.
// Повторяют контракт настоящих: те же sentinel-ошибки и та же
// защита уникальным индексом (internship_id, student_id).

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) put(user *models.User) *models.User {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.put(user)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

type fakeInternshipRepo struct {
	internships map[string]*models.Internship
}

func newFakeInternshipRepo() *fakeInternshipRepo {
	return &fakeInternshipRepo{internships: map[string]*models.Internship{}}
}

func (r *fakeInternshipRepo) put(internship *models.Internship) *models.Internship {
	if internship.ID == "" {
		internship.ID = fmt.Sprintf("internship-%d", len(r.internships)+1)
	}
	if internship.PostedDate.IsZero() {
		internship.PostedDate = time.Now()
	}
	r.internships[internship.ID] = internship
	return internship
}

func (r *fakeInternshipRepo) FindByID(_ context.Context, id string) (*models.Internship, error) {
	internship, ok := r.internships[id]
	if !ok {
		return nil, repositories.ErrInternshipNotFound
	}
	copied := *internship
	return &copied, nil
}

func (r *fakeInternshipRepo) FindByIDs(_ context.Context, ids []string) (map[string]models.Internship, error) {
	byID := map[string]models.Internship{}
	for _, id := range ids {
		if internship, ok := r.internships[id]; ok {
			byID[id] = *internship
		}
	}
	return byID, nil
}

func (r *fakeInternshipRepo) Search(_ context.Context, filter repositories.InternshipFilter) ([]models.Internship, error) {
	var result []models.Internship
	for _, internship := range r.internships {
		if filter.Category != "" && internship.Category != filter.Category {
			continue
		}
		if filter.EmployerID != "" && internship.EmployerID != filter.EmployerID {
			continue
		}
		result = append(result, *internship)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PostedDate.After(result[j].PostedDate)
	})
	return result, nil
}

func (r *fakeInternshipRepo) Create(_ context.Context, internship *models.Internship) error {
	r.put(internship)
	return nil
}

func (r *fakeInternshipRepo) Update(_ context.Context, internship *models.Internship) error {
	if _, ok := r.internships[internship.ID]; !ok {
		return repositories.ErrInternshipNotFound
	}
	copied := *internship
	r.internships[internship.ID] = &copied
	return nil
}

func (r *fakeInternshipRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.internships[id]; !ok {
		return repositories.ErrInternshipNotFound
	}
	delete(r.internships, id)
	return nil
}

func (r *fakeInternshipRepo) FindExpired(_ context.Context) ([]models.Internship, error) {
	var result []models.Internship
	now := time.Now()
	for _, internship := range r.internships {
		if internship.ApplicationDeadline != nil && internship.ApplicationDeadline.Before(now) {
			result = append(result, *internship)
		}
	}
	return result, nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
	seq          int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: map[string]*models.Application{}}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	// Уникальный индекс по паре (internship_id, student_id), как в Postgres
	for _, existing := range r.applications {
		if existing.InternshipID == application.InternshipID && existing.StudentID == application.StudentID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	r.seq++
	application.ID = fmt.Sprintf("application-%d", r.seq)
	if application.AppliedDate.IsZero() {
		application.AppliedDate = time.Now()
	}
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByInternshipAndStudent(_ context.Context, internshipID, studentID string) (*models.Application, error) {
	for _, application := range r.applications {
		if application.InternshipID == internshipID && application.StudentID == studentID {
			copied := *application
			return &copied, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentID string) ([]models.Application, error) {
	var result []models.Application
	for _, application := range r.applications {
		if application.StudentID == studentID {
			result = append(result, *application)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AppliedDate.After(result[j].AppliedDate)
	})
	return result, nil
}

func (r *fakeApplicationRepo) ListByInternship(_ context.Context, internshipID string) ([]models.Application, error) {
	var result []models.Application
	for _, application := range r.applications {
		if application.InternshipID == internshipID {
			result = append(result, *application)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].AppliedDate.After(result[j].AppliedDate)
	})
	return result, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	application.Status = status
	copied := *application
	return &copied, nil
}

func (r *fakeApplicationRepo) DeleteByInternship(_ context.Context, internshipID string) (int64, error) {
	var count int64
	for id, application := range r.applications {
		if application.InternshipID == internshipID {
			delete(r.applications, id)
			count++
		}
	}
	return count, nil
}
