package repositories

import (
	"context"
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInternshipNotFound = errors.New("internship not found")

// InternshipFilter - критерии публичного поиска стажировок
type InternshipFilter struct {
	Category   string
	Location   string
	Keyword    string
	EmployerID string
}

type InternshipRepository interface {
	FindByID(ctx context.Context, id string) (*models.Internship, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.Internship, error)
	Search(ctx context.Context, filter InternshipFilter) ([]models.Internship, error)
	Create(ctx context.Context, internship *models.Internship) error
	Update(ctx context.Context, internship *models.Internship) error
	Delete(ctx context.Context, id string) error
	FindExpired(ctx context.Context) ([]models.Internship, error)
}

type InternshipRepositoryImpl struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &InternshipRepositoryImpl{db: db}
}

func (r *InternshipRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Internship, error) {
	var internship models.Internship
	err := r.db.WithContext(ctx).First(&internship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

func (r *InternshipRepositoryImpl) FindByIDs(ctx context.Context, ids []string) (map[string]models.Internship, error) {
	var internships []models.Internship
	if len(ids) == 0 {
		return map[string]models.Internship{}, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&internships).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Internship, len(internships))
	for _, internship := range internships {
		byID[internship.ID] = internship
	}
	return byID, nil
}

func (r *InternshipRepositoryImpl) Search(ctx context.Context, filter InternshipFilter) ([]models.Internship, error) {
	query := r.db.WithContext(ctx).Model(&models.Internship{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.EmployerID != "" {
		query = query.Where("employer_id = ?", filter.EmployerID)
	}
	if filter.Keyword != "" {
		keyword := "%" + filter.Keyword + "%"
		query = query.Where(
			"title ILIKE ? OR company_name ILIKE ? OR description ILIKE ? OR skills::text ILIKE ?",
			keyword, keyword, keyword, keyword,
		)
	}

	var internships []models.Internship
	if err := query.Order("posted_date DESC").Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}

func (r *InternshipRepositoryImpl) Create(ctx context.Context, internship *models.Internship) error {
	return r.db.WithContext(ctx).Create(internship).Error
}

func (r *InternshipRepositoryImpl) Update(ctx context.Context, internship *models.Internship) error {
	result := r.db.WithContext(ctx).Model(&models.Internship{}).Where("id = ?", internship.ID).Updates(map[string]interface{}{
		"title":                internship.Title,
		"company_name":         internship.CompanyName,
		"category":             internship.Category,
		"location":             internship.Location,
		"stipend":              internship.Stipend,
		"duration":             internship.Duration,
		"description":          internship.Description,
		"skills":               internship.Skills,
		"application_deadline": internship.ApplicationDeadline,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *InternshipRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Internship{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInternshipNotFound
	}
	return nil
}

func (r *InternshipRepositoryImpl) FindExpired(ctx context.Context) ([]models.Internship, error) {
	var internships []models.Internship
	err := r.db.WithContext(ctx).
		Where("application_deadline IS NOT NULL AND application_deadline < NOW()").
		Find(&internships).Error
	if err != nil {
		return nil, err
	}
	return internships, nil
}
