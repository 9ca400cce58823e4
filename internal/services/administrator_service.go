package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/vferraz/garage-api/internal/models"
)

// PageSize is the fixed number of records per listing page.
// Pages are 1-based; a page below 1 is treated as page 1. Results are
// ordered by primary key so paging is stable.
const PageSize = 10

// ErrDuplicateEmail is returned when creating an administrator whose email
// is already registered
var ErrDuplicateEmail = errors.New("administrator email already registered")

// AdministratorService provides persistence operations for administrators
type AdministratorService interface {
	// Create persists a new administrator and returns it with its generated ID
	Create(admin models.Administrator) (models.Administrator, error)
	// GetByID retrieves an administrator by its ID
	GetByID(id uint) (models.Administrator, error)
	// GetByEmail retrieves an administrator by email, used during login
	GetByEmail(email string) (models.Administrator, error)
	// List retrieves one page of administrators ordered by ID
	List(page int) ([]models.Administrator, error)
	// Delete removes an administrator by its ID
	Delete(id uint) error
}

// administratorService is the GORM implementation of AdministratorService
type administratorService struct {
	db *gorm.DB
}

// NewAdministratorService creates a new instance of AdministratorService
func NewAdministratorService(db *gorm.DB) AdministratorService {
	return &administratorService{db: db}
}

func (s *administratorService) Create(admin models.Administrator) (models.Administrator, error) {
	var existing models.Administrator
	if err := s.db.Where("email = ?", admin.Email).First(&existing).Error; err == nil {
		return models.Administrator{}, ErrDuplicateEmail
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}

func (s *administratorService) GetByID(id uint) (models.Administrator, error) {
	var admin models.Administrator
	if err := s.db.First(&admin, id).Error; err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}

func (s *administratorService) GetByEmail(email string) (models.Administrator, error) {
	var admin models.Administrator
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return models.Administrator{}, err
	}
	return admin, nil
}

func (s *administratorService) List(page int) ([]models.Administrator, error) {
	if page < 1 {
		page = 1
	}

	var admins []models.Administrator
	err := s.db.Order("id").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&admins).Error
	if err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *administratorService) Delete(id uint) error {
	return s.db.Delete(&models.Administrator{}, id).Error
}
