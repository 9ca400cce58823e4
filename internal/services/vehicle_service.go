package services

import (
	"gorm.io/gorm"

	"github.com/vferraz/garage-api/internal/models"
)

// VehicleService provides persistence operations for vehicles
type VehicleService interface {
	// Create persists a new vehicle and returns it with its generated ID
	Create(vehicle models.Vehicle) (models.Vehicle, error)
	// GetByID retrieves a vehicle by its ID
	GetByID(id uint) (models.Vehicle, error)
	// List retrieves one page of vehicles ordered by ID, optionally
	// filtered by partial name and brand matches
	List(page int, name, brand string) ([]models.Vehicle, error)
	// Update saves changes to an existing vehicle
	Update(vehicle models.Vehicle) (models.Vehicle, error)
	// Delete removes a vehicle by its ID
	Delete(id uint) error
}

// vehicleService is the GORM implementation of VehicleService
type vehicleService struct {
	db *gorm.DB
}

// NewVehicleService creates a new instance of VehicleService
func NewVehicleService(db *gorm.DB) VehicleService {
	return &vehicleService{db: db}
}

func (s *vehicleService) Create(vehicle models.Vehicle) (models.Vehicle, error) {
	if err := s.db.Create(&vehicle).Error; err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *vehicleService) GetByID(id uint) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *vehicleService) List(page int, name, brand string) ([]models.Vehicle, error) {
	if page < 1 {
		page = 1
	}

	query := s.db.Order("id").Limit(PageSize).Offset((page - 1) * PageSize)
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if brand != "" {
		query = query.Where("brand LIKE ?", "%"+brand+"%")
	}

	var vehicles []models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *vehicleService) Update(vehicle models.Vehicle) (models.Vehicle, error) {
	if err := s.db.Save(&vehicle).Error; err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *vehicleService) Delete(id uint) error {
	return s.db.Delete(&models.Vehicle{}, id).Error
}
