package repository

import (
	"errors"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"cafedir/model"
)

// CafeRepo is the record store for the cafe directory table.
type CafeRepo struct {
	db *gorm.DB
}

func NewCafeRepo(db *gorm.DB) *CafeRepo {
	return &CafeRepo{db: db}
}

// Create inserts a new cafe and fills in its generated id. A duplicate
// name is reported as ErrNameExists.
func (r *CafeRepo) Create(cafe *model.Cafe) error {
	if err := r.db.Create(cafe).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrNameExists
		}
		return err
	}
	return nil
}

// GetByID fetches one cafe by primary key.
func (r *CafeRepo) GetByID(id uint) (*model.Cafe, error) {
	var cafe model.Cafe
	if err := r.db.First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cafe, nil
}

// ListAll returns every cafe in id order.
func (r *CafeRepo) ListAll() ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := r.db.Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// Random returns one cafe chosen uniformly from the whole table, or
// ErrEmptyTable when there is nothing to choose from.
func (r *CafeRepo) Random() (*model.Cafe, error) {
	cafes, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, ErrEmptyTable
	}
	return &cafes[rand.Intn(len(cafes))], nil
}

// FilterByLocation returns cafes whose location equals loc exactly.
// The match is case-sensitive and no normalization is applied.
func (r *CafeRepo) FilterByLocation(loc string) ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := r.db.Where("location = ?", loc).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// FilterByLocationWithWifi returns cafes at loc that also have wifi.
func (r *CafeRepo) FilterByLocationWithWifi(loc string) ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := r.db.Where("location = ? AND has_wifi = ?", loc, true).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

// UpdatePrice sets only the coffee_price column of the given cafe.
func (r *CafeRepo) UpdatePrice(id uint, newPrice string) error {
	res := r.db.Model(&model.Cafe{}).Where("id = ?", id).Update("coffee_price", newPrice)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the cafe row with the given id.
func (r *CafeRepo) Delete(id uint) error {
	res := r.db.Delete(&model.Cafe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is sqlite's unique-index failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
