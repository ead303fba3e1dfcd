package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-dashboard/internal/httperr"
	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// DashboardGormRepository reads the dashboard collections from a
// database that mirrors the platform services. It never writes.
type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// --------------------------------------------------
// Identity
// --------------------------------------------------

func (r *DashboardGormRepository) FetchUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *DashboardGormRepository) FetchSalon(
	ctx context.Context,
	salonID models.ID,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("id = ?", salonID).
		First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.Wrap("salon_not_found", err)
		}
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// Catalogue
// --------------------------------------------------

func (r *DashboardGormRepository) FetchCategories(
	ctx context.Context,
	salonID models.ID,
) ([]models.Category, error) {

	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("id").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *DashboardGormRepository) FetchServices(
	ctx context.Context,
	salonID models.ID,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("id").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Bookings / Payments
// --------------------------------------------------

func (r *DashboardGormRepository) FetchBookings(
	ctx context.Context,
	salonID models.ID,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("start_time").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FetchPayments returns every payment; the engine attributes them to a
// salon by their salon_id.
func (r *DashboardGormRepository) FetchPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
