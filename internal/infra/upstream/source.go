package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

// Source reads the six dashboard collections from the platform's REST
// services.
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) FetchUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := s.client.GetJSON(ctx, "/users", &out); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	return out, nil
}

func (s *Source) FetchSalon(
	ctx context.Context,
	salonID models.ID,
) (*models.Salon, error) {

	var out models.Salon
	if err := s.client.GetJSON(ctx, "/salons/"+escape(salonID), &out); err != nil {
		return nil, fmt.Errorf("salon %s: %w", salonID, err)
	}
	if out.ID.IsZero() {
		out.ID = salonID
	}
	return &out, nil
}

func (s *Source) FetchCategories(
	ctx context.Context,
	salonID models.ID,
) ([]models.Category, error) {

	var out []models.Category
	if err := s.client.GetJSON(ctx, "/categories/salon/"+escape(salonID), &out); err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return out, nil
}

func (s *Source) FetchServices(
	ctx context.Context,
	salonID models.ID,
) ([]models.Service, error) {

	var out []models.Service
	if err := s.client.GetJSON(ctx, "/services/salon/"+escape(salonID), &out); err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}
	return out, nil
}

func (s *Source) FetchBookings(
	ctx context.Context,
	salonID models.ID,
) ([]models.Booking, error) {

	var out []models.Booking
	if err := s.client.GetJSON(ctx, "/bookings/salon/"+escape(salonID), &out); err != nil {
		return nil, fmt.Errorf("bookings: %w", err)
	}
	return out, nil
}

func (s *Source) FetchPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := s.client.GetJSON(ctx, "/payments", &out); err != nil {
		return nil, fmt.Errorf("payments: %w", err)
	}
	return out, nil
}

func escape(id models.ID) string {
	return url.PathEscape(id.String())
}
