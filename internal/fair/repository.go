package fair

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrFairNotFound = errors.New("fair not found")
	ErrHallNotFound = errors.New("hall not found")
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetHall reads the remaining-capacity record for one hall. The check is
// read-only: looking up availability never reserves space.
func (r *Repository) GetHall(ctx context.Context, fairID, hallID int) (Hall, error) {
	var hall Hall
	if err := r.db.WithContext(ctx).Raw(`
		SELECT fair_id, hall_id, name, capacity_m2, booked_m2
		FROM halls
		WHERE fair_id = ? AND hall_id = ?
		LIMIT 1
	`, fairID, hallID).Scan(&hall).Error; err != nil {
		return Hall{}, err
	}
	if hall.Name != "" {
		return hall, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM halls WHERE fair_id = ?
	`, fairID).Scan(&count).Error; err != nil {
		return Hall{}, err
	}
	if count == 0 {
		return Hall{}, ErrFairNotFound
	}
	return Hall{}, ErrHallNotFound
}
