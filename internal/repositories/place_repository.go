package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rhidhanya/nearbynomad/internal/models/db_models"
)

type PlaceRepository interface {
	CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	GetByIDs(ctx context.Context, ids []string) ([]db_models.Place, error)
	ListAll(ctx context.Context) ([]db_models.Place, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) CreatePlace(ctx context.Context, place *db_models.Place) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		return uuid.Nil, err
	}
	return place.ID, nil
}

// Reads follow the default-value-plus-nil-error pattern when no rows match.

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

// GetByIDs returns places in the order the ids were given; unknown ids
// are skipped.
func (r *placeRepository) GetByIDs(ctx context.Context, ids []string) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&places).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]db_models.Place, len(places))
	for _, p := range places {
		byID[p.ID.String()] = p
	}
	ordered := make([]db_models.Place, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

func (r *placeRepository) ListAll(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("name").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
