package repository

import (
	"context"
	"errors"

	gstconfigdomain "github.com/avinaxhroy/billme/internal/gstconfig/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) gstconfigdomain.Repository {
	return &repository{db: db}
}

func (r *repository) GetActive(ctx context.Context) (*gstconfigdomain.GSTConfiguration, error) {
	var cfg gstconfigdomain.GSTConfiguration
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *repository) Save(ctx context.Context, cfg *gstconfigdomain.GSTConfiguration) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}
