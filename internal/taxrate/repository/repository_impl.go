package repository

import (
	"context"
	"errors"
	"time"

	taxdomain "github.com/avinaxhroy/billme/internal/taxrate/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) taxdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rate *taxdomain.GSTRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*taxdomain.GSTRate, error) {
	var rate taxdomain.GSTRate
	err := r.db.WithContext(ctx).First(&rate, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *repository) List(ctx context.Context, filter taxdomain.ListRequest) ([]taxdomain.GSTRate, error) {
	stmt := r.db.WithContext(ctx).Model(&taxdomain.GSTRate{})

	if filter.Category != "" {
		stmt = stmt.Where("category = ?", filter.Category)
	}
	if filter.HSNCode != "" {
		stmt = stmt.Where("hsn_code = ?", filter.HSNCode)
	}
	if filter.IsEnabled != nil {
		stmt = stmt.Where("is_enabled = ?", *filter.IsEnabled)
	}

	var rates []taxdomain.GSTRate
	if err := stmt.Order("category ASC, effective_from DESC").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

func (r *repository) Update(ctx context.Context, rate *taxdomain.GSTRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

func (r *repository) FindByHSN(ctx context.Context, hsnCode string, at time.Time) (*taxdomain.GSTRate, error) {
	return r.findEffective(ctx, "hsn_code = ?", hsnCode, at)
}

func (r *repository) FindByCategory(ctx context.Context, category string, at time.Time) (*taxdomain.GSTRate, error) {
	return r.findEffective(ctx, "category = ?", category, at)
}

func (r *repository) findEffective(ctx context.Context, cond string, value string, at time.Time) (*taxdomain.GSTRate, error) {
	var rate taxdomain.GSTRate
	err := r.db.WithContext(ctx).
		Where(cond, value).
		Where("is_enabled = ?", true).
		Where("effective_from <= ?", at).
		Where("effective_to IS NULL OR effective_to >= ?", at).
		Order("effective_from DESC").
		First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}
