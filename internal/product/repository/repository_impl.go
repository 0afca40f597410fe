package repository

import (
	"context"
	"errors"

	productdomain "github.com/avinaxhroy/billme/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) productdomain.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product *productdomain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repository) FindByID(ctx context.Context, id snowflake.ID) (*productdomain.Product, error) {
	var product productdomain.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []snowflake.ID) (map[snowflake.ID]productdomain.Product, error) {
	if len(ids) == 0 {
		return map[snowflake.ID]productdomain.Product{}, nil
	}

	var products []productdomain.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}

	out := make(map[snowflake.ID]productdomain.Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (r *repository) List(ctx context.Context, filter productdomain.ListRequest) ([]productdomain.Product, error) {
	stmt := r.db.WithContext(ctx).Model(&productdomain.Product{})

	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.HSNCode != "" {
		stmt = stmt.Where("hsn_code = ?", filter.HSNCode)
	}
	if filter.IsActive != nil {
		stmt = stmt.Where("is_active = ?", *filter.IsActive)
	}

	var products []productdomain.Product
	if err := stmt.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Update(ctx context.Context, product *productdomain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *repository) LowStock(ctx context.Context, threshold int64) ([]productdomain.Product, error) {
	var products []productdomain.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("stock_quantity <= ?", threshold).
		Order("stock_quantity ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) AdjustStock(ctx context.Context, id snowflake.ID, delta int64) error {
	return r.db.WithContext(ctx).
		Model(&productdomain.Product{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", delta)).Error
}
