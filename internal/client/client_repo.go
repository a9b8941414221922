package client

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, cl *Client) error
	Update(ctx context.Context, cl *Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]Client, int64, error)
	FindDefault(ctx context.Context) (*Client, error)
	FindAny(ctx context.Context) (*Client, error)
	Count(ctx context.Context) (int64, error)
	UnsetDefault(ctx context.Context) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, cl *Client) error {
	if cl.ID == uuid.Nil {
		cl.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *repository) Update(ctx context.Context, cl *Client) error {
	return r.db.WithContext(ctx).Save(cl).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	return &cl, err
}

func (r *repository) FindAll(ctx context.Context, page, limit int, search string) ([]Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&Client{})

	if s := strings.TrimSpace(search); s != "" {
		query = query.Where("name ILIKE ?", "%"+s+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []Client
	err := query.
		Order("is_default DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clients).Error
	return clients, total, err
}

func (r *repository) FindDefault(ctx context.Context) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).First(&cl, "is_default = ?", true).Error
	return &cl, err
}

func (r *repository) FindAny(ctx context.Context) (*Client, error) {
	var cl Client
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&cl).Error
	return &cl, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Client{}).Count(&total).Error
	return total, err
}

func (r *repository) UnsetDefault(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&Client{}).
		Where("is_default = ?", true).
		Update("is_default", false).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Client{}, "id = ?", id).Error
}
