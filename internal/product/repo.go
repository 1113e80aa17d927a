package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Repository owns the catalog access patterns the API needs. Arguments are
// checked before any storage call: a non-positive id is ErrInvalidArgument,
// never a query.
type Repository interface {
	List(ctx context.Context, q ListQuery) (total int64, items []Product, err error)
	ListAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Replace(ctx context.Context, id int64, p *Product) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, q ListQuery) (int64, []Product, error) {
	q = q.Sanitize(0)

	base := r.db.WithContext(ctx).Model(&Product{})
	if q.Filter != "" {
		like := "%" + q.Filter + "%"
		base = base.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("count products: %w", err)
	}

	items := []Product{}
	err := base.Order("id").Offset(q.offset()).Limit(q.PageSize).Find(&items).Error
	if err != nil {
		return 0, nil, fmt.Errorf("list products: %w", err)
	}
	return total, items, nil
}

func (r *GormRepository) ListAll(ctx context.Context) ([]Product, error) {
	items := []Product{}
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	if id <= 0 {
		return nil, ErrInvalidArgument
	}
	var p Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *GormRepository) Create(ctx context.Context, p *Product) error {
	p.Price = p.Price.Round(2)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Replace overwrites the whole record. When zero rows are affected the cause
// is disambiguated with Exists: a vanished record is ErrNotFound, anything
// else is surfaced as a storage error and never retried.
func (r *GormRepository) Replace(ctx context.Context, id int64, p *Product) error {
	if id <= 0 || id != p.ID {
		return ErrInvalidArgument
	}
	p.Price = p.Price.Round(2)

	res := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).
		Select("Name", "Description", "Price").Updates(p)
	if res.Error != nil {
		return fmt.Errorf("replace product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		exists, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("replace product %d: concurrent update conflict", id)
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	res := r.db.WithContext(ctx).Delete(&Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return count > 0, nil
}
