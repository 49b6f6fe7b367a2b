package usecase

import (
	"context"
	"fmt"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/internal/data/repository"
	"textile-store/internal/dto/request"
	"textile-store/internal/dto/response"
	"textile-store/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	// Public reads
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	GetProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetProductByID(ctx context.Context, id int64) (*response.ProductResponse, error)

	// Admin writes
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) error
	DeleteCategory(ctx context.Context, id int64) error
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) error
	DeleteProduct(ctx context.Context, id int64) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	responses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = response.CategoryToResponse(category)
	}

	return responses, nil
}

func (s *catalogService) GetProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products")
	}

	responses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = response.ProductToResponse(product)
	}

	return responses, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id int64) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.Int64("product_id", id))
		return nil, fmt.Errorf("failed to get product")
	}
	if product == nil {
		return nil, fmt.Errorf("product %d not found", id)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}

	s.log.Info("Category created",
		zap.Int64("category_id", category.ID),
		zap.String("name", category.Name))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id int64, req *request.CategoryRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category := &entity.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.Int64("category_id", id))
		return fmt.Errorf("failed to update category")
	}

	return nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.Category.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.Int64("category_id", id))
		return fmt.Errorf("failed to delete category")
	}

	s.log.Info("Category deleted", zap.Int64("category_id", id))
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product := &entity.Product{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to update product")
	}

	return nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", id))
		return fmt.Errorf("failed to delete product")
	}

	s.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
