package impl

import (
	"context"
	"log/slog"

	"subul/config"
	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo  repository.ProductRepository
	merchantRepo repository.MerchantRepository
	pager        pager
	logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	merchantRepo repository.MerchantRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
		pager:        newPager(cfg.Pagination),
		logger:       logger,
	}
}

func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if _, err := srv.merchantRepo.FindByID(ctx, input.MerchantID); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to check merchant")
	}

	product := &entity.Product{
		MerchantID:  input.MerchantID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    true,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created", "productID", product.ID, "merchantID", product.MerchantID)

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	limit, offset := srv.pager.normalize(input.Limit, input.Offset)
	filter := entity.ProductFilter{MerchantID: input.MerchantID, Category: input.Category}

	products, err := srv.productRepo.List(ctx, limit, offset, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	patch := entity.ProductPatch{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	}

	product, err := srv.productRepo.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyPatch):
			return nil, domainerrors.ErrNoFieldsToUpdate
		case errors.Is(err, repository.ErrProductNotFound):
			return nil, domainerrors.ErrProductNotFound
		default:
			return nil, errors.Wrap(err, "failed to update product")
		}
	}

	srv.logger.Info("Product updated", "productID", id)

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", "productID", id)

	return nil
}
