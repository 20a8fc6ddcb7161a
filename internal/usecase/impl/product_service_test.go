package impl

import (
	"context"
	"testing"

	"subul/internal/domain/entity"
	domainerrors "subul/internal/domain/errors"
	"subul/internal/domain/repository"
	mockRepo "subul/internal/mocks/repository"
	"subul/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	merchantRepo *mockRepo.MockMerchantRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	service := NewProductService(productRepo, merchantRepo, newTestConfig(), newDiscardLogger())

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		merchantRepo: merchantRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	fx.merchantRepo.On("FindByID", ctx, merchantID).Return(&entity.Merchant{ID: merchantID}, nil)
	fx.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = uuid.New()
		}).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		MerchantID: merchantID,
		Name:       "Widget",
		Price:      9.99,
	})

	require.NoError(t, err)
	assert.True(t, product.IsActive)
	assert.Equal(t, merchantID, product.MerchantID)
}

func TestProductService_CreateProduct_UnknownMerchant(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	fx.merchantRepo.On("FindByID", ctx, merchantID).Return(nil, repository.ErrMerchantNotFound)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		MerchantID: merchantID,
		Name:       "Widget",
		Price:      9.99,
	})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrMerchantNotFound)
}

func TestProductService_ListProducts_PassesFilter(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	filter := entity.ProductFilter{MerchantID: merchantID, Category: "tools"}
	fx.productRepo.On("List", ctx, 100, 0, filter).Return([]*entity.Product{}, nil)

	_, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		MerchantID: merchantID,
		Category:   "tools",
	})

	require.NoError(t, err)
}

func TestProductService_UpdateProduct_EmptyPatchIsBadRequest(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("Update", ctx, productID, entity.ProductPatch{}).
		Return(nil, repository.ErrEmptyPatch)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	name := "Renamed"
	fx.productRepo.On("Update", ctx, productID, entity.ProductPatch{Name: &name}).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{Name: &name})

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	fx.productRepo.On("Delete", ctx, productID).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
