package handlers

import (
	"context"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Product, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repositories.ProductRepository = (*MockProductRepository)(nil)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]repositories.CustomerRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.CustomerRow), args.Error(1)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id uuid.UUID) (*repositories.CustomerRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.CustomerRow), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Customer, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repositories.CustomerRepository = (*MockCustomerRepository)(nil)

type MockCustomerProductRepository struct {
	mock.Mock
}

func (m *MockCustomerProductRepository) List(ctx context.Context) ([]repositories.CustomerProductRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.CustomerProductRow), args.Error(1)
}

func (m *MockCustomerProductRepository) Create(ctx context.Context, purchase *models.CustomerProduct) (*repositories.CustomerProductRow, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.CustomerProductRow), args.Error(1)
}

var _ repositories.CustomerProductRepository = (*MockCustomerProductRepository)(nil)

type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) List(ctx context.Context) ([]repositories.CouponRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.CouponRow), args.Error(1)
}

func (m *MockCouponRepository) Get(ctx context.Context, id uuid.UUID) (*repositories.CouponRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.CouponRow), args.Error(1)
}

func (m *MockCouponRepository) Create(ctx context.Context, coupon *models.Coupon) (*repositories.CouponRow, error) {
	args := m.Called(ctx, coupon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.CouponRow), args.Error(1)
}

func (m *MockCouponRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*repositories.CouponRow, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.CouponRow), args.Error(1)
}

func (m *MockCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repositories.CouponRepository = (*MockCouponRepository)(nil)

type MockSocialPostRepository struct {
	mock.Mock
}

func (m *MockSocialPostRepository) List(ctx context.Context) ([]repositories.SocialPostRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.SocialPostRow), args.Error(1)
}

func (m *MockSocialPostRepository) Get(ctx context.Context, id uuid.UUID) (*repositories.SocialPostRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.SocialPostRow), args.Error(1)
}

func (m *MockSocialPostRepository) Create(ctx context.Context, post *models.SocialPost) (*repositories.SocialPostRow, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.SocialPostRow), args.Error(1)
}

func (m *MockSocialPostRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*repositories.SocialPostRow, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.SocialPostRow), args.Error(1)
}

func (m *MockSocialPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repositories.SocialPostRepository = (*MockSocialPostRepository)(nil)

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) ListRecent(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) Create(ctx context.Context, message *models.ChatMessage) (*models.ChatMessage, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

var _ repositories.ChatRepository = (*MockChatRepository)(nil)

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Advise(ctx context.Context, message string, product *models.Product) string {
	args := m.Called(ctx, message, product)
	return args.String(0)
}
