package handlers

import (
	"net/http"
	"testing"

	"github.com/andriannf/storedesk/internal/models"
	"github.com/andriannf/storedesk/internal/repositories"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCustomerRouter(repo repositories.CustomerRepository) *gin.Engine {
	r := setupTestRouter()
	handler := NewCustomerHandler(repo)
	r.GET("/api/customers", handler.List)
	r.POST("/api/customers", handler.Create)
	r.GET("/api/customers/:id", handler.Get)
	r.PUT("/api/customers/:id", handler.Update)
	r.DELETE("/api/customers/:id", handler.Delete)
	return r
}

func TestListCustomers_IncludesAggregates(t *testing.T) {
	repo := new(MockCustomerRepository)
	rows := []repositories.CustomerRow{
		{
			Customer:          models.Customer{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"},
			TotalPurchases:    2,
			PurchasedProducts: "Desk Lamp,Notebook",
		},
	}
	repo.On("List", mock.Anything).Return(rows, nil)

	w := performRequest(t, newCustomerRouter(repo), http.MethodGet, "/api/customers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []repositories.CustomerRow
	decodeData(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].TotalPurchases)
	assert.Contains(t, got[0].PurchasedProducts, "Desk Lamp")
	assert.Contains(t, got[0].PurchasedProducts, "Notebook")
}

func TestGetCustomer_WithPurchases(t *testing.T) {
	repo := new(MockCustomerRepository)
	id := uuid.New()
	row := &repositories.CustomerRow{
		Customer:          models.Customer{ID: id, Name: "Ana", Email: "ana@example.com"},
		TotalPurchases:    2,
		PurchasedProducts: "Desk Lamp,Notebook",
	}
	repo.On("Get", mock.Anything, id).Return(row, nil)

	w := performRequest(t, newCustomerRouter(repo), http.MethodGet, "/api/customers/"+id.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got repositories.CustomerRow
	decodeData(t, w, &got)
	assert.Equal(t, 2, got.TotalPurchases)
	assert.Equal(t, "Desk Lamp,Notebook", got.PurchasedProducts)
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(nil, repositories.ErrNotFound)

	w := performRequest(t, newCustomerRouter(repo), http.MethodGet, "/api/customers/"+id.String(), nil)

	requireError(t, w, http.StatusNotFound)
}

func TestCreateCustomer(t *testing.T) {
	repo := new(MockCustomerRepository)
	created := &models.Customer{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Customer) bool {
		return c.Email == "ana@example.com"
	})).Return(created, nil)

	w := performRequest(t, newCustomerRouter(repo), http.MethodPost, "/api/customers", gin.H{
		"name":  "Ana",
		"email": "ana@example.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var got models.Customer
	decodeData(t, w, &got)
	assert.Equal(t, created.ID, got.ID)
	repo.AssertExpectations(t)
}

func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, repositories.ErrDuplicateKey)

	w := performRequest(t, newCustomerRouter(repo), http.MethodPost, "/api/customers", gin.H{
		"name":  "Ana",
		"email": "ana@example.com",
	})

	requireError(t, w, http.StatusBadRequest)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Email already exists", env.Error)
}

func TestCreateCustomer_MissingEmail(t *testing.T) {
	repo := new(MockCustomerRepository)

	w := performRequest(t, newCustomerRouter(repo), http.MethodPost, "/api/customers", gin.H{
		"name": "Ana",
	})

	requireError(t, w, http.StatusBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCustomer_InvalidEmailFormat(t *testing.T) {
	repo := new(MockCustomerRepository)

	w := performRequest(t, newCustomerRouter(repo), http.MethodPost, "/api/customers", gin.H{
		"name":  "Ana",
		"email": "not-an-email",
	})

	requireError(t, w, http.StatusBadRequest)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateCustomer_DuplicateEmail(t *testing.T) {
	repo := new(MockCustomerRepository)
	id := uuid.New()
	repo.On("Update", mock.Anything, id, mock.Anything).Return(nil, repositories.ErrDuplicateKey)

	w := performRequest(t, newCustomerRouter(repo), http.MethodPut, "/api/customers/"+id.String(), gin.H{
		"name":  "Ana",
		"email": "taken@example.com",
	})

	requireError(t, w, http.StatusBadRequest)
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(repositories.ErrNotFound)

	w := performRequest(t, newCustomerRouter(repo), http.MethodDelete, "/api/customers/"+id.String(), nil)

	requireError(t, w, http.StatusNotFound)
}
