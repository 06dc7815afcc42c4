package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-finance-tracker/internal/app"
	"github.com/MKhiriev/go-finance-tracker/internal/service"
	"github.com/MKhiriev/go-finance-tracker/internal/validators"
	"github.com/MKhiriev/go-finance-tracker/models"
)

func TestRegisterUser_Created(t *testing.T) {
	users := &fakeUserService{
		register: func(_ context.Context, u models.User) (models.User, error) {
			return models.User{UserID: 1, Name: u.Name, Email: u.Email}, nil
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := do(t, router, http.MethodPost, "/user", `{"name":"Ana","email":"ana@example.com","password":"1234"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "1234")
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	users := &fakeUserService{
		register: func(context.Context, models.User) (models.User, error) {
			return models.User{}, service.ErrEmailAlreadyUsed
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := do(t, router, http.MethodPost, "/user", `{"name":"Ana","email":"ana@example.com","password":"1234"}`, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgEmailAlreadyUsed, messageOf(t, rec))
}

func TestGetUser_OtherUserIsNotFound(t *testing.T) {
	users := &fakeUserService{
		get: func(_ context.Context, callerID, id int64) (models.User, error) {
			assert.Equal(t, int64(7), callerID)
			assert.Equal(t, int64(8), id)
			return models.User{}, service.ErrUserNotFound
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := do(t, router, http.MethodGet, "/user/8", "", validToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgUserNotFound, messageOf(t, rec))
}

func TestCurrentUser(t *testing.T) {
	users := &fakeUserService{
		get: func(_ context.Context, callerID, id int64) (models.User, error) {
			assert.Equal(t, callerID, id)
			return models.User{UserID: id, Name: "Ana"}, nil
		},
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := do(t, router, http.MethodGet, "/user", "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteUser(t *testing.T) {
	users := &fakeUserService{
		remove: func(_ context.Context, callerID, id int64) error { return nil },
	}
	router := newTestRouter(t, &service.Services{UserService: users})

	rec := do(t, router, http.MethodDelete, "/user/7", "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgUserDeleted, messageOf(t, rec))
}

func TestCreateBankAccount_ScopedToCaller(t *testing.T) {
	accounts := &fakeBankAccountService{
		create: func(_ context.Context, userID int64, a models.BankAccount) (models.BankAccount, error) {
			assert.Equal(t, int64(7), userID)
			a.ID, a.UserID = 3, userID
			return a, nil
		},
	}
	router := newTestRouter(t, &service.Services{BankAccountService: accounts})

	rec := do(t, router, http.MethodPost, "/bank-account", `{"name":"Nubank","number":"123456","agency":"0001"}`, validToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.BankAccount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(3), created.ID)
	assert.Equal(t, "Nubank", created.Name)
}

func TestCreateBankAccount_Duplicate(t *testing.T) {
	accounts := &fakeBankAccountService{
		create: func(context.Context, int64, models.BankAccount) (models.BankAccount, error) {
			return models.BankAccount{}, service.ErrBankAccountAlreadyExists
		},
	}
	router := newTestRouter(t, &service.Services{BankAccountService: accounts})

	rec := do(t, router, http.MethodPost, "/bank-account", `{"name":"Nubank","number":"123456","agency":"0001"}`, validToken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgBankAccountAlreadyExists, messageOf(t, rec))
}

func TestGetBankAccount(t *testing.T) {
	accounts := &fakeBankAccountService{
		get: func(_ context.Context, userID, id int64) (models.BankAccount, error) {
			if id != 3 {
				return models.BankAccount{}, service.ErrBankAccountNotFound
			}
			return models.BankAccount{ID: 3, UserID: userID}, nil
		},
	}
	router := newTestRouter(t, &service.Services{BankAccountService: accounts})

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodGet, "/bank-account/3", "", validToken).Code)

	missing := do(t, router, http.MethodGet, "/bank-account/4", "", validToken)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, app.MsgBankAccountNotFound, messageOf(t, missing))

	invalid := do(t, router, http.MethodGet, "/bank-account/abc", "", validToken)
	assert.Equal(t, http.StatusBadRequest, invalid.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, messageOf(t, invalid))
}

func TestListBankAccounts_Empty(t *testing.T) {
	accounts := &fakeBankAccountService{
		list: func(context.Context, int64) ([]models.BankAccount, error) { return []models.BankAccount{}, nil },
	}
	router := newTestRouter(t, &service.Services{BankAccountService: accounts})

	rec := do(t, router, http.MethodGet, "/bank-account", "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateBankAccount_Partial(t *testing.T) {
	accounts := &fakeBankAccountService{
		update: func(_ context.Context, userID, id int64, u models.BankAccountUpdate) (models.BankAccount, error) {
			require.NotNil(t, u.Name)
			assert.Nil(t, u.Number)
			return models.BankAccount{ID: id, Name: *u.Name}, nil
		},
	}
	router := newTestRouter(t, &service.Services{BankAccountService: accounts})

	rec := do(t, router, http.MethodPatch, "/bank-account/3", `{"name":"Inter"}`, validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteBankAccount(t *testing.T) {
	accounts := &fakeBankAccountService{
		remove: func(context.Context, int64, int64) error { return nil },
	}
	router := newTestRouter(t, &service.Services{BankAccountService: accounts})

	rec := do(t, router, http.MethodDelete, "/bank-account/3", "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgBankAccountDeleted, messageOf(t, rec))
}

func TestListCategories_PageParams(t *testing.T) {
	categories := &fakeCategoryService{
		list: func(_ context.Context, userID int64, page models.PageRequest) (models.Page[models.Category], error) {
			assert.Equal(t, models.PageRequest{Page: 2, Limit: 5, Search: "mer"}, page)
			return models.NewPage([]models.Category{{ID: 1, Name: "Mercado"}}, 6, page), nil
		},
	}
	router := newTestRouter(t, &service.Services{CategoryService: categories})

	rec := do(t, router, http.MethodGet, "/category?page=2&limit=5&search=mer", "", validToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var page models.Page[models.Category]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 2, page.TotalPages)
}

func TestListCategories_BadNumbersFallBackToZero(t *testing.T) {
	categories := &fakeCategoryService{
		list: func(_ context.Context, _ int64, page models.PageRequest) (models.Page[models.Category], error) {
			assert.Equal(t, 0, page.Page)
			assert.Equal(t, 0, page.Limit)
			return models.NewPage[models.Category](nil, 0, page.Normalize()), nil
		},
	}
	router := newTestRouter(t, &service.Services{CategoryService: categories})

	rec := do(t, router, http.MethodGet, "/category?page=x&limit=y", "", validToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	categories := &fakeCategoryService{
		create: func(context.Context, int64, models.Category) (models.Category, error) {
			return models.Category{}, service.ErrCategoryAlreadyExists
		},
	}
	router := newTestRouter(t, &service.Services{CategoryService: categories})

	rec := do(t, router, http.MethodPost, "/category", `{"name":"Mercado"}`, validToken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgCategoryAlreadyExists, messageOf(t, rec))
}

func TestDeleteCategory_NotFound(t *testing.T) {
	categories := &fakeCategoryService{
		remove: func(context.Context, int64, int64) error { return service.ErrCategoryNotFound },
	}
	router := newTestRouter(t, &service.Services{CategoryService: categories})

	rec := do(t, router, http.MethodDelete, "/category/1", "", validToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgCategoryNotFound, messageOf(t, rec))
}

func TestCreateTransaction_ValidationReason(t *testing.T) {
	transactions := &fakeTransactionService{
		create: func(context.Context, int64, models.Transaction) (models.Transaction, error) {
			return models.Transaction{}, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrAmountNotPositive)
		},
	}
	router := newTestRouter(t, &service.Services{TransactionService: transactions})

	rec := do(t, router, http.MethodPost, "/transaction", `{"bankAccountId":3,"categoryId":1,"type":"EXPENSE","amount":-1}`, validToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, validators.ErrAmountNotPositive.Error(), messageOf(t, rec))
}

func TestCreateTransaction_DecodesBody(t *testing.T) {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	transactions := &fakeTransactionService{
		create: func(_ context.Context, userID int64, tx models.Transaction) (models.Transaction, error) {
			assert.Equal(t, models.Expense, tx.Type)
			assert.Equal(t, 120.5, tx.Amount)
			assert.True(t, tx.TransactionAt.Equal(at))
			tx.ID = 9
			return tx, nil
		},
	}
	router := newTestRouter(t, &service.Services{TransactionService: transactions})

	body := `{"bankAccountId":3,"categoryId":1,"type":"EXPENSE","amount":120.5,"description":"feira","isEssential":true,"transactionAt":"2026-03-10T12:00:00Z"}`
	rec := do(t, router, http.MethodPost, "/transaction", body, validToken)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetTransaction_ForeignIsNotFound(t *testing.T) {
	transactions := &fakeTransactionService{
		get: func(context.Context, int64, int64) (models.Transaction, error) {
			return models.Transaction{}, service.ErrTransactionNotFound
		},
	}
	router := newTestRouter(t, &service.Services{TransactionService: transactions})

	rec := do(t, router, http.MethodGet, "/transaction/9", "", validToken)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgTransactionNotFound, messageOf(t, rec))
}

func TestDashboard(t *testing.T) {
	dashboards := &fakeDashboardService{
		get: func(_ context.Context, userID int64) (models.Dashboard, error) {
			assert.Equal(t, int64(7), userID)
			return models.Dashboard{PieData: []models.PieSlice{}, LineData: []models.MonthlyPoint{}, BarData: []models.DailyPoint{}, TotalBalance: 100}, nil
		},
	}
	router := newTestRouter(t, &service.Services{DashboardService: dashboards})

	rec := do(t, router, http.MethodGet, "/dashboard/data", "", validToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalBalance":100`)
}

func TestDashboard_StoreFailureHidesDetails(t *testing.T) {
	dashboards := &fakeDashboardService{
		get: func(context.Context, int64) (models.Dashboard, error) {
			return models.Dashboard{}, fmt.Errorf("pq: relation missing")
		},
	}
	router := newTestRouter(t, &service.Services{DashboardService: dashboards})

	rec := do(t, router, http.MethodGet, "/dashboard/data", "", validToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, messageOf(t, rec))
}
