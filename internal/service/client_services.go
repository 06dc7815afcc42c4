package service

import (
	"github.com/MKhiriev/go-finance-tracker/internal/adapter"
)

type ClientServices struct {
	AuthService     ClientAuthService
	FinanceService  ClientFinanceService
	DashboardPoller ClientDashboardPoller
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	financeSvc := NewClientFinanceService(serverAdapter)

	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter),
		FinanceService:  financeSvc,
		DashboardPoller: NewClientDashboardPoller(financeSvc),
	}
}
