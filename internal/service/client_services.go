package service

import (
	"github.com/MKhiriev/kardash/internal/adapter"
	"github.com/MKhiriev/kardash/internal/logger"
	"github.com/MKhiriev/kardash/internal/store"
)

type ClientServices struct {
	AuthService         ClientAuthService
	DashboardService    ClientDashboardService
	JobService          ClientJobService
	NotificationService ClientNotificationService
}

func NewClientServices(sessions store.Sessions, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:         NewClientAuthService(sessions, serverAdapter, logger),
		DashboardService:    NewClientDashboardService(serverAdapter, logger),
		JobService:          NewClientJobService(serverAdapter, logger),
		NotificationService: NewClientNotificationService(serverAdapter),
	}
}
