package tui

import "github.com/MKhiriev/kardash/models"

type loginResultMsg struct {
	user models.User
	err  error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type dashboardLoadedMsg struct {
	freelancer *models.FreelancerDashboard
	admin      *models.AdminOverview
	err        error
}

type notificationsLoadedMsg struct {
	items []models.Notification
	err   error
}

// notificationsChangedMsg follows a mark-read call.
type notificationsChangedMsg struct {
	allRead bool
	err     error
}

// unreadCountMsg is sent by the notification poller.
type unreadCountMsg struct {
	count int
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
