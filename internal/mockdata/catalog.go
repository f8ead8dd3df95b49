// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockdata

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/kardash/models"
)

// defaultCommissionRate is the platform's cut of a completed job.
const defaultCommissionRate = 0.08

type account struct {
	user         models.User
	passwordHash []byte
}

type Catalog struct {
	mu sync.RWMutex

	accounts      []*account
	jobs          []*models.Job
	applications  []*models.JobApplication
	bots          []*models.BotAccount
	notifications []*models.Notification

	nextUserID         int64
	nextJobID          int64
	nextApplicationID  int64
	nextBotID          int64
	nextNotificationID int64

	commissionRate float64
	now            func() time.Time
}

// NewCatalog returns a catalog holding the seed data. now stamps every
// change; nil means time.Now.
func NewCatalog(now func() time.Time) (*Catalog, error) {
	if now == nil {
		now = time.Now
	}

	c := &Catalog{commissionRate: defaultCommissionRate, now: now}
	if err := c.seed(); err != nil {
		return nil, fmt.Errorf("seed mock data: %w", err)
	}
	return c, nil
}

// Authenticate returns the user owning email if password matches.
func (c *Catalog) Authenticate(email, password string) (models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	acc := c.accountByEmail(email)
	if acc == nil {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if !acc.user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return acc.user, nil
}

// Register creates a freelancer (or the requested role) account.
func (c *Catalog) Register(create models.UserCreate) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(create.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accountByEmail(create.Email) != nil {
		return models.User{}, ErrEmailTaken
	}

	role := create.Role
	if role == "" {
		role = models.RoleFreelancer
	}

	now := models.NewTimestamp(c.now())
	c.nextUserID++
	acc := &account{
		user: models.User{
			ID:        c.nextUserID,
			Email:     create.Email,
			Name:      create.Name,
			Role:      role,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	c.accounts = append(c.accounts, acc)

	return acc.user, nil
}

func (c *Catalog) User(id int64) (models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	acc := c.accountByID(id)
	if acc == nil {
		return models.User{}, ErrUserNotFound
	}
	return acc.user, nil
}

// UpdateUser applies the non-nil fields of update.
func (c *Catalog) UpdateUser(id int64, update models.UserUpdate) (models.User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	acc := c.accountByID(id)
	if acc == nil {
		return models.User{}, ErrUserNotFound
	}

	if update.Name != nil {
		acc.user.Name = *update.Name
	}
	if update.SkillTags != nil {
		acc.user.SkillTags = update.SkillTags
	}
	if update.HourlyRate != nil {
		acc.user.HourlyRate = *update.HourlyRate
	}
	acc.user.UpdatedAt = models.NewTimestamp(c.now())

	return acc.user, nil
}

// SetUserActive switches a user's account on or off. Admins cannot
// deactivate themselves.
func (c *Catalog) SetUserActive(actorID, id int64, active bool) (models.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !active && actorID == id {
		return models.Message{}, ErrDeactivateSelf
	}

	acc := c.accountByID(id)
	if acc == nil {
		return models.Message{}, ErrUserNotFound
	}
	acc.user.IsActive = active
	acc.user.UpdatedAt = models.NewTimestamp(c.now())

	if active {
		return models.Message{Message: "User activated successfully"}, nil
	}
	return models.Message{Message: "User deactivated successfully"}, nil
}

func (c *Catalog) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	users := make([]models.User, 0, len(c.accounts))
	for _, acc := range c.accounts {
		users = append(users, acc.user)
	}
	return users
}

func (c *Catalog) UserStats() models.UserStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats models.UserStats
	for _, acc := range c.accounts {
		stats.TotalUsers++
		if acc.user.IsActive {
			stats.ActiveUsers++
		}
		switch acc.user.Role {
		case models.RoleFreelancer:
			stats.Freelancers++
		case models.RoleAdmin:
			stats.Admins++
		}
		if !acc.user.CreatedAt.Before(monthStart) {
			stats.NewUsersThisMonth++
		}
	}
	return stats
}

func (c *Catalog) accountByEmail(email string) *account {
	i := slices.IndexFunc(c.accounts, func(a *account) bool {
		return strings.EqualFold(a.user.Email, email)
	})
	if i < 0 {
		return nil
	}
	return c.accounts[i]
}

func (c *Catalog) accountByID(id int64) *account {
	i := slices.IndexFunc(c.accounts, func(a *account) bool { return a.user.ID == id })
	if i < 0 {
		return nil
	}
	return c.accounts[i]
}
