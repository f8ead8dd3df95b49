package mockdata

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/kardash/models"
)

// Seeded login accounts.
const (
	AdminEmail         = "admin@kardash.com"
	AdminPassword      = "admin"
	FreelancerEmail    = "freelancer@kardash.com"
	FreelancerPassword = "freelancer"
)

const (
	adminID      int64 = 1
	freelancerID int64 = 2
)

func (c *Catalog) seed() error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	freelancerHash, err := bcrypt.GenerateFromPassword([]byte(FreelancerPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash freelancer password: %w", err)
	}

	joined := func(date string) models.Timestamp {
		t, _ := time.Parse(time.DateOnly, date)
		return models.NewTimestamp(t)
	}
	at := func(value string) models.Timestamp {
		t, _ := time.Parse(time.DateTime, value)
		return models.NewTimestamp(t)
	}

	// accounts without a password hash cannot log in
	c.accounts = []*account{
		{
			user: models.User{
				ID: adminID, Email: AdminEmail, Name: "KARDASH Admin", Role: models.RoleAdmin, IsActive: true,
				CreatedAt: joined("2025-01-01"), UpdatedAt: joined("2025-01-01"),
			},
			passwordHash: adminHash,
		},
		{
			user: models.User{
				ID: freelancerID, Email: FreelancerEmail, Name: "Ahmad Mohammadi", Role: models.RoleFreelancer, IsActive: true,
				SkillTags: ptr("React,JavaScript,UI/UX"), HourlyRate: 35, TotalEarnings: 5240, Rating: 4.8, CompletedJobs: 23,
				CreatedAt: joined("2025-03-15"), UpdatedAt: at("2025-07-12 09:30:00"),
			},
			passwordHash: freelancerHash,
		},
		{
			user: models.User{
				ID: 3, Email: "maryam@example.com", Name: "Maryam Ahmadi", Role: models.RoleFreelancer, IsActive: true,
				TotalEarnings: 3890, CompletedJobs: 18,
				CreatedAt: joined("2025-02-20"), UpdatedAt: at("2025-07-11 14:20:00"),
			},
		},
		{
			user: models.User{
				ID: 4, Email: "ali@example.com", Name: "Ali Rezaei", Role: models.RoleFreelancer, IsActive: false,
				TotalEarnings: 2150, CompletedJobs: 12,
				CreatedAt: joined("2025-04-10"), UpdatedAt: at("2025-07-10 11:45:00"),
			},
		},
	}
	c.nextUserID = 4

	c.bots = []*models.BotAccount{
		{
			ID: 1, Name: "TechBot_01", Platform: "Upwork", Status: models.BotActive, JobsApplied: 45, SuccessRate: 87,
			Profile:      ptr("Senior React Developer with 5+ years experience"),
			LastActivity: ptr(at("2025-07-12 11:30:00")), OwnerID: ptr(adminID),
			CreatedAt: joined("2025-05-01"), UpdatedAt: at("2025-07-12 11:30:00"),
		},
		{
			ID: 2, Name: "DesignBot_03", Platform: "Fiverr", Status: models.BotActive, JobsApplied: 32, SuccessRate: 92,
			Profile:      ptr("Creative designer specializing in logos and branding"),
			LastActivity: ptr(at("2025-07-12 10:15:00")), OwnerID: ptr(adminID),
			CreatedAt: joined("2025-05-01"), UpdatedAt: at("2025-07-12 10:15:00"),
		},
		{
			ID: 3, Name: "ContentBot_02", Platform: "LinkedIn", Status: models.BotPaused, JobsApplied: 28, SuccessRate: 78,
			Profile:      ptr("Technical content writer and SEO specialist"),
			LastActivity: ptr(at("2025-07-11 16:45:00")), OwnerID: ptr(adminID),
			CreatedAt: joined("2025-05-01"), UpdatedAt: at("2025-07-11 16:45:00"),
		},
	}
	c.nextBotID = 3

	c.jobs = []*models.Job{
		{
			ID: 1, Title: "React.js Developer for E-commerce Platform",
			Description: "Need experienced React developer to build modern e-commerce frontend with payment integration",
			Budget:      "1200", Deadline: ptr(joined("2025-07-20")), Type: ptr("development"), Platform: ptr("Upwork"),
			Tags: ptr("React,JavaScript,E-commerce,Payment"), Urgency: ptr("high"), IsUrgent: true,
			ClientRating: ptr(4.8), EstimatedHours: ptr("40-60"), Status: models.JobOpen, BotAccountID: ptr(int64(1)),
			CommissionRate: defaultCommissionRate, UserID: adminID,
			CreatedAt: at("2025-07-12 10:30:00"), UpdatedAt: at("2025-07-12 10:30:00"),
		},
		{
			ID: 2, Title: "Logo Design for Crypto Startup",
			Description: "Modern, minimalist logo design for blockchain startup. Need creative and professional approach",
			Budget:      "450", Deadline: ptr(joined("2025-07-18")), Type: ptr("design"), Platform: ptr("Fiverr"),
			Tags: ptr("Logo,Crypto,Branding,Minimalist"), Urgency: ptr("medium"),
			ClientRating: ptr(4.5), EstimatedHours: ptr("10-20"), Status: models.JobOpen, BotAccountID: ptr(int64(2)),
			CommissionRate: defaultCommissionRate, UserID: adminID,
			CreatedAt: at("2025-07-11 14:15:00"), UpdatedAt: at("2025-07-11 14:15:00"),
		},
		{
			ID: 3, Title: "Content Writer for Tech Blog",
			Description: "Write 10 high-quality articles about AI, blockchain, and web development trends",
			Budget:      "600", Deadline: ptr(joined("2025-07-25")), Type: ptr("content"), Platform: ptr("LinkedIn"),
			Tags: ptr("Writing,Tech,AI,Blockchain"), Urgency: ptr("low"),
			ClientRating: ptr(4.9), EstimatedHours: ptr("20-30"), Status: models.JobOpen, BotAccountID: ptr(int64(3)),
			CommissionRate: defaultCommissionRate, UserID: adminID,
			CreatedAt: at("2025-07-12 09:45:00"), UpdatedAt: at("2025-07-12 09:45:00"),
		},
		{
			ID: 4, Title: "Mobile App UI/UX Design",
			Budget: "900", Deadline: ptr(joined("2025-07-22")), Type: ptr("design"), Platform: ptr("Telegram"),
			Status: models.JobInProgress, AssignedToUserID: ptr(freelancerID),
			ClientResponse: ptr("Great work so far! Looking forward to final delivery."),
			CommissionRate: defaultCommissionRate, UserID: adminID,
			CreatedAt: at("2025-07-08 12:00:00"), UpdatedAt: at("2025-07-12 08:00:00"),
		},
		{
			ID: 5, Title: "WordPress Plugin Development",
			Budget: "600", Deadline: ptr(joined("2025-07-16")), Type: ptr("development"), Platform: ptr("Freelancer"),
			Status: models.JobDelivered, AssignedToUserID: ptr(freelancerID),
			DeliveryNotes:  ptr("Plugin and installation guide attached"),
			ClientResponse: ptr("Excellent work! Will hire again."),
			CommissionRate: defaultCommissionRate, UserID: adminID,
			CreatedAt: at("2025-07-01 09:00:00"), UpdatedAt: at("2025-07-15 18:00:00"),
		},
	}
	c.nextJobID = 5

	c.notifications = []*models.Notification{
		{ID: 1, UserID: freelancerID, Type: "job_accepted", Message: `Your application for "React Developer" was accepted!`, Time: at("2025-07-12 09:00:00")},
		{ID: 2, UserID: freelancerID, Type: "payment", Message: "Payment of $600 has been processed to your wallet", Time: at("2025-07-11 11:00:00")},
		{ID: 3, UserID: freelancerID, Type: "deadline", Message: `Project "Mobile App UI" deadline is tomorrow`, Time: at("2025-07-11 10:00:00"), IsRead: true},
	}
	c.nextNotificationID = 3

	return nil
}

func ptr[T any](v T) *T {
	return &v
}
