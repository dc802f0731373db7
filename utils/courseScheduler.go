package utils

import (
	"log"
	"time"

	"learnhub/database"
	"learnhub/models"

	"github.com/robfig/cron/v3"
)

// Enrollments idle this long trigger a reminder email.
const reminderAfter = 14 * 24 * time.Hour

// InitializeReminderScheduler sets up the daily learner-engagement job.
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing reminder scheduler...")

	c := cron.New()

	// Run daily at 9 AM
	c.AddFunc("0 9 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily enrollment check...")
		RemindStaleEnrollments()
		ReportStaleDrafts()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Reminder scheduler started - runs daily at 9 AM")
}

// RemindStaleEnrollments emails users whose enrollments have sat in
// in_progress past the reminder window without a status change.
func RemindStaleEnrollments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-reminderAfter)

	var staleEnrollments []models.Enrollment
	if err := db.
		Where("status = ? AND is_deleted = ? AND updated_at < ?", models.EnrollmentInProgress, false, cutoff).
		Find(&staleEnrollments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching stale enrollments: %v", err)
		return
	}

	log.Printf("[REMINDER-SCHEDULER] Found %d stale enrollments", len(staleEnrollments))

	for _, enrollment := range staleEnrollments {
		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}

		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching course %d: %v", enrollment.CourseID, err)
			continue
		}

		SendProgressReminderEmail(user.Email, user.Username, course.Title)
		log.Printf("[REMINDER-SCHEDULER] Sent reminder for enrollment %d to %s", enrollment.ID, user.Email)
	}
}

// ReportStaleDrafts logs how many draft courses have not been touched in a
// month, so admins can follow up with instructors.
func ReportStaleDrafts() {
	db := database.Database.Db
	cutoff := time.Now().AddDate(0, -1, 0)

	var count int64
	if err := db.Model(&models.Course{}).
		Where("status = ? AND is_deleted = ? AND updated_at < ?", models.CourseDraft, false, cutoff).
		Count(&count).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error counting stale drafts: %v", err)
		return
	}

	if count > 0 {
		log.Printf("[REMINDER-SCHEDULER] %d draft courses untouched for over a month", count)
	}
}
