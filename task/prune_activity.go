package tasks

import (
	"log"
	"time"

	"coinadmin/database"
	"coinadmin/models"
)

// PruneOldActivity drops activity rows that have aged out of every stats
// window (the widest range is 365 days).
func PruneOldActivity() {
	cutoff := time.Now().AddDate(0, 0, -366)
	result := database.DB.
		Where("created_at < ?", cutoff).
		Delete(&models.UserActivity{})

	if result.Error != nil {
		log.Println("❌ Failed to prune old activity:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Pruned %d activity rows older than a year\n", result.RowsAffected)
	}
}
