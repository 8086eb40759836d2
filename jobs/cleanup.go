package jobs

import (
	"time"

	tasks "coinadmin/task"
)

// StartActivityPruner runs the activity cleanup once a day for as long as
// the process lives.
func StartActivityPruner() {
	ticker := time.NewTicker(24 * time.Hour)
	go func() {
		for {
			<-ticker.C
			tasks.PruneOldActivity()
		}
	}()
}
