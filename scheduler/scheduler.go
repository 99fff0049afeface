// Package scheduler runs the background maintenance jobs. The only job
// today is a workload summary logged on a cron schedule.
package scheduler

import (
	"log"

	"todolists/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler registers the workload summary job and starts the cron
// loop in the background.
func StartScheduler(db *gorm.DB, schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		LogWorkloadSummary(db)
	}); err != nil {
		return err
	}
	c.Start()
	log.Printf("scheduler started, workload summary at %q", schedule)
	return nil
}

// LogWorkloadSummary logs the todo count and the task count per workflow
// state.
func LogWorkloadSummary(db *gorm.DB) {
	var todoCount int64
	if err := db.Model(&model.ToDo{}).Count(&todoCount).Error; err != nil {
		log.Printf("workload summary failed: %v", err)
		return
	}

	var states []model.State
	if err := db.Order("state_id").Find(&states).Error; err != nil {
		log.Printf("workload summary failed: %v", err)
		return
	}
	log.Printf("workload summary: %d todos", todoCount)
	for _, state := range states {
		var taskCount int64
		if err := db.Model(&model.Task{}).Where("state_id = ?", state.StateID).Count(&taskCount).Error; err != nil {
			log.Printf("workload summary failed for state %q: %v", state.Name, err)
			continue
		}
		log.Printf("workload summary: %d tasks in state %q", taskCount, state.Name)
	}
}
