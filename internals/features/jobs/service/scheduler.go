package service

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	applicationModel "staffly_backend/internals/features/applications/model"
	jobModel "staffly_backend/internals/features/jobs/model"
	paymentModel "staffly_backend/internals/features/payments/model"
)

// StartJobLifecycleScheduler promotes jobs through their time-driven
// states every minute and generates payroll when a job completes.
func StartJobLifecycleScheduler(db *gorm.DB) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc("* * * * *", func() {
		now := time.Now()
		promoteOngoing(db, now)
		completeFinished(db, now)
	})
	if err != nil {
		log.Fatalf("[ERROR] add lifecycle cron: %v", err)
	}

	c.Start()
	log.Println("[INFO] job lifecycle scheduler started")
}

// active/upcoming -> ongoing once the earliest shift has started.
func promoteOngoing(db *gorm.DB, now time.Time) {
	res := db.Exec(`
		UPDATE jobs SET job_status = ?
		WHERE job_status IN (?, ?)
		  AND EXISTS (
			SELECT 1 FROM shifts
			WHERE shift_job_id = jobs.job_id AND shift_start_time <= ?
		  )
	`, string(jobModel.JobStatusOngoing),
		string(jobModel.JobStatusActive), string(jobModel.JobStatusUpcoming), now)
	if res.Error != nil {
		log.Printf("[ERROR] promote ongoing: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[INFO] %d job(s) moved to ongoing", res.RowsAffected)
	}
}

// ongoing -> completed once the last shift has ended, then payroll.
func completeFinished(db *gorm.DB, now time.Time) {
	var jobs []jobModel.JobModel
	if err := db.Preload("JobShifts").
		Where(`job_status = ? AND NOT EXISTS (
			SELECT 1 FROM shifts
			WHERE shift_job_id = jobs.job_id AND shift_end_time > ?
		)`, string(jobModel.JobStatusOngoing), now).
		Find(&jobs).Error; err != nil {
		log.Printf("[ERROR] load finished jobs: %v", err)
		return
	}

	for _, job := range jobs {
		job := job
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&jobModel.JobModel{}).
				Where("job_id = ? AND job_status = ?", job.JobID, string(jobModel.JobStatusOngoing)).
				Update("job_status", string(jobModel.JobStatusCompleted)).Error; err != nil {
				return err
			}
			return generatePayroll(tx, job)
		})
		if err != nil {
			log.Printf("[ERROR] complete job %s: %v", job.JobID, err)
		}
	}
}

// generatePayroll creates one pending salary transaction per approved
// application of the job. The unique index on transaction_application_id
// makes re-runs idempotent.
func generatePayroll(tx *gorm.DB, job jobModel.JobModel) error {
	shifts := make(map[string]jobModel.ShiftModel, len(job.JobShifts))
	for _, s := range job.JobShifts {
		shifts[s.ShiftID.String()] = s
	}

	var apps []applicationModel.ApplicationModel
	if err := tx.Where("application_job_id = ? AND application_status IN ?",
		job.JobID, []string{
			string(applicationModel.ApplicationStatusApproved),
			string(applicationModel.ApplicationStatusUpcoming),
		}).Find(&apps).Error; err != nil {
		return err
	}

	for _, app := range apps {
		shift, ok := shifts[app.ApplicationShiftID.String()]
		if !ok {
			continue
		}
		appID := app.ApplicationID
		shiftID := shift.ShiftID
		jobID := job.JobID
		txn := paymentModel.TransactionModel{
			TransactionWorkerID:      app.ApplicationWorkerID,
			TransactionWorkerName:    app.ApplicationWorkerName,
			TransactionJobID:         &jobID,
			TransactionShiftID:       &shiftID,
			TransactionApplicationID: &appID,
			TransactionAmount:        shift.Wage(),
			TransactionRateType:      string(paymentModel.RateTypeSalary),
			TransactionStatus:        string(paymentModel.TransactionStatusPending),
		}
		if err := tx.Where("transaction_application_id = ?", appID).
			FirstOrCreate(&txn).Error; err != nil {
			return err
		}
	}
	return nil
}
