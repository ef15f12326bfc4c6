package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "staffly_backend/internals/features/notifications/model"
)

// Push inserts a notification for a recipient. Best effort: callers fire
// it after the primary mutation has committed, and a failure here is
// logged, never propagated.
func Push(db *gorm.DB, recipientID uuid.UUID, title, body string, data map[string]any) {
	var payload datatypes.JSON
	if len(data) > 0 {
		raw, err := json.Marshal(data)
		if err != nil {
			log.Printf("[ERROR] notification payload marshal: %v", err)
		} else {
			payload = datatypes.JSON(raw)
		}
	}

	n := model.NotificationModel{
		NotificationRecipientID: recipientID,
		NotificationTitle:       title,
		NotificationBody:        body,
		NotificationData:        payload,
	}
	if err := db.Create(&n).Error; err != nil {
		log.Printf("[ERROR] push notification to %s: %v", recipientID, err)
	}
}
