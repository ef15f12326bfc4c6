package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationModel struct {
	NotificationID          uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationRecipientID uuid.UUID `gorm:"column:notification_recipient_id;type:uuid;not null;index" json:"notification_recipient_id"`

	NotificationTitle string         `gorm:"column:notification_title;type:varchar(200);not null" json:"notification_title"`
	NotificationBody  string         `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	NotificationData  datatypes.JSON `gorm:"column:notification_data;type:jsonb" json:"notification_data,omitempty"`

	NotificationRead   bool       `gorm:"column:notification_read;not null;default:false;index" json:"notification_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
