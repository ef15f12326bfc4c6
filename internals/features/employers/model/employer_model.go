package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ===================== Service agreement status ===================== */

type AgreementStatus string

const (
	AgreementStatusCompleted    AgreementStatus = "completed"
	AgreementStatusInDiscussion AgreementStatus = "in_discussion"
	AgreementStatusExpired      AgreementStatus = "expired"
	AgreementStatusNone         AgreementStatus = "none"
)

var agreementStatusLabels = map[AgreementStatus]string{
	AgreementStatusCompleted:    "Completed",
	AgreementStatusInDiscussion: "In Discussion",
	AgreementStatusExpired:      "Expired",
	AgreementStatusNone:         "None",
}

func (s AgreementStatus) Valid() bool {
	_, ok := agreementStatusLabels[s]
	return ok
}

func (s AgreementStatus) Label() string {
	if l, ok := agreementStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

/* ===================== Models ===================== */

type EmployerModel struct {
	EmployerID uuid.UUID `gorm:"column:employer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"employer_id"`

	EmployerLegalName string  `gorm:"column:employer_legal_name;type:varchar(200);not null" json:"employer_legal_name"`
	EmployerLogoURL   *string `gorm:"column:employer_logo_url;type:text" json:"employer_logo_url,omitempty"`

	EmployerContactPerson string `gorm:"column:employer_contact_person;type:varchar(100);not null" json:"employer_contact_person"`
	EmployerContactNumber string `gorm:"column:employer_contact_number;type:varchar(30);not null" json:"employer_contact_number"`
	EmployerContactEmail  string `gorm:"column:employer_contact_email;type:varchar(255);not null" json:"employer_contact_email"`

	EmployerIndustries      pq.StringArray `gorm:"column:employer_industries;type:text[]" json:"employer_industries"`
	EmployerAgreementStatus string         `gorm:"column:employer_agreement_status;type:agreement_status;not null;default:'none'" json:"employer_agreement_status"`

	EmployerOutlets []OutletModel `gorm:"foreignKey:OutletEmployerID;references:EmployerID" json:"employer_outlets,omitempty"`

	EmployerCreatedAt time.Time      `gorm:"column:employer_created_at;autoCreateTime" json:"employer_created_at"`
	EmployerUpdatedAt time.Time      `gorm:"column:employer_updated_at;autoUpdateTime" json:"employer_updated_at"`
	EmployerDeletedAt gorm.DeletedAt `gorm:"column:employer_deleted_at;index" json:"-"`
}

func (EmployerModel) TableName() string { return "employers" }

type OutletModel struct {
	OutletID         uuid.UUID `gorm:"column:outlet_id;type:uuid;default:gen_random_uuid();primaryKey" json:"outlet_id"`
	OutletEmployerID uuid.UUID `gorm:"column:outlet_employer_id;type:uuid;not null;index" json:"outlet_employer_id"`

	OutletName    string `gorm:"column:outlet_name;type:varchar(200);not null" json:"outlet_name"`
	OutletAddress string `gorm:"column:outlet_address;type:text;not null" json:"outlet_address"`

	OutletCreatedAt time.Time `gorm:"column:outlet_created_at;autoCreateTime" json:"outlet_created_at"`
	OutletUpdatedAt time.Time `gorm:"column:outlet_updated_at;autoUpdateTime" json:"outlet_updated_at"`
}

func (OutletModel) TableName() string { return "outlets" }
