package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "staffly_backend/internals/features/employers/model"
)

/* =============== REQUESTS =============== */

type CreateEmployerRequest struct {
	EmployerLegalName       string   `json:"employer_legal_name"       validate:"required,min=2"`
	EmployerLogoURL         *string  `json:"employer_logo_url"         validate:"omitempty,url"`
	EmployerContactPerson   string   `json:"employer_contact_person"   validate:"required,min=2"`
	EmployerContactNumber   string   `json:"employer_contact_number"   validate:"required,min=6"`
	EmployerContactEmail    string   `json:"employer_contact_email"    validate:"required,email"`
	EmployerIndustries      []string `json:"employer_industries"       validate:"omitempty,dive,min=1"`
	EmployerAgreementStatus *string  `json:"employer_agreement_status" validate:"omitempty,oneof=completed in_discussion expired none"`
}

func (r CreateEmployerRequest) ToModel() *m.EmployerModel {
	status := string(m.AgreementStatusNone)
	if r.EmployerAgreementStatus != nil {
		status = *r.EmployerAgreementStatus
	}
	return &m.EmployerModel{
		EmployerLegalName:       r.EmployerLegalName,
		EmployerLogoURL:         r.EmployerLogoURL,
		EmployerContactPerson:   r.EmployerContactPerson,
		EmployerContactNumber:   r.EmployerContactNumber,
		EmployerContactEmail:    r.EmployerContactEmail,
		EmployerIndustries:      pq.StringArray(r.EmployerIndustries),
		EmployerAgreementStatus: status,
	}
}

// Partial update.
type UpdateEmployerRequest struct {
	EmployerLegalName       *string  `json:"employer_legal_name"       validate:"omitempty,min=2"`
	EmployerLogoURL         *string  `json:"employer_logo_url"         validate:"omitempty,url"`
	EmployerContactPerson   *string  `json:"employer_contact_person"   validate:"omitempty,min=2"`
	EmployerContactNumber   *string  `json:"employer_contact_number"   validate:"omitempty,min=6"`
	EmployerContactEmail    *string  `json:"employer_contact_email"    validate:"omitempty,email"`
	EmployerIndustries      []string `json:"employer_industries"       validate:"omitempty,dive,min=1"`
	EmployerAgreementStatus *string  `json:"employer_agreement_status" validate:"omitempty,oneof=completed in_discussion expired none"`
}

func (r UpdateEmployerRequest) ApplyTo(mo *m.EmployerModel) {
	if r.EmployerLegalName != nil {
		mo.EmployerLegalName = *r.EmployerLegalName
	}
	if r.EmployerLogoURL != nil {
		mo.EmployerLogoURL = r.EmployerLogoURL
	}
	if r.EmployerContactPerson != nil {
		mo.EmployerContactPerson = *r.EmployerContactPerson
	}
	if r.EmployerContactNumber != nil {
		mo.EmployerContactNumber = *r.EmployerContactNumber
	}
	if r.EmployerContactEmail != nil {
		mo.EmployerContactEmail = *r.EmployerContactEmail
	}
	if r.EmployerIndustries != nil {
		mo.EmployerIndustries = pq.StringArray(r.EmployerIndustries)
	}
	if r.EmployerAgreementStatus != nil {
		mo.EmployerAgreementStatus = *r.EmployerAgreementStatus
	}
}

type CreateOutletRequest struct {
	OutletName    string `json:"outlet_name"    validate:"required,min=2"`
	OutletAddress string `json:"outlet_address" validate:"required,min=5"`
}

/* =============== RESPONSES =============== */

type EmployerResponse struct {
	EmployerID                   uuid.UUID       `json:"employer_id"`
	EmployerLegalName            string          `json:"employer_legal_name"`
	EmployerLogoURL              *string         `json:"employer_logo_url,omitempty"`
	EmployerContactPerson        string          `json:"employer_contact_person"`
	EmployerContactNumber        string          `json:"employer_contact_number"`
	EmployerContactEmail         string          `json:"employer_contact_email"`
	EmployerIndustries           []string        `json:"employer_industries"`
	EmployerAgreementStatus      string          `json:"employer_agreement_status"`
	EmployerAgreementStatusLabel string          `json:"employer_agreement_status_label"`
	EmployerOutletCount          int             `json:"employer_outlet_count"`
	EmployerOutlets              []m.OutletModel `json:"employer_outlets,omitempty"`
	EmployerCreatedAt            time.Time       `json:"employer_created_at"`
}

func FromModel(e m.EmployerModel) EmployerResponse {
	return EmployerResponse{
		EmployerID:                   e.EmployerID,
		EmployerLegalName:            e.EmployerLegalName,
		EmployerLogoURL:              e.EmployerLogoURL,
		EmployerContactPerson:        e.EmployerContactPerson,
		EmployerContactNumber:        e.EmployerContactNumber,
		EmployerContactEmail:         e.EmployerContactEmail,
		EmployerIndustries:           e.EmployerIndustries,
		EmployerAgreementStatus:      e.EmployerAgreementStatus,
		EmployerAgreementStatusLabel: m.AgreementStatus(e.EmployerAgreementStatus).Label(),
		EmployerOutletCount:          len(e.EmployerOutlets),
		EmployerOutlets:              e.EmployerOutlets,
		EmployerCreatedAt:            e.EmployerCreatedAt,
	}
}

func FromModels(rows []m.EmployerModel) []EmployerResponse {
	out := make([]EmployerResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, FromModel(e))
	}
	return out
}
