package dto

import (
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/models"
)

// ChargeListItem é a cobrança como aparece na listagem.
type ChargeListItem struct {
	models.Charge
	PatientName      string   `json:"patient_name"`
	AppointmentDates []string `json:"appointment_dates"`
}

// ChargeDetail acrescenta as sessões cobradas.
type ChargeDetail struct {
	models.Charge
	PatientName string                  `json:"patient_name"`
	Sessions    []pricing.SessionDetail `json:"sessions"`
}

type PaidCharge struct {
	Charge  *models.Charge  `json:"charge"`
	Receipt *models.Receipt `json:"receipt"`
}
