package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/models"
)

const (
	DefaultDurationMinutes = 60
	StatusCompleted        = "completed"
)

var sixty = decimal.NewFromInt(60)

// AutomaticSessionPrice vale para qualquer moeda na cobrança automática.
var AutomaticSessionPrice = decimal.NewFromInt(150)

type SessionDetail struct {
	AppointmentID   string `json:"appointment_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	TreatmentType   string `json:"treatment_type"`
	SessionType     string `json:"session_type"`
}

type Quote struct {
	Currency       string          `json:"currency,omitempty"`
	TotalHours     float64         `json:"total_hours"`
	TotalMinutes   int             `json:"total_minutes"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	SessionsCount  int             `json:"sessions_count"`
	SessionDetails []SessionDetail `json:"session_details"`
}

// ResolveRate escolhe o valor da hora, o primeiro que existir:
// configuração do consultório na moeda, preço do paciente (só BRL), padrão da moeda.
func ResolveRate(
	currency string,
	settings *models.PaymentSettings,
	patient *models.Patient,
) decimal.Decimal {

	if settings != nil {
		switch currency {
		case CurrencyBRL:
			if positive(settings.SessionPriceBRL) {
				return *settings.SessionPriceBRL
			}
		case CurrencyEUR:
			if positive(settings.SessionPriceEUR) {
				return *settings.SessionPriceEUR
			}
		}
	}

	if currency == CurrencyBRL && patient != nil && positive(patient.SessionPrice) {
		return *patient.SessionPrice
	}

	return FallbackRate(currency)
}

// Calculate soma só os atendimentos concluídos. Não arredonda.
func Calculate(appointments []models.Appointment, rate decimal.Decimal) Quote {
	details := CompletedSessions(appointments)

	q := Quote{
		HourlyRate:     rate,
		SessionsCount:  len(details),
		SessionDetails: details,
	}
	for _, d := range details {
		q.TotalMinutes += d.DurationMinutes
	}

	minutes := decimal.NewFromInt(int64(q.TotalMinutes))
	q.TotalHours = minutes.Div(sixty).InexactFloat64()
	// multiplica antes de dividir para manter exato quando possível
	q.TotalAmount = minutes.Mul(rate).Div(sixty)

	return q
}

// CompletedSessions descreve os atendimentos concluídos, na ordem recebida.
func CompletedSessions(appointments []models.Appointment) []SessionDetail {
	out := make([]SessionDetail, 0, len(appointments))
	for _, ap := range appointments {
		if ap.Status != StatusCompleted {
			continue
		}
		out = append(out, Describe(ap))
	}
	return out
}

func Describe(ap models.Appointment) SessionDetail {
	return SessionDetail{
		AppointmentID:   ap.ID.String(),
		Date:            ap.Date,
		Time:            ap.Time,
		DurationMinutes: Duration(ap),
		TreatmentType:   ap.TreatmentType,
		SessionType:     ap.SessionType,
	}
}

func Duration(ap models.Appointment) int {
	if ap.DurationMinutes == nil || *ap.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return *ap.DurationMinutes
}

// SessionPrice é o valor de um atendimento na cobrança automática:
// preço do atendimento, senão preço do paciente, senão AutomaticSessionPrice.
// Não depende da moeda da cobrança.
func SessionPrice(ap models.Appointment, patient *models.Patient) decimal.Decimal {
	if positive(ap.Price) {
		return *ap.Price
	}
	if patient != nil && positive(patient.SessionPrice) {
		return *patient.SessionPrice
	}
	return AutomaticSessionPrice
}

func PatientCurrency(p *models.Patient) string {
	if p == nil || p.Currency == "" {
		return CurrencyBRL
	}
	return strings.ToUpper(p.Currency)
}

// DetailsText formata as sessões uma por linha, como sai no recibo.
func (q Quote) DetailsText() string {
	return FormatSessions(q.SessionDetails)
}

func FormatSessions(sessions []SessionDetail) string {
	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		lines = append(lines, fmt.Sprintf(
			"%s às %s - %dmin (%s - %s)",
			FormatDate(s.Date), s.Time, s.DurationMinutes, s.TreatmentType, s.SessionType,
		))
	}
	return strings.Join(lines, "\n")
}

// FormatDate converte YYYY-MM-DD para dd/mm/yyyy. Outros formatos passam direto.
func FormatDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func positive(d *decimal.Decimal) bool {
	return d != nil && d.GreaterThan(decimal.Zero)
}
