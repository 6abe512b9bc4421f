package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/models"
)

const ContentType = "text/html; charset=utf-8"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(
	template.New("documents").
		Funcs(template.FuncMap{
			"money":       Money,
			"date":        formatDate,
			"statusLabel": statusLabel,
			"lines":       func(s string) []string { return strings.Split(s, "\n") },
			"sessionDate": pricing.FormatDate,
		}).
		ParseFS(templateFS, "templates/*.html"),
)

// Archive guarda uma cópia do documento gerado.
type Archive interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

type Party struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	Registration string
}

func PractitionerParty(p *models.Practitioner) Party {
	if p == nil {
		return Party{}
	}
	return Party{
		Name:         p.FullName,
		Email:        p.Email,
		Phone:        p.Phone,
		Address:      p.Address,
		Registration: p.Registration,
	}
}

func PatientParty(p *models.Patient) Party {
	if p == nil {
		return Party{}
	}
	return Party{
		Name:    p.FullName,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}

type ChargeDocument struct {
	Practitioner Party
	Patient      Party
	Charge       models.Charge
	Sessions     []pricing.SessionDetail
	TotalHours   float64
	Instructions string
	GeneratedAt  time.Time
}

type ReceiptDocument struct {
	Practitioner Party
	Patient      Party
	Receipt      models.Receipt
	Sessions     []pricing.SessionDetail
	GeneratedAt  time.Time
}

func Charge(doc ChargeDocument) ([]byte, error) {
	return execute("charge.html", doc)
}

func Receipt(doc ReceiptDocument) ([]byte, error) {
	return execute("receipt.html", doc)
}

// ArchiveKey: documents/<profissional>/<número>.html
func ArchiveKey(practitionerID uuid.UUID, number string) string {
	return fmt.Sprintf("documents/%s/%s.html", practitionerID, number)
}

func execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Money formata no padrão brasileiro: R$ 1.234,50 / € 80,00.
func Money(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	out := pricing.Symbol(currency) + " " + grouped.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func statusLabel(status string) string {
	switch status {
	case "pending":
		return "Pendente"
	case "paid":
		return "Pago"
	case "overdue":
		return "Vencido"
	default:
		return "Cancelado"
	}
}
