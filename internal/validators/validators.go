package validators

import (
	"net"
	"strings"
	"time"

	"github.com/depastori/clinica-psi/internal/httperr"
)

const DateLayout = "2006-01-02"

// LookupDomain pode ser trocado nos testes para não depender de DNS.
var LookupDomain = func(domain string) bool {
	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return LookupDomain(email[at+1:])
}

// NormalizePaymentMethod: a forma de pagamento é só um rótulo (pix, cartao_credito, mbway...).
func NormalizePaymentMethod(method string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(method))
	if m == "" {
		return "", httperr.ErrValidation("payment_method_required", "Informe a forma de pagamento.")
	}
	if len(m) > 30 {
		return "", httperr.ErrValidation("invalid_payment_method", "Forma de pagamento inválida.")
	}
	return m, nil
}

// ParseDate aceita YYYY-MM-DD ou RFC3339. Datas simples caem na meia-noite de loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, httperr.ErrValidation("invalid_date", "Data inválida. Use o formato AAAA-MM-DD.")
}
