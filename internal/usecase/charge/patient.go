package charge

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/httperr"
	"github.com/depastori/clinica-psi/internal/models"
)

// resolvePatient aceita o id do paciente ou o nome completo exato.
// Nome repetido não é resolvido por ordem: o chamador precisa mandar o id.
func resolvePatient(
	ctx context.Context,
	dir directory.Directory,
	practitionerID uuid.UUID,
	ref string,
) (*models.Patient, error) {

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, httperr.ErrValidation("patient_required", "Informe o paciente.")
	}

	if id, err := uuid.Parse(ref); err == nil {
		p, err := dir.GetPatient(ctx, practitionerID, id)
		if err != nil {
			return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
		}
		return p, nil
	}

	matches, err := dir.FindPatientsByName(ctx, practitionerID, ref)
	if err != nil {
		return nil, err
	}

	switch len(matches) {
	case 0:
		return nil, httperr.ErrValidation("patient_not_found", "Nenhum paciente encontrado com esse nome.")
	case 1:
		return &matches[0], nil
	default:
		return nil, httperr.ErrValidation(
			"patient_ambiguous",
			"Mais de um paciente com esse nome. Selecione o paciente pelo identificador.",
		)
	}
}

func paymentOptions(
	ctx context.Context,
	dir directory.Directory,
	practitionerID uuid.UUID,
	given []string,
) ([]string, error) {

	out := make([]string, 0, len(given))
	for _, o := range given {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) > 0 {
		return out, nil
	}
	return dir.ListActivePaymentMethods(ctx, practitionerID)
}
