package charge

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/depastori/clinica-psi/internal/domain/ledger"
	"github.com/depastori/clinica-psi/internal/domain/pricing"
	"github.com/depastori/clinica-psi/internal/render"
	"github.com/depastori/clinica-psi/internal/timezone"
)

type Document struct {
	HTML       []byte
	ArchiveKey string
}

// RenderChargeDocument gera o HTML da cobrança e, se houver archive, guarda uma cópia.
type RenderChargeDocument struct {
	store   ledger.Store
	get     *GetCharge
	archive render.Archive
	clock   timezone.Clock
}

func NewRenderChargeDocument(
	store ledger.Store,
	archive render.Archive,
	clock timezone.Clock,
) *RenderChargeDocument {
	return &RenderChargeDocument{
		store:   store,
		get:     NewGetCharge(store, clock),
		archive: archive,
		clock:   clock,
	}
}

func (uc *RenderChargeDocument) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	chargeID uuid.UUID,
) (*Document, error) {

	c, err := uc.get.load(ctx, practitionerID, chargeID)
	if err != nil {
		return nil, err
	}

	dir := uc.store.Directory()

	practitioner, err := dir.GetPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, ledger.NotFound(err, "practitioner_not_found", "Profissional não encontrado.")
	}

	patient, err := dir.GetPatient(ctx, practitionerID, c.PatientID)
	if err != nil {
		return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
	}

	apps, err := dir.ListAppointments(ctx, practitionerID, c.AppointmentIDs)
	if err != nil {
		return nil, err
	}
	quote := pricing.Calculate(apps, pricing.FallbackRate(c.Currency))

	settings, err := dir.GetPaymentSettings(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	instructions := ""
	if settings != nil {
		instructions = settings.PaymentInstructions
	}

	html, err := render.Charge(render.ChargeDocument{
		Practitioner: render.PractitionerParty(practitioner),
		Patient:      render.PatientParty(patient),
		Charge:       *c,
		Sessions:     quote.SessionDetails,
		TotalHours:   quote.TotalHours,
		Instructions: instructions,
		GeneratedAt:  uc.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	doc := &Document{HTML: html}

	if uc.archive != nil {
		key := render.ArchiveKey(practitionerID, c.Number)
		if err := uc.archive.Put(ctx, key, html, render.ContentType); err != nil {
			// o documento continua disponível mesmo sem a cópia
			log.Printf("[charge][document] archive %s failed: %v", key, err)
		} else {
			doc.ArchiveKey = key
		}
	}

	return doc, nil
}
