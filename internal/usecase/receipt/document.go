package receipt

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

type RenderReceiptDocument struct {
	store   ledger.Store
	archive render.Archive
	clock   timezone.Clock
}

func NewRenderReceiptDocument(
	store ledger.Store,
	archive render.Archive,
	clock timezone.Clock,
) *RenderReceiptDocument {
	return &RenderReceiptDocument{
		store:   store,
		archive: archive,
		clock:   clock,
	}
}

func (uc *RenderReceiptDocument) Execute(
	ctx context.Context,
	practitionerID uuid.UUID,
	receiptID uuid.UUID,
) (*Document, error) {

	if err := ledger.RequirePractitioner(practitionerID); err != nil {
		return nil, err
	}

	rc, err := uc.store.Receipts().Get(ctx, practitionerID, receiptID)
	if err != nil {
		return nil, ledger.NotFound(err, "receipt_not_found", "Recibo não encontrado.")
	}

	dir := uc.store.Directory()

	practitioner, err := dir.GetPractitioner(ctx, practitionerID)
	if err != nil {
		return nil, ledger.NotFound(err, "practitioner_not_found", "Profissional não encontrado.")
	}

	patient, err := dir.GetPatient(ctx, practitionerID, rc.PatientID)
	if err != nil {
		return nil, ledger.NotFound(err, "patient_not_found", "Paciente não encontrado.")
	}

	apps, err := dir.ListAppointments(ctx, practitionerID, rc.AppointmentIDs)
	if err != nil {
		return nil, err
	}

	html, err := render.Receipt(render.ReceiptDocument{
		Practitioner: render.PractitionerParty(practitioner),
		Patient:      render.PatientParty(patient),
		Receipt:      *rc,
		Sessions:     pricing.CompletedSessions(apps),
		GeneratedAt:  uc.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	doc := &Document{HTML: html}

	if uc.archive != nil {
		key := render.ArchiveKey(practitionerID, rc.Number)
		if err := uc.archive.Put(ctx, key, html, render.ContentType); err != nil {
			log.Printf("[receipt][document] archive %s failed: %v", key, err)
		} else {
			doc.ArchiveKey = key
		}
	}

	return doc, nil
}
