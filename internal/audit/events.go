package audit

import "github.com/google/uuid"

const (
	ActionChargeCreated   = "charge_created"
	ActionChargePaid      = "charge_paid"
	ActionChargeCancelled = "charge_cancelled"
	ActionChargeDeleted   = "charge_deleted"

	ActionReceiptIssued  = "receipt_issued"
	ActionReceiptDeleted = "receipt_deleted"

	ActionPackageCreated   = "package_created"
	ActionPackageConsumed  = "package_session_consumed"
	ActionPackageUpdated   = "package_updated"
	ActionPackageCancelled = "package_cancelled"
	ActionPackageDeleted   = "package_deleted"

	EntityCharge  = "charge"
	EntityReceipt = "receipt"
	EntityPackage = "package"
)

// For monta o evento padrão: o ator é o próprio profissional.
func For(practitionerID uuid.UUID, action, entity string, entityID uuid.UUID, meta any) Event {
	actor := practitionerID
	id := entityID
	return Event{
		PractitionerID: practitionerID,
		ActorID:        &actor,
		Action:         action,
		Entity:         entity,
		EntityID:       &id,
		Metadata:       meta,
	}
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}
