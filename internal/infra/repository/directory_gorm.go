package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/depastori/clinica-psi/internal/domain/directory"
	"github.com/depastori/clinica-psi/internal/models"
)

// DirectoryGormRepository lê os cadastros mantidos fora do financeiro.
type DirectoryGormRepository struct {
	db *gorm.DB
}

var _ directory.Directory = (*DirectoryGormRepository)(nil)

func NewDirectoryGormRepository(db *gorm.DB) *DirectoryGormRepository {
	return &DirectoryGormRepository{db: db}
}

// --------------------------------------------------
// Practitioner / Patient
// --------------------------------------------------

func (r *DirectoryGormRepository) GetPractitioner(
	ctx context.Context,
	practitionerID uuid.UUID,
) (*models.Practitioner, error) {

	var p models.Practitioner
	if err := r.db.WithContext(ctx).First(&p, "id = ?", practitionerID).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *DirectoryGormRepository) GetPatient(
	ctx context.Context,
	practitionerID uuid.UUID,
	patientID uuid.UUID,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("id = ? AND practitioner_id = ?", patientID, practitionerID).
		First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *DirectoryGormRepository) FindPatientsByName(
	ctx context.Context,
	practitionerID uuid.UUID,
	name string,
) ([]models.Patient, error) {

	var patients []models.Patient
	if err := r.db.WithContext(ctx).
		Where("practitioner_id = ?", practitionerID).
		Where("LOWER(TRIM(full_name)) = ?", strings.ToLower(strings.TrimSpace(name))).
		Order("full_name").
		Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (r *DirectoryGormRepository) SearchPatients(
	ctx context.Context,
	practitionerID uuid.UUID,
	term string,
	limit int,
) ([]models.Patient, error) {

	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	q := r.db.WithContext(ctx).
		Where("practitioner_id = ?", practitionerID).
		Where("LOWER(full_name) LIKE ?", like).
		Order("full_name")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var patients []models.Patient
	if err := q.Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *DirectoryGormRepository) ListAppointments(
	ctx context.Context,
	practitionerID uuid.UUID,
	ids []uuid.UUID,
) ([]models.Appointment, error) {

	if len(ids) == 0 {
		return []models.Appointment{}, nil
	}

	var found []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("practitioner_id = ? AND id IN ?", practitionerID, ids).
		Find(&found).Error; err != nil {
		return nil, translate(err)
	}

	// devolve na ordem pedida
	byID := make(map[uuid.UUID]models.Appointment, len(found))
	for _, ap := range found {
		byID[ap.ID] = ap
	}
	out := make([]models.Appointment, 0, len(found))
	for _, id := range ids {
		if ap, ok := byID[id]; ok {
			out = append(out, ap)
		}
	}
	return out, nil
}

// --------------------------------------------------
// Payment settings
// --------------------------------------------------

func (r *DirectoryGormRepository) GetPaymentSettings(
	ctx context.Context,
	practitionerID uuid.UUID,
) (*models.PaymentSettings, error) {

	var ps models.PaymentSettings
	err := r.db.WithContext(ctx).
		Where("practitioner_id = ?", practitionerID).
		First(&ps).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *DirectoryGormRepository) ListActivePaymentMethods(
	ctx context.Context,
	practitionerID uuid.UUID,
) ([]string, error) {

	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentMethod{}).
		Where("practitioner_id = ? AND is_active = ?", practitionerID, true).
		Order("created_at").
		Pluck("name", &names).Error; err != nil {
		return nil, translate(err)
	}
	return names, nil
}
