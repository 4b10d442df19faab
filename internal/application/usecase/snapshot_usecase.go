package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/domain"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
	"github.com/jhoicas/bom-merge-api/internal/domain/repository"
)

// SnapshotUseCase persiste y administra proyectos combinados. Un snapshot es
// una materialización puntual: después de guardarse nunca se rederiva de sus
// orígenes, solo admite borrado de partes individuales o borrado completo.
type SnapshotUseCase struct {
	repo     repository.SnapshotRepository
	exporter SnapshotExporter
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(repo repository.SnapshotRepository, exporter SnapshotExporter) *SnapshotUseCase {
	return &SnapshotUseCase{repo: repo, exporter: exporter}
}

// Save guarda el conjunto fusionado (post-ediciones) como snapshot con
// linaje: FileIDs de los orígenes más los nombres visibles vigentes. El
// nombre debe ser único; la unicidad se aplica en todas las vías de guardado.
func (uc *SnapshotUseCase) Save(createdBy string, in dto.SaveSnapshotRequest) (*dto.SaveSnapshotResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Parts) == 0 {
		return nil, domain.ErrEmptyRecordSet
	}
	exists, err := uc.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateName
	}

	now := time.Now()
	snapshot := &entity.Snapshot{
		ID:            uuid.New().String(),
		Name:          name,
		SourceFileIDs: in.SourceFileIDs,
		SourceNames:   in.SourceNames,
		CreatedBy:     createdBy,
		CreatedAt:     now,
	}
	parts := make([]*entity.SnapshotPart, 0, len(in.Parts))
	for _, p := range in.Parts {
		parts = append(parts, toSnapshotPart(snapshot.ID, p, now))
	}
	if err := uc.repo.Create(snapshot, parts); err != nil {
		return nil, err
	}
	return &dto.SaveSnapshotResponse{SnapshotID: snapshot.ID}, nil
}

// List lista snapshots: los admin ven todos, el resto solo los propios.
func (uc *SnapshotUseCase) List(userID string, isAdmin bool) ([]dto.SnapshotResponse, error) {
	createdBy := userID
	if isAdmin {
		createdBy = ""
	}
	list, err := uc.repo.List(createdBy)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SnapshotResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSnapshotResponse(s))
	}
	return items, nil
}

// GetParts devuelve las copias de partes del snapshot, independientes de
// cualquier cambio posterior en los orígenes.
func (uc *SnapshotUseCase) GetParts(snapshotID, userID string, isAdmin bool) ([]dto.PartResponse, error) {
	if _, err := uc.authorize(snapshotID, userID, isAdmin); err != nil {
		return nil, err
	}
	parts, err := uc.repo.ListParts(snapshotID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		items = append(items, toSnapshotPartResponse(p))
	}
	return items, nil
}

// Delete elimina el snapshot y todas sus copias de partes.
func (uc *SnapshotUseCase) Delete(snapshotID, userID string, isAdmin bool) error {
	if _, err := uc.authorize(snapshotID, userID, isAdmin); err != nil {
		return err
	}
	return uc.repo.Delete(snapshotID)
}

// DeletePart elimina una sola copia; el resto del snapshot queda igual.
func (uc *SnapshotUseCase) DeletePart(snapshotID, partID, userID string, isAdmin bool) error {
	if _, err := uc.authorize(snapshotID, userID, isAdmin); err != nil {
		return err
	}
	return uc.repo.DeletePart(snapshotID, partID)
}

// Export delega la representación Excel al colaborador y devuelve el archivo
// junto con el nombre del snapshot para el encabezado de descarga.
func (uc *SnapshotUseCase) Export(snapshotID, userID string, isAdmin bool) (name string, file []byte, err error) {
	snapshot, err := uc.authorize(snapshotID, userID, isAdmin)
	if err != nil {
		return "", nil, err
	}
	parts, err := uc.repo.ListParts(snapshotID)
	if err != nil {
		return "", nil, err
	}
	file, err = uc.exporter.Export(snapshot.Name, parts)
	if err != nil {
		return "", nil, err
	}
	return snapshot.Name, file, nil
}

// authorize carga el snapshot y verifica visibilidad: admin ve todo, el
// resto solo lo propio.
func (uc *SnapshotUseCase) authorize(snapshotID, userID string, isAdmin bool) (*entity.Snapshot, error) {
	snapshot, err := uc.repo.GetByID(snapshotID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, domain.ErrNotFound
	}
	if !isAdmin && snapshot.CreatedBy != userID {
		return nil, domain.ErrForbidden
	}
	return snapshot, nil
}

func toSnapshotResponse(s *entity.Snapshot) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ID:            s.ID,
		Name:          s.Name,
		SourceFileIDs: s.SourceFileIDs,
		SourceNames:   s.SourceNames,
		CreatedBy:     s.CreatedBy,
		CreatedAt:     s.CreatedAt,
	}
}

func toSnapshotPart(snapshotID string, p dto.PartResponse, now time.Time) *entity.SnapshotPart {
	var weight decimal.NullDecimal
	if w := strings.TrimSpace(p.TotalWeightKg); w != "" {
		if d, err := decimal.NewFromString(w); err == nil {
			weight = decimal.NullDecimal{Decimal: d, Valid: true}
		}
	}
	return &entity.SnapshotPart{
		ID:                uuid.New().String(),
		SnapshotID:        snapshotID,
		SourceName:        p.SourceName,
		Level:             p.Level,
		PartCode:          p.PartCode,
		PartName:          p.PartName,
		Spec:              p.Spec,
		Version:           p.Version,
		Material:          p.Material,
		UnitCountPerLevel: p.UnitCountPerLevel,
		UnitWeightKg:      p.UnitWeightKg,
		TotalWeightKg:     weight,
		PartProperty:      p.PartProperty,
		DrawingSize:       p.DrawingSize,
		ReferenceNumber:   p.ReferenceNumber,
		PurchaseStatus:    p.PurchaseStatus,
		ProcessRoute:      p.ProcessRoute,
		Remark:            p.Remark,
		CreatedAt:         now,
	}
}

func toSnapshotPartResponse(p *entity.SnapshotPart) dto.PartResponse {
	weight := ""
	if p.TotalWeightKg.Valid {
		weight = p.TotalWeightKg.Decimal.String()
	}
	return dto.PartResponse{
		ID:                p.ID,
		SourceName:        p.SourceName,
		Level:             p.Level,
		PartCode:          p.PartCode,
		PartName:          p.PartName,
		Spec:              p.Spec,
		Version:           p.Version,
		Material:          p.Material,
		UnitCountPerLevel: p.UnitCountPerLevel,
		UnitWeightKg:      p.UnitWeightKg,
		TotalWeightKg:     weight,
		PartProperty:      p.PartProperty,
		DrawingSize:       p.DrawingSize,
		ReferenceNumber:   p.ReferenceNumber,
		PurchaseStatus:    p.PurchaseStatus,
		ProcessRoute:      p.ProcessRoute,
		Remark:            p.Remark,
	}
}
