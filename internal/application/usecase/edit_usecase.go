package usecase

import (
	"time"

	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/domain"
	"github.com/jhoicas/bom-merge-api/internal/domain/merge"
	"github.com/jhoicas/bom-merge-api/internal/domain/repository"
)

// EditUseCase confirma un lote de ediciones pendientes sobre el conjunto
// fusionado de la selección: aplica el overlay sin mutar las partes base,
// persiste solo los registros que cambiaron y recalcula el mapa de
// conflictos sobre el conjunto completo (editadas y no editadas).
//
// Dos llamadas concurrentes sobre los mismos registros resuelven por
// last-write-wins, sin detección de lock optimista; política documentada.
type EditUseCase struct {
	mergeUC  *MergeUseCase
	partRepo repository.PartRepository
}

// NewEditUseCase construye el caso de uso.
func NewEditUseCase(mergeUC *MergeUseCase, partRepo repository.PartRepository) *EditUseCase {
	return &EditUseCase{mergeUC: mergeUC, partRepo: partRepo}
}

// Commit aplica y persiste las ediciones. Devuelve cuántas partes cambiaron
// y el mapa de conflictos ya actualizado. Si la selección no resuelve, no se
// persiste nada y el estado previo queda intacto.
func (uc *EditUseCase) Commit(in dto.UpdatePartsRequest) (*dto.UpdatePartsResponse, error) {
	if len(in.Edits) == 0 {
		return nil, domain.ErrInvalidInput
	}
	parts, err := uc.mergeUC.Resolve(dto.MergeRequest{FileIDs: in.FileIDs, SourceNames: in.SourceNames})
	if err != nil {
		return nil, err
	}

	overlay := merge.NewOverlay()
	for _, e := range in.Edits {
		overlay.SetField(e.PartID, e.Field, e.Value)
	}

	applied, changed := overlay.Apply(parts)
	now := time.Now()
	updated := 0
	for _, p := range changed {
		p.UpdatedAt = now
		if err := uc.partRepo.Update(p); err != nil {
			return nil, err
		}
		updated++
	}

	return &dto.UpdatePartsResponse{
		UpdatedCount: updated,
		Conflicts:    merge.DetectConflicts(applied),
	}, nil
}
