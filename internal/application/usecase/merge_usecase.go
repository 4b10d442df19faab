package usecase

import (
	"fmt"

	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/domain"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
	"github.com/jhoicas/bom-merge-api/internal/domain/merge"
	"github.com/jhoicas/bom-merge-api/internal/domain/repository"
)

// MergeUseCase fusiona las partes de una selección de orígenes y deriva el
// mapa de conflictos. Es una lectura pura: no guarda sesión en el servidor,
// cada petición se calcula de cero.
type MergeUseCase struct {
	sourceRepo repository.SourceRepository
	partRepo   repository.PartRepository
}

// NewMergeUseCase construye el caso de uso.
func NewMergeUseCase(sourceRepo repository.SourceRepository, partRepo repository.PartRepository) *MergeUseCase {
	return &MergeUseCase{sourceRepo: sourceRepo, partRepo: partRepo}
}

// Merge resuelve la selección, concatena las partes y anota los conflictos.
func (uc *MergeUseCase) Merge(in dto.MergeRequest) (*dto.MergeResponse, error) {
	parts, err := uc.Resolve(in)
	if err != nil {
		return nil, err
	}
	return &dto.MergeResponse{
		Parts:     toPartResponses(parts),
		Conflicts: merge.DetectConflicts(parts),
	}, nil
}

// Resolve devuelve la concatenación de las partes de todos los orígenes de
// la selección, respetando el orden interno de cada origen y el orden de la
// selección. No deduplica: un duplicado exacto aparece dos veces y emerge en
// el detector como grupo sin conflictos, no se pierde.
//
// Estrategias de identidad en orden: primero FileIDs (estable); si esa vía
// falla y hay nombres, se reintenta por nombre visible (respaldo para
// clientes antiguos). Si ambas fallan, se devuelve el error de la vía por
// id, que es la identidad preferida.
func (uc *MergeUseCase) Resolve(in dto.MergeRequest) ([]*entity.Part, error) {
	if len(in.FileIDs) == 0 && len(in.SourceNames) == 0 {
		return nil, domain.ErrEmptySelection
	}
	if len(in.FileIDs) == 0 {
		return uc.resolveByNames(in.SourceNames)
	}
	parts, idErr := uc.resolveByFileIDs(in.FileIDs)
	if idErr == nil {
		return parts, nil
	}
	if len(in.SourceNames) > 0 {
		if parts, nameErr := uc.resolveByNames(in.SourceNames); nameErr == nil {
			return parts, nil
		}
	}
	return nil, idErr
}

func (uc *MergeUseCase) resolveByFileIDs(fileIDs []string) ([]*entity.Part, error) {
	var all []*entity.Part
	for _, fileID := range fileIDs {
		src, err := uc.sourceRepo.GetByFileID(fileID)
		if err != nil {
			return nil, err
		}
		if src == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, fileID)
		}
		parts, err := uc.partRepo.ListByFileID(fileID)
		if err != nil {
			return nil, err
		}
		all = append(all, parts...)
	}
	return all, nil
}

// resolveByNames es best-effort: si dos orígenes comparten nombre visible el
// resultado puede mezclarlos; limitación conocida de los snapshots antiguos.
func (uc *MergeUseCase) resolveByNames(names []string) ([]*entity.Part, error) {
	var all []*entity.Part
	for _, name := range names {
		parts, err := uc.partRepo.ListBySourceName(name)
		if err != nil {
			return nil, err
		}
		if len(parts) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, name)
		}
		all = append(all, parts...)
	}
	return all, nil
}

func toPartResponse(p *entity.Part) dto.PartResponse {
	return dto.PartResponse{
		ID:                p.ID,
		SourceFileID:      p.SourceFileID,
		SourceName:        p.SourceName,
		Level:             p.Level,
		PartCode:          p.PartCode,
		PartName:          p.PartName,
		Spec:              p.Spec,
		Version:           p.Version,
		Material:          p.Material,
		UnitCountPerLevel: p.UnitCountPerLevel,
		UnitWeightKg:      p.UnitWeightKg,
		TotalWeightKg:     merge.FieldValue(p, merge.FieldTotalWeightKg),
		PartProperty:      p.PartProperty,
		DrawingSize:       p.DrawingSize,
		ReferenceNumber:   p.ReferenceNumber,
		PurchaseStatus:    p.PurchaseStatus,
		ProcessRoute:      p.ProcessRoute,
		Remark:            p.Remark,
	}
}

func toPartResponses(parts []*entity.Part) []dto.PartResponse {
	items := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		items = append(items, toPartResponse(p))
	}
	return items
}
