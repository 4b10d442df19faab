package usecase

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/domain"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
	"github.com/jhoicas/bom-merge-api/internal/domain/repository"
)

// SourceUseCase registra y administra archivos origen. El FileID se asigna
// aquí una sola vez por importación; renombrar después no cambia la
// identidad ni afecta snapshots ya guardados.
type SourceUseCase struct {
	sourceRepo repository.SourceRepository
	partRepo   repository.PartRepository
	reader     BOMReader
}

// NewSourceUseCase construye el caso de uso.
func NewSourceUseCase(sourceRepo repository.SourceRepository, partRepo repository.PartRepository, reader BOMReader) *SourceUseCase {
	return &SourceUseCase{sourceRepo: sourceRepo, partRepo: partRepo, reader: reader}
}

// Import parsea el Excel y registra un Source nuevo con todas sus partes en
// una sola transacción. El nombre visible inicial es el nombre del archivo
// sin extensión.
func (uc *SourceUseCase) Import(filename string, r io.Reader, uploadedBy string) (*dto.ImportResponse, error) {
	rows, err := uc.reader.Read(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyRecordSet
	}

	now := time.Now()
	displayName := strings.TrimSuffix(filename, filepath.Ext(filename))
	if strings.TrimSpace(displayName) == "" {
		return nil, domain.ErrInvalidInput
	}
	source := &entity.Source{
		FileID:      uuid.New().String(),
		DisplayName: displayName,
		UploadBatch: now.Format("20060102150405"),
		UploadedBy:  uploadedBy,
		CreatedAt:   now,
	}
	for _, p := range rows {
		p.ID = uuid.New().String()
		p.SourceFileID = source.FileID
		p.SourceName = source.DisplayName
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	if err := uc.sourceRepo.Create(source, rows); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{
		FileID:      source.FileID,
		DisplayName: source.DisplayName,
		PartCount:   len(rows),
	}, nil
}

// List lista los orígenes registrados con su cantidad de partes.
func (uc *SourceUseCase) List() ([]dto.SourceResponse, error) {
	sources, err := uc.sourceRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SourceResponse, 0, len(sources))
	for _, s := range sources {
		parts, err := uc.partRepo.ListByFileID(s.FileID)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.SourceResponse{
			FileID:      s.FileID,
			DisplayName: s.DisplayName,
			UploadBatch: s.UploadBatch,
			PartCount:   len(parts),
			CreatedAt:   s.CreatedAt,
		})
	}
	return items, nil
}

// Rename cambia solo el nombre visible. La identidad (FileID) y los
// snapshots existentes no se tocan.
func (uc *SourceUseCase) Rename(fileID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.ErrInvalidInput
	}
	src, err := uc.sourceRepo.GetByFileID(fileID)
	if err != nil {
		return err
	}
	if src == nil {
		return domain.ErrUnknownSource
	}
	return uc.sourceRepo.Rename(fileID, newName)
}

// Delete elimina el origen y sus partes. Los snapshots que lo referencian
// conservan sus copias y su linaje.
func (uc *SourceUseCase) Delete(fileID string) error {
	src, err := uc.sourceRepo.GetByFileID(fileID)
	if err != nil {
		return err
	}
	if src == nil {
		return domain.ErrUnknownSource
	}
	return uc.sourceRepo.Delete(fileID)
}
