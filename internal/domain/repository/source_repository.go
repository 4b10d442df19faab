package repository

import "github.com/jhoicas/bom-merge-api/internal/domain/entity"

// SourceRepository define el puerto de persistencia para los archivos
// origen (DIP). Rename cambia solo el nombre visible; el FileID es
// inmutable y los snapshots ya guardados no se ven afectados.
type SourceRepository interface {
	// Create registra el origen junto con todas sus partes de forma atómica:
	// una importación a medias nunca queda visible.
	Create(source *entity.Source, parts []*entity.Part) error
	GetByFileID(fileID string) (*entity.Source, error)
	List() ([]*entity.Source, error)
	Rename(fileID, newName string) error
	Delete(fileID string) error
}
