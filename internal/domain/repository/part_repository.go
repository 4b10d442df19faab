package repository

import "github.com/jhoicas/bom-merge-api/internal/domain/entity"

// PartRepository define el puerto de persistencia para las partes de la
// biblioteca (filas de BOM importadas).
type PartRepository interface {
	GetByID(id string) (*entity.Part, error)
	// ListByFileID devuelve las partes de un origen en su orden de importación.
	ListByFileID(fileID string) ([]*entity.Part, error)
	// ListBySourceName es la vía de respaldo por nombre visible (snapshots
	// antiguos solo guardaron nombres). Si hay nombres repetidos el resultado
	// puede no ser el esperado; limitación documentada.
	ListBySourceName(name string) ([]*entity.Part, error)
	// Update persiste los campos editables de una parte ya modificada.
	Update(part *entity.Part) error
}
