package repository

import "github.com/jhoicas/bom-merge-api/internal/domain/entity"

// SnapshotRepository define el puerto de persistencia para los proyectos
// combinados. Create debe escribir la fila del snapshot y todas sus copias
// de partes de forma atómica (una transacción); nunca debe quedar visible
// un snapshot parcial.
type SnapshotRepository interface {
	Create(snapshot *entity.Snapshot, parts []*entity.SnapshotPart) error
	GetByID(id string) (*entity.Snapshot, error)
	ExistsByName(name string) (bool, error)
	// List devuelve los snapshots visibles; createdBy vacío lista todos
	// (admin), no vacío filtra por creador.
	List(createdBy string) ([]*entity.Snapshot, error)
	ListParts(snapshotID string) ([]*entity.SnapshotPart, error)
	// Delete elimina el snapshot y todas sus copias de partes (transaccional).
	Delete(id string) error
	// DeletePart elimina una sola copia sin tocar el resto.
	DeletePart(snapshotID, partID string) error
}
