package usecase

import (
	"io"

	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
)

// BOMReader puerto del colaborador que parsea un libro Excel y produce la
// secuencia de filas de BOM (sin identidad asignada; eso es tarea del caso
// de uso de importación).
type BOMReader interface {
	Read(r io.Reader) ([]*entity.Part, error)
}

// SnapshotExporter puerto del colaborador que representa un snapshot como
// libro Excel listo para descargar.
type SnapshotExporter interface {
	Export(name string, parts []*entity.SnapshotPart) ([]byte, error)
}
