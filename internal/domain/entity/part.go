package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa una fila de un BOM importado. La identidad de agrupación
// entre orígenes es PartCode; un código en blanco no agrupa con nadie.
// Los pesos se conservan como texto tal como vienen del Excel, salvo
// TotalWeightKg que la importación ya depuró a NUMERIC.
type Part struct {
	ID                string
	SourceFileID      string // FileID del Source dueño
	SourceName        string // nombre visible del origen, denormalizado (se actualiza al renombrar)
	Level             string // contenido numérico, se conserva como texto
	PartCode          string
	PartName          string
	Spec              string
	Version           string
	Material          string
	UnitCountPerLevel string
	UnitWeightKg      string
	TotalWeightKg     decimal.NullDecimal
	PartProperty      string
	DrawingSize       string
	ReferenceNumber   string
	PurchaseStatus    string
	ProcessRoute      string
	Remark            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
