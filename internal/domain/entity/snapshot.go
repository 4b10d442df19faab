package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot es un proyecto combinado persistido: copia inmutable del conjunto
// de partes resultante de una fusión, con linaje a sus orígenes. Guarda tanto
// los FileIDs (identidad preferida) como los nombres visibles vigentes al
// momento de guardar (identidad de respaldo para snapshots antiguos).
// Tras guardarse solo admite borrado de partes individuales.
type Snapshot struct {
	ID            string
	Name          string
	SourceFileIDs []string
	SourceNames   []string
	CreatedBy     string
	CreatedAt     time.Time
}

// SnapshotPart es la copia de una parte dentro de un Snapshot. Es una copia
// materializada (copy-on-merge): cambios posteriores en el origen no la tocan.
type SnapshotPart struct {
	ID                string
	SnapshotID        string
	SourceName        string
	Level             string
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
}
