package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
	"github.com/jhoicas/bom-merge-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `
	id, file_unique_id, source_name, level, part_code, part_name, spec,
	version, material, unit_count_per_level, unit_weight_kg, total_weight_kg,
	part_property, drawing_size, reference_number, purchase_status, process_route,
	remark, created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL
// (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para partes.
// Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// GetByID obtiene una parte por ID.
func (r *PartRepo) GetByID(id string) (*entity.Part, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+partColumns+` FROM parts_library WHERE id = $1`, id)
	p, err := scanPart(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// ListByFileID devuelve las partes de un origen en su orden de importación.
func (r *PartRepo) ListByFileID(fileID string) ([]*entity.Part, error) {
	return r.list(`SELECT `+partColumns+` FROM parts_library WHERE file_unique_id = $1 ORDER BY seq`, fileID)
}

// ListBySourceName vía de respaldo por nombre visible. Si dos orígenes
// comparten nombre el resultado los mezcla; limitación documentada de los
// snapshots antiguos que solo guardaron nombres.
func (r *PartRepo) ListBySourceName(name string) ([]*entity.Part, error) {
	return r.list(`SELECT `+partColumns+` FROM parts_library WHERE source_name = $1 ORDER BY file_unique_id, seq`, name)
}

// Update persiste los campos editables de una parte. La identidad (id,
// file_unique_id, part_code) no se actualiza por esta vía.
func (r *PartRepo) Update(part *entity.Part) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE parts_library SET
			level = $2, part_name = $3, spec = $4, version = $5, material = $6,
			unit_count_per_level = $7, unit_weight_kg = $8, total_weight_kg = $9,
			part_property = $10, drawing_size = $11, reference_number = $12,
			purchase_status = $13, process_route = $14, remark = $15, updated_at = $16
		WHERE id = $1`,
		part.ID, part.Level, part.PartName, part.Spec, part.Version, part.Material,
		part.UnitCountPerLevel, part.UnitWeightKg, part.TotalWeightKg,
		part.PartProperty, part.DrawingSize, part.ReferenceNumber,
		part.PurchaseStatus, part.ProcessRoute, part.Remark, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

func (r *PartRepo) list(query string, args ...any) ([]*entity.Part, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.SourceFileID, &p.SourceName, &p.Level, &p.PartCode, &p.PartName, &p.Spec,
		&p.Version, &p.Material, &p.UnitCountPerLevel, &p.UnitWeightKg, &p.TotalWeightKg,
		&p.PartProperty, &p.DrawingSize, &p.ReferenceNumber, &p.PurchaseStatus, &p.ProcessRoute,
		&p.Remark, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
