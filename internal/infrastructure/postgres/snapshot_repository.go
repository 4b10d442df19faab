package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bom-merge-api/internal/domain"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
	"github.com/jhoicas/bom-merge-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación del puerto SnapshotRepository sobre
// PostgreSQL. Guardar y borrar un snapshot son transaccionales: la fila del
// proyecto y sus copias de partes se escriben o desaparecen juntas.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotRepository construye el adaptador de persistencia para
// proyectos combinados.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, tx: NewTxRunner(pool)}
}

// Create escribe el snapshot y todas sus copias en una transacción.
func (r *SnapshotRepo) Create(snapshot *entity.Snapshot, parts []*entity.SnapshotPart) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO merged_projects (id, name, source_file_ids, source_names, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			snapshot.ID, snapshot.Name, snapshot.SourceFileIDs, snapshot.SourceNames,
			snapshot.CreatedBy, snapshot.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateName
			}
			return fmt.Errorf("insert snapshot: %w", err)
		}
		for seq, p := range parts {
			_, err := tx.Exec(ctx, `
				INSERT INTO merged_parts (
					id, merged_project_id, seq, source_name, level, part_code, part_name, spec,
					version, material, unit_count_per_level, unit_weight_kg, total_weight_kg,
					part_property, drawing_size, reference_number, purchase_status, process_route,
					remark, created_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`,
				p.ID, p.SnapshotID, seq, p.SourceName, p.Level, p.PartCode, p.PartName, p.Spec,
				p.Version, p.Material, p.UnitCountPerLevel, p.UnitWeightKg, p.TotalWeightKg,
				p.PartProperty, p.DrawingSize, p.ReferenceNumber, p.PurchaseStatus, p.ProcessRoute,
				p.Remark, p.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert snapshot part: %w", err)
			}
		}
		return nil
	})
}

// GetByID obtiene un snapshot por ID.
func (r *SnapshotRepo) GetByID(id string) (*entity.Snapshot, error) {
	var s entity.Snapshot
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, name, source_file_ids, source_names, created_by, created_at
		FROM merged_projects WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.SourceFileIDs, &s.SourceNames, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &s, nil
}

// ExistsByName indica si ya hay un snapshot con ese nombre.
func (r *SnapshotRepo) ExistsByName(name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM merged_projects WHERE name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists snapshot by name: %w", err)
	}
	return exists, nil
}

// List lista snapshots por fecha de creación descendente; createdBy vacío
// lista todos.
func (r *SnapshotRepo) List(createdBy string) ([]*entity.Snapshot, error) {
	query := `
		SELECT id, name, source_file_ids, source_names, created_by, created_at
		FROM merged_projects`
	args := []any{}
	if createdBy != "" {
		query += ` WHERE created_by = $1`
		args = append(args, createdBy)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Snapshot
	for rows.Next() {
		var s entity.Snapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.SourceFileIDs, &s.SourceNames, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ListParts devuelve las copias de partes del snapshot en el orden en que
// se guardaron.
func (r *SnapshotRepo) ListParts(snapshotID string) ([]*entity.SnapshotPart, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, merged_project_id, source_name, level, part_code, part_name, spec,
			version, material, unit_count_per_level, unit_weight_kg, total_weight_kg,
			part_property, drawing_size, reference_number, purchase_status, process_route,
			remark, created_at
		FROM merged_parts WHERE merged_project_id = $1 ORDER BY seq`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("list snapshot parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SnapshotPart
	for rows.Next() {
		var p entity.SnapshotPart
		if err := rows.Scan(
			&p.ID, &p.SnapshotID, &p.SourceName, &p.Level, &p.PartCode, &p.PartName, &p.Spec,
			&p.Version, &p.Material, &p.UnitCountPerLevel, &p.UnitWeightKg, &p.TotalWeightKg,
			&p.PartProperty, &p.DrawingSize, &p.ReferenceNumber, &p.PurchaseStatus, &p.ProcessRoute,
			&p.Remark, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el snapshot y todas sus copias en una transacción.
func (r *SnapshotRepo) Delete(id string) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM merged_parts WHERE merged_project_id = $1`, id,
		); err != nil {
			return fmt.Errorf("delete snapshot parts: %w", err)
		}
		cmd, err := tx.Exec(ctx, `DELETE FROM merged_projects WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete snapshot: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

// DeletePart elimina una sola copia del snapshot.
func (r *SnapshotRepo) DeletePart(snapshotID, partID string) error {
	cmd, err := r.pool.Exec(context.Background(),
		`DELETE FROM merged_parts WHERE merged_project_id = $1 AND id = $2`,
		snapshotID, partID,
	)
	if err != nil {
		return fmt.Errorf("delete snapshot part: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
