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

var _ repository.SourceRepository = (*SourceRepo)(nil)

// SourceRepo implementación del puerto SourceRepository sobre PostgreSQL.
// Las escrituras multi-fila (importar, renombrar, borrar) van en transacción.
type SourceRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSourceRepository construye el adaptador de persistencia para orígenes.
func NewSourceRepository(pool *pgxpool.Pool) *SourceRepo {
	return &SourceRepo{pool: pool, tx: NewTxRunner(pool)}
}

// Create registra el origen y todas sus partes en una sola transacción.
func (r *SourceRepo) Create(source *entity.Source, parts []*entity.Part) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO uploaded_files (file_unique_id, display_name, upload_batch, uploaded_by, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			source.FileID, source.DisplayName, source.UploadBatch, source.UploadedBy, source.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicateName
			}
			return fmt.Errorf("insert source: %w", err)
		}
		for seq, p := range parts {
			_, err := tx.Exec(ctx, `
				INSERT INTO parts_library (
					id, file_unique_id, source_name, seq, level, part_code, part_name, spec,
					version, material, unit_count_per_level, unit_weight_kg, total_weight_kg,
					part_property, drawing_size, reference_number, purchase_status, process_route,
					remark, created_at, updated_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
				p.ID, p.SourceFileID, p.SourceName, seq, p.Level, p.PartCode, p.PartName, p.Spec,
				p.Version, p.Material, p.UnitCountPerLevel, p.UnitWeightKg, p.TotalWeightKg,
				p.PartProperty, p.DrawingSize, p.ReferenceNumber, p.PurchaseStatus, p.ProcessRoute,
				p.Remark, p.CreatedAt, p.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert part: %w", err)
			}
		}
		return nil
	})
}

// GetByFileID obtiene un origen por su FileID estable.
func (r *SourceRepo) GetByFileID(fileID string) (*entity.Source, error) {
	var s entity.Source
	err := r.pool.QueryRow(context.Background(), `
		SELECT file_unique_id, display_name, upload_batch, uploaded_by, created_at
		FROM uploaded_files WHERE file_unique_id = $1`, fileID,
	).Scan(&s.FileID, &s.DisplayName, &s.UploadBatch, &s.UploadedBy, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get source: %w", err)
	}
	return &s, nil
}

// List lista los orígenes por fecha de subida descendente.
func (r *SourceRepo) List() ([]*entity.Source, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT file_unique_id, display_name, upload_batch, uploaded_by, created_at
		FROM uploaded_files ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	defer rows.Close()
	var list []*entity.Source
	for rows.Next() {
		var s entity.Source
		if err := rows.Scan(&s.FileID, &s.DisplayName, &s.UploadBatch, &s.UploadedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan source: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Rename cambia el nombre visible del origen y su copia denormalizada en
// parts_library. Los snapshots ya guardados no se tocan.
func (r *SourceRepo) Rename(fileID, newName string) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx,
			`UPDATE uploaded_files SET display_name = $2 WHERE file_unique_id = $1`,
			fileID, newName,
		)
		if err != nil {
			return fmt.Errorf("rename source: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrUnknownSource
		}
		_, err = tx.Exec(ctx,
			`UPDATE parts_library SET source_name = $2 WHERE file_unique_id = $1`,
			fileID, newName,
		)
		if err != nil {
			return fmt.Errorf("rename source parts: %w", err)
		}
		return nil
	})
}

// Delete elimina el origen y sus partes. Las copias dentro de snapshots se
// conservan (son materializaciones independientes).
func (r *SourceRepo) Delete(fileID string) error {
	ctx := context.Background()
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM parts_library WHERE file_unique_id = $1`, fileID,
		); err != nil {
			return fmt.Errorf("delete source parts: %w", err)
		}
		cmd, err := tx.Exec(ctx,
			`DELETE FROM uploaded_files WHERE file_unique_id = $1`, fileID,
		)
		if err != nil {
			return fmt.Errorf("delete source: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrUnknownSource
		}
		return nil
	})
}
