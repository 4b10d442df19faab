package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
)

var _ usecase.SnapshotExporter = (*SnapshotExporter)(nil)

// Encabezados del Excel exportado, en el orden estándar de campos más la
// columna final de origen.
var exportHeaders = []string{
	"层级", "零件代号", "零件名称", "规格", "版本", "材料",
	"单层数量", "单重(kg)", "总重(kg)", "属性", "图幅", "参图号",
	"采购状态", "工艺路线", "备注", "所属项目",
}

const exportSheet = "物料清单"

// SnapshotExporter representa un snapshot como libro Excel descargable.
type SnapshotExporter struct{}

// NewSnapshotExporter construye el exportador.
func NewSnapshotExporter() *SnapshotExporter {
	return &SnapshotExporter{}
}

// Export genera el libro con una hoja de lista de materiales: encabezados
// estándar, una fila por copia de parte y anchos de columna ajustados al
// contenido (con tope).
func (e *SnapshotExporter) Export(name string, parts []*entity.SnapshotPart) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("eliminar hoja por defecto: %w", err)
	}

	widths := make([]int, len(exportHeaders))
	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("escribir encabezado: %w", err)
		}
		widths[col] = len([]rune(h)) * 2
	}

	for rowNo, p := range parts {
		values := partRow(p)
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNo+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("escribir celda: %w", err)
			}
			if n := len([]rune(v)); n > widths[col] {
				widths[col] = n
			}
		}
	}

	for col, w := range widths {
		colName, _ := excelize.ColumnNumberToName(col + 1)
		adjusted := float64(w + 2)
		if adjusted > 50 {
			adjusted = 50
		}
		if err := f.SetColWidth(exportSheet, colName, colName, adjusted); err != nil {
			return nil, fmt.Errorf("ajustar ancho: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("serializar excel: %w", err)
	}
	return buf.Bytes(), nil
}

func partRow(p *entity.SnapshotPart) []string {
	weight := ""
	if p.TotalWeightKg.Valid {
		weight = p.TotalWeightKg.Decimal.String()
	}
	return []string{
		p.Level, p.PartCode, p.PartName, p.Spec, p.Version, p.Material,
		p.UnitCountPerLevel, p.UnitWeightKg, weight, p.PartProperty,
		p.DrawingSize, p.ReferenceNumber, p.PurchaseStatus, p.ProcessRoute,
		p.Remark, p.SourceName,
	}
}
