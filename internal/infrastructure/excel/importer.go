package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"

	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
	"github.com/jhoicas/bom-merge-api/internal/domain/entity"
)

var _ usecase.BOMReader = (*BOMImporter)(nil)

// BOMImporter lee un libro Excel de BOM y produce las filas de partes.
// Convención de los archivos de planta: la hoja de BOM es la tercera del
// libro cuando hay al menos tres, si no la primera. Las columnas se mapean
// por posición al orden estándar de campos; no hay mapeo configurable.
type BOMImporter struct{}

// NewBOMImporter construye el importador.
func NewBOMImporter() *BOMImporter {
	return &BOMImporter{}
}

// Read parsea el libro. La primera fila es el encabezado y se descarta; las
// filas totalmente vacías se omiten. Devuelve las partes sin identidad
// asignada (el caso de uso de importación pone IDs y origen).
func (i *BOMImporter) Read(r io.Reader) ([]*entity.Part, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	sheet := sheets[0]
	if len(sheets) >= 3 {
		sheet = sheets[2]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var parts []*entity.Part
	for _, row := range rows[1:] { // fila 0 = encabezado
		p, ok := rowToPart(row)
		if !ok {
			continue
		}
		parts = append(parts, p)
	}
	return parts, nil
}

// Orden estándar de columnas del BOM de planta. Las columnas sobrantes se
// ignoran; las faltantes quedan vacías.
const standardColumns = 15

func rowToPart(row []string) (*entity.Part, bool) {
	cells := make([]string, standardColumns)
	blank := true
	for i := 0; i < standardColumns && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
		if cells[i] != "" {
			blank = false
		}
	}
	if blank {
		return nil, false
	}
	return &entity.Part{
		Level:             coerceLevel(cells[0]),
		PartCode:          width.Narrow.String(cells[1]),
		PartName:          cells[2],
		Spec:              cells[3],
		Version:           cells[4],
		Material:          cells[5],
		UnitCountPerLevel: width.Narrow.String(cells[6]),
		UnitWeightKg:      width.Narrow.String(cells[7]),
		TotalWeightKg:     parseWeight(cells[8]),
		PartProperty:      cells[9],
		DrawingSize:       cells[10],
		ReferenceNumber:   cells[11],
		PurchaseStatus:    cells[12],
		ProcessRoute:      cells[13],
		Remark:            cells[14],
	}, true
}

// coerceLevel fuerza el nivel a entero en texto: "1.0" -> "1". Celdas vacías
// o no numéricas quedan en "0", igual que la depuración histórica de la
// importación.
func coerceLevel(v string) string {
	v = width.Narrow.String(v)
	if v == "" {
		return "0"
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return "0"
	}
	return d.Truncate(0).String()
}

// parseWeight convierte el peso total a NUMERIC; texto no numérico queda
// nulo (el valor crudo no se pierde en otros campos de peso, que son texto).
func parseWeight(v string) decimal.NullDecimal {
	v = width.Narrow.String(v)
	if v == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
