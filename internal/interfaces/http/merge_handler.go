package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
)

// MergeHandler maneja la vista fusionada y la confirmación de ediciones.
type MergeHandler struct {
	mergeUC *usecase.MergeUseCase
	editUC  *usecase.EditUseCase
}

// NewMergeHandler construye el handler de fusión.
func NewMergeHandler(mergeUC *usecase.MergeUseCase, editUC *usecase.EditUseCase) *MergeHandler {
	return &MergeHandler{mergeUC: mergeUC, editUC: editUC}
}

// Merge godoc
// @Summary      Fusionar la selección de orígenes
// @Description  Concatena las partes de los orígenes seleccionados y deriva el
//               mapa de conflictos por part_code. Lectura pura: no guarda
//               estado de sesión en el servidor.
// @Tags         merge
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MergeRequest  true  "file_ids y/o source_names"
// @Success      200   {object}  dto.MergeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/merge [post]
func (h *MergeHandler) Merge(c *fiber.Ctx) error {
	var in dto.MergeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.mergeUC.Merge(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateParts godoc
// @Summary      Confirmar ediciones sobre el conjunto fusionado
// @Description  Aplica el lote de ediciones pendientes, persiste solo las
//               partes que cambiaron y devuelve el mapa de conflictos
//               recalculado sobre el conjunto completo.
// @Tags         merge
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePartsRequest  true  "edits más la selección"
// @Success      200   {object}  dto.UpdatePartsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/parts/updates [post]
func (h *MergeHandler) UpdateParts(c *fiber.Ctx) error {
	var in dto.UpdatePartsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.editUC.Commit(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
