package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
)

// SnapshotHandler maneja los proyectos combinados persistidos.
type SnapshotHandler struct {
	uc *usecase.SnapshotUseCase
}

// NewSnapshotHandler construye el handler de snapshots.
func NewSnapshotHandler(uc *usecase.SnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// Save godoc
// @Summary      Guardar el conjunto fusionado como snapshot
// @Description  Materializa las partes (post-ediciones) como copias
//               independientes con linaje a sus orígenes. El nombre debe ser
//               único.
// @Tags         snapshots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveSnapshotRequest  true  "name, linaje y partes"
// @Success      201   {object}  dto.SaveSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/snapshots [post]
func (h *SnapshotHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveSnapshotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar snapshots
// @Description  Los administradores ven todos; el resto solo los propios.
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SnapshotResponse
// @Router       /api/snapshots [get]
func (h *SnapshotHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(GetUserID(c), IsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetParts godoc
// @Summary      Listar las partes de un snapshot
// @Description  Devuelve las copias materializadas, inmunes a cambios
//               posteriores en los orígenes.
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id del snapshot"
// @Success      200  {array}   dto.PartResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/snapshots/{id}/parts [get]
func (h *SnapshotHandler) GetParts(c *fiber.Ctx) error {
	items, err := h.uc.GetParts(c.Params("id"), GetUserID(c), IsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Delete godoc
// @Summary      Eliminar un snapshot completo
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id del snapshot"
// @Success      200  {object}  dto.StatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/snapshots/{id} [delete]
func (h *SnapshotHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c), IsAdmin(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// DeletePart godoc
// @Summary      Eliminar una parte de un snapshot
// @Description  Solo esa copia; el resto del snapshot queda igual.
// @Tags         snapshots
// @Security     Bearer
// @Produce      json
// @Param        id       path  string  true  "id del snapshot"
// @Param        part_id  path  string  true  "id de la copia de parte"
// @Success      200  {object}  dto.StatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/snapshots/{id}/parts/{part_id} [delete]
func (h *SnapshotHandler) DeletePart(c *fiber.Ctx) error {
	if err := h.uc.DeletePart(c.Params("id"), c.Params("part_id"), GetUserID(c), IsAdmin(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// Export godoc
// @Summary      Exportar un snapshot a Excel
// @Description  Descarga el snapshot como libro .xlsx con las columnas
//               estándar más la columna de origen.
// @Tags         snapshots
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id  path  string  true  "id del snapshot"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/snapshots/{id}/export [get]
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	name, file, err := h.uc.Export(c.Params("id"), GetUserID(c), IsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename*=UTF-8''%s.xlsx`, url.PathEscape(name)))
	return c.Send(file)
}
