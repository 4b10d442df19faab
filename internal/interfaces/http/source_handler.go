package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bom-merge-api/internal/application/dto"
	"github.com/jhoicas/bom-merge-api/internal/application/usecase"
)

// SourceHandler maneja el registro y la administración de archivos origen.
type SourceHandler struct {
	uc *usecase.SourceUseCase
}

// NewSourceHandler construye el handler de orígenes.
func NewSourceHandler(uc *usecase.SourceUseCase) *SourceHandler {
	return &SourceHandler{uc: uc}
}

// Upload godoc
// @Summary      Importar un BOM desde Excel
// @Description  Registra el archivo como origen nuevo con identidad propia y
//               todas sus filas de partes en una sola transacción.
// @Tags         sources
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "libro Excel (.xlsx)"
// @Success      201   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/uploads [post]
func (h *SourceHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "se requiere el campo multipart 'file'"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo abrir el archivo subido"})
	}
	defer f.Close()

	out, err := h.uc.Import(fileHeader.Filename, f, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar orígenes registrados
// @Tags         sources
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SourceResponse
// @Router       /api/sources [get]
func (h *SourceHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// Rename godoc
// @Summary      Renombrar un origen
// @Description  Cambia solo el nombre visible; la identidad y los snapshots
//               existentes no se tocan.
// @Tags         sources
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        file_id  path  string                   true  "identidad del origen"
// @Param        body     body  dto.RenameSourceRequest  true  "display_name nuevo"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sources/{file_id}/name [put]
func (h *SourceHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameSourceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Rename(c.Params("file_id"), in.DisplayName); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// Delete godoc
// @Summary      Eliminar un origen y sus partes
// @Description  Los snapshots que lo referencian conservan sus copias.
// @Tags         sources
// @Security     Bearer
// @Produce      json
// @Param        file_id  path  string  true  "identidad del origen"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sources/{file_id} [delete]
func (h *SourceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("file_id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
