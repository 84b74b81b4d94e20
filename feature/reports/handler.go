package reports

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ribeirowl/processador-giga/core/logger"
	"github.com/ribeirowl/processador-giga/core/reconcile"
	"github.com/ribeirowl/processador-giga/core/sheet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Form field names of the upload and branch selection pages.
const (
	FieldInventory = "estoque"
	FieldOrders    = "pedidos"
	FieldBranch    = "filial"
)

// User-facing messages.
const (
	MessageNotFound      = "Arquivo não encontrado"
	MessageInvalidFormat = "Erro: formato de arquivo inválido"
	MessageNoBranch      = "Erro: selecione uma filial."
	MessageUploadFailed  = "Erro: não foi possível salvar o arquivo."
)

// Handler handles HTTP requests for the report pages.
type Handler struct {
	service *Service
	cookie  string
}

// NewHandler creates a new HTTP handler. cookie names the session cookie.
func NewHandler(service *Service, cookie string) *Handler {
	if cookie == "" {
		cookie = "giga_session"
	}
	return &Handler{service: service, cookie: cookie}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleIndex)
	app.Post("/upload", h.HandleUpload)
	app.Post("/processar", h.HandleProcess)
	app.Get("/download/:tipo", h.HandleDownload)
}

// HandleIndex serves the upload form.
// @Summary Upload Form
// @Description Serves the HTML form used to upload the inventory and orders spreadsheets.
// @Tags reports
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *Handler) HandleIndex(c *fiber.Ctx) error {
	h.sessionID(c)
	return render(c, fiber.StatusOK, "index.html", nil)
}

// HandleUpload parses the uploaded spreadsheets.
// @Summary Upload Spreadsheets
// @Description Replaces the inventory and/or orders dataset of the session and lists the inventory branches.
// @Tags reports
// @Accept mpfd
// @Produce html
// @Param estoque formData file false "Inventory spreadsheet (Produto, Filial, Qtd)"
// @Param pedidos formData file false "Orders spreadsheet (Produto, Qtd)"
// @Success 200 {string} string "Branch selection page"
// @Failure 400 {string} string "Invalid file format"
// @Failure 500 {string} string "Upload could not be archived"
// @Router /upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ws := h.service.Workspace(h.sessionID(c))

	files, err := readUploads(c)
	if err != nil {
		l.Warn("Upload body unreadable", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).SendString(MessageInvalidFormat + ": " + err.Error())
	}

	branches, err := h.service.Upload(c.Context(), ws, files)
	if err != nil {
		var formatErr *sheet.FormatError
		if errors.As(err, &formatErr) {
			l.Warn("Upload rejected", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).SendString(MessageInvalidFormat + ": " + formatErr.Error())
		}
		l.Error("Upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString(MessageUploadFailed)
	}

	view := branchView{Branches: branches}
	if inv, ok := ws.Store.Inventory(); ok {
		view.Inventory = inv.Source
	}
	if ord, ok := ws.Store.Orders(); ok {
		view.Orders = ord.Source
	}
	return render(c, fiber.StatusOK, "select_filial.html", view)
}

// HandleProcess computes the reports for the selected branch.
// @Summary Process Branch
// @Description Computes branch stock, transfer candidates and purchase needs for the selected branch.
// @Tags reports
// @Accept x-www-form-urlencoded
// @Produce html
// @Param filial formData string true "Branch identifier"
// @Success 200 {string} string "Result page, or a plain message when spreadsheets are missing"
// @Failure 400 {string} string "No branch selected"
// @Router /processar [post]
func (h *Handler) HandleProcess(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ws := h.service.Workspace(h.sessionID(c))
	branch := c.FormValue(FieldBranch)

	result, err := h.service.Process(ws, branch)
	switch {
	case errors.Is(err, reconcile.ErrDatasetsMissing):
		l.Info("Processing requested before uploads")
		return c.SendString(reconcile.MessageDatasetsMissing)
	case errors.Is(err, reconcile.ErrEmptyBranch):
		return c.Status(fiber.StatusBadRequest).SendString(MessageNoBranch)
	case err != nil:
		l.Error("Processing failed", zap.Error(err))
		return err
	}

	view, err := newResultView(result)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "resultado.html", view)
}

// HandleDownload exports a cached report.
// @Summary Download Report
// @Description Downloads the last computed report of the session as an xlsx workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param tipo path string true "Report" Enums(estoque, transferencias, compras)
// @Success 200 {file} file "Workbook"
// @Failure 404 {string} string "Unknown report or nothing computed yet"
// @Router /download/{tipo} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ws := h.service.Workspace(h.sessionID(c))
	tipo := c.Params("tipo")

	var buf bytes.Buffer
	key, err := h.service.Export(ws, tipo, &buf)
	if errors.Is(err, reconcile.ErrReportNotFound) {
		return c.Status(fiber.StatusNotFound).SendString(MessageNotFound)
	}
	if err != nil {
		l.Error("Export failed", zap.String("report", tipo), zap.Error(err))
		return err
	}

	c.Attachment(key.FileName())
	c.Set(fiber.HeaderContentType, sheet.ContentType)
	return c.Send(buf.Bytes())
}

// readUploads reads the optional spreadsheet fields of a multipart form.
// A request that is not multipart carries no files; a multipart body that
// fails to parse is an error.
func readUploads(c *fiber.Ctx) (Uploads, error) {
	var files Uploads
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	if !strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		return files, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return files, fmt.Errorf("multipart form: %w", err)
	}
	if files.Inventory, err = formFile(form, FieldInventory); err != nil {
		return files, err
	}
	if files.Orders, err = formFile(form, FieldOrders); err != nil {
		return files, err
	}
	return files, nil
}

// formFile reads an optional file field. A missing field yields nil.
func formFile(form *multipart.Form, field string) (*File, error) {
	headers := form.File[field]
	if len(headers) == 0 || headers[0].Filename == "" {
		return nil, nil
	}

	fh := headers[0]
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &File{Name: fh.Filename, Data: data}, nil
}
