package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ptplabs/skillsheet-go/api/http/presenter"
	"github.com/ptplabs/skillsheet-go/pkg/config"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet"
	"github.com/ptplabs/skillsheet-go/pkg/skillsheet/review"
)

// ExtractHandler accepts an uploaded workbook and returns the generated
// review artifact path plus the share message.
type ExtractHandler struct {
	cfg config.Config
	log *slog.Logger
}

func NewExtractHandler(cfg config.Config, log *slog.Logger) *ExtractHandler {
	return &ExtractHandler{cfg: cfg, log: log}
}

// Extract handles POST /extract. The multipart form carries the
// workbook under "file" plus optional "sheet", "client", and "sender"
// fields. The review workbook is moved into the configured output
// directory, renamed after the uploaded file.
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (xlsx workbook)")
	}
	if fh.Size > h.cfg.Upload.MaxBytes {
		return presenter.Error(c, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds %d bytes", h.cfg.Upload.MaxBytes))
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only xlsx and xlsm are allowed")
	}

	// Each request gets its own temp copy so concurrent uploads never
	// collide.
	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("tmp_%s_%s", uuid.New(), filepath.Base(fh.Filename)))
	if err := c.SaveFile(fh, tempPath); err != nil {
		h.log.Error("save upload", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to store uploaded file")
	}
	defer os.Remove(tempPath)

	opts := skillsheet.DefaultOptions()
	opts.Sheet = c.FormValue("sheet")
	if v := c.FormValue("client"); v != "" {
		opts.Client = v
	}
	if v := c.FormValue("sender"); v != "" {
		opts.Sender = v
	}
	opts.Style = review.Style{
		TableStyle:        h.cfg.Review.TableStyle,
		ShowRowStripes:    h.cfg.Review.RowStripes,
		ShowColumnStripes: h.cfg.Review.ColumnStripes,
		SkillColWidth:     review.DefaultStyle().SkillColWidth,
		MarkColWidth:      review.DefaultStyle().MarkColWidth,
	}

	result, err := skillsheet.Process(tempPath, opts)
	if err != nil {
		h.log.Error("process workbook", "file", fh.Filename, "error", err)
		return presenter.Error(c, statusFor(err), err.Error())
	}
	defer os.Remove(result.OutputFile)

	// Relocate the artifact under the original upload's name.
	destPath := filepath.Join(h.cfg.OutputDir, skillsheet.ReviewName(filepath.Base(fh.Filename)))
	if err := moveFile(result.OutputFile, destPath); err != nil {
		h.log.Error("move artifact", "dest", destPath, "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to store review workbook")
	}
	result.OutputFile = destPath

	h.log.Info("review workbook created",
		"file", fh.Filename,
		"output", destPath,
		"skills", result.SkillCount,
		"known", result.KnownCount)

	return presenter.JSON(c, http.StatusOK, fiber.Map{"result": result})
}

// statusFor maps processing errors to HTTP statuses: caller mistakes
// are 400s, everything else is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, skillsheet.ErrInputNotFound),
		errors.Is(err, skillsheet.ErrSheetNotFound),
		errors.Is(err, skillsheet.ErrInvalidWorkbook):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// moveFile renames src to dest, falling back to copy+remove when the
// paths are on different filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	return os.Remove(src)
}
