package handlers

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/oldmonad/ec2Inventory/internal/app"
	cerrors "github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/oldmonad/ec2Inventory/pkg/output"
	"github.com/oldmonad/ec2Inventory/pkg/utils/validator"
	"go.uber.org/zap"
)

// InventoryHandler serves the instance inventory over HTTP
type InventoryHandler struct {
	app       app.AppRunner
	validator validator.Validator
}

func NewInventoryHandler(app app.AppRunner, validator validator.Validator) *InventoryHandler {
	return &InventoryHandler{app: app, validator: validator}
}

// HandleInstances processes GET /instances. The report is rendered in full
// before anything is written so a failure never yields a partial body.
func (h *InventoryHandler) HandleInstances(w http.ResponseWriter, r *http.Request) {
	logger.Log.Debug("Handling inventory request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	if r.Method != http.MethodGet {
		logger.Log.Warn("Invalid method attempted",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	query := r.URL.Query()

	requested := query.Get("format")
	if requested == "" {
		requested = string(output.JSON)
	}
	format, err := h.validator.ValidateFormat(requested)
	if err != nil {
		logger.Log.Warn("Format validation failed",
			zap.Error(err),
			zap.String("requested_format", requested),
		)
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	var requestedColumns []string
	if raw := query.Get("columns"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			requestedColumns = append(requestedColumns, strings.TrimSpace(c))
		}
	}
	columns, err := h.validator.ValidateColumns(requestedColumns)
	if err != nil {
		logger.Log.Warn("Column validation failed",
			zap.Error(err),
			zap.Strings("requested_columns", requestedColumns),
		)
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.app.Run(r.Context(), format, columns, &buf); err != nil {
		h.handleRunError(w, err)
		return
	}

	contentType := "text/plain; charset=utf-8"
	if format == output.JSON {
		contentType = "application/json"
	}

	logger.Log.Info("Inventory served", zap.String("format", string(format)))
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Log.Error("Failed to write response", zap.Error(err))
	}
}

func (h *InventoryHandler) handleRunError(w http.ResponseWriter, err error) {
	kind := cerrors.KindOf(err)

	switch kind {
	case cerrors.KindMissingCredentials, cerrors.KindInvalidConfig:
		logger.Log.Warn("Inventory request rejected",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		sendResponse(w, http.StatusBadRequest, map[string]interface{}{
			"error": err.Error(),
			"kind":  string(kind),
		})

	case cerrors.KindProviderError:
		var pe cerrors.ErrProvider
		stderrors.As(err, &pe)
		logger.Log.Error("Cloud provider request failed",
			zap.String("code", pe.Code),
			zap.Error(err),
		)
		sendResponse(w, http.StatusBadGateway, map[string]interface{}{
			"error":   err.Error(),
			"kind":    string(kind),
			"code":    pe.Code,
			"message": pe.Message,
		})

	default:
		logger.Log.Error("Application error during inventory",
			zap.Error(err),
		)
		sendError(w, http.StatusInternalServerError, cerrors.NewErrAppRun(err).Error())
	}
}

// HandleHealth processes GET /healthz
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sendResponse(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
	})
}

// sendError sends an error response with JSON payload
func sendError(w http.ResponseWriter, statusCode int, message string) {
	logger.Log.Debug("Sending error response",
		zap.Int("status_code", statusCode),
		zap.String("message", message),
	)
	sendResponse(w, statusCode, map[string]interface{}{
		"error": message,
	})
}

// sendResponse writes a JSON response with given status and data
func sendResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Error("Failed to encode response",
			zap.Error(err),
			zap.Int("status_code", statusCode),
		)
	}
}
