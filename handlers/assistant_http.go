package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"crmbackend/appctx"
	"crmbackend/clients"
	"crmbackend/models"
)

type AssistantHTTPHandler struct {
	handler *AssistantAPIHandler
}

func NewAssistantHTTPHandler(handler *AssistantAPIHandler) *AssistantHTTPHandler {
	return &AssistantHTTPHandler{
		handler: handler,
	}
}

type ChatRequest struct {
	Message string                `json:"message"`
	History []clients.ChatMessage `json:"history,omitempty"`
}

type ExecuteRequest struct {
	Command   *models.Command `json:"command"`
	Confirmed bool            `json:"confirmed"`
}

// RegisterRoutes mounts the assistant endpoints on the router
func (h *AssistantHTTPHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/assistant/chat", h.HandleChat).Methods(http.MethodPost)
	router.HandleFunc("/api/assistant/execute", h.HandleExecute).Methods(http.MethodPost)
	router.HandleFunc("/api/exports/contacts", h.HandleExportContacts).Methods(http.MethodGet)
	router.HandleFunc("/api/exports/companies", h.HandleExportCompanies).Methods(http.MethodGet)
}

func (h *AssistantHTTPHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	log.Printf("💬 Chat request received from %s", r.RemoteAddr)

	workspaceID, ok := appctx.GetWorkspaceID(r.Context())
	if !ok {
		log.Printf("❌ Workspace not found in context")
		http.Error(w, "workspace required", http.StatusUnauthorized)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode chat request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	outcome, err := h.handler.Chat(r.Context(), workspaceID, req.Message, req.History)
	if err != nil {
		log.Printf("❌ Failed to process chat turn: %v", err)
		http.Error(w, "failed to process chat message", http.StatusInternalServerError)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, outcome)
}

func (h *AssistantHTTPHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	log.Printf("⚡ Execute request received from %s", r.RemoteAddr)

	workspaceID, ok := appctx.GetWorkspaceID(r.Context())
	if !ok {
		log.Printf("❌ Workspace not found in context")
		http.Error(w, "workspace required", http.StatusUnauthorized)
		return
	}

	var req ExecuteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to decode execute request: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Command == nil {
		http.Error(w, "command is required", http.StatusBadRequest)
		return
	}

	result, err := h.handler.ExecuteCommand(r.Context(), workspaceID, req.Command, req.Confirmed)
	if err != nil {
		log.Printf("❌ Failed to execute command: %v", err)
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	h.writeJSONResponse(w, http.StatusOK, result)
}

func (h *AssistantHTTPHandler) HandleExportContacts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Export contacts request received from %s", r.RemoteAddr)
	h.serveExport(w, r, h.handler.ExportContacts)
}

func (h *AssistantHTTPHandler) HandleExportCompanies(w http.ResponseWriter, r *http.Request) {
	log.Printf("📋 Export companies request received from %s", r.RemoteAddr)
	h.serveExport(w, r, h.handler.ExportCompanies)
}

func (h *AssistantHTTPHandler) serveExport(
	w http.ResponseWriter,
	r *http.Request,
	export func(ctx context.Context, workspaceID string) (*models.ExportFile, error),
) {
	workspaceID, ok := appctx.GetWorkspaceID(r.Context())
	if !ok {
		log.Printf("❌ Workspace not found in context")
		http.Error(w, "workspace required", http.StatusUnauthorized)
		return
	}

	file, err := export(r.Context(), workspaceID)
	if err != nil {
		log.Printf("❌ Failed to build export: %v", err)
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		log.Printf("⚠️ Failed to write export body: %v", err)
	}
}

func (h *AssistantHTTPHandler) writeJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("⚠️ Failed to encode JSON response: %v", err)
	}
}
