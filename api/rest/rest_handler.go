package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jobdeck/jobdeck/models"
	"github.com/jobdeck/jobdeck/service"
)

type Handler struct {
	Service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{Service: svc}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Service.Register(r.Context(), req.Email, req.Password, req.Name); err != nil {
		h.sendServiceError(w, err, "Register failed")
		return
	}

	h.sendResponse(w, http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Auth  bool      `json:"auth"`
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.sendServiceError(w, err, "Login failed")
		return
	}

	resp := loginResponse{
		Auth:  true,
		Token: token,
		User:  loginUser{Name: user.Name, Email: user.Email},
	}
	h.sendResponse(w, http.StatusOK, resp)
}

type applicationResponse struct {
	Id        string `json:"id"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Date      string `json:"date"`
	Platform  string `json:"platform"`
	Link      string `json:"link"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type decryptFailureResponse struct {
	Id    string `json:"id"`
	Error string `json:"error"`
}

func applicationFromResult(res service.ApplicationResult) applicationResponse {
	return applicationResponse{
		Id:        res.Id,
		Company:   res.Payload.Company,
		Position:  res.Payload.Position,
		Date:      res.Payload.Date,
		Platform:  res.Payload.Platform,
		Link:      res.Payload.Link,
		Status:    res.Payload.Status,
		CreatedAt: res.CreatedAt,
	}
}

func (h *Handler) HandleApplications(w http.ResponseWriter, r *http.Request) {
	userId, err := h.Service.AuthenticateToken(h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.handleCreateApplication(w, r, userId)

	case http.MethodGet:
		h.handleListApplications(w, r, userId)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleCreateApplication(w http.ResponseWriter, r *http.Request, userId string) {
	var payload models.ApplicationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.Service.CreateApplication(r.Context(), userId, payload); err != nil {
		h.sendServiceError(w, err, "Create application failed")
		return
	}

	h.sendResponse(w, http.StatusCreated, messageResponse{Message: "Application saved successfully"})
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request, userId string) {
	results, err := h.Service.ListApplications(r.Context(), userId)
	if err != nil {
		h.sendServiceError(w, err, "List applications failed")
		return
	}

	// Records that fail to decrypt come back as error markers so one bad
	// record never hides the rest of the list
	applications := make([]any, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			applications = append(applications, decryptFailureResponse{Id: res.Id, Error: "Failed to decrypt"})
			continue
		}
		applications = append(applications, applicationFromResult(res))
	}

	h.sendResponse(w, http.StatusOK, applications)
}

func (h *Handler) HandleApplicationById(w http.ResponseWriter, r *http.Request) {
	userId, err := h.Service.AuthenticateToken(h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		h.handleGetApplication(w, r, userId, id)

	case http.MethodPut:
		h.handleUpdateApplication(w, r, userId, id)

	case http.MethodDelete:
		h.handleDeleteApplication(w, r, userId, id)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleGetApplication(w http.ResponseWriter, r *http.Request, userId string, id string) {
	res, err := h.Service.GetApplication(r.Context(), userId, id)
	if err != nil {
		h.sendServiceError(w, err, "Get application failed")
		return
	}

	h.sendResponse(w, http.StatusOK, applicationFromResult(res))
}

func (h *Handler) handleUpdateApplication(w http.ResponseWriter, r *http.Request, userId string, id string) {
	var payload models.ApplicationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateApplication(r.Context(), userId, id, payload); err != nil {
		h.sendServiceError(w, err, "Update application failed")
		return
	}

	h.sendResponse(w, http.StatusOK, messageResponse{Message: "Application updated successfully"})
}

func (h *Handler) handleDeleteApplication(w http.ResponseWriter, r *http.Request, userId string, id string) {
	if err := h.Service.DeleteApplication(r.Context(), userId, id); err != nil {
		h.sendServiceError(w, err, "Delete application failed")
		return
	}

	h.sendResponse(w, http.StatusOK, messageResponse{Message: "Application deleted successfully"})
}

// sendServiceError maps service sentinels onto HTTP status codes. Anything
// unclassified is logged and surfaced as an internal error.
func (h *Handler) sendServiceError(w http.ResponseWriter, err error, logPrefix string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		h.sendError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, service.ErrUserNotFound):
		h.sendError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		h.sendError(w, http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, service.ErrInvalidToken):
		h.sendError(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, service.ErrNotFound):
		h.sendError(w, http.StatusNotFound, "Application not found")
	case errors.Is(err, service.ErrForbidden):
		h.sendError(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, service.ErrDecryptFailed):
		h.sendError(w, http.StatusInternalServerError, "Failed to decrypt application data")
	default:
		log.Printf("%s: %v", logPrefix, err)
		h.sendError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) sendResponse(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	h.sendResponse(w, status, messageResponse{Message: message})
}

func (h *Handler) getTokenFromAuthHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return ""
	}
	return strings.TrimPrefix(authHeader, prefix)
}
