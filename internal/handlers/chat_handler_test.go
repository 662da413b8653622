package handlers

import (
	"bytes"
	"context"
	"dan_assistant/internal/i18n"
	"dan_assistant/internal/logger"
	"dan_assistant/internal/models"
	"dan_assistant/internal/services"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type stubChatService struct {
	converseFn func(history []services.ChatMessage, incoming string) (string, *models.Order, error)
}

func (s stubChatService) Converse(_ context.Context, history []services.ChatMessage, incoming string) (string, *models.Order, error) {
	return s.converseFn(history, incoming)
}

func chatRouter(svc services.ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(svc, logger.New()).HandleTurn)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestChatTurnReturnsReply(t *testing.T) {
	router := chatRouter(stubChatService{converseFn: func(_ []services.ChatMessage, incoming string) (string, *models.Order, error) {
		if incoming != "كم سعر Mebo؟" {
			t.Errorf("unexpected incoming message %q", incoming)
		}
		return "11,000 SDG", nil, nil
	}})

	w := postChat(t, router, gin.H{"message": "كم سعر Mebo؟", "lang": "ar"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}

	var resp struct {
		Reply string        `json:"reply"`
		Order *models.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Reply != "11,000 SDG" {
		t.Errorf("unexpected reply %q", resp.Reply)
	}
	if resp.Order != nil {
		t.Error("no order expected for a question")
	}
}

func TestChatTurnIncludesCapturedOrder(t *testing.T) {
	captured := models.Order{ID: "ORD-1234", Status: models.StatusNew, TotalAmount: 8800}
	router := chatRouter(stubChatService{converseFn: func([]services.ChatMessage, string) (string, *models.Order, error) {
		return "اتسجل", &captured, nil
	}})

	w := postChat(t, router, gin.H{"message": "سجل الطلب"})
	var resp struct {
		Order *models.Order `json:"order"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Order == nil || resp.Order.ID != "ORD-1234" {
		t.Fatalf("expected captured order in response, got %+v", resp.Order)
	}
}

func TestChatTurnFailureIsLocalizedNotice(t *testing.T) {
	router := chatRouter(stubChatService{converseFn: func([]services.ChatMessage, string) (string, *models.Order, error) {
		return "", nil, errors.New("transport down")
	}})

	w := postChat(t, router, gin.H{"message": "مرحبا", "lang": "en"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), i18n.T("en", "chatError")) {
		t.Errorf("expected localized failure notice, got %s", w.Body.String())
	}
}

func TestChatTurnRejectsEmptyMessage(t *testing.T) {
	router := chatRouter(stubChatService{converseFn: func([]services.ChatMessage, string) (string, *models.Order, error) {
		t.Fatal("service should not be called")
		return "", nil, nil
	}})

	w := postChat(t, router, gin.H{"lang": "ar"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
