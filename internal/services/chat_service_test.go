package services

import (
	"context"
	"dan_assistant/internal/logger"
	"dan_assistant/internal/store"
	"errors"
	"strings"
	"testing"

	"dan_assistant/pkg/genai"
)

type stubGenerator struct {
	generateFn func(*genai.GenerateRequest) (*genai.GenerateResponse, error)
}

func (s stubGenerator) GenerateContent(_ context.Context, request *genai.GenerateRequest) (*genai.GenerateResponse, error) {
	return s.generateFn(request)
}

func newChatFixture(t *testing.T, gen Generator) (ChatService, IntakeService) {
	t.Helper()
	st := store.NewMemoryStore()
	agent := NewAgentService(context.Background(), st, logger.New())
	intake := NewIntakeService(context.Background(), &stubOrderRepository{}, st, nil, logger.New())
	return NewChatService(gen, agent, intake, logger.New()), intake
}

func textResponse(text string) *genai.GenerateResponse {
	return &genai.GenerateResponse{
		Candidates: []genai.Candidate{
			{Content: genai.Content{Role: "model", Parts: []genai.Part{{Text: text}}}},
		},
	}
}

func TestConverseReturnsModelText(t *testing.T) {
	chat, _ := newChatFixture(t, stubGenerator{generateFn: func(*genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return textResponse("أهلاً"), nil
	}})

	reply, order, err := chat.Converse(context.Background(), nil, "مرحبا")
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if reply != "أهلاً" {
		t.Errorf("unexpected reply %q", reply)
	}
	if order != nil {
		t.Errorf("no order should be captured for a plain text turn")
	}
}

func TestConverseCapturesSaveOrderCall(t *testing.T) {
	gen := stubGenerator{generateFn: func(*genai.GenerateRequest) (*genai.GenerateResponse, error) {
		resp := textResponse("")
		resp.Candidates[0].Content.Parts = []genai.Part{{
			FunctionCall: &genai.FunctionCall{
				Name: "save_order",
				Args: map[string]interface{}{
					"customerName": "أحمد محمد",
					"phone":        "0912345678",
					"address":      "الخرطوم",
					"items": []interface{}{
						map[string]interface{}{"name": "Orafed", "quantity": float64(2), "price": float64(4400)},
					},
				},
			},
		}}
		return resp, nil
	}}

	chat, intake := newChatFixture(t, gen)
	reply, order, err := chat.Converse(context.Background(), nil, "سجل الطلب")
	if err != nil {
		t.Fatalf("converse: %v", err)
	}
	if order == nil {
		t.Fatal("expected a captured order")
	}
	if order.TotalAmount != 8800 {
		t.Errorf("expected total 8800, got %v", order.TotalAmount)
	}
	if !strings.Contains(reply, "طلبك اتسجل") {
		t.Errorf("reply should include the confirmation message, got %q", reply)
	}
	if last := intake.LastCustomer(); last == nil || last.Name != "أحمد محمد" {
		t.Errorf("last customer memory not updated: %+v", last)
	}
}

func TestConverseSendsHistoryAndTool(t *testing.T) {
	var seen *genai.GenerateRequest
	chat, _ := newChatFixture(t, stubGenerator{generateFn: func(req *genai.GenerateRequest) (*genai.GenerateResponse, error) {
		seen = req
		return textResponse("ok"), nil
	}})

	history := []ChatMessage{{Role: "user", Text: "كم سعر Mebo؟"}, {Role: "model", Text: "11000 SDG"}}
	if _, _, err := chat.Converse(context.Background(), history, "أريد اثنين"); err != nil {
		t.Fatalf("converse: %v", err)
	}

	if len(seen.Contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(seen.Contents))
	}
	if seen.Contents[1].Role != "model" {
		t.Errorf("history roles not preserved: %+v", seen.Contents)
	}
	if len(seen.Tools) != 1 || seen.Tools[0].FunctionDeclarations[0].Name != "save_order" {
		t.Error("save_order tool declaration missing")
	}
	if seen.SystemInstruction == nil || !strings.Contains(seen.SystemInstruction.Parts[0].Text, "Price List") {
		t.Error("system prompt should carry the price list knowledge base")
	}
}

func TestConverseGreetsReturningCustomer(t *testing.T) {
	var seen *genai.GenerateRequest
	gen := stubGenerator{generateFn: func(req *genai.GenerateRequest) (*genai.GenerateResponse, error) {
		seen = req
		return textResponse("ok"), nil
	}}

	chat, intake := newChatFixture(t, gen)
	if _, err := intake.CaptureOrder(context.Background(), map[string]interface{}{
		"customerName": "أحمد محمد", "phone": "0912345678", "address": "الخرطوم",
	}); err != nil {
		t.Fatalf("capture: %v", err)
	}

	if _, _, err := chat.Converse(context.Background(), nil, "مرحبا"); err != nil {
		t.Fatalf("converse: %v", err)
	}
	if !strings.Contains(seen.SystemInstruction.Parts[0].Text, "أحمد") {
		t.Error("system prompt should greet the returning customer by first name")
	}
}

func TestConverseWrapsGeneratorFailure(t *testing.T) {
	chat, _ := newChatFixture(t, stubGenerator{generateFn: func(*genai.GenerateRequest) (*genai.GenerateResponse, error) {
		return nil, errors.New("transport down")
	}})

	if _, _, err := chat.Converse(context.Background(), nil, "مرحبا"); err == nil {
		t.Fatal("expected a propagated error")
	}
}
