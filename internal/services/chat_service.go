package services

import (
	"context"
	"dan_assistant/internal/models"
	"dan_assistant/pkg/genai"
	"fmt"
	"log/slog"
	"strings"
)

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Generator is the model turn the chat service depends on; satisfied by
// *genai.Client.
type Generator interface {
	GenerateContent(ctx context.Context, request *genai.GenerateRequest) (*genai.GenerateResponse, error)
}

// ChatService runs one conversational turn: system prompt from the agent
// configuration and price list, running history, and the save_order tool.
// When the model emits save_order the raw arguments go through intake and the
// confirmation message is appended to the reply.
type ChatService interface {
	Converse(ctx context.Context, history []ChatMessage, incoming string) (string, *models.Order, error)
}

type chatService struct {
	generator Generator
	agent     AgentService
	intake    IntakeService
	logger    *slog.Logger
}

func NewChatService(generator Generator, agent AgentService, intake IntakeService, logger *slog.Logger) ChatService {
	return &chatService{generator: generator, agent: agent, intake: intake, logger: logger}
}

func (s *chatService) Converse(ctx context.Context, history []ChatMessage, incoming string) (string, *models.Order, error) {
	contents := make([]genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := msg.Role
		if role != "model" {
			role = "user"
		}
		contents = append(contents, genai.Content{Role: role, Parts: []genai.Part{{Text: msg.Text}}})
	}
	contents = append(contents, genai.Content{Role: "user", Parts: []genai.Part{{Text: incoming}}})

	request := &genai.GenerateRequest{
		SystemInstruction: &genai.Content{Parts: []genai.Part{{Text: s.systemPrompt()}}},
		Contents:          contents,
		Tools:             []genai.Tool{{FunctionDeclarations: []genai.FunctionDeclaration{saveOrderDeclaration()}}},
	}

	response, err := s.generator.GenerateContent(ctx, request)
	if err != nil {
		return "", nil, fmt.Errorf("model turn failed: %w", err)
	}

	var reply strings.Builder
	var captured *models.Order
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				reply.WriteString(part.Text)
			}
			if part.FunctionCall != nil && part.FunctionCall.Name == "save_order" {
				order, err := s.intake.CaptureOrder(ctx, part.FunctionCall.Args)
				if err != nil {
					return "", nil, fmt.Errorf("capture order: %w", err)
				}
				captured = &order
			}
		}
		break
	}

	if captured != nil {
		if reply.Len() > 0 {
			reply.WriteString("\n")
		}
		reply.WriteString(s.agent.Config().ConfirmationMessage)
	}

	return reply.String(), captured, nil
}

func (s *chatService) systemPrompt() string {
	config := s.agent.Config()

	var b strings.Builder
	b.WriteString("You are \"Dan Smart Assistant\" (مساعد شركة دان الذكي).\n")
	b.WriteString("Talk ONLY in Sudanese Arabic dialect.\n\n")

	if last := s.intake.LastCustomer(); last != nil {
		firstName := strings.Fields(last.Name)
		greeting := last.Name
		if len(firstName) > 0 {
			greeting = firstName[0]
		}
		fmt.Fprintf(&b, "IMPORTANT: You have information about a previous customer who used this device:\n")
		fmt.Fprintf(&b, "- Name: %s\n- Phone: %s\n- Address: %s\n\n", last.Name, last.Phone, last.Address)
		fmt.Fprintf(&b, "When they want to order, greet them by name (\"يا %s\") and ask whether to reuse the same name, phone and address.\n\n", greeting)
	} else {
		b.WriteString("If you don't have customer info, ask for Name, Phone, and Address when they want to buy.\n\n")
	}

	b.WriteString("Knowledge Base:\n")
	fmt.Fprintf(&b, "- Price List (Drugs): %s\n", s.agent.PriceList())
	fmt.Fprintf(&b, "- Company Info (Branches/Hours): %s\n", config.AdditionalInfo)
	fmt.Fprintf(&b, "- Out of stock reply: %s\n", config.OutOfStockMessage)
	fmt.Fprintf(&b, "- Address prompt: %s\n", config.AddressPrompt)
	b.WriteString("Behavior:\n")
	b.WriteString("1. Answer queries strictly from the knowledge base.\n")
	b.WriteString("2. If the customer confirms their previous info, proceed with the item list.\n")
	b.WriteString("3. Use the 'save_order' tool ONLY when you have all customer info (Name, Phone, Address).\n")
	b.WriteString("4. CRITICAL: When saving an order, you MUST extract the correct price for each item from the price list.\n")

	return b.String()
}

func saveOrderDeclaration() genai.FunctionDeclaration {
	return genai.FunctionDeclaration{
		Name:        "save_order",
		Description: "Save order details for the customer.",
		Parameters: &genai.Schema{
			Type: "OBJECT",
			Properties: map[string]*genai.Schema{
				"customerName": {Type: "STRING"},
				"phone":        {Type: "STRING"},
				"address":      {Type: "STRING"},
				"items": {
					Type: "ARRAY",
					Items: &genai.Schema{
						Type: "OBJECT",
						Properties: map[string]*genai.Schema{
							"name":     {Type: "STRING"},
							"quantity": {Type: "NUMBER"},
							"price":    {Type: "NUMBER"},
						},
						Required: []string{"name", "quantity", "price"},
					},
				},
				"totalAmount": {Type: "NUMBER"},
			},
			Required: []string{"customerName", "phone", "address", "items"},
		},
	}
}
