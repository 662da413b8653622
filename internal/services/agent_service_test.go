package services

import (
	"context"
	"dan_assistant/internal/logger"
	"dan_assistant/internal/models"
	"dan_assistant/internal/store"
	"errors"
	"testing"
)

func TestUnconfirmedConfigUpdateMutatesNothing(t *testing.T) {
	st := store.NewMemoryStore()
	agent := NewAgentService(context.Background(), st, logger.New())
	original := agent.Config()

	updated := original
	updated.WelcomeMessage = "changed"
	err := agent.UpdateConfig(context.Background(), updated, false)
	if !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}

	if agent.Config() != original {
		t.Fatal("config changed despite denied confirmation")
	}
	if _, err := st.Get(context.Background(), store.KeyAgentConfig); !errors.Is(err, store.ErrNotFound) {
		t.Fatal("denied update must not reach the store")
	}
}

func TestConfirmedConfigUpdatePersists(t *testing.T) {
	st := store.NewMemoryStore()
	agent := NewAgentService(context.Background(), st, logger.New())

	updated := agent.Config()
	updated.ContactNumber = "+249900000000"
	if err := agent.UpdateConfig(context.Background(), updated, true); err != nil {
		t.Fatalf("update config: %v", err)
	}

	reloaded := NewAgentService(context.Background(), st, logger.New())
	if reloaded.Config().ContactNumber != "+249900000000" {
		t.Fatal("config update did not survive reload")
	}
}

func TestUnconfirmedPriceListUpdateMutatesNothing(t *testing.T) {
	agent := NewAgentService(context.Background(), store.NewMemoryStore(), logger.New())
	original := agent.PriceList()

	err := agent.UpdatePriceList(context.Background(), "new list", false)
	if !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}
	if agent.PriceList() != original {
		t.Fatal("price list changed despite denied confirmation")
	}
}

func TestConfirmedPriceListUpdatePersists(t *testing.T) {
	st := store.NewMemoryStore()
	agent := NewAgentService(context.Background(), st, logger.New())

	if err := agent.UpdatePriceList(context.Background(), "1 | Mebo | Tube | 11000", true); err != nil {
		t.Fatalf("update price list: %v", err)
	}

	reloaded := NewAgentService(context.Background(), st, logger.New())
	if reloaded.PriceList() != "1 | Mebo | Tube | 11000" {
		t.Fatal("price list update did not survive reload")
	}
}

func TestAgentServiceDefaultsOnEmptyStore(t *testing.T) {
	agent := NewAgentService(context.Background(), store.NewMemoryStore(), logger.New())

	if agent.Config() != models.DefaultAgentConfig() {
		t.Fatal("expected default agent config on empty store")
	}
	if agent.PriceList() != models.DefaultPriceList {
		t.Fatal("expected default price list on empty store")
	}
}
