package services

import (
	"context"
	"dan_assistant/internal/models"
	"dan_assistant/internal/store"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrNotConfirmed is returned when a write arrives without the confirmation
// step; nothing is mutated.
var ErrNotConfirmed = errors.New("update not confirmed")

// AgentService owns the assistant configuration and the price-list document.
// Writes go through a confirmation gate and are persisted immediately.
type AgentService interface {
	Config() models.AgentConfig
	UpdateConfig(ctx context.Context, cfg models.AgentConfig, confirmed bool) error
	PriceList() string
	UpdatePriceList(ctx context.Context, text string, confirmed bool) error
}

type agentService struct {
	store  store.Store
	logger *slog.Logger

	mu        sync.Mutex
	config    models.AgentConfig
	priceList string
}

func NewAgentService(ctx context.Context, st store.Store, logger *slog.Logger) AgentService {
	s := &agentService{store: st, logger: logger, config: models.DefaultAgentConfig(), priceList: models.DefaultPriceList}

	if data, err := st.Get(ctx, store.KeyAgentConfig); err == nil {
		var cfg models.AgentConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			logger.Warn("stored agent config is malformed, falling back to defaults", "error", err)
		} else {
			s.config = cfg
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Warn("failed to load agent config, using defaults", "error", err)
	}

	if data, err := st.Get(ctx, store.KeyPriceList); err == nil {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			logger.Warn("stored price list is malformed, falling back to defaults", "error", err)
		} else {
			s.priceList = text
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logger.Warn("failed to load price list, using defaults", "error", err)
	}

	return s
}

func (s *agentService) Config() models.AgentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

func (s *agentService) UpdateConfig(ctx context.Context, cfg models.AgentConfig, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal agent config: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyAgentConfig, data); err != nil {
		return fmt.Errorf("persist agent config: %w", err)
	}

	s.config = cfg
	return nil
}

func (s *agentService) PriceList() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.priceList
}

func (s *agentService) UpdatePriceList(ctx context.Context, text string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(text)
	if err != nil {
		return fmt.Errorf("marshal price list: %w", err)
	}
	if err := s.store.Set(ctx, store.KeyPriceList, data); err != nil {
		return fmt.Errorf("persist price list: %w", err)
	}

	s.priceList = text
	return nil
}
