package usecase

import (
	"time"

	"cs-chat-simulator/internal/agent"
	"cs-chat-simulator/internal/chat"
	"cs-chat-simulator/pkg/log"
)

const defaultTurnTimeout = 30 * time.Second

type Config struct {
	GroundingModel string
	ToolModel      string
	TurnTimeout    time.Duration
}

type implUseCase struct {
	l        log.Logger
	live     chat.Generator
	mock     chat.Generator
	registry *agent.ToolRegistry
	cfg      Config
}

func New(l log.Logger, live, mock chat.Generator, registry *agent.ToolRegistry, cfg Config) chat.UseCase {
	if cfg.TurnTimeout <= 0 {
		cfg.TurnTimeout = defaultTurnTimeout
	}
	return &implUseCase{
		l:        l,
		live:     live,
		mock:     mock,
		registry: registry,
		cfg:      cfg,
	}
}

func (uc *implUseCase) generator(useMock bool) chat.Generator {
	if useMock && uc.mock != nil {
		return uc.mock
	}
	return uc.live
}
