package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/projects-hub/server/internal/config"
	"github.com/projects-hub/server/internal/modules/repo"
	"github.com/projects-hub/server/internal/pkg/prompt"
	"github.com/tiktoken-go/tokenizer"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Generator is the single-turn completion dependency, implemented by
// llm.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type AssistService interface {
	Assist(ctx context.Context, in AssistInput) (*AssistOutput, error)
}

type assistService struct {
	projects        repo.ProjectRepo
	profiles        ProfileService
	generator       Generator
	codec           tokenizer.Codec
	maxPromptTokens int
	log             *zap.Logger
}

func NewAssistService(
	projects repo.ProjectRepo,
	profiles ProfileService,
	generator Generator,
	cfg *config.Config,
	log *zap.Logger,
) AssistService {
	// token counting is best-effort; a missing vocabulary only disables the
	// prompt budget guard
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		log.Warn("tokenizer unavailable, prompt budget disabled", zap.Error(err))
		codec = nil
	}
	return &assistService{
		projects:        projects,
		profiles:        profiles,
		generator:       generator,
		codec:           codec,
		maxPromptTokens: cfg.AI.MaxPromptTokens,
		log:             log,
	}
}

type AssistInput struct {
	UserID    uuid.UUID
	ProjectID uuid.UUID
	Kind      prompt.Kind
	Question  string
	// Language overrides the profile preference when set.
	Language string
}

type AssistOutput struct {
	Kind     prompt.Kind `json:"kind"`
	Response string      `json:"response"`
}

// Assist renders a prompt from the current project state and performs one
// generation round trip. Errors bubble up verbatim for display; retrying is
// the user's decision.
func (s *assistService) Assist(ctx context.Context, in AssistInput) (*AssistOutput, error) {
	project, err := s.projects.GetByIDAndUser(ctx, in.ProjectID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("load project: %w", err)
	}

	if in.Kind == prompt.KindCustom && strings.TrimSpace(in.Question) == "" {
		return nil, ErrBlankQuestion
	}

	language := in.Language
	if language == "" {
		if profile, err := s.profiles.GetOrCreate(ctx, in.UserID); err == nil {
			language = profile.PreferredLanguage
		} else {
			s.log.Warn("profile language unavailable, defaulting",
				zap.String("user_id", in.UserID.String()), zap.Error(err))
		}
	}

	rendered := prompt.Build(in.Kind, prompt.Context{
		Title:            project.Title,
		Description:      project.Description,
		AdditionalInfo:   project.AdditionalInfo,
		ResponseLanguage: language,
		UserQuestion:     strings.TrimSpace(in.Question),
	})

	if s.codec != nil {
		if ids, _, err := s.codec.Encode(rendered); err == nil {
			if s.maxPromptTokens > 0 && len(ids) > s.maxPromptTokens {
				return nil, ErrPromptTooLarge
			}
			s.log.Debug("assist prompt rendered",
				zap.String("kind", string(in.Kind)),
				zap.Int("prompt_tokens", len(ids)))
		}
	}

	text, err := s.generator.Generate(ctx, rendered)
	if err != nil {
		return nil, err
	}

	return &AssistOutput{Kind: in.Kind, Response: text}, nil
}
