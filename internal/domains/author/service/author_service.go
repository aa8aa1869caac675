package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

// Create validates the request, assigns a fresh id and persists the
// author. Validation runs before any store access.
func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToEntity()

	if err := s.repo.Create(ctx, a); err != nil {
		log.Error().Err(err).Str("author_id", a.ID.String()).Msg("failed to create author")
		return nil, fmt.Errorf("create author: %w", err)
	}

	return a, nil
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list authors")
		return nil, fmt.Errorf("list authors: %w", err)
	}

	return authors, nil
}
