package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
}

// NewBookService wires the book repository plus the author repository
// needed for the pre-insert integrity check and author embedding.
func NewBookService(repo book.Repository, authorRepo author.Repository) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
	}
}

// Create validates the request, then verifies the referenced author
// exists before attempting the insert. Relying on the foreign key alone
// would conflate an unknown reference with a generic storage failure;
// the explicit check produces a clean, typed condition instead.
func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.authorRepo.GetByID(ctx, *req.AuthorID)
	if err != nil {
		if err == author.ErrAuthorNotFound {
			return nil, book.ErrAuthorNotExist
		}
		log.Error().Err(err).Str("author_id", req.AuthorID.String()).Msg("failed to check author existence")
		return nil, fmt.Errorf("check author: %w", err)
	}

	b := req.ToEntity()

	if err := s.repo.Create(ctx, b); err != nil {
		if err == book.ErrAuthorNotExist {
			return nil, err
		}
		log.Error().Err(err).Str("book_id", b.ID.String()).Msg("failed to create book")
		return nil, fmt.Errorf("create book: %w", err)
	}

	b.Author = a
	return b, nil
}

func (s *bookService) GetAll(ctx context.Context) ([]book.Book, error) {
	books, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list books")
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == book.ErrBookNotFound {
			return nil, err
		}
		log.Error().Err(err).Str("book_id", id.String()).Msg("failed to get book")
		return nil, fmt.Errorf("get book: %w", err)
	}

	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == book.ErrBookNotFound {
			return err
		}
		log.Error().Err(err).Str("book_id", id.String()).Msg("failed to delete book")
		return fmt.Errorf("delete book: %w", err)
	}

	return nil
}
