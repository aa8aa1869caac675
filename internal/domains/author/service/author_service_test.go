package service

import (
	"context"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
)

// fakeRepo is an in-memory author.Repository preserving insertion order.
type fakeRepo struct {
	authors map[uuid.UUID]author.Author
	order   []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{authors: make(map[uuid.UUID]author.Author)}
}

func (f *fakeRepo) Create(_ context.Context, a *author.Author) error {
	f.authors[a.ID] = *a
	f.order = append(f.order, a.ID)
	return nil
}

func (f *fakeRepo) GetAll(_ context.Context) ([]author.Author, error) {
	all := make([]author.Author, 0, len(f.order))
	for _, id := range f.order {
		all = append(all, f.authors[id])
	}
	return all, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func TestCreateAssignsFreshUniqueIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewAuthorService(repo)

	seen := make(map[uuid.UUID]bool)
	for _, name := range []string{"Jane Austen", "Leo Tolstoy", "Natsume Soseki"} {
		a, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: name})
		require.NoError(t, err)
		require.NotNil(t, a)

		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.False(t, seen[a.ID], "id %s was reused", a.ID)
		seen[a.ID] = true
		assert.Equal(t, name, a.Name)
	}

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateValidationFailureSkipsStore(t *testing.T) {
	repo := newFakeRepo()
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		Name: strings.Repeat("a", author.MaxNameLength+1),
	})

	var fieldErrs validation.Errors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")

	// Nothing may reach the store on a validation failure.
	assert.Empty(t, repo.authors)
}

func TestGetAllPreservesInsertionOrder(t *testing.T) {
	repo := newFakeRepo()
	svc := NewAuthorService(repo)

	first, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "First"})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: "Second"})
	require.NoError(t, err)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	// Reads with no intervening writes are idempotent.
	again, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, again)
}
