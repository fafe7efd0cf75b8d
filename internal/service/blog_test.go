package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/culinarybook/backend/internal/models"
	"github.com/culinarybook/backend/internal/service"
	"github.com/culinarybook/backend/internal/testdb"
	"github.com/culinarybook/backend/internal/types"
)

func TestCreateBlogRequiresAuthorRole(t *testing.T) {
	db := testdb.Open(t)
	blogs := service.NewBlogService(db)
	ctx := context.Background()

	reader := createUser(t, db, models.RoleUser)
	_, err := blogs.Create(ctx, types.BlogRequest{
		Title:    "Not allowed",
		Text:     "body",
		AuthorID: reader.ID,
	})
	require.ErrorIs(t, err, service.ErrForbidden)

	author := createUser(t, db, models.RoleAuthor)
	created, err := blogs.Create(ctx, types.BlogRequest{
		Title:    "My kitchen notes",
		Text:     "body",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, author.ID, created.UserID)
}

func TestCreateBlogValidation(t *testing.T) {
	db := testdb.Open(t)
	blogs := service.NewBlogService(db)

	author := createUser(t, db, models.RoleAuthor)
	_, err := blogs.Create(context.Background(), types.BlogRequest{
		Title:    "  ",
		Text:     "body",
		AuthorID: author.ID,
	})
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateBlogKeepsStatusWhenOmitted(t *testing.T) {
	db := testdb.Open(t)
	blogs := service.NewBlogService(db)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)
	created, err := blogs.Create(ctx, types.BlogRequest{
		Title:    "Post",
		Text:     "v1",
		Status:   "PUBLISHED",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	updated, err := blogs.Update(ctx, created.ID, types.BlogRequest{
		Title:    "Post",
		Text:     "v2",
		AuthorID: author.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, updated.Status)
	assert.Equal(t, "v2", updated.Text)
}

func TestFindAllBlogsFiltersByStatus(t *testing.T) {
	db := testdb.Open(t)
	blogs := service.NewBlogService(db)
	ctx := context.Background()

	author := createUser(t, db, models.RoleAuthor)
	_, err := blogs.Create(ctx, types.BlogRequest{Title: "a", Text: "x", Status: "PUBLISHED", AuthorID: author.ID})
	require.NoError(t, err)
	_, err = blogs.Create(ctx, types.BlogRequest{Title: "b", Text: "x", AuthorID: author.ID})
	require.NoError(t, err)

	published := models.StatusPublished
	list, err := blogs.FindAll(ctx, &published)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
