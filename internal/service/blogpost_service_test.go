package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
)

func TestBlogPostService_CreateAttributesAuthor(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")

	resp := env.postService.Create(context.Background(), userID, dto.BlogPostRequest{
		Title:   "Hello, world",
		Content: "First post.",
		Tags:    []string{"welcome", "intro"},
	})
	require.Equal(t, 200, resp.Code, resp.Message)
	assert.Equal(t, "Ama Mensah", resp.Data.Author)
	assert.Equal(t, []string{"welcome", "intro"}, resp.Data.Tags)
	assert.NotEmpty(t, resp.Data.ID)
}

func TestBlogPostService_CreateRequiresTitleAndContent(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")

	for _, req := range []dto.BlogPostRequest{
		{Title: "", Content: "body"},
		{Title: "head", Content: ""},
		{Title: "   ", Content: "   "},
	} {
		resp := env.postService.Create(context.Background(), userID, req)
		assert.Equal(t, 400, resp.Code)
		assert.Equal(t, "Title and content are required", resp.Message)
	}
}

func TestBlogPostService_CreateUnknownAuthor(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postService.Create(context.Background(), "nope", dto.BlogPostRequest{
		Title:   "Hello",
		Content: "World",
	})
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "User not found", resp.Message)
}

func TestBlogPostService_UpdatePartialPatch(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, userID, "Original title", "Original content")

	resp := env.postService.Update(context.Background(), postID, dto.UpdateBlogPostRequest{
		Title: strPtr("New title"),
	})
	require.Equal(t, 200, resp.Code, resp.Message)
	assert.Equal(t, "New title", resp.Data.Title)
	assert.Equal(t, "Original content", resp.Data.Content)
}

func TestBlogPostService_UpdateRequiresSomething(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, userID, "Title", "Content")

	resp := env.postService.Update(context.Background(), postID, dto.UpdateBlogPostRequest{})
	assert.Equal(t, 400, resp.Code)
	assert.Equal(t, "Title and content are required", resp.Message)

	blank := ""
	resp = env.postService.Update(context.Background(), postID, dto.UpdateBlogPostRequest{
		Title:   &blank,
		Content: &blank,
	})
	assert.Equal(t, 400, resp.Code)
}

func TestBlogPostService_UpdateMissingPost(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postService.Update(context.Background(), "nope", dto.UpdateBlogPostRequest{
		Title: strPtr("New"),
	})
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "Blog post not found", resp.Message)
}

func TestBlogPostService_DeleteHidesPost(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, userID, "Title", "Content")

	del := env.postService.Delete(context.Background(), postID)
	require.Equal(t, 200, del.Code)
	assert.Equal(t, "Title", del.Data.Title)

	get := env.postService.GetByID(context.Background(), postID)
	assert.Equal(t, 404, get.Code)

	again := env.postService.Delete(context.Background(), postID)
	assert.Equal(t, 404, again.Code)
}

func TestBlogPostService_GetByIDNestsActiveComments(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	readerID := env.registerUser(t, "Kofi Boateng", "0200000001")
	postID := env.createPost(t, authorID, "Title", "Content")

	keptID := env.createComment(t, readerID, postID, "Nice read")
	droppedID := env.createComment(t, readerID, postID, "Posted twice by mistake")
	require.Equal(t, 200, env.commentService.Delete(context.Background(), droppedID, readerID).Code)

	resp := env.postService.GetByID(context.Background(), postID)
	require.Equal(t, 200, resp.Code, resp.Message)
	require.Len(t, resp.Data.Comments, 1)
	assert.Equal(t, keptID, resp.Data.Comments[0].ID)
	assert.Equal(t, "Kofi Boateng", resp.Data.Comments[0].Commenter)
}

func TestBlogPostService_GetAllSearchesTitleContentAndTags(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")
	env.createPost(t, userID, "Cooking at home", "Recipes for the week", "food")
	env.createPost(t, userID, "Travel notes", "A week in Kumasi", "journal")
	env.createPost(t, userID, "Quiet mornings", "On routines", "reflection")

	byTitle := env.postService.GetAll(context.Background(), dto.BaseFilter{Search: "cooking"})
	require.Equal(t, 200, byTitle.Code)
	require.Len(t, byTitle.Data.Payload, 1)
	assert.Equal(t, "Cooking at home", byTitle.Data.Payload[0].Title)

	byContent := env.postService.GetAll(context.Background(), dto.BaseFilter{Search: "kumasi"})
	require.Equal(t, 200, byContent.Code)
	require.Len(t, byContent.Data.Payload, 1)

	byTag := env.postService.GetAll(context.Background(), dto.BaseFilter{Search: "reflection"})
	require.Equal(t, 200, byTag.Code)
	require.Len(t, byTag.Data.Payload, 1)
	assert.Equal(t, "Quiet mornings", byTag.Data.Payload[0].Title)
}

func TestBlogPostService_GetAllEmptyDataset(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postService.GetAll(context.Background(), dto.BaseFilter{PageNumber: 1, PageSize: 10})
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, 0, resp.Data.TotalCount)
	require.NotNil(t, resp.Data.Payload, "an empty page serializes as [], not null")
	assert.Empty(t, resp.Data.Payload)
	assert.Equal(t, 1, resp.Data.Page)
	assert.Equal(t, 10, resp.Data.PageSize)
}

func TestBlogPostService_GetAllCountsAfterFilter(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")
	env.createPost(t, userID, "Match one", "alpha")
	env.createPost(t, userID, "Match two", "alpha")
	env.createPost(t, userID, "Other", "beta")

	resp := env.postService.GetAll(context.Background(), dto.BaseFilter{Search: "alpha", PageSize: 1})
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, 2, resp.Data.TotalCount)
	assert.Len(t, resp.Data.Payload, 1)
}

func TestBlogPostService_GetAllHidesDeleted(t *testing.T) {
	env := newTestEnv(t)
	userID := env.registerUser(t, "Ama Mensah", "0274810934")
	keepID := env.createPost(t, userID, "Kept", "stays")
	dropID := env.createPost(t, userID, "Dropped", "goes")

	require.Equal(t, 200, env.postService.Delete(context.Background(), dropID).Code)

	resp := env.postService.GetAll(context.Background(), dto.BaseFilter{})
	require.Equal(t, 200, resp.Code)
	require.Len(t, resp.Data.Payload, 1)
	assert.Equal(t, keepID, resp.Data.Payload[0].ID)
}
