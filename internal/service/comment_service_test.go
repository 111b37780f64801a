package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/blogging-platform/internal/api/dto"
)

func TestCommentService_CreateAttributesCommenter(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	readerID := env.registerUser(t, "Kofi Boateng", "0200000001")
	postID := env.createPost(t, authorID, "Title", "Content")

	resp := env.commentService.Create(context.Background(), dto.CommentRequest{
		PostID:  postID,
		Content: "Nice read",
	}, readerID)
	require.Equal(t, 200, resp.Code, resp.Message)
	assert.Equal(t, "Kofi Boateng", resp.Data.Commenter)
	assert.Equal(t, "Nice read", resp.Data.Content)
}

func TestCommentService_CreateUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, authorID, "Title", "Content")

	resp := env.commentService.Create(context.Background(), dto.CommentRequest{
		PostID:  postID,
		Content: "Hello",
	}, "nope")
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "User not found", resp.Message)
}

func TestCommentService_CreateOnMissingOrDeletedPost(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, authorID, "Title", "Content")
	require.Equal(t, 200, env.postService.Delete(context.Background(), postID).Code)

	for _, target := range []string{"nope", postID} {
		resp := env.commentService.Create(context.Background(), dto.CommentRequest{
			PostID:  target,
			Content: "Hello",
		}, authorID)
		assert.Equal(t, 404, resp.Code)
		assert.Equal(t, "Blog post not found", resp.Message)
	}
}

func TestCommentService_UpdateByAuthor(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, authorID, "Title", "Content")
	commentID := env.createComment(t, authorID, postID, "First thought")

	resp := env.commentService.Update(context.Background(), commentID, authorID, dto.UpdateCommentRequest{
		Content: strPtr("Second thought"),
	})
	require.Equal(t, 200, resp.Code, resp.Message)
	assert.Equal(t, "Second thought", resp.Data.Content)
	assert.NotNil(t, resp.Data.UpdatedAt)
}

func TestCommentService_UpdateByNonAuthorRejected(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	otherID := env.registerUser(t, "Kofi Boateng", "0200000001")
	postID := env.createPost(t, authorID, "Title", "Content")
	commentID := env.createComment(t, authorID, postID, "Mine")

	resp := env.commentService.Update(context.Background(), commentID, otherID, dto.UpdateCommentRequest{
		Content: strPtr("Hijacked"),
	})
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "Comment was not made by the user, You cant update it", resp.Message)

	// Content is untouched.
	get := env.commentService.GetByID(context.Background(), commentID)
	require.Equal(t, 200, get.Code)
	assert.Equal(t, "Mine", get.Data.Content)
}

func TestCommentService_DeleteByNonAuthorForbidden(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	otherID := env.registerUser(t, "Kofi Boateng", "0200000001")
	postID := env.createPost(t, authorID, "Title", "Content")
	commentID := env.createComment(t, authorID, postID, "Mine")

	resp := env.commentService.Delete(context.Background(), commentID, otherID)
	assert.Equal(t, 403, resp.Code)
	assert.Equal(t, "User is not authorized to delete this comment", resp.Message)

	get := env.commentService.GetByID(context.Background(), commentID)
	assert.Equal(t, 200, get.Code, "a forbidden delete must leave the comment in place")
}

func TestCommentService_DeleteByAdmin(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	adminID := env.registerUser(t, "Platform Admin", "0200000001")
	env.promoteToAdmin(t, adminID)
	postID := env.createPost(t, authorID, "Title", "Content")
	commentID := env.createComment(t, authorID, postID, "Mine")

	resp := env.commentService.Delete(context.Background(), commentID, adminID)
	require.Equal(t, 200, resp.Code, resp.Message)

	get := env.commentService.GetByID(context.Background(), commentID)
	assert.Equal(t, 404, get.Code)
}

func TestCommentService_DeleteByAuthor(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, authorID, "Title", "Content")
	commentID := env.createComment(t, authorID, postID, "Mine")

	resp := env.commentService.Delete(context.Background(), commentID, authorID)
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, "Mine", resp.Data.Content)

	again := env.commentService.Delete(context.Background(), commentID, authorID)
	assert.Equal(t, 404, again.Code)
	assert.Equal(t, "Comment not found", again.Message)
}

func TestCommentService_GetAllByBlogPost(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	readerID := env.registerUser(t, "Kofi Boateng", "0200000001")
	postID := env.createPost(t, authorID, "Title", "Content")

	env.createComment(t, readerID, postID, "First comment")
	env.createComment(t, readerID, postID, "Second comment")
	droppedID := env.createComment(t, readerID, postID, "Removed later")
	require.Equal(t, 200, env.commentService.Delete(context.Background(), droppedID, readerID).Code)

	resp := env.commentService.GetAllByBlogPost(context.Background(), postID, dto.BaseFilter{})
	require.Equal(t, 200, resp.Code, resp.Message)
	assert.Equal(t, 2, resp.Data.TotalCount)
	assert.Len(t, resp.Data.Payload, 2)

	search := env.commentService.GetAllByBlogPost(context.Background(), postID, dto.BaseFilter{Search: "Second"})
	require.Equal(t, 200, search.Code)
	require.Len(t, search.Data.Payload, 1)
	assert.Equal(t, "Second comment", search.Data.Payload[0].Content)
}

func TestCommentService_GetAllByBlogPostUnknownPost(t *testing.T) {
	env := newTestEnv(t)

	resp := env.commentService.GetAllByBlogPost(context.Background(), "nope", dto.BaseFilter{})
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "Blog post not found", resp.Message)
}

func TestCommentService_GetAllByDeletedPostStillListed(t *testing.T) {
	env := newTestEnv(t)
	authorID := env.registerUser(t, "Ama Mensah", "0274810934")
	postID := env.createPost(t, authorID, "Title", "Content")
	env.createComment(t, authorID, postID, "Before the post went away")
	require.Equal(t, 200, env.postService.Delete(context.Background(), postID).Code)

	// Listing only requires the post row to exist, not to be active.
	resp := env.commentService.GetAllByBlogPost(context.Background(), postID, dto.BaseFilter{})
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, 1, resp.Data.TotalCount)
}
