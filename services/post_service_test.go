package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePostRepo struct {
	posts  []*models.Post
	nextID int
}

func (f *fakePostRepo) Create(_ context.Context, post *models.Post) error {
	for _, p := range f.posts {
		if p.Title == post.Title {
			return fmt.Errorf("%w: post title already taken", pkg.ErrAlreadyExists)
		}
	}
	f.nextID++
	post.ID = fmt.Sprintf("post-%d", f.nextID)
	post.CreatedAt = time.Now()
	stored := *post
	f.posts = append(f.posts, &stored)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakePostRepo) GetByUserID(_ context.Context, userID string) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, post *models.Post) error {
	for _, p := range f.posts {
		if p.Title == post.Title && p.ID != post.ID {
			return fmt.Errorf("%w: post title already taken", pkg.ErrAlreadyExists)
		}
	}
	for _, p := range f.posts {
		if p.ID == post.ID {
			p.Title = post.Title
			p.Description = post.Description
			return nil
		}
	}
	return pkg.ErrNotFound
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return nil
		}
	}
	return pkg.ErrNotFound
}

func (f *fakePostRepo) IncrementLike(_ context.Context, id string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			p.LikeCount++
			clone := *p
			return &clone, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func (f *fakePostRepo) IncrementDislike(_ context.Context, id string) (*models.Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			p.DislikeCount++
			clone := *p
			return &clone, nil
		}
	}
	return nil, pkg.ErrNotFound
}

func newPostFixture(t *testing.T) (PostService, *fakePostRepo) {
	t.Helper()
	repo := &fakePostRepo{}
	return NewPostService(repo), repo
}

func createPost(t *testing.T, svc PostService, userID, title string) *models.Post {
	t.Helper()
	post, err := svc.Create(context.Background(), userID, &models.CreatePostRequest{
		Title:       title,
		Description: "some description",
	})
	require.NoError(t, err)
	return post
}

func strPtr(s string) *string { return &s }

// ─── Create / List / Get ───

func TestCreatePost(t *testing.T) {
	svc, _ := newPostFixture(t)

	post := createPost(t, svc, "author-1", "first post")
	assert.Equal(t, "author-1", post.UserID)
	assert.Equal(t, 0, post.LikeCount)
	assert.Equal(t, 0, post.DislikeCount)
}

func TestCreatePostDuplicateTitleConflict(t *testing.T) {
	svc, _ := newPostFixture(t)
	createPost(t, svc, "author-1", "taken title")

	_, err := svc.Create(context.Background(), "author-2", &models.CreatePostRequest{
		Title: "taken title", Description: "x",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestListByUserEmptyIsNotFound(t *testing.T) {
	svc, _ := newPostFixture(t)

	_, err := svc.ListByUser(context.Background(), "author-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestListByUser(t *testing.T) {
	svc, _ := newPostFixture(t)
	createPost(t, svc, "author-1", "post a")
	createPost(t, svc, "author-1", "post b")
	createPost(t, svc, "author-2", "post c")

	posts, err := svc.ListByUser(context.Background(), "author-1")
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetMissingPost(t *testing.T) {
	svc, _ := newPostFixture(t)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// ─── Update ───

func TestUpdateOnlyOwner(t *testing.T) {
	svc, _ := newPostFixture(t)
	post := createPost(t, svc, "author-1", "my post")

	_, err := svc.Update(context.Background(), post.ID, "someone-else", &models.UpdatePostRequest{
		Title: strPtr("hijacked"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestUpdatePatchSemantics(t *testing.T) {
	svc, repo := newPostFixture(t)
	post := createPost(t, svc, "author-1", "my post")

	// Sadece description gönderilir — title'a dokunulmaz.
	// Boş string de geçerli bir değerdir, atlanmaz.
	updated, err := svc.Update(context.Background(), post.ID, "author-1", &models.UpdatePostRequest{
		Description: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "my post", updated.Title)
	assert.Equal(t, "", updated.Description)
	assert.Equal(t, "", repo.posts[0].Description)
}

func TestUpdateEmptyTitleRejected(t *testing.T) {
	svc, _ := newPostFixture(t)
	post := createPost(t, svc, "author-1", "my post")

	_, err := svc.Update(context.Background(), post.ID, "author-1", &models.UpdatePostRequest{
		Title: strPtr("  "),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestUpdateToTakenTitleConflict(t *testing.T) {
	svc, _ := newPostFixture(t)
	createPost(t, svc, "author-1", "existing title")
	post := createPost(t, svc, "author-1", "my post")

	_, err := svc.Update(context.Background(), post.ID, "author-1", &models.UpdatePostRequest{
		Title: strPtr("existing title"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestUpdateMissingPost(t *testing.T) {
	svc, _ := newPostFixture(t)

	_, err := svc.Update(context.Background(), "missing", "author-1", &models.UpdatePostRequest{
		Title: strPtr("new title"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// ─── Delete ───

func TestDeleteOnlyOwner(t *testing.T) {
	svc, repo := newPostFixture(t)
	post := createPost(t, svc, "author-1", "my post")

	_, err := svc.Delete(context.Background(), post.ID, "someone-else")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
	assert.Len(t, repo.posts, 1)

	deleted, err := svc.Delete(context.Background(), post.ID, "author-1")
	require.NoError(t, err)
	assert.Equal(t, post.ID, deleted.ID)
	assert.Empty(t, repo.posts)
}

func TestDeleteMissingPostIsNotFound(t *testing.T) {
	// Varlık kontrolü sahiplik kontrolünden önce — olmayan gönderi 404
	svc, _ := newPostFixture(t)

	_, err := svc.Delete(context.Background(), "missing", "author-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.NotErrorIs(t, err, pkg.ErrUnauthorized)
}

// ─── Like / Dislike ───

func TestLikeOwnPostRejected(t *testing.T) {
	svc, repo := newPostFixture(t)
	post := createPost(t, svc, "author-1", "my post")

	_, err := svc.Like(context.Background(), post.ID, "author-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
	assert.Equal(t, 0, repo.posts[0].LikeCount)

	_, err = svc.Dislike(context.Background(), post.ID, "author-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
	assert.Equal(t, 0, repo.posts[0].DislikeCount)
}

func TestLikeIncrementsExactlyOne(t *testing.T) {
	svc, _ := newPostFixture(t)
	post := createPost(t, svc, "author-1", "my post")

	liked, err := svc.Like(context.Background(), post.ID, "reader-1")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)
	assert.Equal(t, 0, liked.DislikeCount) // diğer sayaç değişmez

	disliked, err := svc.Dislike(context.Background(), post.ID, "reader-2")
	require.NoError(t, err)
	assert.Equal(t, 1, disliked.LikeCount)
	assert.Equal(t, 1, disliked.DislikeCount)
}
