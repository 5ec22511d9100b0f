package services

import (
	"context"
	"fmt"

	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/akinalp/postline/repository"
)

// PostService, gönderi iş mantığı interface'i.
//
// Sahiplik kuralları:
//   - Update/Delete: sadece gönderinin sahibi
//   - Like/Dislike: sadece sahibi OLMAYAN kullanıcılar
//
// İki kural da burada, service'te enforce edilir — handler sadece
// caller'ın kimliğini (bearer guard'ın çözdüğü user_id) geçirir.
type PostService interface {
	Create(ctx context.Context, userID string, req *models.CreatePostRequest) (*models.Post, error)
	ListByUser(ctx context.Context, userID string) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, callerID string, req *models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, id string, callerID string) (*models.Post, error)
	Like(ctx context.Context, id string, callerID string) (*models.Post, error)
	Dislike(ctx context.Context, id string, callerID string) (*models.Post, error)
}

type postService struct {
	postRepo repository.PostRepository
}

// NewPostService, constructor.
func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// Create, yeni gönderi oluşturur. Title global unique — alınmışsa Conflict.
func (s *postService) Create(ctx context.Context, userID string, req *models.CreatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post := &models.Post{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err // ErrAlreadyExists olabilir → 409
	}

	return post, nil
}

// ListByUser, kullanıcının gönderilerini döner.
// Hiç gönderi yoksa NotFound — boş liste yerine 404 dönmek API kontratıdır.
func (s *postService) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	posts, err := s.postRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: user not have posts", pkg.ErrNotFound)
	}

	return posts, nil
}

func (s *postService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update, gönderiyi kısmen günceller. Sadece sahibi güncelleyebilir.
//
// Patch semantiği: nil field'a dokunulmaz, pointer'lı field yazılır —
// boş string'e güncelleme de geçerli bir istektir, sessizce atlanmaz.
func (s *postService) Update(ctx context.Context, id string, callerID string, req *models.UpdatePostRequest) (*models.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err // ErrNotFound → 404
	}

	if post.UserID != callerID {
		return nil, fmt.Errorf("%w: not enough permission", pkg.ErrUnauthorized)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err // title çakışması → ErrAlreadyExists → 409
	}

	return post, nil
}

// Delete, gönderiyi siler ve silinen gönderiyi döner.
// Varlık kontrolü sahiplik kontrolünden ÖNCE — olmayan gönderi için
// 401 yerine 404 dönülür.
func (s *postService) Delete(ctx context.Context, id string, callerID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.UserID != callerID {
		return nil, fmt.Errorf("%w: not enough permission", pkg.ErrUnauthorized)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return post, nil
}

// Like, gönderinin like sayacını 1 artırır.
// Kullanıcı kendi gönderisini like'layamaz.
func (s *postService) Like(ctx context.Context, id string, callerID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.UserID == callerID {
		return nil, fmt.Errorf("%w: cant like yourself post", pkg.ErrUnauthorized)
	}

	return s.postRepo.IncrementLike(ctx, id)
}

// Dislike, gönderinin dislike sayacını 1 artırır.
// Kullanıcı kendi gönderisini dislike'layamaz.
func (s *postService) Dislike(ctx context.Context, id string, callerID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.UserID == callerID {
		return nil, fmt.Errorf("%w: cant dislike yourself post", pkg.ErrUnauthorized)
	}

	return s.postRepo.IncrementDislike(ctx, id)
}
