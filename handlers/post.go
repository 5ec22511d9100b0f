package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/postline/models"
	"github.com/akinalp/postline/pkg"
	"github.com/akinalp/postline/services"
)

// PostHandler, gönderi endpoint'lerini yöneten struct.
// Tüm endpoint'ler bearer guard'ın arkasındadır — caller kimliği
// context'teki claims'ten okunur.
type PostHandler struct {
	postService services.PostService
}

// NewPostHandler, constructor.
func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create godoc
// POST /posts
// Başarıda 201 + post; title alınmışsa 409.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, post)
}

// List godoc
// GET /posts?user_id=...
// user_id verilmezse caller'ın kendi gönderileri listelenir.
// Hiç gönderi yoksa 404.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = claims.UserID
	}

	posts, err := h.postService.ListByUser(r.Context(), userID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, posts)
}

// Get godoc
// GET /posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Update godoc
// PUT /posts/{id}
// Kısmi güncelleme — body'de olmayan alanlara dokunulmaz.
// Sadece gönderinin sahibi güncelleyebilir (aksi halde 401).
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.postService.Update(r.Context(), r.PathValue("id"), claims.UserID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Delete godoc
// DELETE /posts/{id}
// Sadece gönderinin sahibi silebilir; silinen gönderi response'ta döner.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	post, err := h.postService.Delete(r.Context(), r.PathValue("id"), claims.UserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Like godoc
// POST /posts/{id}/like
// Kendi gönderini like'layamazsın (401).
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	post, err := h.postService.Like(r.Context(), r.PathValue("id"), claims.UserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// Dislike godoc
// POST /posts/{id}/dislike
// Kendi gönderini dislike'layamazsın (401).
func (h *PostHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	post, err := h.postService.Dislike(r.Context(), r.PathValue("id"), claims.UserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, post)
}

// claimsFrom, bearer guard'ın context'e koyduğu claims'i okur.
func claimsFrom(r *http.Request) (*models.TokenClaims, bool) {
	claims, ok := r.Context().Value(ClaimsContextKey).(*models.TokenClaims)
	return claims, ok
}
