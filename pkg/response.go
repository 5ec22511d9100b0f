package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorResponse, tüm hata yanıtları için standart format.
// message: kullanıcıya gösterilebilir açıklama.
// error: opsiyonel teknik detay (ör: altta yatan constraint/parse hatası).
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON, başarılı bir yanıtı olduğu gibi serialize eder.
// Auth endpoint'leri {access_token} döner, post endpoint'leri post nesnesini —
// response'u ayrıca bir zarfa sarmıyoruz.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Error, domain error'ı uygun HTTP status'a çevirip hata yanıtı gönderir.
// 401 yanıtlarına standart challenge header'ı eklenir — client hangi
// auth şemasının beklendiğini bilir.
func Error(w http.ResponseWriter, err error) {
	writeError(w, mapErrorToStatus(err), ErrorResponse{Message: err.Error()})
}

// ErrorWithMessage, özel mesajlı hata yanıtı gönderir.
func ErrorWithMessage(w http.ResponseWriter, status int, message string) {
	writeError(w, status, ErrorResponse{Message: message})
}

// ErrorWithDetail, mesaja ek teknik detay taşıyan hata yanıtı gönderir.
// Token doğrulama hatalarında kullanılır: message kısa sebep,
// error ise altta yatan doğrulama hatasının metni.
func ErrorWithDetail(w http.ResponseWriter, status int, message, detail string) {
	writeError(w, status, ErrorResponse{Message: message, Error: detail})
}

func writeError(w http.ResponseWriter, status int, resp ErrorResponse) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode error response", http.StatusInternalServerError)
	}
}

// mapErrorToStatus, domain error'ları HTTP status code'larına eşler.
// errors.Is() kullanarak error chain'ini kontrol eder —
// wrap edilmiş error'lar da doğru match eder.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
