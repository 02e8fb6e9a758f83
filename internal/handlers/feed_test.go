package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func feedTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	auth := func(c *gin.Context) {
		c.Set("userId", "user_1")
		c.Next()
	}

	r.POST("/posts", auth, CreatePost(nil))
	r.POST("/like/:postId", auth, LikePost(nil))
	r.GET("/places/:id", GetPlace(nil))
	return r
}

func TestCreatePostRequiresPhotoURL(t *testing.T) {
	r := feedTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts", strings.NewReader(`{"caption":"no photo"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400 without photoUrl, got %d", w.Code)
	}
}

func TestCreatePostRejectsMalformedPlaceID(t *testing.T) {
	r := feedTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/posts", strings.NewReader(`{"photoUrl":"https://cdn/p.jpg","placeId":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed placeId, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid placeId") {
		t.Fatalf("unexpected response %s", w.Body.String())
	}
}

func TestLikePostRejectsMalformedPostID(t *testing.T) {
	r := feedTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/like/not-a-hex", nil)
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed post id, got %d", w.Code)
	}
}

func TestGetPlaceRejectsMalformedID(t *testing.T) {
	r := feedTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/places/not-a-hex", nil)
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed place id, got %d", w.Code)
	}
}
