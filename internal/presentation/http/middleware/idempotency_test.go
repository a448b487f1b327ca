package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	keys map[string]*entity.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *fakeIdempotencyRepo) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	return r.keys[key], nil
}

func (r *fakeIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	r.keys[ikey.Key] = ikey
	return nil
}

func (r *fakeIdempotencyRepo) DeleteExpired(ctx context.Context) error { return nil }

func newCommitRouter(repo *fakeIdempotencyRepo, userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/commit",
		func(c *gin.Context) { c.Set(ContextUserID, userID) },
		IdempotencyRequired(repo),
		handler,
	)
	return router
}

func postCommit(router *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/commit", bytes.NewBufferString(`{}`))
	req.Header.Set("Idempotency-Key", key)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysSuccess(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := newCommitRouter(repo, uuid.New(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"invoice_number": "1756702800000"})
	})

	first := postCommit(router, "key-1")
	second := postCommit(router, "key-1")

	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
	if second.Header().Get("X-Idempotency-Replay") != "true" {
		t.Error("replayed response must carry the replay header")
	}
	if second.Code != first.Code || second.Body.String() != first.Body.String() {
		t.Errorf("replay = %d %q, want %d %q", second.Code, second.Body, first.Code, first.Body)
	}
}

func TestIdempotencyDoesNotCacheRefusals(t *testing.T) {
	repo := newFakeIdempotencyRepo()
	calls := 0
	router := newCommitRouter(repo, uuid.New(), func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "bill has no lines"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"invoice_number": "1756702800000"})
	})

	first := postCommit(router, "key-1")
	second := postCommit(router, "key-1")

	if first.Code != http.StatusUnprocessableEntity {
		t.Fatalf("first status = %d, want 422", first.Code)
	}
	if calls != 2 {
		t.Errorf("handler ran %d times, want 2; refusals must not be cached", calls)
	}
	if second.Code != http.StatusCreated {
		t.Errorf("corrected retry status = %d, want 201", second.Code)
	}
}

func TestIdempotencyRequiresKey(t *testing.T) {
	router := newCommitRouter(newFakeIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
		c.JSON(http.StatusCreated, nil)
	})

	req := httptest.NewRequest(http.MethodPost, "/commit", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 without an Idempotency-Key header", w.Code)
	}
}
