package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
)

const idempotencyKeyHeader = "Idempotency-Key"

// idempotencyKeyTTL is how long a processed key can be replayed
const idempotencyKeyTTL = 24 * time.Hour

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyRequired enforces an Idempotency-Key header on commit
// endpoints. A replayed key returns the cached response instead of
// running the handler again; invoice numbers come from the wall clock,
// so a retried generate request must not mint a second invoice.
func IdempotencyRequired(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyKeyHeader)
		if key == "" {
			response.BadRequest(c, "Idempotency-Key header is required")
			c.Abort()
			return
		}

		value, exists := c.Get(ContextUserID)
		if !exists {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}
		userID, ok := value.(uuid.UUID)
		if !ok {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		existing, err := repo.GetByKey(c.Request.Context(), key, userID)
		if err == nil && existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replay", "true")
			c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
			c.Abort()
			return
		}

		requestHash := ""
		if c.Request.Body != nil {
			bodyBytes, readErr := io.ReadAll(c.Request.Body)
			if readErr == nil {
				sum := sha256.Sum256(bodyBytes)
				requestHash = hex.EncodeToString(sum[:])
				c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}
		}

		writer := &bodyCaptureWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		// Cache only successful outcomes. A client that fixes its
		// request and reuses the key must run the handler again
		// instead of replaying a stale refusal.
		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		ikey := &entity.IdempotencyKey{
			Key:          key,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			RequestHash:  requestHash,
			ResponseCode: status,
			ResponseBody: writer.body.String(),
			ExpiresAt:    time.Now().Add(idempotencyKeyTTL),
		}
		_ = repo.Create(c.Request.Context(), ikey)
	}
}
