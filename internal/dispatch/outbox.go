// Package dispatch records outbound payment messages. Every send appends one
// line to a local send log; when Redis is available the payload is also
// pushed onto a per-type outbox list for downstream pickup.
package dispatch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/swiftalliance/backend/internal/models"
)

// SendLog is the append-only record of dispatched messages. The log line
// carries a digest prefix rather than the payload so the file stays small and
// free of account data.
type SendLog struct {
	mu    sync.Mutex
	path  string
	redis *redis.Client
	now   func() time.Time
}

// NewSendLog creates a send log writing to path. rdb may be nil.
func NewSendLog(path string, rdb *redis.Client) *SendLog {
	return &SendLog{
		path:  path,
		redis: rdb,
		now:   time.Now,
	}
}

// Send records one outbound message. The log append must succeed; the Redis
// push is best-effort and its failure only costs the queue entry.
func (s *SendLog) Send(ctx context.Context, messageType, reference, payload string) (*models.DispatchReceipt, error) {
	if messageType == "" {
		return nil, models.NewValidationError("message_type", "required")
	}
	if reference == "" {
		return nil, models.NewValidationError("reference", "required")
	}
	if payload == "" {
		return nil, models.NewValidationError("content", "required")
	}

	sum := sha256.Sum256([]byte(payload))
	digest := hex.EncodeToString(sum[:])[:16]
	loggedAt := s.now().UTC()
	line := fmt.Sprintf("%s | %s | %s | %s\n", loggedAt.Format(time.RFC3339), messageType, reference, digest)

	s.mu.Lock()
	err := s.append(line)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to append to send log: %w", err)
	}

	receipt := &models.DispatchReceipt{
		Reference:   reference,
		MessageType: messageType,
		LoggedAt:    loggedAt.Format(time.RFC3339),
		Digest:      digest,
	}

	if s.redis != nil {
		queue := "outbox:" + messageType
		if err := s.redis.RPush(ctx, queue, payload).Err(); err != nil {
			log.Printf("[DISPATCH] Failed to queue %s %s to %s: %v", messageType, reference, queue, err)
		} else {
			log.Printf("[DISPATCH] Queued %s %s to %s", messageType, reference, queue)
			receipt.QueuedToList = queue
		}
	}

	return receipt, nil
}

func (s *SendLog) append(line string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
