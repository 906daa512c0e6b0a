package dispatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftalliance/backend/internal/models"
)

const sampleMT103 = ":20:REF123\n:23B:CRED\n:32A:240315USD1500.50"

func newTestSendLog(t *testing.T) (*SendLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swift_send_log.txt")
	s := NewSendLog(path, nil)
	s.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return s, path
}

func TestSendLogAppend(t *testing.T) {
	t.Run("appends one formatted line per send", func(t *testing.T) {
		s, path := newTestSendLog(t)

		first, err := s.Send(context.Background(), "MT103", "REF123", sampleMT103)
		require.NoError(t, err)
		_, err = s.Send(context.Background(), "pain.001", "E2E-1", "<Document/>")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		require.Len(t, lines, 2)

		parts := strings.Split(lines[0], " | ")
		require.Len(t, parts, 4)
		assert.Equal(t, "2024-03-15T12:00:00Z", parts[0])
		assert.Equal(t, "MT103", parts[1])
		assert.Equal(t, "REF123", parts[2])
		assert.Regexp(t, "^[0-9a-f]{16}$", parts[3])
		assert.Equal(t, first.Digest, parts[3])

		assert.Contains(t, lines[1], " | pain.001 | E2E-1 | ")
	})

	t.Run("digest depends only on the payload", func(t *testing.T) {
		s, _ := newTestSendLog(t)

		r1, err := s.Send(context.Background(), "MT103", "REF123", sampleMT103)
		require.NoError(t, err)
		r2, err := s.Send(context.Background(), "MT103", "REF124", sampleMT103)
		require.NoError(t, err)
		r3, err := s.Send(context.Background(), "MT103", "REF125", sampleMT103+"x")
		require.NoError(t, err)

		assert.Equal(t, r1.Digest, r2.Digest)
		assert.NotEqual(t, r1.Digest, r3.Digest)
	})

	t.Run("receipt carries timestamp and message type", func(t *testing.T) {
		s, _ := newTestSendLog(t)

		receipt, err := s.Send(context.Background(), "MT103", "REF123", sampleMT103)
		require.NoError(t, err)
		assert.Equal(t, "MT103", receipt.MessageType)
		assert.Equal(t, "REF123", receipt.Reference)
		assert.Equal(t, "2024-03-15T12:00:00Z", receipt.LoggedAt)
		assert.Empty(t, receipt.QueuedToList)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		s, _ := newTestSendLog(t)

		var valErr *models.ValidationError
		_, err := s.Send(context.Background(), "", "REF123", sampleMT103)
		require.ErrorAs(t, err, &valErr)
		_, err = s.Send(context.Background(), "MT103", "", sampleMT103)
		require.ErrorAs(t, err, &valErr)
		_, err = s.Send(context.Background(), "MT103", "REF123", "")
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "logs", "swift_send_log.txt")
		s := NewSendLog(path, nil)

		_, err := s.Send(context.Background(), "MT103", "REF123", sampleMT103)
		require.NoError(t, err)
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestSendLogOutboxQueue(t *testing.T) {
	t.Run("pushes the payload to a per-type list", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectRPush("outbox:MT103", sampleMT103).SetVal(1)

		s := NewSendLog(filepath.Join(t.TempDir(), "swift_send_log.txt"), db)
		receipt, err := s.Send(context.Background(), "MT103", "REF123", sampleMT103)
		require.NoError(t, err)

		assert.Equal(t, "outbox:MT103", receipt.QueuedToList)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure does not fail the send", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectRPush("outbox:MT103", sampleMT103).SetErr(errors.New("connection refused"))

		path := filepath.Join(t.TempDir(), "swift_send_log.txt")
		s := NewSendLog(path, db)
		receipt, err := s.Send(context.Background(), "MT103", "REF123", sampleMT103)
		require.NoError(t, err)

		assert.Empty(t, receipt.QueuedToList)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "REF123")
	})
}
