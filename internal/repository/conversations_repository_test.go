package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hiyoko/dailystamp/internal/repository"
	"github.com/hiyoko/dailystamp/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateConversation(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewConversationsRepoWithConn(conn)
	conv := entity.Conversation{
		UserID:       uuid.New(),
		RequestText:  "はみがきしたよ",
		ResponseText: "えらいね！",
	}
	timestamp := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO conversations (user_id, request_text, response_text) VALUES ($1, $2, $3) RETURNING id, timestamp;`)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(conv.UserID, conv.RequestText, conv.ResponseText).
			WillReturnRows(pgxmock.NewRows([]string{"id", "timestamp"}).AddRow(int64(1), timestamp))
		err := repo.Create(ctx, &conv)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), conv.ID)
		assert.Equal(t, timestamp, conv.Timestamp)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(conv.UserID, conv.RequestText, conv.ResponseText).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &conv)
		assert.Error(t, err)
	})
	t.Run("nil conversation", func(t *testing.T) {
		err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
}
