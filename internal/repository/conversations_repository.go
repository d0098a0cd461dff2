package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/hiyoko/dailystamp/pkg/cleanup"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

type ConversationsRepository struct {
	conn PgConnection
}

func NewConversationsRepo(cfg DBConfig) *ConversationsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for conversationsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for conversationsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing conversationsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ConversationsRepository{
		conn: pool,
	}
}

func NewConversationsRepoWithConn(conn PgConnection) *ConversationsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for conversationsRepo: " + err.Error())
	}
	return &ConversationsRepository{
		conn: conn,
	}
}

func (cr *ConversationsRepository) Create(ctx context.Context, conv *entity.Conversation) error {
	if conv == nil {
		return errors.New("conversation is nil")
	}
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO conversations (user_id, request_text, response_text) VALUES ($1, $2, $3) RETURNING id, timestamp;`,
		conv.UserID,
		conv.RequestText,
		conv.ResponseText,
	)
	if err := row.Scan(&conv.ID, &conv.Timestamp); err != nil {
		return errors.New("creating conversation error: " + err.Error())
	}
	return nil
}
