package storage

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"parking-bot/internal/models"
)

type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Init() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		user_email TEXT NOT NULL,
		user_verified INTEGER NOT NULL,
		user_role TEXT NOT NULL
	)`)
	return err
}

func (s *SQLiteStorage) Save(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO session (id, token, user_id, user_name, user_email, user_verified, user_role)
	VALUES (1, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		token = excluded.token,
		user_id = excluded.user_id,
		user_name = excluded.user_name,
		user_email = excluded.user_email,
		user_verified = excluded.user_verified,
		user_role = excluded.user_role`,
		sess.Token,
		sess.User.ID,
		sess.User.Name,
		sess.User.Email,
		sess.User.IsVerified,
		string(sess.User.Role))
	return err
}

func (s *SQLiteStorage) Load(ctx context.Context) (*Session, error) {
	sess := &Session{}
	var role string
	err := s.db.QueryRowContext(ctx, `
	SELECT token, user_id, user_name, user_email, user_verified, user_role
	FROM session WHERE id = 1`).Scan(
		&sess.Token,
		&sess.User.ID,
		&sess.User.Name,
		&sess.User.Email,
		&sess.User.IsVerified,
		&role)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	sess.User.Role = parsed
	return sess, nil
}

func (s *SQLiteStorage) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`)
	return err
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
