package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/mattn/go-sqlite3"
)

var (
	errorLoginTaken  = fmt.Errorf("login is already taken")
	errorUnknownUser = fmt.Errorf("unknown user")
	errorBadToken    = fmt.Errorf("invalid token")
)

// CreateTables prepares db for the server.
func CreateTables(ctx context.Context, db *sql.DB) error {
	const (
		usersTable = `
		CREATE TABLE IF NOT EXISTS users(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			login TEXT NOT NULL UNIQUE,
			hashedPassword TEXT NOT NULL
		);`

		programsTable = `
		CREATE TABLE IF NOT EXISTS programs(
			userId INTEGER PRIMARY KEY,
			tokens TEXT NOT NULL,

			FOREIGN KEY (userId) REFERENCES users (id)
		);`
	)

	if _, err := db.ExecContext(ctx, usersTable); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, programsTable); err != nil {
		return err
	}
	return nil
}

func (s *storage) validateToken(bearerToken string) (*jwt.Token, error) {
	tokenString := strings.TrimPrefix(bearerToken, "Bearer ")
	return jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.key, nil
	})
}

func (s *storage) getUserId(bearerToken string) (int, error) {
	token, err := s.validateToken(bearerToken)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errorBadToken, err)
	}
	if !token.Valid {
		return 0, errorBadToken
	}

	user, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errorBadToken
	}
	strId, ok := user["id"].(string)
	if !ok {
		return 0, errorBadToken
	}
	return strconv.Atoi(strId)
}

func storeUser(ctx context.Context, db *sql.DB, login string, hashedPassword []byte) (int64, error) {
	var q string = `
	INSERT INTO users (login, hashedPassword) VALUES ($1, $2)
	`

	res, err := db.ExecContext(ctx, q, login, string(hashedPassword))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, errorLoginTaken
		}
		return 0, err
	}
	return res.LastInsertId()
}

func getUser(ctx context.Context, db *sql.DB, login string) (id int, hashedPassword string, err error) {
	var q string = `
	SELECT id, hashedPassword FROM users WHERE login = $1
	`

	err = db.QueryRowContext(ctx, q, login).Scan(&id, &hashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		err = errorUnknownUser
	}
	return id, hashedPassword, err
}

func storeProgram(ctx context.Context, db *sql.DB, userId int, tokens []string) error {
	var q string = `
	INSERT INTO programs (userId, tokens) VALUES ($1, $2)
	ON CONFLICT (userId) DO UPDATE SET tokens = excluded.tokens
	`

	data, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, q, userId, string(data))
	return err
}

// loadProgram returns the stored tokens of a user, or none if nothing was
// stored yet.
func loadProgram(ctx context.Context, db *sql.DB, userId int) ([]string, error) {
	var (
		q string = `
		SELECT tokens FROM programs WHERE userId = $1
		`
		data   string
		tokens []string
	)

	err := db.QueryRowContext(ctx, q, userId).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &tokens); err != nil {
		return nil, fmt.Errorf("program of user %d: %w", userId, err)
	}
	return tokens, nil
}
