package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coinkeep/coin-keeper/internal/logger"
	"github.com/coinkeep/coin-keeper/models"
	"github.com/jackc/pgerrcode"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &sessionRepository{
		db:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	session := models.Session{Token: "tok-123", UserID: 1}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.Token, session.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSession_AlreadyExists(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	session := models.Session{Token: "tok-123", UserID: 1}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.Token, session.UserID).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateSession(context.Background(), session)
	if !errors.Is(err, ErrSessionAlreadyExists) {
		t.Fatalf("expected ErrSessionAlreadyExists, got %v", err)
	}
}

func TestCreateSession_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("db network error"))

	err := repo.CreateSession(context.Background(), models.Session{Token: "tok", UserID: 1})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindSessionByToken_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"token", "user_id", "created_at"}).
		AddRow("tok-123", 1, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("tok-123").
		WillReturnRows(rows)

	found, err := repo.FindSessionByToken(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", found.UserID)
	}
}

func TestFindSessionByToken_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM sessions").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSessionByToken(context.Background(), "missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSessionByToken_Idempotent(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	// zero rows affected is still success
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSessionByToken(context.Background(), "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteSessionByToken_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnError(errors.New("db network error"))

	err := repo.DeleteSessionByToken(context.Background(), "tok")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
