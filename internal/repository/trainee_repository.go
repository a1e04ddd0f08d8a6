package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/trainee-auth/internal/model"
)

// TraineeRepo provides access to the 'trainees' table.
type TraineeRepo struct{ DB *sql.DB }

func NewTraineeRepo(db *sql.DB) *TraineeRepo { return &TraineeRepo{DB: db} }

// Create inserts a trainee with an already-hashed password and returns the
// stored record. The unique index on phone_number enforces one record per
// number; a duplicate insert maps to ErrPhoneExists.
func (r *TraineeRepo) Create(ctx context.Context, phone, passwordHash, name string) (model.Trainee, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO trainees (phone_number, password_hash, name) VALUES (?,?,?)",
		phone, passwordHash, name)
	if err != nil {
		// MySQL 1062 = duplicate entry for a unique key.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.Trainee{}, ErrPhoneExists
		}
		return model.Trainee{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Trainee{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

// FindByPhone fetches a trainee by phone number. Missing records map to
// ErrTraineeNotFound.
func (r *TraineeRepo) FindByPhone(ctx context.Context, phone string) (model.Trainee, error) {
	var t model.Trainee
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,phone_number,password_hash,name,created_at,updated_at FROM trainees WHERE phone_number=? LIMIT 1",
		phone).Scan(&t.ID, &t.PhoneNumber, &t.PasswordHash, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trainee{}, ErrTraineeNotFound
	}
	return t, err
}

// FindByID fetches a trainee by id.
func (r *TraineeRepo) FindByID(ctx context.Context, id uint64) (model.Trainee, error) {
	var t model.Trainee
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,phone_number,password_hash,name,created_at,updated_at FROM trainees WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.PhoneNumber, &t.PasswordHash, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Trainee{}, ErrTraineeNotFound
	}
	return t, err
}

// UpdatePasswordHash replaces the stored hash for the given trainee id.
func (r *TraineeRepo) UpdatePasswordHash(ctx context.Context, id uint64, newHash string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE trainees SET password_hash=? WHERE id=?",
		newHash, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTraineeNotFound
	}
	return nil
}
