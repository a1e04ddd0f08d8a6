package model

import "time"

// Trainee represents one account record as stored in the `trainees` table.
// The phone number is the unique identity key; at most one record exists per
// number, enforced by a unique index. PasswordHash holds the bcrypt digest
// and must never leave the server, so handlers expose Profile views instead
// of this struct.
//
// Fields:
//
//	ID           – primary key identifier of the trainee.
//	PhoneNumber  – unique 11-digit phone number starting with "010".
//	PasswordHash – bcrypt hashed password.
//	Name         – display name, passed through unchanged at registration.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update (password resets bump this).
type Trainee struct {
	ID           uint64    // trainees.id
	PhoneNumber  string    // trainees.phone_number
	PasswordHash string    // trainees.password_hash
	Name         string    // trainees.name
	CreatedAt    time.Time // trainees.created_at
	UpdatedAt    time.Time // trainees.updated_at
}
