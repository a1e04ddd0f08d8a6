// Package repository defines the durable store adapters and the sentinel
// errors shared across them. Sentinels let higher layers distinguish
// failure scenarios without inspecting driver error strings: for example
// ErrPhoneExists signals that the uniqueness invariant on the phone number
// rejected an insert, while ErrTraineeNotFound signals that a referenced
// record no longer exists.
package repository

import "errors"

// ErrPhoneExists is returned by Create when a record with the same phone
// number already exists. Two concurrent registrations for one number race
// at the unique index; exactly one insert wins and the loser receives this.
var ErrPhoneExists = errors.New("phone number already exists")

// ErrTraineeNotFound is returned when a lookup or update references a
// trainee id or phone number with no matching record.
var ErrTraineeNotFound = errors.New("trainee not found")
