package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/trainee-auth/internal/config"
)

func TestDSN(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		DBUser: "trainee",
		DBPass: "hunter2",
		DBHost: "db.internal",
		DBPort: "3306",
		DBName: "trainees",
	}
	assert.Equal(t,
		"trainee:hunter2@tcp(db.internal:3306)/trainees?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}

func TestDSNWithoutPassword(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		DBUser: "root",
		DBHost: "localhost",
		DBPort: "3307",
		DBName: "trainees",
	}
	assert.Equal(t,
		"root@tcp(localhost:3307)/trainees?charset=utf8mb4&parseTime=true&loc=UTC",
		dsn(cfg))
}
