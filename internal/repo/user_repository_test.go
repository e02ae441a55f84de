package repo_test

import (
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/pawelier/internal/db"
	"github.com/rogerio-castellano/pawelier/internal/models"
	"github.com/rogerio-castellano/pawelier/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repositories returns the implementations under test. Postgres is only
// exercised when DATABASE_URL is set.
func repositories(t *testing.T) map[string]repo.UserRepository {
	t.Helper()
	out := map[string]repo.UserRepository{"memory": repo.NewInMemoryUserRepository()}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return out
	}
	database, err := db.Connect(dbURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		cleanupUsers(database)
		database.Close()
	})
	out["postgres"] = repo.NewPostgresUserRepository(database)
	return out
}

func cleanupUsers(database *sql.DB) {
	_, _ = database.Exec(`DELETE FROM users WHERE username LIKE 'repo-test-%'`)
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			username := fmt.Sprintf("repo-test-%d", time.Now().UnixNano())
			created, err := r.CreateUser(models.User{
				Username:     username,
				Email:        username + "@Example.com",
				PasswordHash: "hash",
			})
			require.NoError(t, err)
			assert.NotZero(t, created.ID)

			byName, err := r.GetByLogin(username)
			require.NoError(t, err)
			assert.Equal(t, created.ID, byName.ID)
			assert.Equal(t, "hash", byName.PasswordHash)

			byEmail, err := r.GetByLogin(username + "@example.com")
			require.NoError(t, err)
			assert.Equal(t, created.ID, byEmail.ID)

			_, err = r.CreateUser(models.User{Username: username, Email: "other-" + username + "@example.com"})
			assert.ErrorIs(t, err, repo.ErrDuplicatedValueUnique)

			_, err = r.GetByLogin("repo-test-missing")
			assert.ErrorIs(t, err, repo.ErrUserNotFound)
		})
	}
}
