package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team13/tutorfind-cli/internal/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewAt(filepath.Join(t.TempDir(), "tf_auth.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Load())

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	assert.Equal(t, domain.RoleNone, s.Role())
	assert.False(t, s.LoggedIn())
}

func TestLoginPersistsBeforeReturning(t *testing.T) {
	s := tempStore(t)

	user := domain.UserSummary{ID: 7, Email: "a@x.com", FirstName: "Ann", Role: "learner"}
	require.NoError(t, s.Login(user, "tok-1"))

	// Memory updated and role normalized.
	assert.Equal(t, domain.RoleLearner, s.Role())
	assert.Equal(t, "tok-1", s.Token())

	// Disk already holds the same session.
	fresh := NewAt(s.path)
	require.NoError(t, fresh.Load())
	require.NotNil(t, fresh.User())
	assert.Equal(t, int64(7), fresh.User().ID)
	assert.Equal(t, domain.RoleLearner, fresh.User().Role)
	assert.Equal(t, "tok-1", fresh.Token())
}

func TestLogoutClearsMemoryAndDisk(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Login(domain.UserSummary{ID: 1, Email: "a@x.com", Role: "TUTOR"}, "tok"))

	require.NoError(t, s.Logout())

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	_, err := os.Stat(s.path)
	assert.True(t, os.IsNotExist(err))

	// Logging out twice is fine.
	require.NoError(t, s.Logout())
}

func TestLoadLegacyShape(t *testing.T) {
	s := tempStore(t)
	legacy := `{"name":"Ann","email":"a@x.com","role":"tutor","id":7}`
	require.NoError(t, os.WriteFile(s.path, []byte(legacy), 0600))

	require.NoError(t, s.Load())

	user := s.User()
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ann", user.FirstName)
	assert.Empty(t, user.LastName)
	assert.Equal(t, domain.RoleTutor, user.Role)
	assert.Empty(t, s.Token())

	// Not rewritten until the next login.
	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	assert.JSONEq(t, legacy, string(raw))
}

func TestLoadCorruptFileRemoved(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0600))

	require.NoError(t, s.Load())

	assert.Nil(t, s.User())
	assert.Empty(t, s.Token())
	_, err := os.Stat(s.path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoginNormalizesRoleOnDisk(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Login(domain.UserSummary{ID: 2, Email: "b@x.com", Role: "Admin"}, "tok"))

	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)

	var got struct {
		User struct {
			Role string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "ADMIN", got.User.Role)
}

func TestLoginRejectsTokenWithoutUser(t *testing.T) {
	s := tempStore(t)

	err := s.Login(domain.UserSummary{}, "tok")
	require.Error(t, err)

	// Nothing persisted.
	_, statErr := os.Stat(s.path)
	assert.True(t, os.IsNotExist(statErr))
}
