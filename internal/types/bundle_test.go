package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortExperiences(t *testing.T) {
	all := []Experience{
		{Title: "Engineer", IsVolunteer: false},
		{Title: "Mentor", IsVolunteer: true},
		{Title: "Senior Engineer", IsVolunteer: false},
	}

	career, volunteering := SortExperiences(all)

	require.Len(t, career, 2)
	require.Len(t, volunteering, 1)
	assert.Equal(t, "Engineer", career[0].Title)
	assert.Equal(t, "Senior Engineer", career[1].Title)
	assert.Equal(t, "Mentor", volunteering[0].Title)
}

func TestSortExperiences_Empty(t *testing.T) {
	career, volunteering := SortExperiences(nil)

	assert.Empty(t, career)
	assert.Empty(t, volunteering)
	assert.NotNil(t, career)
	assert.NotNil(t, volunteering)
}

func TestSortSkills(t *testing.T) {
	all := []Skill{
		{Name: "Go", IsSoftSkill: false},
		{Name: "Communication", IsSoftSkill: true},
		{Name: "PostgreSQL", IsSoftSkill: false},
	}

	technical, soft := SortSkills(all)

	require.Len(t, technical, 2)
	require.Len(t, soft, 1)
	assert.Equal(t, "Communication", soft[0].Name)
}

func TestUserIdentity(t *testing.T) {
	u := &User{Name: "Dana", Email: "dana@example.com", Phone: "123"}

	identity := u.Identity()
	require.NotNil(t, identity)
	assert.Equal(t, "Dana", identity.Name)
	assert.Equal(t, "dana@example.com", identity.Email)
	assert.Equal(t, "123", identity.Phone)

	var missing *User
	assert.Nil(t, missing.Identity())
}

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "longenough"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "dana@example.com", Password: "longenough"}},
		{"bad email", RegisterRequest{Name: "Dana", Email: "nope", Password: "longenough"}},
		{"short password", RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.req.Validate())
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "dana@example.com", Password: "anything"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "dana@example.com"}).Validate())
}
