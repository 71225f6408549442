package validation

import (
	"errors"
	"movie_review/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidateStruct_Signup(t *testing.T) {
	tests := []struct {
		name  string
		input model.SignupReq
		field string
	}{
		{name: "valid", input: model.SignupReq{Username: "bob", Email: "bob@example.com", Password: "abcd"}},
		{name: "short username", input: model.SignupReq{Username: "bo", Email: "bob@example.com", Password: "abcd"}, field: "username"},
		{name: "bad email", input: model.SignupReq{Username: "bob", Email: "bob.example.com", Password: "abcd"}, field: "email"},
		{name: "password of 3", input: model.SignupReq{Username: "bob", Email: "bob@example.com", Password: "abc"}, field: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrValidation))
			var ve *model.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidateStruct_AddMovie(t *testing.T) {
	valid := model.AddMovieReq{
		Title:       "Alien",
		Genre:       []string{"horror"},
		ReleaseYear: 1979,
		Director:    "Ridley Scott",
		Cast:        []string{"Sigourney Weaver"},
	}
	assert.NoError(t, ValidateStruct(&valid))

	noCast := valid
	noCast.Cast = []string{}
	err := ValidateStruct(&noCast)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cast")

	noYear := valid
	noYear.ReleaseYear = 0
	assert.ErrorIs(t, ValidateStruct(&noYear), model.ErrValidation)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("someone@example.org"))
	assert.False(t, ValidEmail("someone"))
	assert.False(t, ValidEmail(""))
}
