package service

import (
	"movie_review/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessService_CanAccess(t *testing.T) {
	access, err := NewAccessService()
	require.NoError(t, err)

	tests := []struct {
		role model.Role
		obj  string
		act  string
		want bool
	}{
		{model.RoleUser, ObjReview, ActCreate, true},
		{model.RoleUser, ObjWatchlist, ActWrite, true},
		{model.RoleUser, ObjProfile, ActUpdate, true},
		{model.RoleUser, ObjMovie, ActCreate, false},
		{model.RoleUser, ObjAdmin, ActAccess, false},
		{model.RoleUser, ObjWatchlist, ActReadAny, false},
		{model.RoleAdmin, ObjMovie, ActCreate, true},
		{model.RoleAdmin, ObjConfig, ActReload, true},
		{model.RoleAdmin, ObjReview, ActCreate, true},
		{model.RoleAdmin, ObjWatchlist, ActReadAny, true},
		{"", ObjReview, ActCreate, false},
		{"guest", ObjReview, ActCreate, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, access.CanAccess(tt.role, tt.obj, tt.act), "%s %s %s", tt.role, tt.obj, tt.act)
	}
}
