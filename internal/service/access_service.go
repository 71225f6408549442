package service

import (
	"movie_review/model"

	"github.com/casbin/casbin/v2"
	casbinModel "github.com/casbin/casbin/v2/model"
)

const (
	ObjAdmin     = "admin"
	ObjMovie     = "movie"
	ObjReview    = "review"
	ObjWatchlist = "watchlist"
	ObjProfile   = "profile"
	ObjConfig    = "config"

	ActAccess  = "access"
	ActCreate  = "create"
	ActRead    = "read"
	ActReadAny = "read-any"
	ActWrite   = "write"
	ActUpdate  = "update"
	ActReload  = "reload"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type IAccessService interface {
	CanAccess(role model.Role, obj string, act string) bool
}

type AccessService struct {
	enforcer *casbin.Enforcer
}

func NewAccessService() (*AccessService, error) {
	m, err := casbinModel.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	user := string(model.RoleUser)
	admin := string(model.RoleAdmin)
	policies := [][]string{
		{user, ObjReview, ActCreate},
		{user, ObjWatchlist, ActRead},
		{user, ObjWatchlist, ActWrite},
		{user, ObjProfile, ActUpdate},
		{admin, ObjAdmin, ActAccess},
		{admin, ObjMovie, ActCreate},
		{admin, ObjConfig, ActReload},
		{admin, ObjWatchlist, ActReadAny},
	}
	if _, err = enforcer.AddPolicies(policies); err != nil {
		return nil, err
	}
	if _, err = enforcer.AddGroupingPolicy(admin, user); err != nil {
		return nil, err
	}

	return &AccessService{enforcer: enforcer}, nil
}

//------------------------------------------
//------------------------------------------

func (s *AccessService) CanAccess(role model.Role, obj string, act string) bool {
	if role == "" {
		return false
	}
	ok, err := s.enforcer.Enforce(string(role), obj, act)
	return err == nil && ok
}
