package grpc

import (
	"context"

	"github.com/dmitrijs2005/tokengate/internal/server/auth"
	"github.com/dmitrijs2005/tokengate/internal/server/models"
	"github.com/dmitrijs2005/tokengate/internal/server/services"
)

var unauthenticated = services.Result{
	Kind:     services.KindUnauthenticated,
	Messages: []string{services.MsgNoAuthenticatedUser},
}

// fakeAuth records the principal each call saw.
type fakeAuth struct {
	mode      auth.Mode
	login     services.LoginResult
	seen      *auth.Principal
	email     string
	password  string
	logoutRes services.Result
}

func (f *fakeAuth) Mode() auth.Mode { return f.mode }

func (f *fakeAuth) Login(_ context.Context, email, password string) services.LoginResult {
	f.email, f.password = email, password
	return f.login
}

func (f *fakeAuth) RefreshToken(_ context.Context, p *auth.Principal) services.LoginResult {
	f.seen = p
	if !p.HasProof() {
		return services.LoginResult{Result: unauthenticated}
	}
	return services.LoginResult{Result: services.Result{Valid: true}, Token: "refreshed"}
}

func (f *fakeAuth) Logout(_ context.Context, p *auth.Principal) services.Result {
	f.seen = p
	return f.logoutRes
}

func (f *fakeAuth) LoadUser(_ context.Context, p *auth.Principal) services.UserInfo {
	f.seen = p
	if !p.HasProof() {
		return services.UserInfo{Result: unauthenticated}
	}
	return services.UserInfo{
		Result:    services.Result{Valid: true},
		Name:      "alice",
		Roles:     []string{models.DefaultRole},
		Tokens:    7,
		Engines:   models.Vector{true, false},
		HasEngine: true,
	}
}

type fakeAccounts struct {
	current, next, userName string
	res                     services.Result
}

func (f *fakeAccounts) ChangePassword(_ context.Context, _ *auth.Principal, current, next string) services.Result {
	f.current, f.next = current, next
	return f.res
}

func (f *fakeAccounts) ChangeUsername(_ context.Context, _ *auth.Principal, userName string) services.Result {
	f.userName = userName
	return f.res
}

type fakeRegistration struct {
	params services.RegistrationParams
	res    services.RegistrationResult
	userID string
	code   string
}

func (f *fakeRegistration) Register(_ context.Context, params services.RegistrationParams) services.RegistrationResult {
	f.params = params
	return f.res
}

func (f *fakeRegistration) ConfirmEmail(_ context.Context, userID, code string) services.Result {
	f.userID, f.code = userID, code
	return services.Result{Valid: true}
}

type fakeLedger struct {
	domain    string
	requested models.Vector
}

func (f *fakeLedger) GetCapabilityAccess(_ context.Context, p *auth.Principal, domain string) services.AccessResult {
	f.domain = domain
	if !p.HasProof() {
		return services.AccessResult{Result: unauthenticated}
	}
	return services.AccessResult{Result: services.Result{Valid: true}, Vector: models.Vector{false, true}}
}

func (f *fakeLedger) SetCapabilityAccess(_ context.Context, _ *auth.Principal, domain string, requested models.Vector) services.AccessResult {
	f.domain, f.requested = domain, requested
	return services.AccessResult{
		Result: services.Result{Kind: services.KindInsufficientFunds, Messages: []string{"Insufficient tokens: need 2, have 1."}},
		Vector: models.Vector{false, false},
	}
}
