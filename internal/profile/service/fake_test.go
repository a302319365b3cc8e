package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
)

// fakeBackend is an in-memory backend that records every call in order.
type fakeBackend struct {
	mu      sync.Mutex
	calls   []string
	profile shopsdk.UserProfile
	seller  shopsdk.SellerProfile

	// errs fails the named call ("get-profile", "get-seller", "patch-profile",
	// "patch-seller").
	errs map[string]error

	// before runs at the start of each call, outside the lock.
	before func(call string)
}

func newFakeBackend(id int64, nickname, role string) *fakeBackend {
	return &fakeBackend{
		profile: shopsdk.UserProfile{ID: id, Username: "user" + fmt.Sprint(id), Nickname: nickname, Role: role},
		errs:    map[string]error{},
	}
}

func (f *fakeBackend) enter(call, record string) error {
	if f.before != nil {
		f.before(call)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, record)
	return f.errs[call]
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) GetProfile(ctx context.Context) (*shopsdk.UserProfile, error) {
	if err := f.enter("get-profile", "GET profile"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.profile
	return &p, nil
}

func (f *fakeBackend) GetSellerProfile(ctx context.Context, userID int64) (*shopsdk.SellerProfile, error) {
	if err := f.enter("get-seller", fmt.Sprintf("GET seller %d", userID)); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.seller
	return &s, nil
}

func (f *fakeBackend) PatchProfile(ctx context.Context, userID int64, req shopsdk.PatchProfileRequest) error {
	if err := f.enter("patch-profile", fmt.Sprintf("PATCH profile %d %s", userID, req.Nickname)); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile.Nickname = req.Nickname
	return nil
}

func (f *fakeBackend) PatchSellerProfile(ctx context.Context, userID int64, req shopsdk.PatchSellerProfileRequest) error {
	if err := f.enter("patch-seller", fmt.Sprintf("PATCH seller %d %s", userID, req.Introduce)); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seller.Introduce = req.Introduce
	return nil
}

type staticCredentials struct {
	token string
	err   error
}

func (c staticCredentials) AccessToken(context.Context) (string, error) {
	return c.token, c.err
}

// newTestService wires backend behind a fixed credential and records the
// credentials sessions were created with.
func newTestService(token string, backend *fakeBackend) (*ProfileService, *[]string) {
	var bound []string
	svc := &ProfileService{
		Credentials: staticCredentials{token: token},
		Sessions: func(credential string) Backend {
			bound = append(bound, credential)
			return backend
		},
	}
	return svc, &bound
}

func strPtr(s string) *string { return &s }
