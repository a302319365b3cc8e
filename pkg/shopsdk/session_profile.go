package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

const (
	pathCurrentProfile = "/users/profile"
	pathUserProfileFmt = "/users/%d/profile"
)

// GetProfile retrieves the base profile of the user the credential belongs to.
func (s *Session) GetProfile(ctx context.Context) (*UserProfile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, pathCurrentProfile, nil)
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := decodeJSON(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// PatchProfile updates the nickname of userID.
func (s *Session) PatchProfile(ctx context.Context, userID int64, req PatchProfileRequest) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, fmt.Sprintf(pathUserProfileFmt, userID), req)
	if err != nil {
		return err
	}
	return checkAck(resp)
}
