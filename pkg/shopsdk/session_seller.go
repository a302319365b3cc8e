package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

const (
	pathSellerByUserFmt = "/sellers/users/%d"
	pathSellerFmt       = "/sellers/%d"
)

// GetSellerProfile retrieves the seller extension of userID. The backend only
// serves the caller's own seller profile.
func (s *Session) GetSellerProfile(ctx context.Context, userID int64) (*SellerProfile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, fmt.Sprintf(pathSellerByUserFmt, userID), nil)
	if err != nil {
		return nil, err
	}

	var seller SellerProfile
	if err := decodeJSON(resp, &seller); err != nil {
		return nil, err
	}

	return &seller, nil
}

// PatchSellerProfile updates the introduce text of userID.
func (s *Session) PatchSellerProfile(ctx context.Context, userID int64, req PatchSellerProfileRequest) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, fmt.Sprintf(pathSellerFmt, userID), req)
	if err != nil {
		return err
	}
	return checkAck(resp)
}
