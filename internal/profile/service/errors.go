package service

import (
	"errors"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
)

var (
	ErrProfileFetch  = errors.New("failed to fetch profile")
	ErrSellerFetch   = errors.New("failed to fetch seller profile")
	ErrProfileUpdate = errors.New("failed to update profile")
	ErrSellerUpdate  = errors.New("failed to update seller profile")
	ErrCredential    = errors.New("failed to read credential")
	ErrValidation    = errors.New("required field missing")
	ErrNotReady      = errors.New("profile not loaded")
)

// noticeFor maps a loader or submitter failure to the notice shown to the user.
// A rejected credential wins over the step that noticed it.
func noticeFor(err error) *domain.Notice {
	var apiErr *shopsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		return domain.Failure(domain.NoticeSessionRejected)
	}

	switch {
	case errors.Is(err, ErrValidation):
		return domain.Failure(domain.NoticeRequiredField)
	case errors.Is(err, ErrNotReady):
		return domain.Failure(domain.NoticeNotReady)
	case errors.Is(err, ErrCredential):
		return domain.Failure(domain.NoticeStorageFailed)
	case errors.Is(err, ErrSellerUpdate):
		return domain.Failure(domain.NoticeSellerSaveFailed)
	case errors.Is(err, ErrProfileUpdate):
		return domain.Failure(domain.NoticeProfileSaveFailed)
	case errors.Is(err, ErrSellerFetch):
		return domain.Failure(domain.NoticeSellerLoadFailed)
	default:
		return domain.Failure(domain.NoticeProfileLoadFailed)
	}
}
