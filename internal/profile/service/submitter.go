package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"github.com/aussiebroadwan/tomato/pkg/shopsdk"
	"github.com/aussiebroadwan/tomato/pkg/slogx"
)

// Submit writes the form back to the backend. The nickname is sent first; the
// introduce text follows only for sellers whose form carried the field. Writes
// are sequential and stop at the first failure.
//
// Every section that was written is then re-read from the backend, so the view
// always shows what the backend stored rather than the local edit. On success
// the profile-updated notice is shown; on failure an error notice is shown and
// the submitted values are kept as the draft.
func (v *ProfileView) Submit(ctx context.Context, form domain.ProfileForm) {
	l := slogx.FromContext(ctx)

	backend, state := v.session()
	if !state.Ready && state.Notice != nil {
		// The load already failed; its notice stays and the edit is kept.
		l.Info("profile not loaded, keeping submitted form", slog.String("notice", state.Notice.Key))
		v.update(ctx, func(s *ViewState) {
			d := cloneForm(form)
			s.Draft = &d
		})
		return
	}
	if backend == nil || !state.Ready {
		v.fail(ctx, "submit before profile loaded", ErrNotReady, &form)
		return
	}

	sendIntroduce := state.Profile.Role.HasSellerExtension() && form.Introduce != nil

	if err := validateForm(form, sendIntroduce); err != nil {
		l.Info("rejected profile form", slog.Any("error", err))
		v.update(ctx, func(s *ViewState) {
			s.Notice = noticeFor(err)
			d := cloneForm(form)
			s.Draft = &d
		})
		return
	}

	userID := state.Profile.ID
	var wroteProfile, wroteSeller bool
	var writeErr error

	// 1. Base profile
	if err := backend.PatchProfile(ctx, userID, shopsdk.PatchProfileRequest{Nickname: form.Nickname}); err != nil {
		writeErr = fmt.Errorf("%w: %w", ErrProfileUpdate, err)
	} else {
		wroteProfile = true
	}

	// 2. Seller extension
	if writeErr == nil && sendIntroduce {
		req := shopsdk.PatchSellerProfileRequest{Introduce: *form.Introduce}
		if err := backend.PatchSellerProfile(ctx, userID, req); err != nil {
			writeErr = fmt.Errorf("%w: %w", ErrSellerUpdate, err)
		} else {
			wroteSeller = true
		}
	}

	// 3. Resync what was written
	syncErr := v.resync(ctx, backend, userID, wroteProfile, wroteSeller)

	if writeErr != nil {
		v.fail(ctx, "failed to save profile", writeErr, &form)
		return
	}
	if syncErr != nil {
		v.fail(ctx, "failed to reload profile after save", syncErr, nil)
		return
	}

	l.Info("profile updated", slog.Int64("user_id", userID), slog.Bool("seller", wroteSeller))
	v.update(ctx, func(s *ViewState) {
		s.Notice = domain.Success(domain.NoticeProfileUpdated)
		s.Draft = nil
	})
}

// resync re-reads the written sections and applies them one by one. The role
// is fixed for the lifetime of the view and is not taken from the reload.
func (v *ProfileView) resync(ctx context.Context, backend Backend, userID int64, profile, seller bool) error {
	if profile {
		p, err := backend.GetProfile(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrProfileFetch, err)
		}
		fresh, _ := toBaseProfile(p)
		v.update(ctx, func(s *ViewState) {
			s.Profile.Username = fresh.Username
			s.Profile.Nickname = fresh.Nickname
		})
	}

	if seller {
		ext, err := fetchSeller(ctx, backend, userID)
		if err != nil {
			return err
		}
		v.update(ctx, func(s *ViewState) {
			s.Seller = ext
		})
	}

	return nil
}

func validateForm(form domain.ProfileForm, withIntroduce bool) error {
	if strings.TrimSpace(form.Nickname) == "" {
		return fmt.Errorf("%w: %s", ErrValidation, domain.FieldNickname)
	}
	if withIntroduce && strings.TrimSpace(*form.Introduce) == "" {
		return fmt.Errorf("%w: %s", ErrValidation, domain.FieldIntroduce)
	}
	return nil
}
