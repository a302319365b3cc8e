package domain

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-visible, non-blocking message. Key indexes the resource table.
type Notice struct {
	Kind NoticeKind
	Key  string
}

// Notice keys.
const (
	NoticeProfileUpdated      = "notice.profile_updated"
	NoticeProfileLoadFailed   = "notice.profile_load_failed"
	NoticeSellerLoadFailed    = "notice.seller_load_failed"
	NoticeProfileSaveFailed   = "notice.profile_save_failed"
	NoticeSellerSaveFailed    = "notice.seller_save_failed"
	NoticeRequiredField       = "notice.required_field"
	NoticeNotReady            = "notice.not_ready"
	NoticeSessionRejected     = "notice.session_rejected"
	NoticeStorageFailed       = "notice.storage_failed"
	NoticeLoginFailed         = "notice.login_failed"
	NoticeLoginFieldsRequired = "notice.login_fields_required"
	NoticeLoggedOut           = "notice.logged_out"
)

func Success(key string) *Notice { return &Notice{Kind: NoticeSuccess, Key: key} }
func Failure(key string) *Notice { return &Notice{Kind: NoticeError, Key: key} }
