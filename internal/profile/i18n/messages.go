package i18n

import (
	"github.com/aussiebroadwan/tomato/internal/profile/domain"
	"golang.org/x/text/language"
)

// Page title keys.
const (
	KeyProfileTitle = "profile.title"
	KeyProfileHead  = "profile.head"
	KeyLoginTitle   = "login.title"
	KeyHomeTitle    = "home.title"
)

// Keys only the page templates look up.
const (
	keyLoading   = "profile.loading"
	keyPassword  = "field.password"
	keySave      = "action.save"
	keyGoHome    = "action.home"
	keyLogin     = "action.login"
	keyLogout    = "action.logout"
	keyGoProfile = "action.profile"
)

var roles = []domain.Role{domain.RoleCustomer, domain.RoleSeller, domain.RoleAdmin, domain.RoleNone}

var fields = []string{domain.FieldUsername, domain.FieldNickname, domain.FieldIntroduce}

type table struct {
	tag      language.Tag
	roles    map[domain.Role]string
	fields   map[string]string
	messages map[string]string
}

var korean = table{
	tag: language.Korean,
	roles: map[domain.Role]string{
		domain.RoleCustomer: "고객",
		domain.RoleSeller:   "판매자",
		domain.RoleAdmin:    "관리자",
		domain.RoleNone:     "손님",
	},
	fields: map[string]string{
		domain.FieldUsername:  "아이디",
		domain.FieldNickname:  "닉네임",
		domain.FieldIntroduce: "자기소개",
	},
	messages: map[string]string{
		KeyProfileTitle: "[%s]%s님의 Profile",
		KeyProfileHead:  "프로필",
		keyLoading:      "프로필을 불러오는 중입니다.",
		KeyLoginTitle:   "로그인",
		keyPassword:     "비밀번호",
		KeyHomeTitle:    "토마토 마켓",
		keySave:         "저장",
		keyGoHome:       "홈으로 이동",
		keyLogin:        "로그인",
		keyLogout:       "로그아웃",
		keyGoProfile:    "내 프로필",

		domain.NoticeProfileUpdated:      "프로필을 업데이트 했습니다.",
		domain.NoticeProfileLoadFailed:   "프로필을 불러오지 못했습니다.",
		domain.NoticeSellerLoadFailed:    "판매자 프로필을 불러오지 못했습니다.",
		domain.NoticeProfileSaveFailed:   "프로필을 저장하지 못했습니다.",
		domain.NoticeSellerSaveFailed:    "판매자 프로필을 저장하지 못했습니다.",
		domain.NoticeRequiredField:       "필수 항목을 입력해 주세요.",
		domain.NoticeNotReady:            "프로필을 아직 불러오지 않았습니다.",
		domain.NoticeSessionRejected:     "로그인이 만료되었습니다. 다시 로그인해 주세요.",
		domain.NoticeStorageFailed:       "저장된 로그인 정보를 읽지 못했습니다.",
		domain.NoticeLoginFailed:         "아이디 또는 비밀번호가 올바르지 않습니다.",
		domain.NoticeLoginFieldsRequired: "아이디와 비밀번호를 입력해 주세요.",
		domain.NoticeLoggedOut:           "로그아웃 되었습니다.",
	},
}

var english = table{
	tag: language.English,
	roles: map[domain.Role]string{
		domain.RoleCustomer: "Customer",
		domain.RoleSeller:   "Seller",
		domain.RoleAdmin:    "Admin",
		domain.RoleNone:     "Guest",
	},
	fields: map[string]string{
		domain.FieldUsername:  "Username",
		domain.FieldNickname:  "Nickname",
		domain.FieldIntroduce: "Introduction",
	},
	messages: map[string]string{
		KeyProfileTitle: "[%s]%s's Profile",
		KeyProfileHead:  "Profile",
		keyLoading:      "Loading profile.",
		KeyLoginTitle:   "Sign in",
		keyPassword:     "Password",
		KeyHomeTitle:    "Tomato Market",
		keySave:         "Save",
		keyGoHome:       "Go home",
		keyLogin:        "Sign in",
		keyLogout:       "Sign out",
		keyGoProfile:    "My profile",

		domain.NoticeProfileUpdated:      "Your profile has been updated.",
		domain.NoticeProfileLoadFailed:   "Could not load your profile.",
		domain.NoticeSellerLoadFailed:    "Could not load your seller profile.",
		domain.NoticeProfileSaveFailed:   "Could not save your profile.",
		domain.NoticeSellerSaveFailed:    "Could not save your seller profile.",
		domain.NoticeRequiredField:       "Please fill in the required fields.",
		domain.NoticeNotReady:            "Your profile has not been loaded yet.",
		domain.NoticeSessionRejected:     "Your session has expired. Please sign in again.",
		domain.NoticeStorageFailed:       "Could not read the stored sign-in.",
		domain.NoticeLoginFailed:         "Wrong username or password.",
		domain.NoticeLoginFieldsRequired: "Enter your username and password.",
		domain.NoticeLoggedOut:           "You have been signed out.",
	},
}

// roleKey is the resource key of a role label.
func roleKey(r domain.Role) string { return "role." + r.Key() }

// fieldKey is the resource key of a field label as shown to role r.
func fieldKey(r domain.Role, field string) string { return "field." + r.Key() + "." + field }
