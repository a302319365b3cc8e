package domain

// BaseProfile is the role-independent user record.
type BaseProfile struct {
	ID       int64
	Username string // immutable login handle
	Nickname string
	Role     Role
}

// SellerExtension is the seller-only part of a profile.
type SellerExtension struct {
	Introduce string
}

// ProfileForm is a submitted profile form. Introduce is nil when the form
// did not include the field.
type ProfileForm struct {
	Nickname  string
	Introduce *string
}

// Field names shared by forms, templates and the resource table.
const (
	FieldUsername  = "username"
	FieldNickname  = "nickname"
	FieldIntroduce = "introduce"
)
