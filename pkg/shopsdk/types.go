package shopsdk

// ============================================================================
// Profile Types
// ============================================================================

// UserProfile is the base profile returned by GET /users/profile.
type UserProfile struct {
	// ID is the backend identifier of the user
	ID int64 `json:"id"`

	// Username is the immutable login handle
	Username string `json:"username"`

	// Nickname is the editable display name
	Nickname string `json:"nickname"`

	// Role is the wire role name: CUSTOMER, SELLER or ADMIN
	Role string `json:"role"`
}

// PatchProfileRequest is the body of PATCH /users/{userId}/profile.
type PatchProfileRequest struct {
	Nickname string `json:"nickname"`
}

// ============================================================================
// Seller Types
// ============================================================================

// SellerProfile is the seller extension returned by GET /sellers/users/{userId}.
type SellerProfile struct {
	// Introduce is the seller's free-text biography
	Introduce string `json:"introduce"`
}

// PatchSellerProfileRequest is the body of PATCH /sellers/{userId}.
type PatchSellerProfileRequest struct {
	Introduce string `json:"introduce"`
}

// ============================================================================
// Login Types
// ============================================================================

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}
