package domain

// AccessTokenPayload is the claim set minted into access tokens.
type AccessTokenPayload struct {
	Sub       string
	Email     string
	Role      string
	CompanyID string // empty when the user has no company
}

// RefreshTokenPayload is the minimal claim set minted into refresh tokens.
type RefreshTokenPayload struct {
	Sub   string
	Email string
}
