package model

// GoogleIdentity is the verified content of a Google ID token.
type GoogleIdentity struct {
	Sub           string
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}
