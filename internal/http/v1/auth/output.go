package auth

// RegisterOutput is the response for a successfully created account.
type RegisterOutput struct {
	Body struct {
		UID string `json:"uid" doc:"Provider-issued user id" example:"h7Qm2x9KpVfT5wZ1"`
		// VerificationLink is handed to the client for delivery; the
		// server does not send verification email itself.
		VerificationLink string `json:"verificationLink,omitempty" doc:"Email verification URL, when the provider issued one"`
	}
}

// LoginOutput is the response for a successful credential lookup.
type LoginOutput struct {
	Body struct {
		UID   string `json:"uid" doc:"Provider-issued user id" example:"h7Qm2x9KpVfT5wZ1"`
		Email string `json:"email" doc:"Email address of the account" example:"ada@example.com"`
	}
}
