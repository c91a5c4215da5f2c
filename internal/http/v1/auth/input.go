package auth

// RegisterInput is the request for creating a new account.
type RegisterInput struct {
	Body struct {
		Email    string `json:"email" format:"email" doc:"Email address for the new account" example:"ada@example.com"`
		Password string `json:"password" minLength:"6" maxLength:"128" doc:"Password for the new account"`
	}
}

// LoginInput is the request for looking up an account by credentials.
type LoginInput struct {
	Body struct {
		Email    string `json:"email" format:"email" doc:"Email address of the account" example:"ada@example.com"`
		Password string `json:"password" minLength:"1" doc:"Password for the account"`
	}
}
