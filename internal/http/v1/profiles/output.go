package profiles

// ByUsernameOutput for GET /profiles/by-username.
type ByUsernameOutput struct {
	Body Profile
}

// GetOutput for GET /profiles/{id}.
type GetOutput struct {
	Body Profile
}

// SaveOutput for PUT /profiles/{id}. The body is the merged record as
// stored, so callers observe the canonical result of their write.
type SaveOutput struct {
	Body Profile
}
