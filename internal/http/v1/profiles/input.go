package profiles

// ByUsernameInput for GET /profiles/by-username.
//
// name is checked in the handler rather than marked required so a
// missing value yields the documented 400, not a validation 422.
type ByUsernameInput struct {
	Name string `query:"name" doc:"Username to resolve" example:"ada"`
}

// GetInput for GET /profiles/{id}.
type GetInput struct {
	ID string `path:"id" maxLength:"128" doc:"Profile identifier" example:"user-123"`
}

// SaveInput for PUT /profiles/{id}. The body is taken raw: clients have
// historically sent loosely typed payloads (delimited strings for lists,
// truthy values for booleans) and the normalizer handles the coercion.
type SaveInput struct {
	ID      string `path:"id" maxLength:"128" doc:"Profile identifier" example:"user-123"`
	RawBody []byte
}
