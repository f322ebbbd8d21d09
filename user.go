package traveltales

// User is the identity record of the registry.
//
// The password is stored and compared in plaintext. The registry lives in
// the user's own local file; there is no authentication security model.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
