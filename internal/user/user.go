package user

// User is a single account record. Password holds the bcrypt hash once the
// record has been persisted, never the plaintext. ImagePath stays nil until a
// profile image has been uploaded for the account.
type User struct {
	ID        string  `json:"userId"`
	FullName  string  `json:"fullName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	ImagePath *string `json:"imagePath,omitempty"`
}

// UpdateFields carries a partial update. Only non-nil fields are applied to
// the stored record; Password must already be hashed by the caller.
type UpdateFields struct {
	FullName  *string
	Password  *string
	ImagePath *string
}
