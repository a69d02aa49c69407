package entities

// Identity is the synthetic person used for one form submission. It is
// built at the start of a submission and discarded when the submission
// finishes; identities are never shared between submissions.
type Identity struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Age      int    `json:"age,omitempty"`    // 0 when unknown
	Gender   string `json:"gender,omitempty"` // "M", "F" or empty

	// Fabricated is true when the identity was generated rather than
	// taken from the caller-supplied name pool.
	Fabricated bool `json:"fabricated,omitempty"`
}
