package session

type Kind string

const (
	KindUser   Kind = "user"
	KindVendor Kind = "vendor"
	KindAdmin  Kind = "admin"
)

func (k Kind) Valid() bool {
	switch k {
	case KindUser, KindVendor, KindAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller of a single request. It travels
// explicitly from the auth middleware into handlers; there is no ambient
// logged-in state, so logging in under another kind simply produces a new
// Identity on the next request.
type Identity struct {
	Email    string `json:"email"`
	Kind     Kind   `json:"kind"`
	VendorID uint   `json:"vendor_id,omitempty"` // zero unless Kind is vendor
}

func (i Identity) IsVendor() bool { return i.Kind == KindVendor && i.VendorID != 0 }
func (i Identity) IsAdmin() bool  { return i.Kind == KindAdmin }
