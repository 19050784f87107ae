package common

// Storage keys for the persisted session. These names are stable for the
// lifetime of the application: changing either one invalidates every
// existing session.
const (
	TokenStorageKey = "pt_token"
	UserStorageKey  = "pt_user"
)
