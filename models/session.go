package models

// Session is the client's persisted login state.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserEmail    string
}

// Empty reports whether no user is signed in.
func (s Session) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}
