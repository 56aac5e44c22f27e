package sessions

import (
	"fmt"
	"net/http"

	gorillasessions "github.com/gorilla/sessions"
)

const (
	SessionName      = "partsbay_session"
	SessionUserIDKey = "user_id"
)

var Store *gorillasessions.CookieStore

// InitStore wires up the cookie store. Must run before the router starts
// serving; the admin gate depends on it.
func InitStore(authKey, encKey []byte) {
	Store = gorillasessions.NewCookieStore(authKey, encKey)
	Store.Options = &gorillasessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
}

// GetUserID pulls the authenticated user id out of the session cookie. An
// empty id with a nil error means there is no session.
func GetUserID(r *http.Request) (string, error) {
	if Store == nil {
		return "", fmt.Errorf("session store is not initialized")
	}
	session, err := Store.Get(r, SessionName)
	if err != nil {
		return "", err
	}
	userID, _ := session.Values[SessionUserIDKey].(string)
	return userID, nil
}
