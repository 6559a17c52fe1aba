package session

import (
	"strings"

	"github.com/automoto/voidrift/config"
	"github.com/google/uuid"
)

const controlSegment = "/control/"

// SessionPath is the location that embeds a session id, as pushed after
// creating or joining.
func SessionPath(sessionID string) string {
	return config.App.SessionPathPrefix + sessionID
}

// LobbyPath is the location with no session.
func LobbyPath() string {
	return config.App.SessionPathPrefix
}

// ControllerPath is the location a remote controller opens for a player.
func ControllerPath(sessionID, playerID string) string {
	return SessionPath(sessionID) + controlSegment + playerID
}

// ParseSessionPath extracts a session id from a location. Ids must be UUIDs.
func ParseSessionPath(path string) (string, bool) {
	rest, ok := strings.CutPrefix(path, config.App.SessionPathPrefix)
	if !ok {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if strings.Contains(rest, "/") {
		return "", false
	}
	return parseSessionID(rest)
}

// ParseControllerPath extracts the session and player a controller drives.
func ParseControllerPath(path string) (sessionID, playerID string, ok bool) {
	rest, found := strings.CutPrefix(path, config.App.SessionPathPrefix)
	if !found {
		return "", "", false
	}
	sid, pid, found := strings.Cut(rest, controlSegment)
	if !found || pid == "" || strings.Contains(pid, "/") {
		return "", "", false
	}
	sid, ok = parseSessionID(sid)
	if !ok {
		return "", "", false
	}
	return sid, pid, true
}

func parseSessionID(s string) (string, bool) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
