package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quasilyte/gdata"
)

const credentialsKey = "credentials"

// Credential is what a successful login leaves behind.
type Credential struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"player_id"`
}

type CredentialStore interface {
	Load() (Credential, bool, error)
	Save(Credential) error
	Clear() error
}

// TokenExpired reports whether a token's exp claim is in the past. The
// signature is not checked; the server does that. Tokens that cannot be
// parsed count as expired, tokens without exp do not.
func TokenExpired(token string, now time.Time) bool {
	if token == "" {
		return true
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Before(claims.ExpiresAt.Time)
}

// GDataCredentials persists the credential in the per-user game data dir.
type GDataCredentials struct {
	m *gdata.Manager
}

func OpenGDataCredentials(appName string) (*GDataCredentials, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open game data: %w", err)
	}
	return &GDataCredentials{m: m}, nil
}

func (g *GDataCredentials) Load() (Credential, bool, error) {
	data, err := g.m.LoadItem(credentialsKey)
	if err != nil {
		return Credential{}, false, fmt.Errorf("load credentials: %w", err)
	}
	if len(data) == 0 {
		return Credential{}, false, nil
	}
	var c Credential
	if err := json.Unmarshal(data, &c); err != nil {
		return Credential{}, false, fmt.Errorf("parse credentials: %w", err)
	}
	return c, c.Token != "", nil
}

func (g *GDataCredentials) Save(c Credential) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := g.m.SaveItem(credentialsKey, data); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Clear overwrites the item with an empty record.
func (g *GDataCredentials) Clear() error {
	if err := g.m.SaveItem(credentialsKey, []byte{}); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// MemoryCredentials keeps the credential for the life of the process.
type MemoryCredentials struct {
	mu  sync.Mutex
	c   Credential
	set bool
}

func (m *MemoryCredentials) Load() (Credential, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.c, m.set, nil
}

func (m *MemoryCredentials) Save(c Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c, m.set = c, true
	return nil
}

func (m *MemoryCredentials) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.c, m.set = Credential{}, false
	return nil
}

var errNoCredentials = errors.New("no stored credentials")

// loadValid returns the stored credential when its token is still usable.
func loadValid(store CredentialStore, now time.Time) (Credential, error) {
	if store == nil {
		return Credential{}, errNoCredentials
	}
	c, ok, err := store.Load()
	if err != nil {
		return Credential{}, err
	}
	if !ok {
		return Credential{}, errNoCredentials
	}
	if TokenExpired(c.Token, now) {
		log.Printf("[auth] stored token for %s expired", c.Username)
		if err := store.Clear(); err != nil {
			log.Printf("[auth] %v", err)
		}
		return Credential{}, errNoCredentials
	}
	return c, nil
}
