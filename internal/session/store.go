package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CePseudoBE/taxcalc/internal/domain/model"
	"github.com/CePseudoBE/taxcalc/internal/security"
)

const DefaultCookieName = "taxcalc_session"

type Config struct {
	Secret     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// Manager seals Session records into one encrypted cookie per client. It is
// the only durable state the gateway owns.
type Manager struct {
	cipher *security.SessionCipher
	name   string
	ttl    time.Duration
	secure bool
}

func NewManager(cfg Config) (*Manager, error) {
	cipher, err := security.NewSessionCipher(cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("init session cipher: %w", err)
	}
	name := cfg.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Manager{cipher: cipher, name: name, ttl: ttl, secure: cfg.Secure}, nil
}

// Bind scopes the manager to a single request/response pair.
func (m *Manager) Bind(w http.ResponseWriter, r *http.Request) *Store {
	return &Store{manager: m, w: w, r: r}
}

// Store reads and writes the session of one request. Writes replace the full
// record, so no partial session is ever observable across requests. Two
// concurrent requests from the same client race on the cookie; the last
// Set-Cookie accepted by the browser wins.
type Store struct {
	manager *Manager
	w       http.ResponseWriter
	r       *http.Request
}

// Read returns the current session. A missing, tampered or undecryptable
// cookie reads as the anonymous session; cookie damage is never a client
// error.
func (st *Store) Read() model.Session {
	cookie, err := st.r.Cookie(st.manager.name)
	if err != nil {
		return model.Session{}
	}
	plain, err := st.manager.cipher.Open(cookie.Value)
	if err != nil {
		return model.Session{}
	}
	var s model.Session
	if err := json.Unmarshal(plain, &s); err != nil {
		return model.Session{}
	}
	return s
}

func (st *Store) Write(s model.Session) error {
	plain, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	sealed, err := st.manager.cipher.Seal(plain)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}
	http.SetCookie(st.w, &http.Cookie{
		Name:     st.manager.name,
		Value:    sealed,
		Path:     "/",
		MaxAge:   int(st.manager.ttl.Seconds()),
		HttpOnly: true,
		Secure:   st.manager.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (st *Store) Clear() {
	http.SetCookie(st.w, &http.Cookie{
		Name:     st.manager.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   st.manager.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
