package session

import (
	"anubha-web/internal/app/config"
	"anubha-web/internal/app/contracts"
	"anubha-web/internal/app/models"
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"anubha-web/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

const maxSessionIDAttempts = 3

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type sessionManager struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	Secret          []byte
	CookieName      string
	CookieDomain    string
	CookieSecure    bool
	TTL             time.Duration
	now             func() time.Time
}

func NewSessionManager(redisRepository contracts.RedisRepository, logger *zap.Logger, internalConfig *config.InternalConfig) contracts.SessionManager {
	return &sessionManager{
		RedisRepository: redisRepository,
		Log:             logger,
		Secret:          []byte(internalConfig.Session.Secret),
		CookieName:      internalConfig.Session.CookieName,
		CookieDomain:    internalConfig.Session.CookieDomain,
		CookieSecure:    internalConfig.Session.CookieSecure,
		TTL:             time.Duration(internalConfig.Session.ExpiredTimeInHours) * time.Hour,
		now:             time.Now,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionPrefix + sessionID
}

// Load resolves the visitor session from the signed cookie, starting a fresh one when it is missing, forged or expired.
func (m *sessionManager) Load(ctx context.Context, r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(m.CookieName)
	if err == nil {
		sessionID, err := m.verifyToken(cookie.Value)
		if err != nil {
			m.Log.Debug("sessionManager.Load ignoring invalid session cookie", zap.Error(err))
		} else {
			session, err := m.find(ctx, sessionID)
			if err != nil {
				return nil, err
			}
			if session != nil {
				return session, nil
			}
		}
	}

	return models.NewSession(utils.GenerateSessionID(), m.TTL, m.now()), nil
}

func (m *sessionManager) find(ctx context.Context, sessionID string) (*models.Session, error) {
	raw, err := m.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	session := &models.Session{}
	err = json.Unmarshal([]byte(raw), session)
	if err != nil {
		m.Log.Warn("sessionManager.find discarding undecodable session",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, nil
	}
	if session.BackendCookies == nil {
		session.BackendCookies = make(map[string]string)
	}
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(m.now()) {
		return nil, nil
	}
	return session, nil
}

// Save persists a new or modified session and issues the cookie for new ones.
func (m *sessionManager) Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	if !session.IsNew() && !session.IsDirty() {
		return nil
	}

	if session.IsNew() {
		err := m.insert(ctx, session)
		if err != nil {
			return err
		}

		token, err := m.createToken(session.ID, session.ExpiresAt)
		if err != nil {
			return err
		}
		http.SetCookie(w, m.cookie(token, int(time.Until(session.ExpiresAt).Seconds())))
		session.MarkSaved()
		return nil
	}

	ttl := session.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		ttl = m.TTL
	}
	err := m.RedisRepository.Set(ctx, sessionKey(session.ID), session.Snapshot(), ttl)
	if err != nil {
		return err
	}
	session.MarkSaved()
	return nil
}

func (m *sessionManager) insert(ctx context.Context, session *models.Session) error {
	for attempt := 0; attempt < maxSessionIDAttempts; attempt++ {
		acquired, err := m.RedisRepository.TrySetNX(ctx, sessionKey(session.ID), session.Snapshot(), m.TTL)
		if err != nil {
			return err
		}
		if acquired {
			return nil
		}
		m.Log.Warn("sessionManager.insert session id already taken, regenerating",
			zap.String(constvars.LoggingSessionIDKey, session.ID),
		)
		session.ID = utils.GenerateSessionID()
	}
	return exceptions.ErrTokenGenerate(fmt.Errorf("no free session id after %d attempts", maxSessionIDAttempts))
}

func (m *sessionManager) Destroy(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	err := m.RedisRepository.Delete(ctx, sessionKey(session.ID))
	if err != nil {
		return err
	}
	http.SetCookie(w, m.cookie("", -1))
	return nil
}

func (m *sessionManager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   m.CookieDomain,
		MaxAge:   maxAge,
		Secure:   m.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *sessionManager) createToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(m.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

func (m *sessionManager) verifyToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New(constvars.ErrDevAuthSigningMethod)
		}
		return m.Secret, nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !token.Valid || claims.SessionID == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return claims.SessionID, nil
}
