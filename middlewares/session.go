// SPDX-License-Identifier: GPL-3.0-only

package middlewares

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"casedesk-server/commons"
	"casedesk-server/crypto"
	"casedesk-server/db"
	"casedesk-server/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const SessionCookieName = "casedesk_session"

func jwtSecret() []byte {
	return []byte(commons.GetEnv("JWT_SECRET", "default_very_secret_key"))
}

func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(commons.GetEnv("SESSION_TTL_HOURS", "720"))
	if err != nil || hours < 1 {
		hours = 720
	}
	return time.Duration(hours) * time.Hour
}

// EstablishSession creates (or replaces) the session row for user and
// returns the signed token. The session's role is copied from the user
// row here and nowhere else.
func EstablishSession(c echo.Context, user models.User) (string, error) {
	sessionToken, err := crypto.GenerateRandomString("st_", 32, "hex")
	if err != nil {
		return "", err
	}

	sessionExp := time.Now().Add(sessionTTL())
	sessionLastUsed := time.Now()
	session := models.Session{}

	if err := db.Conn.Where(models.Session{UserID: user.ID}).Assign(models.Session{
		Token:      sessionToken,
		Role:       user.Role,
		LastUsedAt: &sessionLastUsed,
		ExpiresAt:  &sessionExp,
		UserID:     user.ID,
	}).FirstOrCreate(&session).Error; err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "casedesk-server",
		"iat": time.Now().Unix(),
		"jti": sessionToken,
		"sid": session.ID,
		"uid": user.ID,
		"exp": sessionExp.Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", err
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    tokenString,
		Path:     "/",
		Expires:  sessionExp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return tokenString, nil
}

// TerminateSession deletes the current session row and expires the cookie.
func TerminateSession(c echo.Context) error {
	if session, ok := CurrentSession(c); ok {
		if err := db.Conn.Unscoped().Delete(&session).Error; err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// CurrentSession returns the session resolved by VerifySessionMiddleware.
func CurrentSession(c echo.Context) (models.Session, bool) {
	session, ok := c.Get("session").(models.Session)
	return session, ok
}

func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get("Authorization")
	if after, ok := cutBearer(authHeader); ok {
		return after
	}
	return ""
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):], true
	}
	return "", false
}

func VerifySessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := c.Logger()

		sessionToken := extractToken(c)
		if sessionToken == "" {
			logger.Error("Session cookie and Authorization header missing.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Authentication is required, please login",
			}
		}

		token, err := jwt.Parse(sessionToken, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			logger.Error("JWT failed to parse or is invalid: ", err)
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			logger.Error("Failed to parse JWT claims.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}

		sessionID := claims["sid"]
		userID := claims["uid"]
		tokenID := claims["jti"]

		session := models.Session{}
		err = db.Conn.Where("id = ? AND user_id = ? AND token = ?", sessionID, userID, tokenID).First(&session).Error
		if err != nil || session.ExpiresAt == nil || session.ExpiresAt.Before(time.Now()) {
			logger.Error("Session not found or expired.")
			return &echo.HTTPError{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired session token, please login again",
			}
		}

		now := time.Now()
		session.LastUsedAt = &now
		if err := db.Conn.Save(&session).Error; err != nil {
			logger.Error("Failed to update session LastUsedAt: ", err)
		}

		c.Set("session", session)
		return next(c)
	}
}

// RequireRole gates a route on the session's role. It must run after
// VerifySessionMiddleware.
func RequireRole(role models.Role) func(echo.HandlerFunc) echo.HandlerFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := CurrentSession(c)
			if !ok {
				c.Logger().Error("No session in context for role check.")
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Authentication is required, please login",
				}
			}
			if session.Role != role {
				c.Logger().Errorf("Role %s required, session has %s.", role, session.Role)
				return &echo.HTTPError{
					Code:    http.StatusForbidden,
					Message: "Access denied",
				}
			}
			return next(c)
		}
	}
}

// GetAuthenticatedUser loads the account backing the current session.
func GetAuthenticatedUser(c echo.Context) (*models.User, error) {
	session, ok := CurrentSession(c)
	if !ok {
		return nil, errors.New("no authenticated user found")
	}
	var user models.User
	if err := db.Conn.Where("id = ?", session.UserID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
