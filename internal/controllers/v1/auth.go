package v1

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// contextUserID is the gin context key the authenticated user's ID is
// stored under by Authenticate.
const contextUserID = "userID"

// dummyPasswordHash is compared against when no user exists for the
// email. It is a bcrypt.DefaultCost hash so that branch takes as long
// as a real comparison.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsAuthRegister)
	r.POST("/register", Register)
	r.OPTIONS("/login", OptionsAuthLogin)
	r.POST("/login", Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsAuthRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsAuthLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register
// @Description	Creates a new user with the default category set and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	AuthResponse
// @Failure		400		{object}	AuthResponse
// @Failure		409		{object}	AuthResponse
// @Failure		500		{object}	AuthResponse
// @Param			user	body		RegisterEditable	true	"User"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var editable RegisterEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	if strings.TrimSpace(editable.Email) == "" {
		s := errEmailNotSet.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{Error: &s})
		return
	}

	if len(editable.Password) < 8 {
		s := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{Error: &s})
		return
	}

	user := editable.model()
	err = user.SetPassword(editable.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{Error: &s})
		return
	}

	// The user and their default categories are created together so
	// that a failed seeding does not leave a user without categories
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		categories := models.DefaultCategories(user.ID)
		return tx.Create(&categories).Error
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	token, err := createToken(user)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Data: &AuthData{User: user, Token: token}})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	AuthResponse
// @Failure		400		{object}	AuthResponse
// @Failure		401		{object}	AuthResponse
// @Failure		500		{object}	AuthResponse
// @Param			login	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var editable LoginEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(editable.Email))).Error
	if err != nil {
		// Same response and same bcrypt cost as for a wrong password so
		// that valid emails cannot be enumerated, not even by timing
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(editable.Password))

		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, AuthResponse{Error: &s})
		return
	}

	if !user.VerifyPassword(editable.Password) {
		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, AuthResponse{Error: &s})
		return
	}

	token, err := createToken(user)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Data: &AuthData{User: user, Token: token}})
}

// Authenticate verifies the bearer token and stores the user's ID in
// the gin context for the handlers.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errNoToken.Error()})
			return
		}

		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errInvalidToken
			}
			return tokenSecret(), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errInvalidToken.Error()})
			return
		}

		claims := token.Claims.(*jwt.RegisteredClaims)
		id, err := uuid.Parse(claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errInvalidToken.Error()})
			return
		}

		c.Set(contextUserID, id)
		c.Next()
	}
}

// userID returns the ID of the authenticated user. It must only be
// called from handlers behind Authenticate.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

// createToken issues a signed bearer token for the user.
func createToken(user models.User) (string, error) {
	lifetime := 72 * time.Hour
	if raw, ok := os.LookupEnv("TOKEN_LIFETIME"); ok {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			return "", err
		}
		lifetime = time.Duration(hours) * time.Hour
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	})

	return token.SignedString(tokenSecret())
}

func tokenSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}
