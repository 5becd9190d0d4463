package helper

import (
	"errors"
	"fmt"
	"os"

	"campus_market/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

// ParseToken verifies an HS256 token issued by the campus auth service. The
// secret is shared across campus services; the gateway never issues tokens
// itself.
func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
	return token, err
}

// ClaimFromToken extracts the user snapshot from verified claims.
func ClaimFromToken(token *jwt.Token) (model.TokenClaim, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, errors.New("invalid claims type")
	}

	userID, _ := claims["userId"].(string)
	if userID == "" {
		// Some campus services still issue "sub" instead of "userId".
		userID, _ = claims["sub"].(string)
	}
	if userID == "" {
		return model.TokenClaim{}, errors.New("token has no user id")
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return model.TokenClaim{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, nil
}

// CurrentUser is the single read-at-call-time accessor for the authenticated
// caller. Handlers never touch Locals or headers directly for auth data.
func CurrentUser(c *fiber.Ctx) (model.TokenClaim, string, error) {
	claim, ok := c.Locals("claims").(model.TokenClaim)
	if !ok {
		return model.TokenClaim{}, "", errors.New("no authenticated user in context")
	}
	token, _ := c.Locals("token").(string)
	if token == "" {
		return model.TokenClaim{}, "", errors.New("no bearer token in context")
	}
	return claim, token, nil
}
