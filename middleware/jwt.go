package middleware

import (
	"fmt"
	"strings"
	"time"

	"learnhub/config"
	"learnhub/policy"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, username, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"role":     role,
		"email":    email,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware rejects requests without a valid bearer token and stores the
// caller as a *policy.Actor in the request context.
func JWTMiddleware(c *fiber.Ctx) error {
	actor, err := actorFromHeader(c)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}
	c.Locals("actor", actor)
	c.Locals("userId", actor.ID)
	return c.Next()
}

// OptionalJWTMiddleware parses a bearer token when one is present but lets
// anonymous requests through. Public catalog routes use it so logged-in
// actors still get their own view of the data.
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	actor, err := actorFromHeader(c)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	}
	c.Locals("actor", actor)
	c.Locals("userId", actor.ID)
	return c.Next()
}

func actorFromHeader(c *fiber.Ctx) (*policy.Actor, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing or invalid Authorization header")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil, fmt.Errorf("invalid token payload")
	}

	userID, ok := claims["userId"].(float64) // JWT numbers decode as float64
	if !ok {
		return nil, fmt.Errorf("invalid token payload")
	}
	role, _ := claims["role"].(string)

	return &policy.Actor{ID: uint(userID), Role: role}, nil
}

// Actor returns the authenticated actor for the request, or nil when the
// request is anonymous.
func Actor(c *fiber.Ctx) *policy.Actor {
	if actor, ok := c.Locals("actor").(*policy.Actor); ok {
		return actor
	}
	return nil
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
