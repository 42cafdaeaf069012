package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/alencengic/modest-insights/internal/models"
)

const minPasswordLength = 8

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	request := credentialsRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	if email == "" || !strings.Contains(email, "@") {
		return badRequest(c, "invalid email")
	}
	if len(request.Password) < minPasswordLength {
		return badRequest(c, "password too short")
	}

	if _, exists, err := handler.repositories.Users.FindByEmail(email); err != nil {
		return internalError(c, err)
	} else if exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(c, err)
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return internalError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user_id": user.ID})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	request := credentialsRequest{}
	if err := c.BodyParser(&request); err != nil {
		return badRequest(c, "invalid body")
	}

	user, found, err := handler.repositories.Users.FindByEmail(request.Email)
	if err != nil {
		return internalError(c, err)
	}
	if !found || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user_id": user.ID})
}

// Logout is stateless on the server; tokens simply expire. The endpoint
// exists so clients have a uniform call to clear their session.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
