package authController

import (
	"log"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Username  string `json:"username" validate:"required,min=3"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=6"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	st := services.Entities()

	// Check if username already exists
	if existing, err := st.GetUserByUsername(reqData.Username); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	} else if existing != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	// Check if email already exists
	if existing, err := st.GetUserByEmail(reqData.Email); err != nil {
		return middleware.ServiceErrorResponse(c, err)
	} else if existing != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username:  reqData.Username,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Role:      models.RoleUser,
	}

	if err := st.CreateUser(&newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to signup user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Username, newUser.Role, newUser.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Signup successful!", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := services.Entities().GetUserByUsername(reqData.Username)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid username or password!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func ChangeLoginPassword(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	st := services.Entities()
	user, err := st.GetUser(actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Old password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := st.UpdateUser(user); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully!", nil)
}
