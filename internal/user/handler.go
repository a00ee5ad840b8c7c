package user

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-management-backend/internal/upload"
)

type Handler struct {
	service  *Service
	receiver *upload.Receiver
}

type createRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

type deleteRequest struct {
	Email string `json:"email"`
}

func NewHandler(service *Service, receiver *upload.Receiver) *Handler {
	return &Handler{service: service, receiver: receiver}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/user/create", h.createUser)
	app.Put("/user/edit", h.updateUser)
	app.Delete("/user/delete", h.deleteUser)
	app.Get("/user/getAll", h.getAllUsers)
	app.Post("/user/uploadImage", h.uploadImage)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.FullName == "" || payload.Email == "" || payload.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
	}

	// best-effort pre-check so the common duplicate gets a clean message;
	// the unique index catches the concurrent-create race below
	if _, err := h.service.GetByEmail(payload.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
	} else if !errors.Is(err, ErrNotFound) {
		log.Printf("error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.service.Create(payload.FullName, payload.Email, payload.Password); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email already in use"})
		}
		log.Printf("error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User created successfully"})
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	payload := new(updateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(payload.Email, payload.FullName, payload.Password)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("error updating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User updated successfully", "user": updated})
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	payload := new(deleteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if err := h.service.Delete(payload.Email); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("error deleting user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// getAllUsers returns every record verbatim, stored password hash included.
// That mirrors the surface this service replaces; see DESIGN.md for the open
// question on excluding the hash.
func (h *Handler) getAllUsers(c *fiber.Ctx) error {
	users, err := h.service.List()
	if err != nil {
		log.Printf("error fetching users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(users)
}

func (h *Handler) uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}

	email := c.FormValue("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}

	path, err := h.receiver.Save(file)
	if err != nil {
		if errors.Is(err, upload.ErrFileType) || errors.Is(err, upload.ErrFileTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		log.Printf("error uploading image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	if _, err := h.service.SetImagePath(email, path); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		log.Printf("error uploading image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":  "Image uploaded and user updated successfully",
		"filePath": path,
	})
}
