package response

import (
	"maps"

	"github.com/gofiber/fiber/v2"
)

type ResponseOKModel struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ResponseErrorModel struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func ResponseOK(c *fiber.Ctx, message string) error {
	response := ResponseOKModel{
		Success: true,
		Message: message,
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// ResponseOKWithData flattens data next to success/message, the shape the web client reads.
func ResponseOKWithData(c *fiber.Ctx, message string, data fiber.Map) error {
	return c.Status(fiber.StatusOK).JSON(withStatus(message, data))
}

func ResponseCreated(c *fiber.Ctx, message string, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(withStatus(message, data))
}

func ResponseError(c *fiber.Ctx, message string, errorCode string, code int) error {
	response := ResponseErrorModel{
		Success: false,
		Code:    errorCode,
		Message: message,
	}

	return c.Status(code).JSON(response)
}

func withStatus(message string, data fiber.Map) fiber.Map {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	maps.Copy(body, data)
	return body
}
