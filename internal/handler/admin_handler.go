package handler

import (
	"movie_review/configs"
	"movie_review/internal/service"
	"movie_review/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAdminHandler interface {
	FetchDbConfigs(c *fiber.Ctx) error
}

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

//------------------------------------------
//------------------------------------------

// FetchDbConfigs godoc
//
//	@Summary		Fetch Configs
//	@Description	Reload db configs and dynamic configs.
//	@Tags			Admin
//	@Success		200		{object}	configs.DbConfigData
//	@Failure		401,500	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/v1/admin/fetch_configs [get]
func (m *AdminHandler) FetchDbConfigs(c *fiber.Ctx) error {
	err := m.adminService.FetchDbConfigs(c.UserContext())
	if err != nil {
		return response.ResponseAppError(c, err)
	}

	return response.ResponseOKWithData(c, "Configs reloaded", fiber.Map{
		"configs": configs.GetDbConfigs(),
	})
}
