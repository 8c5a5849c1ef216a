package routes

import "github.com/gofiber/fiber/v3"

func RegisterV1(r fiber.Router, reg *Registry) {
	if r == nil || reg == nil {
		return
	}

	if reg.Profile != nil {
		reg.Profile.RegisterRoutes(r)
	}
	if reg.Skills != nil {
		reg.Skills.RegisterRoutes(r)
	}
	if reg.Contact != nil {
		reg.Contact.RegisterAPIRoutes(r)
	}
}
