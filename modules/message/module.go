package message

import (
	"meetup-planner/core/middleware"
	"meetup-planner/modules/message/controller"
	"meetup-planner/modules/message/router"
	"meetup-planner/modules/message/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, mw *middleware.Middleware, locale string, contacts service.ContactResolver, venues service.VenueLookup) (service.MessageServiceInterface, error) {
	composer, err := service.NewComposer(locale)
	if err != nil {
		return nil, err
	}

	svc := service.NewMessageService(composer, contacts, venues)
	ctrl := controller.NewMessageController(svc)
	router.NewMessageRouter(ctrl).Setup(e, mw)
	return svc, nil
}
