package notification

import (
	"meetup-planner/core/constants"
	"meetup-planner/core/middleware"
	"meetup-planner/core/queue"
	meetupService "meetup-planner/modules/meetup/service"
	"meetup-planner/modules/notification/controller"
	"meetup-planner/modules/notification/router"
	"meetup-planner/modules/notification/service"
	"meetup-planner/modules/notification/worker"

	"github.com/labstack/echo/v4"
)

// Init wires invite dispatch. w may be nil when the process only produces
// tasks.
func Init(e *echo.Echo, mw *middleware.Middleware, q queue.Enqueuer, w *queue.Worker,
	meetups meetupService.MeetupServiceInterface, contacts service.ContactResolver,
	venues service.VenueLookup, messages service.InviteBuilder,
) service.InviteServiceInterface {
	svc := service.NewInviteService(meetups, contacts, venues, messages, q)
	ctrl := controller.NewInviteController(svc)
	router.NewInviteRouter(ctrl).Setup(e, mw)

	if w != nil {
		w.Handle(constants.TaskInviteMarkSent, worker.MarkSentHandler(meetups))
	}
	return svc
}
