// Package http exposes the booking, handling and tracking operations over a
// REST API built on echo.
package http

import (
	"errors"
	"net/http"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	bookCargoHandler       commands.BookCargoCommandHandler
	assignItineraryHandler commands.AssignItineraryCommandHandler
	changeDestHandler      commands.ChangeDestinationCommandHandler
	changeDeadlineHandler  commands.ChangeDeadlineCommandHandler
	registerEventHandler   commands.RegisterHandlingEventCommandHandler

	// Query handlers
	trackCargoHandler        queries.TrackCargoQueryHandler
	getUnroutedCargosHandler queries.GetUnroutedCargosQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	bookCargoHandler commands.BookCargoCommandHandler,
	assignItineraryHandler commands.AssignItineraryCommandHandler,
	changeDestHandler commands.ChangeDestinationCommandHandler,
	changeDeadlineHandler commands.ChangeDeadlineCommandHandler,
	registerEventHandler commands.RegisterHandlingEventCommandHandler,
	trackCargoHandler queries.TrackCargoQueryHandler,
	getUnroutedCargosHandler queries.GetUnroutedCargosQueryHandler,
) *Server {
	return &Server{
		bookCargoHandler:         bookCargoHandler,
		assignItineraryHandler:   assignItineraryHandler,
		changeDestHandler:        changeDestHandler,
		changeDeadlineHandler:    changeDeadlineHandler,
		registerEventHandler:     registerEventHandler,
		trackCargoHandler:        trackCargoHandler,
		getUnroutedCargosHandler: getUnroutedCargosHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/cargos", s.BookCargo)
	api.GET("/cargos/unrouted", s.GetUnroutedCargos)
	api.POST("/cargos/:trackingId/itinerary", s.AssignItinerary)
	api.POST("/cargos/:trackingId/destination", s.ChangeDestination)
	api.POST("/cargos/:trackingId/deadline", s.ChangeDeadline)
	api.GET("/cargos/:trackingId/tracking", s.TrackCargo)
	api.POST("/handling-events", s.RegisterHandlingEvent)

	e.GET("/health", s.Health)
}

// BookCargo handles POST /api/v1/cargos - books a new cargo.
func (s *Server) BookCargo(ctx echo.Context) error {
	var request BookCargoRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingID, err := trackingIDFromRequest(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	origin, err := kernel.NewUnLocode(request.Origin)
	if err != nil {
		return errorResponse(ctx, err)
	}

	destination, err := kernel.NewUnLocode(request.Destination)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewBookCargoCommand(trackingID, origin, destination, request.ArrivalDeadline)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.bookCargoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, BookCargoResponse{TrackingID: trackingID.String()})
}

// AssignItinerary handles POST /api/v1/cargos/:trackingId/itinerary -
// assigns a new itinerary to a booked cargo.
func (s *Server) AssignItinerary(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request AssignItineraryRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itinerary, err := itineraryFromRequest(request)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignItineraryCommand(trackingID, itinerary)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.assignItineraryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeDestination handles POST /api/v1/cargos/:trackingId/destination.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ChangeDestinationRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := kernel.NewUnLocode(request.Destination)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewChangeDestinationCommand(trackingID, destination)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeDestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeDeadline handles POST /api/v1/cargos/:trackingId/deadline.
func (s *Server) ChangeDeadline(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request ChangeDeadlineRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeDeadlineCommand(trackingID, request.ArrivalDeadline)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.changeDeadlineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RegisterHandlingEvent handles POST /api/v1/handling-events - registers a
// reported handling action. A report that contradicts the itinerary is
// accepted; only reports that fail to resolve against reference data are
// rejected.
func (s *Server) RegisterHandlingEvent(ctx echo.Context) error {
	var request RegisterHandlingEventRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(request.TrackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	location, err := kernel.NewUnLocode(request.Location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	eventType, err := handling.EventTypeFromString(request.EventType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var voyageNumber *voyage.Number
	if request.VoyageNumber != "" {
		number, numberErr := voyage.NewNumber(request.VoyageNumber)
		if numberErr != nil {
			return errorResponse(ctx, numberErr)
		}
		voyageNumber = &number
	}

	cmd, err := commands.NewRegisterHandlingEventCommand(
		request.CompletionTime, trackingID, voyageNumber, location, eventType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.registerEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// TrackCargo handles GET /api/v1/cargos/:trackingId/tracking - returns the
// public tracking view of one cargo.
func (s *Server) TrackCargo(ctx echo.Context) error {
	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewTrackCargoQuery(trackingID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	view, err := s.trackCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingResponseFromView(view))
}

// GetUnroutedCargos handles GET /api/v1/cargos/unrouted - lists cargos
// awaiting routing.
func (s *Server) GetUnroutedCargos(ctx echo.Context) error {
	query := queries.NewGetUnroutedCargosQuery()

	cargos, err := s.getUnroutedCargosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]UnroutedCargoResponse, len(cargos))
	for i, unrouted := range cargos {
		response[i] = UnroutedCargoResponse{
			TrackingID:      unrouted.TrackingID.String(),
			Origin:          unrouted.Origin.String(),
			Destination:     unrouted.Destination.String(),
			ArrivalDeadline: unrouted.ArrivalDeadline,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func trackingIDFromRequest(raw string) (kernel.TrackingID, error) {
	if raw == "" {
		return kernel.NewRandomTrackingID(), nil
	}
	return kernel.NewTrackingID(raw)
}

func itineraryFromRequest(request AssignItineraryRequest) (*cargo.Itinerary, error) {
	legs := make([]cargo.Leg, 0, len(request.Legs))
	for _, legRequest := range request.Legs {
		voyageNumber, err := voyage.NewNumber(legRequest.VoyageNumber)
		if err != nil {
			return nil, err
		}

		loadLocation, err := kernel.NewUnLocode(legRequest.LoadLocation)
		if err != nil {
			return nil, err
		}

		unloadLocation, err := kernel.NewUnLocode(legRequest.UnloadLocation)
		if err != nil {
			return nil, err
		}

		leg, err := cargo.NewLeg(
			voyageNumber, loadLocation, unloadLocation,
			legRequest.LoadTime, legRequest.UnloadTime)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func errorResponse(ctx echo.Context, err error) error {
	switch {
	// A rejected registration often wraps a not-found cause (unknown cargo,
	// location or voyage), so it must be matched before ErrObjectNotFound.
	case errors.Is(err, handling.ErrCannotCreateHandlingEvent):
		return respond(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return respond(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respond(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func respond(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
