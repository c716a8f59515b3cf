package di

import (
	"github.com/viren1298/event-booking-system/internal/config"
	"github.com/viren1298/event-booking-system/internal/database"
	"github.com/viren1298/event-booking-system/internal/gateway"
	"github.com/viren1298/event-booking-system/internal/handler"
	"github.com/viren1298/event-booking-system/internal/redis"
	"github.com/viren1298/event-booking-system/internal/repository"
	"github.com/viren1298/event-booking-system/internal/service"
)

// Container holds all dependencies for the booking platform
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Redis *redis.Client

	// Gateways
	PaymentGateway gateway.PaymentGateway

	// Repositories
	EventRepo   repository.EventRepository
	TicketRepo  repository.TicketRepository
	BookingRepo repository.BookingRepository
	PaymentRepo repository.PaymentRepository

	// Services
	EventService   service.EventService
	TicketService  service.TicketService
	BookingService service.BookingService
	PaymentService service.PaymentService

	// Handlers
	HealthHandler  *handler.HealthHandler
	EventHandler   *handler.EventHandler
	TicketHandler  *handler.TicketHandler
	BookingHandler *handler.BookingHandler
	PaymentHandler *handler.PaymentHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	Config *config.Config
	DB     *database.PostgresDB

	// Redis is optional; without it event reads skip the cache and
	// notifications are dropped.
	Redis *redis.Client
}

// NewContainer wires repositories, services, and handlers
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Redis: cfg.Redis,
	}

	pool := c.DB.Pool()

	var eventRepo repository.EventRepository = repository.NewPostgresEventRepository(pool)
	if c.Redis != nil {
		eventRepo = repository.NewCachedEventRepository(eventRepo, c.Redis)
	}
	c.EventRepo = eventRepo
	c.TicketRepo = repository.NewPostgresTicketRepository(pool)
	c.BookingRepo = repository.NewPostgresBookingRepository(pool)
	c.PaymentRepo = repository.NewPostgresPaymentRepository(pool)

	c.PaymentGateway = gateway.NewMockGateway(&gateway.MockGatewayConfig{
		SuccessRate: cfg.Config.Gateway.SuccessRate,
	})

	var notifier service.Notifier = service.NewNoOpNotifier()
	if c.Redis != nil && cfg.Config.Notifier.Enabled {
		notifier = service.NewRedisNotifier(c.Redis, cfg.Config.Notifier.Channel)
	}

	c.EventService = service.NewEventService(c.EventRepo)
	c.TicketService = service.NewTicketService(c.TicketRepo, c.EventRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.TicketRepo)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo, c.BookingRepo, c.TicketRepo, c.EventRepo, c.PaymentGateway, notifier)

	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Redis)
	c.EventHandler = handler.NewEventHandler(c.EventService)
	c.TicketHandler = handler.NewTicketHandler(c.TicketService)
	c.BookingHandler = handler.NewBookingHandler(c.BookingService)
	c.PaymentHandler = handler.NewPaymentHandler(c.PaymentService)

	return c
}
