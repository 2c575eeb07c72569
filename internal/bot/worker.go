package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/avtomir/avtomir-backend/internal/catalog"
	"github.com/avtomir/avtomir-backend/pkg/db/models"
	"github.com/avtomir/avtomir-backend/pkg/logger"
	"github.com/avtomir/avtomir-backend/pkg/telegram"
)

const pollTimeoutSeconds = 30

// Worker serves dealership chat commands over long polling.
type Worker struct {
	client  *telegram.Client
	catalog catalog.Service
	logg    *logger.Logger
}

// New wires the bot worker.
func New(client *telegram.Client, catalogSvc catalog.Service, logg *logger.Logger) (*Worker, error) {
	if client == nil || !client.Enabled() {
		return nil, fmt.Errorf("bot: telegram client is required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("bot: catalog service is required")
	}
	return &Worker{client: client, catalog: catalogSvc, logg: logg}, nil
}

// Run consumes updates until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	updates := w.client.Updates(0, pollTimeoutSeconds)
	defer w.client.StopUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			w.handle(ctx, update)
		}
	}
}

func (w *Worker) handle(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || !msg.IsCommand() {
		return
	}

	if w.logg != nil {
		logCtx := w.logg.WithFields(ctx, map[string]any{
			"command": msg.Command(),
			"chat_id": msg.Chat.ID,
		})
		w.logg.Info(logCtx, "bot command received")
	}

	reply := w.replyFor(ctx, msg.Command(), msg.CommandArguments())
	if reply == "" {
		return
	}
	if err := w.client.SendMessage(ctx, msg.Chat.ID, reply); err != nil && w.logg != nil {
		w.logg.Error(ctx, "bot reply failed", err)
	}
}

// replyFor builds the Markdown answer for one command.
func (w *Worker) replyFor(ctx context.Context, command, args string) string {
	switch command {
	case "start", "help":
		return helpMessage

	case "cars":
		cars, err := w.catalog.FeaturedCars(ctx)
		if err != nil {
			return errorMessage
		}
		return telegram.CarsMessage(dtosToModels(cars))

	case "search":
		query := strings.TrimSpace(args)
		if query == "" {
			return "Usage: /search <make>"
		}
		cars, err := w.catalog.ListCars(ctx, catalog.ListFilter{Make: query})
		if err != nil {
			return errorMessage
		}
		return telegram.CarsMessage(dtosToModels(cars))

	case "stats":
		cars, err := w.catalog.ListCars(ctx, catalog.ListFilter{})
		if err != nil {
			return errorMessage
		}
		featured := 0
		for _, car := range cars {
			if car.IsFeatured {
				featured++
			}
		}
		return telegram.StatsMessage(dtosToModels(cars), featured)
	}
	return ""
}

const (
	helpMessage = "🚗 *AvtoMir bot*\n\n" +
		"/cars - featured listings\n" +
		"/search <make> - search the catalog\n" +
		"/stats - dealership stats"
	errorMessage = "⚠️ Catalog is temporarily unavailable, try again later"
)

func dtosToModels(dtos []catalog.CarDTO) []models.Car {
	cars := make([]models.Car, 0, len(dtos))
	for _, dto := range dtos {
		cars = append(cars, models.Car{
			ID:           dto.ID,
			Make:         dto.Make,
			Model:        dto.Model,
			Year:         dto.Year,
			PriceRub:     dto.Price,
			Mileage:      dto.Mileage,
			Fuel:         dto.Fuel,
			Transmission: dto.Transmission,
			IsFeatured:   dto.IsFeatured,
			Country:      dto.Country,
		})
	}
	return cars
}
