package main

import (
	api "futuresbot/internal/api/http"
	"futuresbot/internal/controllers"
	"futuresbot/internal/scheduler"
	"futuresbot/internal/usecasees/structs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/ic2hrmk/promtail"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	Config     *Config
	Logger     *logrus.Logger
	PromTail   promtail.Client
	Mongo      *mongo.Client
	DB         *sqlx.DB
	TGM        *tgbotapi.BotAPI
	Kafka      *controllers.KafkaController
	Metrics    *structs.Metrics
	Fiber      *fiber.App
	Middleware *api.Middleware
	Scheduler  *scheduler.Scheduler
}
