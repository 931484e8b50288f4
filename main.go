package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"telegram-time-tracker/internal/bot"
	"telegram-time-tracker/internal/config"
	"telegram-time-tracker/internal/handlers"
	"telegram-time-tracker/internal/scheduler"
	"telegram-time-tracker/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.
	cfg := config.Load()

	db, err := storage.New(cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}

	tg, err := bot.New(cfg.TelegramToken)
	if err != nil {
		log.Fatal(err)
	}

	h := handlers.New(tg, db)

	s, err := scheduler.Start(h, db, cfg.PollPeriod)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Запускаем бота.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Останавливаем бота.")
	if err := s.Shutdown(); err != nil {
		log.Println("Ошибка остановки планировщика:", err)
	}
	_ = db.Close()
}
