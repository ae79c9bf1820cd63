package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	_ "github.com/lib/pq"

	"github.com/cortefacil/booking-service/internal/config"
	"github.com/cortefacil/booking-service/internal/domain"
	announcementRepo "github.com/cortefacil/booking-service/internal/infra/storage/announcement"
	appointmentRepo "github.com/cortefacil/booking-service/internal/infra/storage/appointment"
	"github.com/cortefacil/booking-service/pkg/logger"
	"github.com/cortefacil/booking-service/pkg/types"
)

// Заполняет базу тестовыми данными для локальной разработки:
// записи за прошлый и текущий месяц плюс активное объявление.
func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	count := flag.Int("count", 40, "количество создаваемых записей")
	seed := flag.Uint64("seed", 0, "seed генератора (0 = случайный)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	faker := gofakeit.New(*seed)
	hours := cfg.Business.Hours()
	ctx := context.Background()

	appointments := appointmentRepo.NewRepository(db)
	announcements := announcementRepo.NewRepository(db)

	created := 0
	usedSlots := make(map[string]struct{})

	for attempts := 0; created < *count && attempts < *count*10; attempts++ {
		date := randomWorkday(faker)
		slot := randomSlot(faker, hours)

		key := date.Format(domain.DateFormat) + " " + slot.String()
		if _, taken := usedSlots[key]; taken {
			continue
		}
		usedSlots[key] = struct{}{}

		status := domain.StatusConfirmed
		if faker.Number(0, 9) == 0 {
			status = domain.StatusCancelled
		}

		_, err := appointments.Create(ctx, &domain.Appointment{
			CustomerName:  faker.Name(),
			CustomerPhone: fmt.Sprintf("(%02d) 9%04d-%04d", faker.Number(11, 99), faker.Number(0, 9999), faker.Number(0, 9999)),
			ServiceID:     randomService(faker),
			Date:          date,
			Time:          slot,
			Status:        status,
		})
		if err != nil {
			log.Fatal("Failed to create appointment: %v", err)
		}
		created++
	}

	log.Info("Seeded %d appointments", created)

	if err := announcements.DeactivateAll(ctx); err != nil {
		log.Fatal("Failed to deactivate announcements: %v", err)
	}
	if _, err := announcements.Create(ctx, &domain.AnnouncementRecord{
		Message:  "Promoção: combo cabelo + barba com 15% de desconto nesta semana!",
		Type:     domain.AnnouncementInfo,
		IsActive: true,
	}); err != nil {
		log.Fatal("Failed to create announcement: %v", err)
	}

	log.Info("Seeded active announcement")
	fmt.Printf("Done: %d appointments and 1 announcement created\n", created)
}

// randomWorkday выбирает дату в окне от начала прошлого месяца до +14 дней,
// пропуская воскресенья
func randomWorkday(faker *gofakeit.Faker) time.Time {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	days := int(now.AddDate(0, 0, 14).Sub(start).Hours() / 24)

	for {
		date := start.AddDate(0, 0, faker.Number(0, days))
		if date.Weekday() != domain.RestDay {
			return date
		}
	}
}

// randomSlot выбирает время начала на сетке рабочих часов
func randomSlot(faker *gofakeit.Faker, hours domain.BusinessHours) types.TimeString {
	slots := (hours.ClosingHour - hours.OpeningHour) * 60 / hours.SlotIntervalMinutes
	minutes := hours.OpeningHour*60 + faker.Number(0, slots-1)*hours.SlotIntervalMinutes

	slot, _ := types.NewTimeStringFromString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	return slot
}

// randomService выбирает услугу из каталога
func randomService(faker *gofakeit.Faker) domain.ServiceID {
	return domain.Services[faker.Number(0, len(domain.Services)-1)].ID
}
