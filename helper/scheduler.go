package helper

import (
	"fmt"
	"log"
	"time"

	"leevienna_shop/config"
	"leevienna_shop/constants"
	"leevienna_shop/database"
	"leevienna_shop/model"
	"leevienna_shop/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	pendingSweep     *cron.Cron
	summaryScheduler gocron.Scheduler
)

// StartPendingOrderSweep logs orders stuck in pending for more than 48h so
// the operator notices them. Status changes stay admin-only; the sweep never
// mutates.
func StartPendingOrderSweep() {
	pendingSweep = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := pendingSweep.AddFunc("0 * * * *", sweepStalePendingOrders)
	if err != nil {
		log.Printf("failed to start pending order sweep: %v", err)
		return
	}

	pendingSweep.Start()
	log.Println("Pending order sweep started (hourly)")
}

func sweepStalePendingOrders() {
	cutoff := time.Now().Add(-48 * time.Hour)

	var stale []model.Order
	if err := database.DB.
		Where("status = ? AND created_at < ?", constants.ORDER_PENDING, cutoff).
		Find(&stale).Error; err != nil {
		log.Printf("failed to sweep pending orders: %v", err)
		return
	}

	for _, order := range stale {
		log.Printf("order %s pending since %s, needs triage", order.OrderNumber, order.CreatedAt.Format("02/01/2006 15:04"))
	}
}

func StopPendingOrderSweep() {
	if pendingSweep != nil {
		pendingSweep.Stop()
	}
}

// StartDailySummaryScheduler mails yesterday's order digest to the shop
// operator every morning.
func StartDailySummaryScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("PHT", 8*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	summaryScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(8, 0, 0),
			),
		),
		gocron.NewTask(SendDailySummary),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily summary scheduler started (08:00 PHT)")
}

func StopDailySummaryScheduler() {
	if summaryScheduler != nil {
		summaryScheduler.Shutdown()
	}
}

func SendDailySummary() {
	to := config.ConfigDefault("BOOTSTRAP_ADMIN_EMAIL", constants.DEFAULT_BOOTSTRAP_ADMIN_EMAIL)

	now := time.Now()
	from := now.AddDate(0, 0, -1).Truncate(24 * time.Hour)
	until := from.Add(24 * time.Hour)

	summary, err := SummarizeOrders(database.DB, from, until)
	if err != nil {
		log.Printf("failed to summarize orders: %v", err)
		return
	}

	subject := fmt.Sprintf("Daily summary %s", from.Format("02/01/2006"))
	body := fmt.Sprintf("<p>Orders: <strong>%d</strong></p><p>Total: <strong>&#8369;%.2f</strong></p>", summary.Count, summary.Total)
	if err := utils.SendAdminSummaryEmail(to, subject, body); err != nil {
		log.Printf("failed to send daily summary: %v", err)
	}
}
