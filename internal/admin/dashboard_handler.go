package admin

import (
	"sort"
	"time"

	"lycia-backend/internal/database"
	"lycia-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	DailyRevenue  float64 `json:"dailyRevenue"`
	TotalRevenue  float64 `json:"totalRevenue"`
	DailyOrders   int64   `json:"dailyOrders"`
	TotalOrders   int64   `json:"totalOrders"`
	CanceledToday int64   `json:"canceledToday"`
	AvgBasket     float64 `json:"avgBasket"`
}

type StatusSlice struct {
	Status  models.OrderStatus `json:"status"`
	Count   int64              `json:"count"`
	Percent int                `json:"percent"`
}

type RecentOrder struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Status    models.OrderStatus `json:"status"`
	Total     float64            `json:"total"`
	Username  string             `json:"username"`
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// GET /api/admin/dashboard
// İptal edilen siparişler ciro hesaplarına katılmaz.
func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := startOfToday()
		db := database.DB

		var dailyRevenue, totalRevenue decimal.Decimal
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Where("created_at >= ? AND status <> ?", today, models.StatusIptalEdildi).
			Scan(&dailyRevenue).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard verisi alınamadı")
		}
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Where("status <> ?", models.StatusIptalEdildi).
			Scan(&totalRevenue).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard verisi alınamadı")
		}

		var dailyOrders, totalOrders, canceledToday int64
		db.Model(&models.Order{}).Where("created_at >= ?", today).Count(&dailyOrders)
		db.Model(&models.Order{}).Count(&totalOrders)
		db.Model(&models.Order{}).
			Where("created_at >= ? AND status = ?", today, models.StatusIptalEdildi).
			Count(&canceledToday)

		avgBasket := 0.0
		if totalOrders > 0 {
			avgBasket = totalRevenue.InexactFloat64() / float64(totalOrders)
		}

		type statusRow struct {
			Status models.OrderStatus
			Count  int64
		}
		var rows []statusRow
		if err := db.Model(&models.Order{}).
			Select("status, COUNT(*) as count").
			Group("status").
			Scan(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard verisi alınamadı")
		}

		var statusTotal int64
		for _, r := range rows {
			statusTotal += r.Count
		}
		if statusTotal == 0 {
			statusTotal = 1
		}

		distribution := make([]StatusSlice, 0, len(rows))
		for _, r := range rows {
			distribution = append(distribution, StatusSlice{
				Status:  r.Status,
				Count:   r.Count,
				Percent: int(float64(r.Count)/float64(statusTotal)*100 + 0.5),
			})
		}
		sort.Slice(distribution, func(i, j int) bool {
			return distribution[i].Count > distribution[j].Count
		})

		var recent []models.Order
		if err := db.Preload("User").
			Order("created_at desc").
			Limit(6).
			Find(&recent).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dashboard verisi alınamadı")
		}

		recentOrders := make([]RecentOrder, 0, len(recent))
		for _, o := range recent {
			recentOrders = append(recentOrders, RecentOrder{
				ID:        o.ID,
				CreatedAt: o.CreatedAt,
				Status:    o.Status,
				Total:     o.TotalAmount.InexactFloat64(),
				Username:  o.User.Username,
			})
		}

		return c.JSON(fiber.Map{
			"stats": DashboardStats{
				DailyRevenue:  dailyRevenue.InexactFloat64(),
				TotalRevenue:  totalRevenue.InexactFloat64(),
				DailyOrders:   dailyOrders,
				TotalOrders:   totalOrders,
				CanceledToday: canceledToday,
				AvgBasket:     avgBasket,
			},
			"distribution": distribution,
			"recentOrders": recentOrders,
		})
	}
}
