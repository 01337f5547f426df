package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"leevienna_shop/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateOrderNumber builds the display-unique public code, e.g.
// ORD-20260831-3F9A2C.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), suffix)
}

// NormalizeProductId coerces an incoming product reference to a well-formed
// catalog key. Anything that is not UUID-shaped — display-order integers have
// leaked in here historically — is stored as absent rather than rejecting the
// order or persisting garbage.
func NormalizeProductId(productId *string) *string {
	if productId == nil || *productId == "" {
		return nil
	}
	parsed, err := uuid.Parse(*productId)
	if err != nil {
		return nil
	}
	normalized := parsed.String()
	return &normalized
}

// SummarizeOrders aggregates order count and revenue over [from, to) for the
// daily digest.
func SummarizeOrders(db *gorm.DB, from, to time.Time) (model.OrderSummaryRange, error) {
	summary := model.OrderSummaryRange{From: from, To: to}

	if err := db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&summary.Count).Error; err != nil {
		return summary, err
	}
	if err := db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(total), 0)").Scan(&summary.Total).Error; err != nil {
		return summary, err
	}
	return summary, nil
}

// ParseDisplayPrice extracts the numeric value from a catalog display price
// like "₱299" or "₱1,299.50". Unparseable input yields 0.
func ParseDisplayPrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
