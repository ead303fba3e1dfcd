package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

const (
	TopStylistLimit = 4

	revenueUnit   = 1_000_000
	revenueSuffix = "M"
)

// StaffRanking computes this-month figures for every STAFF user of the
// salon: successful bookings handled and the sum of their totalPrice.
func StaffRanking(ix *Index, now time.Time) []StaffStat {
	type tally struct {
		bookings int
		revenue  float64
	}

	loc := now.Location()
	byStaff := make(map[models.ID]*tally, len(ix.Staff))
	for _, u := range ix.Staff {
		byStaff[u.ID] = &tally{}
	}

	for _, b := range ix.Bookings {
		t, ok := byStaff[b.StaffID]
		if !ok || b.StaffID.IsZero() || b.StartTime.IsZero() {
			continue
		}
		start := b.StartTime.In(loc)
		if start.Year() != now.Year() || start.Month() != now.Month() {
			continue
		}
		if !IsSuccessful(b.Status) {
			continue
		}
		t.bookings++
		t.revenue += nonNegative(b.TotalPrice)
	}

	out := make([]StaffStat, 0, len(ix.Staff))
	for _, u := range ix.Staff {
		t := byStaff[u.ID]
		stat := StaffStat{
			ID:                  u.ID,
			FullName:            u.FullName,
			Bookings:            t.bookings,
			MonthlyRevenue:      t.revenue,
			MonthlyRevenueLabel: FormatRevenueLabel(t.revenue),
		}
		if u.Rating != nil {
			stat.Rating = u.Rating.Float()
		}
		out = append(out, stat)
	}
	return out
}

// TopStylists orders staff by the parsed value of their monthly revenue
// label, highest first, and keeps at most limit entries. Equal labels
// keep their input order.
func TopStylists(staff []StaffStat, limit int) []StaffStat {
	out := make([]StaffStat, len(staff))
	copy(out, staff)

	sort.SliceStable(out, func(i, j int) bool {
		return ParseRevenueLabel(out[i].MonthlyRevenueLabel) > ParseRevenueLabel(out[j].MonthlyRevenueLabel)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// StylistBookingChart projects staff stats onto the bookings bar chart.
func StylistBookingChart(staff []StaffStat) []StylistBookings {
	out := make([]StylistBookings, 0, len(staff))
	for _, s := range staff {
		out = append(out, StylistBookings{ID: s.ID, Name: s.FullName, Bookings: s.Bookings})
	}
	return out
}

// FormatRevenueLabel renders revenue in millions with one decimal, e.g.
// 1_250_000 -> "1.3M".
func FormatRevenueLabel(revenue float64) string {
	return fmt.Sprintf("%.1f%s", round1(revenue/revenueUnit), revenueSuffix)
}

// ParseRevenueLabel reads back a label produced by FormatRevenueLabel.
// Unparseable labels rank as 0.
func ParseRevenueLabel(label string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(label), revenueSuffix), 64)
	if err != nil {
		return 0
	}
	return v
}
