package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/BruksfildServices01/salon-dashboard/internal/models"
)

const (
	profitMargin = 0.6
	monthsInYear = 12
)

// RevenueByMonth buckets the salon's bookings by calendar month of their
// start time in now's location and sums the successful payments that
// reference them. The year is not considered. Customers counts matched
// payments, not distinct people.
func RevenueByMonth(ix *Index, now time.Time) []MonthlyRevenue {
	out := make([]MonthlyRevenue, monthsInYear)
	for i := range out {
		out[i] = MonthlyRevenue{Month: i + 1, Label: fmt.Sprintf("T%d", i+1)}
	}

	loc := now.Location()
	for _, b := range ix.Bookings {
		if b.StartTime.IsZero() {
			continue
		}
		bucket := &out[int(b.StartTime.In(loc).Month())-1]
		for _, p := range ix.PaymentsForBooking(b.ID) {
			bucket.Customers++
			if IsSuccessful(p.Status) {
				bucket.Revenue += nonNegative(p.Amount)
			}
		}
	}

	for i := range out {
		out[i].Profit = out[i].Revenue * profitMargin
	}
	return out
}

// ServiceDistribution counts, per service, the bookings that include it
// and the payments matched to those bookings, whatever their status.
func ServiceDistribution(ix *Index) []ServiceStat {
	out := make([]ServiceStat, 0, len(ix.Offerings))
	for _, o := range ix.Offerings {
		stat := ServiceStat{
			ID:         o.ID,
			Name:       DisplayName(o.Steps),
			CategoryID: o.CategoryID,
			Price:      nonNegative(o.Price),
			Steps:      o.Steps,
		}
		if !o.ID.IsZero() {
			for _, b := range ix.BookingsForService(o.ID) {
				stat.Bookings++
				for _, p := range ix.PaymentsForBooking(b.ID) {
					stat.Revenue += nonNegative(p.Amount)
				}
			}
		}
		out = append(out, stat)
	}
	return out
}

// CategoryRollup counts the services filed under each category.
func CategoryRollup(ix *Index) []CategoryStat {
	counts := make(map[models.ID]int, len(ix.Categories))
	for _, o := range ix.Offerings {
		if _, ok := ix.Category(o.CategoryID); ok {
			counts[o.CategoryID]++
		}
	}

	out := make([]CategoryStat, 0, len(ix.Categories))
	for _, c := range ix.Categories {
		out = append(out, CategoryStat{
			ID:       c.ID,
			Name:     c.Name,
			Image:    c.Image,
			Services: counts[c.ID],
		})
	}
	return out
}

var weekdayLabels = [...]string{"CN", "T2", "T3", "T4", "T5", "T6", "T7"}

// DailyBookingWindow returns one entry per calendar day for the last
// `days` days ending today, oldest first.
func DailyBookingWindow(ix *Index, now time.Time, days int) []DailyBookings {
	if days <= 0 {
		return []DailyBookings{}
	}

	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	first := today.AddDate(0, 0, -(days - 1))

	out := make([]DailyBookings, days)
	customers := make([]map[models.ID]struct{}, days)
	for i := range out {
		day := first.AddDate(0, 0, i)
		out[i] = DailyBookings{
			Date:  day.Format("2006-01-02"),
			Label: weekdayLabels[day.Weekday()],
		}
		customers[i] = make(map[models.ID]struct{})
	}

	for _, b := range ix.Bookings {
		if b.StartTime.IsZero() {
			continue
		}
		start := b.StartTime.In(loc)
		i := dayOffset(first, start)
		if i < 0 || i >= days {
			continue
		}
		out[i].Bookings++
		if !b.CustomerID.IsZero() {
			customers[i][b.CustomerID] = struct{}{}
		}
	}

	for i := range out {
		out[i].Customers = len(customers[i])
	}
	return out
}

// dayOffset counts calendar days between the dates of from and to.
// Dates are compared field by field so DST shifts do not skew it.
func dayOffset(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// TopLineStats summarizes the salon's payments and service popularity.
func TopLineStats(ix *Index, services []ServiceStat) Stats {
	st := Stats{TotalTransactions: len(ix.Payments)}

	for _, p := range ix.Payments {
		if IsSuccessful(p.Status) {
			st.SuccessfulTransactions++
			st.TotalRevenue += nonNegative(p.Amount)
		}
	}
	st.SuccessRate = percent(st.SuccessfulTransactions, st.TotalTransactions)

	best := 0
	for _, s := range services {
		if s.Bookings > best {
			best = s.Bookings
			st.TopService = s.Name
		}
	}

	st.HighestPricedService = highestPriced(ix.Offerings)
	return st
}

func highestPriced(offerings []Offering) ServiceSummary {
	var (
		out   ServiceSummary
		found bool
	)
	for _, o := range offerings {
		price := nonNegative(o.Price)
		if !found || price > out.Price {
			out = ServiceSummary{ID: o.ID, Name: DisplayName(o.Steps), Price: price}
			found = true
		}
	}
	return out
}

func nonNegative(a models.Amount) float64 {
	return math.Max(a.Float(), 0)
}

// percent returns part/total*100 rounded to two decimals, 0 when total
// is 0.
func percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }
func round2(f float64) float64 { return math.Round(f*100) / 100 }
