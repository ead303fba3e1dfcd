package dashboard

import "time"

// DailyWindowDays is the length of the daily bookings window.
const DailyWindowDays = 7

// Assemble runs every calculator over ix and builds the snapshot. It is a
// pure function of ix, now and the degradations passed in.
func Assemble(ix *Index, now time.Time, degraded []Degradation) Snapshot {
	services := ServiceDistribution(ix)
	staff := StaffRanking(ix, now)

	if degraded == nil {
		degraded = []Degradation{}
	}

	return Snapshot{
		SalonID:            ix.SalonID,
		RevenueData:        RevenueByMonth(ix, now),
		ServiceData:        services,
		StylistBookingData: StylistBookingChart(staff),
		DailyBookings:      DailyBookingWindow(ix, now, DailyWindowDays),
		TopStylists:        TopStylists(staff, TopStylistLimit),
		SalonDetails:       ix.Salon,
		CategoryData:       CategoryRollup(ix),
		StaffList:          staff,
		Stats:              TopLineStats(ix, services),
		Degraded:           degraded,
		GeneratedAt:        now,
	}
}
