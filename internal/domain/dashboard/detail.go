package dashboard

import "sort"

type MetricTag string

const (
	MetricRevenue      MetricTag = "revenue"
	MetricTransactions MetricTag = "transactions"
	MetricSuccessRate  MetricTag = "successRate"
	MetricTopService   MetricTag = "topService"
)

const (
	TitleRevenue      = "Chi tiết doanh thu"
	TitleTransactions = "Chi tiết giao dịch"
	TitleSuccessRate  = "Tỷ lệ giao dịch thành công"
	TitleTopService   = "Dịch vụ phổ biến"
	TitleNoData       = "Không có dữ liệu"
)

// Row is one line of a drill-down table.
type Row map[string]any

type MetricDetail struct {
	Title string `json:"title"`
	Data  []Row  `json:"data"`
}

func (t MetricTag) Known() bool {
	switch t {
	case MetricRevenue, MetricTransactions, MetricSuccessRate, MetricTopService:
		return true
	}
	return false
}

// EmptyDetail is the result for tags the resolver does not know.
func EmptyDetail() MetricDetail {
	return MetricDetail{Title: TitleNoData, Data: []Row{}}
}

// BuildMetricDetail computes the drill-down table for tag. The index only
// needs services, bookings and payments.
func BuildMetricDetail(tag MetricTag, ix *Index) MetricDetail {
	switch tag {
	case MetricRevenue:
		return MetricDetail{Title: TitleRevenue, Data: revenueRows(ix)}
	case MetricTransactions:
		return MetricDetail{Title: TitleTransactions, Data: transactionRows(ix)}
	case MetricSuccessRate:
		return MetricDetail{Title: TitleSuccessRate, Data: statusRows(ix)}
	case MetricTopService:
		return MetricDetail{Title: TitleTopService, Data: serviceRows(ix)}
	}
	return EmptyDetail()
}

func revenueRows(ix *Index) []Row {
	rows := []Row{}
	for _, p := range ix.Payments {
		if !IsSuccessful(p.Status) {
			continue
		}
		date := ""
		if b, ok := ix.Booking(p.BookingID); ok && !b.StartTime.IsZero() {
			date = b.StartTime.Format("2006-01-02")
		}
		rows = append(rows, Row{
			"paymentId":  p.ID,
			"bookingId":  p.BookingID,
			"customerId": p.UserID,
			"amount":     nonNegative(p.Amount),
			"method":     p.PaymentMethod,
			"date":       date,
		})
	}
	return rows
}

func transactionRows(ix *Index) []Row {
	rows := make([]Row, 0, len(ix.Payments))
	for _, p := range ix.Payments {
		rows = append(rows, Row{
			"paymentId": p.ID,
			"bookingId": p.BookingID,
			"amount":    nonNegative(p.Amount),
			"method":    p.PaymentMethod,
			"status":    NormalizeStatus(p.Status),
		})
	}
	return rows
}

func statusRows(ix *Index) []Row {
	type bucket struct {
		status string
		count  int
	}

	var order []*bucket
	byStatus := make(map[string]*bucket)
	for _, p := range ix.Payments {
		s := NormalizeStatus(p.Status)
		b, ok := byStatus[s]
		if !ok {
			b = &bucket{status: s}
			byStatus[s] = b
			order = append(order, b)
		}
		b.count++
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].count > order[j].count })

	rows := make([]Row, 0, len(order))
	for _, b := range order {
		rows = append(rows, Row{
			"status":  b.status,
			"count":   b.count,
			"percent": percent(b.count, len(ix.Payments)),
		})
	}
	return rows
}

func serviceRows(ix *Index) []Row {
	stats := ServiceDistribution(ix)
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Bookings > stats[j].Bookings })

	rows := make([]Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, Row{
			"serviceId": s.ID,
			"name":      s.Name,
			"bookings":  s.Bookings,
			"revenue":   s.Revenue,
		})
	}
	return rows
}
