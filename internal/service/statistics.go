package service

import (
	"context"
	"sort"
	"time"

	"daily-app/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	statsWindowDays = 30
	dateLayout      = "2006-01-02"
)

type CategoryStat struct {
	CategoryID  uint    `json:"category_id"`
	Name        string  `json:"name"`
	TotalAmount string  `json:"total_amount"`
	Count       int64   `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type ChartItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type TimeSeries struct {
	Dates   []string  `json:"dates"`
	Amounts []float64 `json:"amounts"`
}

type Statistics struct {
	CategoryStats     []CategoryStat `json:"category_stats"`
	CategoryChartData []ChartItem    `json:"category_chart_data"`
	TimeChartData     TimeSeries     `json:"time_chart_data"`
	TotalAmount       string         `json:"total_amount"`
}

// StatisticsService aggregates an actor's bills per category and per day.
type StatisticsService struct {
	bills *repository.BillRepository
	loc   *time.Location
	now   func() time.Time
}

func NewStatisticsService(bills *repository.BillRepository, loc *time.Location) *StatisticsService {
	if loc == nil {
		loc = time.Local
	}
	return &StatisticsService{bills: bills, loc: loc, now: time.Now}
}

func (s *StatisticsService) Compute(ctx context.Context, actor Actor) (*Statistics, error) {
	totals, err := s.bills.CategoryTotals(ctx, actor.UserID)
	if err != nil {
		return nil, fromRepo(err, "category totals")
	}

	var grand int64
	for _, t := range totals {
		grand += t.TotalCent
	}
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].TotalCent != totals[j].TotalCent {
			return totals[i].TotalCent > totals[j].TotalCent
		}
		return totals[i].Name < totals[j].Name
	})

	out := &Statistics{
		CategoryStats:     make([]CategoryStat, 0, len(totals)),
		CategoryChartData: make([]ChartItem, 0, len(totals)),
		TotalAmount:       FormatCent(grand),
	}
	for _, t := range totals {
		out.CategoryStats = append(out.CategoryStats, CategoryStat{
			CategoryID:  t.CategoryID,
			Name:        t.Name,
			TotalAmount: FormatCent(t.TotalCent),
			Count:       t.Count,
			Percentage:  Percent(t.TotalCent, grand),
		})
		out.CategoryChartData = append(out.CategoryChartData, ChartItem{Name: t.Name, Value: yuan(t.TotalCent)})
	}

	series, err := s.daily(ctx, actor)
	if err != nil {
		return nil, err
	}
	out.TimeChartData = *series
	return out, nil
}

// daily sums spending per calendar day, from the local midnight 30 days before today up to now.
// Days are stepped by calendar date so DST changes never drop or repeat a day.
func (s *StatisticsService) daily(ctx context.Context, actor Actor) (*TimeSeries, error) {
	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	start := today.AddDate(0, 0, -statsWindowDays)

	bills, err := s.bills.SpendingBetween(ctx, actor.UserID, start, now)
	if err != nil {
		return nil, fromRepo(err, "daily spending")
	}
	perDay := make(map[string]int64)
	for _, b := range bills {
		perDay[b.SpendingTime.In(s.loc).Format(dateLayout)] += b.AmountCent
	}

	series := &TimeSeries{
		Dates:   make([]string, 0, statsWindowDays+1),
		Amounts: make([]float64, 0, statsWindowDays+1),
	}
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		series.Dates = append(series.Dates, key)
		series.Amounts = append(series.Amounts, yuan(perDay[key]))
	}
	return series, nil
}

func yuan(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}
