package metrics

import (
	"errors"
	"fmt"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// ErrUnsupportedMetric indicates a metric type with no query table entry.
// With the closed enumeration this is unreachable and means the table is
// missing a row.
var ErrUnsupportedMetric = errors.New("unsupported metric type")

// Row is one result row returned by the store, a fixed-arity tuple of
// scalar columns.
type Row []any

// queries maps every metric type to its aggregation query. The templates
// are fixed at build time; no user input ever reaches them.
var queries = map[domain.MetricType]string{
	domain.MetricTypeDAU: `
		SELECT uniq(user_id)
		FROM user_events_storage
		WHERE toDate(timestamp) = today() AND event_type = 'user_login'`,

	domain.MetricTypeWAU: `
		SELECT uniq(user_id)
		FROM user_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY AND event_type = 'user_login'`,

	domain.MetricTypeMAU: `
		SELECT uniq(user_id)
		FROM user_events_storage
		WHERE timestamp >= now() - INTERVAL 30 DAY AND event_type = 'user_login'`,

	domain.MetricTypeNewRegistrationsToday: `
		SELECT count()
		FROM user_events_storage
		WHERE toDate(timestamp) = today() AND event_type = 'user_registered'`,

	domain.MetricTypeDailyRevenue: `
		SELECT sum(amount)
		FROM transaction_events_storage
		WHERE toDate(timestamp) = today()`,

	domain.MetricTypeAverageOrderValue: `
		SELECT CASE WHEN count() > 0 THEN avg(amount) ELSE 0 END
		FROM transaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY`,

	domain.MetricTypeARPU7Days: `
		SELECT CASE WHEN uniq(user_id) > 0 THEN sum(amount) / uniq(user_id) ELSE 0 END
		FROM transaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY`,

	domain.MetricTypeTotalTransactionsToday: `
		SELECT count()
		FROM transaction_events_storage
		WHERE toDate(timestamp) = today()`,

	domain.MetricTypeRevenueTrend30Days: `
		SELECT toDate(timestamp), sum(amount)
		FROM transaction_events_storage
		WHERE timestamp >= now() - INTERVAL 30 DAY
		GROUP BY toDate(timestamp) ORDER BY toDate(timestamp)`,

	domain.MetricTypeUserActivityTrend30Days: `
		SELECT toDate(timestamp), uniq(user_id)
		FROM user_events_storage
		WHERE timestamp >= now() - INTERVAL 30 DAY AND event_type = 'user_login'
		GROUP BY toDate(timestamp) ORDER BY toDate(timestamp)`,

	domain.MetricTypeTopPagesByViews: `
		SELECT page, count()
		FROM interaction_events_storage
		WHERE event_type = 'page_view' AND timestamp >= now() - INTERVAL 7 DAY
		AND page IS NOT NULL
		GROUP BY page ORDER BY count() DESC LIMIT 10`,

	domain.MetricTypeCartAbandonmentRate: `
		WITH
			cart_users AS (SELECT uniq(user_id) as users FROM interaction_events_storage WHERE event_type = 'item_added_to_cart' AND timestamp >= now() - INTERVAL 7 DAY),
			purchase_users AS (SELECT uniq(user_id) as users FROM transaction_events_storage WHERE timestamp >= now() - INTERVAL 7 DAY)
		SELECT CASE WHEN cart_users.users > 0 THEN round((1 - purchase_users.users / cart_users.users) * 100, 2) ELSE 0 END
		FROM cart_users, purchase_users`,

	domain.MetricTypeSearchQueries: `
		SELECT query, count()
		FROM interaction_events_storage
		WHERE event_type = 'search' AND timestamp >= now() - INTERVAL 7 DAY
		AND query IS NOT NULL
		GROUP BY query ORDER BY count() DESC LIMIT 10`,

	domain.MetricTypeUserJourneyFunnel: `
		SELECT toDate(timestamp),
		       uniq(case when event_type = 'page_view' then user_id end),
		       uniq(case when event_type = 'item_added_to_cart' then user_id end),
		       uniq(case when event_type = 'search' then user_id end)
		FROM interaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY
		GROUP BY toDate(timestamp) ORDER BY toDate(timestamp)`,

	domain.MetricTypeTransactionVolumeByCurrency: `
		SELECT currency, count(), sum(amount)
		FROM transaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY
		GROUP BY currency ORDER BY count() DESC`,

	domain.MetricTypeMostClickedElements: `
		SELECT element_name, count()
		FROM interaction_events_storage
		WHERE event_type = 'element_click' AND timestamp >= now() - INTERVAL 7 DAY
		AND element_name IS NOT NULL
		GROUP BY element_name ORDER BY count() DESC LIMIT 10`,

	domain.MetricTypeUserRegistrationTrend: `
		SELECT toDate(timestamp), count()
		FROM user_events_storage
		WHERE event_type = 'user_registered' AND timestamp >= now() - INTERVAL 30 DAY
		GROUP BY toDate(timestamp) ORDER BY toDate(timestamp)`,

	domain.MetricTypeFilterUsage: `
		SELECT filter_name, filter_value, count()
		FROM interaction_events_storage
		WHERE event_type = 'filter_applied' AND timestamp >= now() - INTERVAL 7 DAY
		AND filter_name IS NOT NULL
		GROUP BY filter_name, filter_value ORDER BY count() DESC LIMIT 15`,

	domain.MetricTypeConversionRateCartToPurchase: `
		WITH
			transactions_count AS (SELECT count() as cnt FROM transaction_events_storage WHERE timestamp >= now() - INTERVAL 7 DAY),
			cart_users_count AS (SELECT uniq(user_id) as cnt FROM interaction_events_storage WHERE event_type = 'item_added_to_cart' AND timestamp >= now() - INTERVAL 7 DAY)
		SELECT CASE WHEN cart_users_count.cnt > 0 THEN round(transactions_count.cnt * 100.0 / cart_users_count.cnt, 2) ELSE 0 END
		FROM transactions_count, cart_users_count`,

	domain.MetricTypeUserEngagementScore: `
		SELECT CASE WHEN uniq(user_id) > 0 THEN round(count() * 1.0 / uniq(user_id), 2) ELSE 0 END
		FROM interaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY`,

	domain.MetricTypeMostActiveEventType: `
		SELECT event_type
		FROM interaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY
		GROUP BY event_type ORDER BY count() DESC LIMIT 1`,

	domain.MetricTypeTotalPageViews: `
		SELECT count()
		FROM interaction_events_storage
		WHERE event_type = 'page_view' AND timestamp >= now() - INTERVAL 7 DAY`,

	domain.MetricTypeTopPerformingProducts: `
		SELECT item_id, count(), uniq(user_id)
		FROM interaction_events_storage
		WHERE event_type = 'item_added_to_cart' AND timestamp >= now() - INTERVAL 7 DAY
		GROUP BY item_id ORDER BY count() DESC LIMIT 10`,

	domain.MetricTypeActivityByHour: `
		SELECT toHour(timestamp), count()
		FROM interaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY
		GROUP BY toHour(timestamp) ORDER BY toHour(timestamp)`,

	domain.MetricTypeEventTypeDistribution: `
		SELECT event_type, count()
		FROM interaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY
		GROUP BY event_type ORDER BY count() DESC`,

	domain.MetricTypeDailyActivityTrend: `
		SELECT toDate(timestamp), count()
		FROM interaction_events_storage
		WHERE timestamp >= now() - INTERVAL 7 DAY
		GROUP BY toDate(timestamp) ORDER BY toDate(timestamp)`,
}

// QueryFor returns the aggregation query for a metric type.
func QueryFor(metricType domain.MetricType) (string, error) {
	query, ok := queries[metricType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMetric, metricType)
	}
	return query, nil
}

// Parse maps result rows positionally into the metric's typed result.
// Scalar metrics take the first row's first column and default to a
// type-appropriate zero value when the row set is empty; row-sequence
// metrics preserve store order as returned (the queries carry their own
// ORDER BY).
func Parse(metricType domain.MetricType, rows []Row) (domain.MetricData, error) {
	switch metricType {
	case domain.MetricTypeDAU:
		return domain.DAUData{Value: scalarInt(rows)}, nil

	case domain.MetricTypeWAU:
		return domain.WAUData{Value: scalarInt(rows)}, nil

	case domain.MetricTypeMAU:
		return domain.MAUData{Value: scalarInt(rows)}, nil

	case domain.MetricTypeNewRegistrationsToday:
		return domain.NewRegistrationsTodayData{Value: scalarInt(rows)}, nil

	case domain.MetricTypeDailyRevenue:
		return domain.DailyRevenueData{Value: scalarFloat(rows)}, nil

	case domain.MetricTypeAverageOrderValue:
		return domain.AverageOrderValueData{Value: scalarFloat(rows)}, nil

	case domain.MetricTypeARPU7Days:
		return domain.ARPU7DaysData{Value: scalarFloat(rows)}, nil

	case domain.MetricTypeTotalTransactionsToday:
		return domain.TotalTransactionsTodayData{Value: scalarInt(rows)}, nil

	case domain.MetricTypeCartAbandonmentRate:
		return domain.CartAbandonmentRateData{Value: scalarFloat(rows)}, nil

	case domain.MetricTypeConversionRateCartToPurchase:
		return domain.ConversionRateCartToPurchaseData{Value: scalarFloat(rows)}, nil

	case domain.MetricTypeUserEngagementScore:
		return domain.UserEngagementScoreData{Value: scalarFloat(rows)}, nil

	case domain.MetricTypeMostActiveEventType:
		return domain.MostActiveEventTypeData{Value: scalarString(rows)}, nil

	case domain.MetricTypeTotalPageViews:
		return domain.TotalPageViewsData{Value: scalarInt(rows)}, nil

	case domain.MetricTypeRevenueTrend30Days:
		points := make([]domain.RevenuePoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, domain.RevenuePoint{
				Date:    asDate(row[0]),
				Revenue: asFloat64(row[1]),
			})
		}
		return domain.RevenueTrend30DaysData{Points: points}, nil

	case domain.MetricTypeUserActivityTrend30Days:
		points := make([]domain.UserActivityPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, domain.UserActivityPoint{
				Date:        asDate(row[0]),
				ActiveUsers: asInt64(row[1]),
			})
		}
		return domain.UserActivityTrend30DaysData{Points: points}, nil

	case domain.MetricTypeUserRegistrationTrend:
		points := make([]domain.RegistrationPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, domain.RegistrationPoint{
				Date:          asDate(row[0]),
				Registrations: asInt64(row[1]),
			})
		}
		return domain.UserRegistrationTrendData{Points: points}, nil

	case domain.MetricTypeDailyActivityTrend:
		points := make([]domain.ActivityPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, domain.ActivityPoint{
				Time:   asDate(row[0]),
				Events: asInt64(row[1]),
			})
		}
		return domain.DailyActivityTrendData{Points: points}, nil

	case domain.MetricTypeTopPagesByViews:
		pageRows := make([]domain.PageViewRow, 0, len(rows))
		for _, row := range rows {
			pageRows = append(pageRows, domain.PageViewRow{
				Page:  asString(row[0]),
				Views: asInt64(row[1]),
			})
		}
		return domain.TopPagesByViewsData{Rows: pageRows}, nil

	case domain.MetricTypeSearchQueries:
		searchRows := make([]domain.SearchQueryRow, 0, len(rows))
		for _, row := range rows {
			searchRows = append(searchRows, domain.SearchQueryRow{
				Query:       asString(row[0]),
				SearchCount: asInt64(row[1]),
			})
		}
		return domain.SearchQueriesData{Rows: searchRows}, nil

	case domain.MetricTypeMostClickedElements:
		elementRows := make([]domain.ClickedElementRow, 0, len(rows))
		for _, row := range rows {
			elementRows = append(elementRows, domain.ClickedElementRow{
				ElementName: asString(row[0]),
				Clicks:      asInt64(row[1]),
			})
		}
		return domain.MostClickedElementsData{Rows: elementRows}, nil

	case domain.MetricTypeFilterUsage:
		filterRows := make([]domain.FilterUsageRow, 0, len(rows))
		for _, row := range rows {
			filterRows = append(filterRows, domain.FilterUsageRow{
				FilterName:  asString(row[0]),
				FilterValue: asString(row[1]),
				UsageCount:  asInt64(row[2]),
			})
		}
		return domain.FilterUsageData{Rows: filterRows}, nil

	case domain.MetricTypeTopPerformingProducts:
		productRows := make([]domain.ProductRow, 0, len(rows))
		for _, row := range rows {
			productRows = append(productRows, domain.ProductRow{
				ProductID:     asString(row[0]),
				CartAdditions: asInt64(row[1]),
				UniqueUsers:   asInt64(row[2]),
			})
		}
		return domain.TopPerformingProductsData{Rows: productRows}, nil

	case domain.MetricTypeActivityByHour:
		activityRows := make([]domain.HourlyActivityRow, 0, len(rows))
		for _, row := range rows {
			activityRows = append(activityRows, domain.HourlyActivityRow{
				Hour:   asInt64(row[0]),
				Events: asInt64(row[1]),
			})
		}
		return domain.ActivityByHourData{Rows: activityRows}, nil

	case domain.MetricTypeEventTypeDistribution:
		eventRows := make([]domain.EventDistributionRow, 0, len(rows))
		for _, row := range rows {
			eventRows = append(eventRows, domain.EventDistributionRow{
				EventType: asString(row[0]),
				Value:     asInt64(row[1]),
			})
		}
		return domain.EventTypeDistributionData{Rows: eventRows}, nil

	case domain.MetricTypeUserJourneyFunnel:
		// Null aggregate columns coalesce to 0.
		points := make([]domain.FunnelPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, domain.FunnelPoint{
				Time:          asDate(row[0]),
				PageViews:     asInt64(row[1]),
				CartAdditions: asInt64(row[2]),
				Searches:      asInt64(row[3]),
			})
		}
		return domain.UserJourneyFunnelData{Points: points}, nil

	case domain.MetricTypeTransactionVolumeByCurrency:
		currencyRows := make([]domain.CurrencyVolumeRow, 0, len(rows))
		for _, row := range rows {
			currencyRows = append(currencyRows, domain.CurrencyVolumeRow{
				Currency:     asString(row[0]),
				Transactions: asInt64(row[1]),
				TotalAmount:  asFloat64(row[2]),
			})
		}
		return domain.TransactionVolumeByCurrencyData{Rows: currencyRows}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMetric, metricType)
	}
}

func scalarInt(rows []Row) int64 {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0
	}
	return asInt64(rows[0][0])
}

func scalarFloat(rows []Row) float64 {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0.0
	}
	return asFloat64(rows[0][0])
}

func scalarString(rows []Row) string {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ""
	}
	return asString(rows[0][0])
}
