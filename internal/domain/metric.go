package domain

// MetricType enumerates every dashboard metric the service can serve.
type MetricType string

const (
	MetricTypeDAU                          MetricType = "daily_active_users"
	MetricTypeWAU                          MetricType = "weekly_active_users"
	MetricTypeMAU                          MetricType = "monthly_active_users"
	MetricTypeNewRegistrationsToday        MetricType = "new_registrations_today"
	MetricTypeDailyRevenue                 MetricType = "daily_revenue"
	MetricTypeAverageOrderValue            MetricType = "average_order_value"
	MetricTypeARPU7Days                    MetricType = "arpu_7_days"
	MetricTypeTotalTransactionsToday       MetricType = "total_transactions_today"
	MetricTypeRevenueTrend30Days           MetricType = "revenue_trend_30_days"
	MetricTypeUserActivityTrend30Days      MetricType = "user_activity_trend_30_days"
	MetricTypeTopPagesByViews              MetricType = "top_pages_by_views"
	MetricTypeCartAbandonmentRate          MetricType = "cart_abandonment_rate"
	MetricTypeSearchQueries                MetricType = "search_queries"
	MetricTypeUserJourneyFunnel            MetricType = "user_journey_funnel"
	MetricTypeTransactionVolumeByCurrency  MetricType = "transaction_volume_by_currency"
	MetricTypeMostClickedElements          MetricType = "most_clicked_elements"
	MetricTypeUserRegistrationTrend        MetricType = "user_registration_trend"
	MetricTypeFilterUsage                  MetricType = "filter_usage"
	MetricTypeConversionRateCartToPurchase MetricType = "conversion_rate_cart_to_purchase"
	MetricTypeUserEngagementScore          MetricType = "user_engagement_score"
	MetricTypeMostActiveEventType          MetricType = "most_active_event_type"
	MetricTypeTotalPageViews               MetricType = "total_page_views"
	MetricTypeTopPerformingProducts        MetricType = "top_performing_products"
	MetricTypeActivityByHour               MetricType = "activity_by_hour"
	MetricTypeEventTypeDistribution        MetricType = "event_type_distribution"
	MetricTypeDailyActivityTrend           MetricType = "daily_activity_trend"
)

// AllMetricTypes returns the full metric enumeration in declaration order.
func AllMetricTypes() []MetricType {
	return []MetricType{
		MetricTypeDAU,
		MetricTypeWAU,
		MetricTypeMAU,
		MetricTypeNewRegistrationsToday,
		MetricTypeDailyRevenue,
		MetricTypeAverageOrderValue,
		MetricTypeARPU7Days,
		MetricTypeTotalTransactionsToday,
		MetricTypeRevenueTrend30Days,
		MetricTypeUserActivityTrend30Days,
		MetricTypeTopPagesByViews,
		MetricTypeCartAbandonmentRate,
		MetricTypeSearchQueries,
		MetricTypeUserJourneyFunnel,
		MetricTypeTransactionVolumeByCurrency,
		MetricTypeMostClickedElements,
		MetricTypeUserRegistrationTrend,
		MetricTypeFilterUsage,
		MetricTypeConversionRateCartToPurchase,
		MetricTypeUserEngagementScore,
		MetricTypeMostActiveEventType,
		MetricTypeTotalPageViews,
		MetricTypeTopPerformingProducts,
		MetricTypeActivityByHour,
		MetricTypeEventTypeDistribution,
		MetricTypeDailyActivityTrend,
	}
}

// MetricData is one case of the closed metric result taxonomy, mirroring
// MetricType variant for variant.
type MetricData interface {
	isMetricData()
}

type DAUData struct {
	Value int64 `json:"value"`
}

type WAUData struct {
	Value int64 `json:"value"`
}

type MAUData struct {
	Value int64 `json:"value"`
}

type NewRegistrationsTodayData struct {
	Value int64 `json:"value"`
}

type DailyRevenueData struct {
	Value float64 `json:"value"`
}

type AverageOrderValueData struct {
	Value float64 `json:"value"`
}

type ARPU7DaysData struct {
	Value float64 `json:"value"`
}

type TotalTransactionsTodayData struct {
	Value int64 `json:"value"`
}

type CartAbandonmentRateData struct {
	Value float64 `json:"value"`
}

type ConversionRateCartToPurchaseData struct {
	Value float64 `json:"value"`
}

type UserEngagementScoreData struct {
	Value float64 `json:"value"`
}

type MostActiveEventTypeData struct {
	Value string `json:"value"`
}

type TotalPageViewsData struct {
	Value int64 `json:"value"`
}

// RevenuePoint is one day of revenue in a trend series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type RevenueTrend30DaysData struct {
	Points []RevenuePoint `json:"points"`
}

type UserActivityPoint struct {
	Date        string `json:"date"`
	ActiveUsers int64  `json:"active_users"`
}

type UserActivityTrend30DaysData struct {
	Points []UserActivityPoint `json:"points"`
}

type PageViewRow struct {
	Page  string `json:"page"`
	Views int64  `json:"views"`
}

type TopPagesByViewsData struct {
	Rows []PageViewRow `json:"rows"`
}

type SearchQueryRow struct {
	Query       string `json:"query"`
	SearchCount int64  `json:"search_count"`
}

type SearchQueriesData struct {
	Rows []SearchQueryRow `json:"rows"`
}

// FunnelPoint is one day of the page view / cart / search funnel.
type FunnelPoint struct {
	Time          string `json:"time"`
	PageViews     int64  `json:"page_views"`
	CartAdditions int64  `json:"cart_additions"`
	Searches      int64  `json:"searches"`
}

type UserJourneyFunnelData struct {
	Points []FunnelPoint `json:"points"`
}

type CurrencyVolumeRow struct {
	Currency     string  `json:"currency"`
	Transactions int64   `json:"transactions"`
	TotalAmount  float64 `json:"total_amount"`
}

type TransactionVolumeByCurrencyData struct {
	Rows []CurrencyVolumeRow `json:"rows"`
}

type ClickedElementRow struct {
	ElementName string `json:"element_name"`
	Clicks      int64  `json:"clicks"`
}

type MostClickedElementsData struct {
	Rows []ClickedElementRow `json:"rows"`
}

type RegistrationPoint struct {
	Date          string `json:"date"`
	Registrations int64  `json:"registrations"`
}

type UserRegistrationTrendData struct {
	Points []RegistrationPoint `json:"points"`
}

type FilterUsageRow struct {
	FilterName  string `json:"filter_name"`
	FilterValue string `json:"filter_value"`
	UsageCount  int64  `json:"usage_count"`
}

type FilterUsageData struct {
	Rows []FilterUsageRow `json:"rows"`
}

type ProductRow struct {
	ProductID     string `json:"product_id"`
	CartAdditions int64  `json:"cart_additions"`
	UniqueUsers   int64  `json:"unique_users"`
}

type TopPerformingProductsData struct {
	Rows []ProductRow `json:"rows"`
}

type HourlyActivityRow struct {
	Hour   int64 `json:"hour"`
	Events int64 `json:"events"`
}

type ActivityByHourData struct {
	Rows []HourlyActivityRow `json:"rows"`
}

type EventDistributionRow struct {
	EventType string `json:"event_type"`
	Value     int64  `json:"value"`
}

type EventTypeDistributionData struct {
	Rows []EventDistributionRow `json:"rows"`
}

type ActivityPoint struct {
	Time   string `json:"time"`
	Events int64  `json:"events"`
}

type DailyActivityTrendData struct {
	Points []ActivityPoint `json:"points"`
}

func (DAUData) isMetricData()                          {}
func (WAUData) isMetricData()                          {}
func (MAUData) isMetricData()                          {}
func (NewRegistrationsTodayData) isMetricData()        {}
func (DailyRevenueData) isMetricData()                 {}
func (AverageOrderValueData) isMetricData()            {}
func (ARPU7DaysData) isMetricData()                    {}
func (TotalTransactionsTodayData) isMetricData()       {}
func (CartAbandonmentRateData) isMetricData()          {}
func (ConversionRateCartToPurchaseData) isMetricData() {}
func (UserEngagementScoreData) isMetricData()          {}
func (MostActiveEventTypeData) isMetricData()          {}
func (TotalPageViewsData) isMetricData()               {}
func (RevenueTrend30DaysData) isMetricData()           {}
func (UserActivityTrend30DaysData) isMetricData()      {}
func (TopPagesByViewsData) isMetricData()              {}
func (SearchQueriesData) isMetricData()                {}
func (UserJourneyFunnelData) isMetricData()            {}
func (TransactionVolumeByCurrencyData) isMetricData()  {}
func (MostClickedElementsData) isMetricData()          {}
func (UserRegistrationTrendData) isMetricData()        {}
func (FilterUsageData) isMetricData()                  {}
func (TopPerformingProductsData) isMetricData()        {}
func (ActivityByHourData) isMetricData()               {}
func (EventTypeDistributionData) isMetricData()        {}
func (DailyActivityTrendData) isMetricData()           {}
