package models

// TrendingPage is one ranked content page in a country's trending list.
type TrendingPage struct {
	DomainName      string `json:"domain_name"`
	Last30DaysViews int64  `json:"last_30_days_views"`
}
