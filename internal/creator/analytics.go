package creator

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"bite-sized-learning-go/internal/catalog"
)

// WatchTimeFactor estimates minutes watched per view
const WatchTimeFactor = 0.6

var printer = message.NewPrinter(language.English)

// Metric is a formatted headline number
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type DashboardView struct {
	Name             string               `json:"name"`
	AvatarURL        string               `json:"avatar"`
	Metrics          []Metric             `json:"metrics"`
	RecentReels      []catalog.ReelStat   `json:"recent_reels"`
	TopicPerformance []catalog.TopicViews `json:"topic_performance"`
}

// ReelAnalytics is one row of the analytics table
type ReelAnalytics struct {
	Title     string  `json:"reel"`
	Views     int     `json:"views"`
	Likes     int     `json:"likes"`
	WatchTime float64 `json:"watch_time"`
	ViewShare float64 `json:"view_share_pct"`
}

type AnalyticsView struct {
	Reels      []ReelAnalytics `json:"reels"`
	TotalViews int             `json:"total_views"`
	TotalLikes int             `json:"total_likes"`
}

// Dashboard formats the creator's headline stats
func Dashboard(stats catalog.CreatorStats) DashboardView {
	return DashboardView{
		Name:      stats.Name,
		AvatarURL: stats.AvatarURL,
		Metrics: []Metric{
			{Label: "Followers", Value: printer.Sprintf("%d", stats.Followers)},
			{Label: "Reels Published", Value: printer.Sprintf("%d", stats.ReelsPublished)},
			{Label: "Micro-Courses", Value: printer.Sprintf("%d", stats.MicroCourses)},
			{Label: "Watch Time", Value: printer.Sprintf("%d min", stats.WatchTimeMinutes)},
		},
		RecentReels:      append([]catalog.ReelStat{}, stats.RecentReels...),
		TopicPerformance: append([]catalog.TopicViews{}, stats.TopicPerformance...),
	}
}

// Analytics derives the per-reel table: estimated watch time and each
// reel's share of total views
func Analytics(stats catalog.CreatorStats) AnalyticsView {
	view := AnalyticsView{Reels: make([]ReelAnalytics, 0, len(stats.RecentReels))}
	for _, r := range stats.RecentReels {
		view.TotalViews += r.Views
		view.TotalLikes += r.Likes
	}

	for _, r := range stats.RecentReels {
		row := ReelAnalytics{
			Title:     r.Title,
			Views:     r.Views,
			Likes:     r.Likes,
			WatchTime: round2(float64(r.Views) * WatchTimeFactor),
		}
		if view.TotalViews > 0 {
			row.ViewShare = round2(float64(r.Views) * 100 / float64(view.TotalViews))
		}
		view.Reels = append(view.Reels, row)
	}
	return view
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
