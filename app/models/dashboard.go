package models

import "time"

type DashboardStats struct {
	TotalStudents     int        `json:"total_students"`
	TotalClasses      int        `json:"total_classes"`
	MonthlyRevenue    float64    `json:"monthly_revenue"`
	FeeCollectionRate float64    `json:"fee_collection_rate"`
	Receivables       float64    `json:"receivables"`
	RecentActivities  []Activity `json:"recent_activities"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RawTime     time.Time `json:"time"`
}
