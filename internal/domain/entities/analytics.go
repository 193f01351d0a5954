package entities

// SourceCount is a lead count for one origin channel
type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// AnalyticsData holds summary statistics over the full lead collection.
// The sub-statistics are computed by independent queries with no
// cross-query atomicity; under concurrent writes the numbers may not
// add up exactly. Stages and statuses with zero leads are omitted from
// the grouped maps.
type AnalyticsData struct {
	TotalLeads     int64                `json:"totalLeads"`
	ConvertedLeads int64                `json:"convertedLeads"`
	ActiveLeads    int64                `json:"activeLeads"`
	TotalValue     float64              `json:"totalValue"`
	AverageValue   float64              `json:"averageValue"`
	LeadsByStage   map[Stage]int64      `json:"leadsByStage"`
	LeadsByStatus  map[LeadStatus]int64 `json:"leadsByStatus"`
	LeadsBySource  []SourceCount        `json:"leadsBySource"`
}
