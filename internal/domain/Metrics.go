package domain

// CampaignMetrics é a visão agregada de uma campanha do Meta no período
type CampaignMetrics struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Impressions       int     `json:"impressions"`
	Clicks            int     `json:"clicks"`
	Spend             float64 `json:"spend"`
	Reach             int     `json:"reach"`
	Conversions       int     `json:"conversions"`
	CTR               float64 `json:"ctr"`
	CPC               float64 `json:"cpc"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// TrafficSourceMetrics é a visão agregada de um canal do Google Analytics
type TrafficSourceMetrics struct {
	Source         string  `json:"source"`
	Sessions       int     `json:"sessions"`
	Users          int     `json:"users"`
	Conversions    int     `json:"conversions"`
	EngagementRate float64 `json:"engagement_rate"`
}

// TrendPoint é um ponto da série temporal usada nos gráficos de tendência
type TrendPoint struct {
	Date        string  `json:"date"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Spend       float64 `json:"spend"`
	Sessions    int     `json:"sessions"`
	Conversions int     `json:"conversions"`
}

// MetaMetrics é o bloco de métricas vindo do Meta Ads para uma conta
type MetaMetrics struct {
	AccountID   string            `json:"account_id"`
	AccountName string            `json:"account_name"`
	Impressions int               `json:"impressions"`
	Clicks      int               `json:"clicks"`
	Reach       int               `json:"reach"`
	Frequency   float64           `json:"frequency"`
	Spend       float64           `json:"spend"`
	Conversions int               `json:"conversions"`
	Campaigns   []CampaignMetrics `json:"campaigns"`
	Trend       []TrendPoint      `json:"trend,omitempty"`
}

// GoogleMetrics é o bloco de métricas vindo do Google Analytics para uma
// propriedade
type GoogleMetrics struct {
	PropertyID     string                 `json:"property_id"`
	Sessions       int                    `json:"sessions"`
	TotalUsers     int                    `json:"total_users"`
	NewUsers       int                    `json:"new_users"`
	EngagementRate float64                `json:"engagement_rate"`
	Conversions    int                    `json:"conversions"`
	TrafficSources []TrafficSourceMetrics `json:"traffic_sources"`
	Trend          []TrendPoint           `json:"trend,omitempty"`
}

type AcquisitionMetrics struct {
	Impressions int `json:"impressions"`
	Reach       int `json:"reach"`
	Clicks      int `json:"clicks"`
	Sessions    int `json:"sessions"`
	NewUsers    int `json:"new_users"`
}

type EngagementMetrics struct {
	CTR            float64 `json:"ctr"`
	Frequency      float64 `json:"frequency"`
	EngagementRate float64 `json:"engagement_rate"`
	TotalUsers     int     `json:"total_users"`
}

type ConversionMetrics struct {
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
}

type CostMetrics struct {
	Spend             float64 `json:"spend"`
	CPC               float64 `json:"cpc"`
	CPM               float64 `json:"cpm"`
	CostPerConversion float64 `json:"cost_per_conversion"`
}

// CombinedMetrics é o modelo único consumido pelo dashboard. Campos
// derivados nunca são nulos: fontes ausentes contribuem com zero.
type CombinedMetrics struct {
	Acquisition    AcquisitionMetrics     `json:"acquisition"`
	Engagement     EngagementMetrics      `json:"engagement"`
	Conversion     ConversionMetrics      `json:"conversion"`
	Cost           CostMetrics            `json:"cost"`
	Campaigns      []CampaignMetrics      `json:"campaigns"`
	TrafficSources []TrafficSourceMetrics `json:"traffic_sources"`
	Trend          []TrendPoint           `json:"trend"`
}

// ChartDataset é um par label/valores pronto para os wrappers de gráfico
type ChartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type Chart struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// DashboardCharts agrupa as séries derivadas de CombinedMetrics
type DashboardCharts struct {
	TrafficSourceChart       Chart `json:"traffic_source_chart"`
	CampaignPerformanceChart Chart `json:"campaign_performance_chart"`
	SpendTrendChart          Chart `json:"spend_trend_chart"`
}

// CombinedMetricsResponse é o payload do endpoint de métricas combinadas
type CombinedMetricsResponse struct {
	TenantID string           `json:"tenant_id"`
	Filters  *InsightFilters  `json:"-"`
	Metrics  *CombinedMetrics `json:"metrics"`
	Charts   *DashboardCharts `json:"charts"`
}
