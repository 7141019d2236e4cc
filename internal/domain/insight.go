package domain

import (
	"fmt"
	"time"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate garante que o período informado é completo e está em ordem
func (f *InsightFilters) Validate() error {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if f.StartDate.After(*f.EndDate) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	return nil
}

// SyncEntity é uma entidade sincronizável sob uma conta de anúncio:
// campanha/adset/ad no Meta, canal de aquisição no Google Analytics.
type SyncEntity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

const (
	EntityLevelAccount       = "account"
	EntityLevelCampaign      = "campaign"
	EntityLevelAdset         = "adset"
	EntityLevelAd            = "ad"
	EntityLevelTrafficSource = "traffic_source"
)

// ChannelMetrics é o payload bruto de um canal do Google Analytics. Os
// registros de nível traffic_source carregam esse JSON em raw_data, já que
// as colunas numéricas do registro modelam métricas de anúncio.
type ChannelMetrics struct {
	Channel        string  `json:"channel"`
	Sessions       int     `json:"sessions"`
	TotalUsers     int     `json:"total_users"`
	NewUsers       int     `json:"new_users"`
	EngagementRate float64 `json:"engagement_rate"`
	Conversions    int     `json:"conversions"`
}

// EntityMetrics é o resultado normalizado da consulta de insights de uma
// entidade em um período, antes de virar AdDataRecord.
type EntityMetrics struct {
	EntityID          string
	EntityName        string
	EntityLevel       string
	Impressions       int
	Clicks            int
	Spend             float64
	Reach             int
	Frequency         float64
	CPC               float64
	CPM               float64
	CTR               float64
	Conversions       int
	CostPerConversion float64
	Raw               []byte
}
