package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha de insights da Graph API. Os campos numéricos chegam
// como string e são convertidos na montagem das métricas normalizadas.
type Insight struct {
	AccountID      string   `json:"account_id"`
	AccountName    string   `json:"account_name"`
	Actions        []Action `json:"actions"`
	CampaignID     string   `json:"campaign_id"`
	CampaignName   string   `json:"campaign_name"`
	Clicks         string   `json:"clicks"`
	CostPerActions []Action `json:"cost_per_action_type"`
	CPC            string   `json:"cpc"`
	CPM            string   `json:"cpm"`
	CTR            string   `json:"ctr"`
	DateStart      string   `json:"date_start"`
	DateStop       string   `json:"date_stop"`
	Frequency      string   `json:"frequency"`
	Impressions    string   `json:"impressions"`
	Objective      string   `json:"objective"`
	Reach          string   `json:"reach"`
	Spend          string   `json:"spend"`
}

// Mapeamento de "objective" -> "cost_per_action_type"
var MetaObjectiveToActionType = map[string]string{
	"LINK_CLICKS":           "link_click",
	"POST_ENGAGEMENT":       "post_engagement",
	"PAGE_LIKES":            "like",
	"VIDEO_VIEWS":           "video_view",
	"LEAD_GENERATION":       "lead",
	"CONVERSIONS":           "offsite_conversion",
	"APP_INSTALLS":          "app_install",
	"PRODUCT_CATALOG_SALES": "offsite_conversion.fb_pixel_purchase",
	"MESSAGES":              "onsite_conversion.messaging_first_reply",
	"OUTCOME_ENGAGEMENT":    "onsite_conversion.messaging_conversation_started_7d",
	"OUTCOME_LEADS":         "lead",
	"OUTCOME_SALES":         "offsite_conversion.fb_pixel_purchase",
	"OUTCOME_TRAFFIC":       "link_click",
}

// GetConversions retorna o valor da ação correspondente ao objetivo da
// campanha; 0 quando o objetivo não tem ação mapeada ou reportada.
func (i *Insight) GetConversions() int {
	actionType, ok := MetaObjectiveToActionType[i.Objective]
	if !ok {
		logrus.WithField("objective", i.Objective).Debug("Objetivo sem action type mapeado")
		return 0
	}

	for _, action := range i.Actions {
		if action.ActionType == actionType {
			value, err := strconv.Atoi(action.Value)
			if err != nil {
				logrus.WithError(err).Warn("Erro ao converter valor da ação")
				return 0
			}
			return value
		}
	}

	return 0
}

// GetCostPerConversion retorna o custo por resultado do objetivo da campanha
func (i *Insight) GetCostPerConversion() float64 {
	actionType, ok := MetaObjectiveToActionType[i.Objective]
	if !ok {
		return 0
	}

	for _, action := range i.CostPerActions {
		if action.ActionType == actionType {
			value, err := strconv.ParseFloat(action.Value, 64)
			if err != nil {
				logrus.WithError(err).Warn("Erro ao converter valor do custo por ação")
				return 0
			}
			return value
		}
	}

	return 0
}
